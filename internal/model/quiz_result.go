package model

import "time"

// QuizResult 一次性测验（非复习循环）的成绩
// swagger:model QuizResult
type QuizResult struct {
	UUIDBase
	UserID      string    `gorm:"size:128;index;not null" json:"userId"`
	Topic       string    `gorm:"size:64;index;not null" json:"topic"`
	Score       int       `gorm:"not null" json:"score"`
	Total       int       `gorm:"not null" json:"total"`
	Percentage  int       `gorm:"not null" json:"percentage"`
	CompletedAt time.Time `json:"completedAt"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
