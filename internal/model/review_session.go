package model

import "time"

const (
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
)

// ReviewSession 一次"重做到满分"的复习会话
// swagger:model ReviewSession
type ReviewSession struct {
	UUIDBase
	UserID                       string     `gorm:"size:128;index;not null" json:"userId"`
	Topic                        string     `gorm:"size:64;index;not null" json:"topic"`
	CurrentRound                 int        `gorm:"default:1" json:"currentRound"`
	QuestionsTotalCurrentRound   int        `gorm:"default:0" json:"questionsTotalCurrentRound"`
	QuestionsCorrectCurrentRound int        `gorm:"default:0" json:"questionsCorrectCurrentRound"`
	SessionStatus                string     `gorm:"size:20;default:'active';index" json:"sessionStatus"` // active, completed
	StartedAt                    time.Time  `json:"startedAt"`
	CompletedAt                  *time.Time `json:"completedAt,omitempty"`
	LastActivity                 time.Time  `json:"lastActivity"`
}

func (ReviewSession) TableName() string {
	return "review_sessions"
}

func (s *ReviewSession) IsCompleted() bool {
	return s.SessionStatus == SessionStatusCompleted
}
