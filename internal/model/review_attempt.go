package model

// ReviewAttempt 每 (会话, 题目, 轮次) 一条的作答记录，只追加不修改
// swagger:model ReviewAttempt
type ReviewAttempt struct {
	UUIDBase
	SessionID       string `gorm:"index;type:varchar(36);not null" json:"sessionId"`
	QuestionID      string `gorm:"index;type:varchar(36);not null" json:"questionId"`
	Round           int    `gorm:"not null" json:"round"`
	SubmittedAnswer string `gorm:"type:text" json:"submittedAnswer"` // 数组答案存 JSON 字符串
	IsCorrect       bool   `gorm:"default:false" json:"isCorrect"`
}

func (ReviewAttempt) TableName() string {
	return "review_attempts"
}
