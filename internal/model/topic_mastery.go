package model

import "time"

// TopicMastery 每 (用户, 主题) 一条的滚动聚合，会话完成时更新
// swagger:model TopicMastery
type TopicMastery struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        string    `gorm:"size:128;uniqueIndex:idx_user_topic;not null" json:"userId"`
	Topic         string    `gorm:"size:64;uniqueIndex:idx_user_topic;not null" json:"topic"`
	TotalSessions int       `gorm:"default:0" json:"totalSessions"`
	AverageRounds float64   `gorm:"default:0" json:"averageRounds"` // 达到 100% 所需轮数的加权均值
	LastPracticed time.Time `json:"lastPracticed"`
}

func (TopicMastery) TableName() string {
	return "topic_masteries"
}
