package model

import "time"

// 学习报告相关结构

const (
	DifficultyMastered   = "mastered"
	DifficultyGood       = "good"
	DifficultyNeedsWork  = "needsWork"
	DifficultyStruggling = "struggling"
)

const (
	MasteryLevelMastered     = "mastered"
	MasteryLevelAdvanced     = "advanced"
	MasteryLevelIntermediate = "intermediate"
	MasteryLevelBeginner     = "beginner"
)

// SessionTopicMetric 报告中每个会话一行，同一主题多次复习不去重
type SessionTopicMetric struct {
	SessionID     string `json:"sessionId"`
	Topic         string `json:"topic"`
	Rounds        int    `json:"rounds"`
	FinalAccuracy int    `json:"finalAccuracy"`
	Difficulty    string `json:"difficulty"`
}

type TimeAnalysis struct {
	AverageSessionMinutes int `json:"averageSessionMinutes"`
	TotalMinutes          int `json:"totalMinutes"`
	SessionsLast7Days     int `json:"sessionsLast7Days"`
	SessionsLast30Days    int `json:"sessionsLast30Days"`
}

type Recommendation struct {
	Type    string   `json:"type"` // focus_on_struggling, review_needs_work, maintain_mastery
	Topics  []string `json:"topics"`
	Message string   `json:"message"`
}

type DifficultyBreakdown struct {
	Mastered   int `json:"mastered"`
	Good       int `json:"good"`
	NeedsWork  int `json:"needsWork"`
	Struggling int `json:"struggling"`
}

type UserReport struct {
	UserID              string               `json:"userId"`
	GeneratedAt         time.Time            `json:"generatedAt"`
	TopicPerformance    []SessionTopicMetric `json:"topicPerformance"`
	RecentMastery       map[string]string    `json:"recentMastery"` // topic -> level（近 5 次会话口径）
	TimeAnalysis        TimeAnalysis         `json:"timeAnalysis"`
	Recommendations     []Recommendation     `json:"recommendations"`
	DifficultyBreakdown DifficultyBreakdown  `json:"difficultyBreakdown"`
}

// RecentSessionStat CalculateMasteryLevel 的输入（近 5 次会话）
type RecentSessionStat struct {
	FinalScore int
	Rounds     int
}
