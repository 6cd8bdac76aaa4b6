package model

import "time"

// 复习接口的响应结构。字段形态被前端契约固定，不走统一响应包装。

// ClientQuestion 发给客户端的题目，已剥离答案与解析
type ClientQuestion struct {
	ID            string           `json:"id"`
	Domain        string           `json:"domain"`
	Topic         string           `json:"topic"`
	QuestionText  string           `json:"question_text"`
	Options       []QuestionOption `json:"options"`
	QuestionType  string           `json:"question_type"`
	MaxSelections int              `json:"max_selections"`
}

type RoundInfo struct {
	CurrentRound   int `json:"currentRound"`
	TotalQuestions int `json:"totalQuestions"`
}

type StartSessionResult struct {
	SessionID string           `json:"sessionId"`
	Questions []ClientQuestion `json:"questions"`
	RoundInfo RoundInfo        `json:"roundInfo"`
}

// AnswerResult 单题判分结果，CorrectAnswer 多选时为字母数组
type AnswerResult struct {
	QuestionID     string          `json:"questionId"`
	SelectedAnswer SubmittedAnswer `json:"selectedAnswer"`
	CorrectAnswer  interface{}     `json:"correctAnswer"`
	IsCorrect      bool            `json:"isCorrect"`
	Explanation    string          `json:"explanation"`
	QuestionType   string          `json:"question_type"`
}

type RoundSummary struct {
	CorrectCount       int      `json:"correctCount"`
	TotalCount         int      `json:"totalCount"`
	Percentage         int      `json:"percentage"`
	IsComplete         bool     `json:"isComplete"`
	NextRoundQuestions []string `json:"nextRoundQuestions,omitempty"`
}

type SubmitRoundResult struct {
	Results      []AnswerResult `json:"results"`
	RoundSummary RoundSummary   `json:"roundSummary"`
}

type NextRoundResult struct {
	Questions []ClientQuestion `json:"questions"`
	RoundInfo RoundInfo        `json:"roundInfo"`
}

type SessionSummary struct {
	Topic           string `json:"topic"`
	TotalRounds     int    `json:"totalRounds"`
	FinalScore      int    `json:"finalScore"`
	TimeSpent       int    `json:"timeSpent"` // 秒
	MasteryAchieved bool   `json:"masteryAchieved"`
}

type TopicMasteryEntry struct {
	Topic         string     `json:"topic"`
	Domain        string     `json:"domain"`
	Name          string     `json:"name"`
	Level         string     `json:"level"`
	TotalSessions int        `json:"totalSessions"`
	AverageRounds float64    `json:"averageRounds"`
	LastPracticed *time.Time `json:"lastPracticed,omitempty"`
}

type OverallMasteryStats struct {
	TopicsMastered   int `json:"topicsMastered"`
	TopicsInProgress int `json:"topicsInProgress"`
	TopicsNotStarted int `json:"topicsNotStarted"`
	TotalTimeSpent   int `json:"totalTimeSpent"` // 估算秒数，非实测
}

type MasteryOverview struct {
	Mastery      []TopicMasteryEntry `json:"mastery"`
	OverallStats OverallMasteryStats `json:"overallStats"`
}

type SessionHistoryEntry struct {
	SessionID   string     `json:"sessionId"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Rounds      int        `json:"rounds"`
	FinalScore  int        `json:"finalScore"`
	TimeSpent   int        `json:"timeSpent"` // 秒，未完成为 0
}

type TopicHistory struct {
	History []SessionHistoryEntry `json:"history"`
}
