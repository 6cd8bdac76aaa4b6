package service

import (
	"math"
	"time"

	"javacert_backend/internal/model"
	"javacert_backend/internal/repository"
	"javacert_backend/internal/util"
)

// ReportService 把用户的历史会话汇总成学习报告
type ReportService struct {
	ReviewRepo *repository.ReviewRepository
}

func NewReportService(reviewRepo *repository.ReviewRepository) *ReportService {
	return &ReportService{ReviewRepo: reviewRepo}
}

// CategorizeDifficulty 按达到满分所需轮数分档
func CategorizeDifficulty(rounds int) string {
	switch {
	case rounds <= 1:
		return model.DifficultyMastered
	case rounds == 2:
		return model.DifficultyGood
	case rounds == 3:
		return model.DifficultyNeedsWork
	default:
		return model.DifficultyStruggling
	}
}

func (s *ReportService) GenerateUserReport(userID string) (*model.UserReport, error) {
	sessions, err := s.ReviewRepo.SessionsByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		// 哨兵错误：零会话不是一份空报告
		return nil, util.ErrNoSessionsFound
	}

	report := &model.UserReport{
		UserID:           userID,
		GeneratedAt:      time.Now(),
		TopicPerformance: make([]model.SessionTopicMetric, 0, len(sessions)),
		RecentMastery:    map[string]string{},
	}

	// 每个会话一行，同一主题复习多次就计多次
	topicSet := map[string]bool{}
	for _, session := range sessions {
		difficulty := CategorizeDifficulty(session.CurrentRound)
		report.TopicPerformance = append(report.TopicPerformance, model.SessionTopicMetric{
			SessionID:     session.ID,
			Topic:         session.Topic,
			Rounds:        session.CurrentRound,
			FinalAccuracy: RoundPercentage(session.QuestionsCorrectCurrentRound, session.QuestionsTotalCurrentRound),
			Difficulty:    difficulty,
		})
		topicSet[session.Topic] = true

		switch difficulty {
		case model.DifficultyMastered:
			report.DifficultyBreakdown.Mastered++
		case model.DifficultyGood:
			report.DifficultyBreakdown.Good++
		case model.DifficultyNeedsWork:
			report.DifficultyBreakdown.NeedsWork++
		case model.DifficultyStruggling:
			report.DifficultyBreakdown.Struggling++
		}
	}

	for topic := range topicSet {
		recent, err := s.ReviewRepo.RecentCompletedSessions(userID, topic, 5)
		if err != nil {
			return nil, err
		}
		stats := make([]model.RecentSessionStat, 0, len(recent))
		for _, session := range recent {
			// 已完成会话的 finalScore 按设计恒为 100
			stats = append(stats, model.RecentSessionStat{FinalScore: 100, Rounds: session.CurrentRound})
		}
		report.RecentMastery[topic] = CalculateMasteryLevel(stats)
	}

	report.TimeAnalysis = s.analyzeTime(sessions)
	report.Recommendations = s.buildRecommendations(report.TopicPerformance)
	return report, nil
}

// analyzeTime 只统计起止时间齐全的会话；窗口以当前时间为基准滚动
func (s *ReportService) analyzeTime(sessions []model.ReviewSession) model.TimeAnalysis {
	var analysis model.TimeAnalysis
	now := time.Now()
	var durations []int

	for _, session := range sessions {
		if session.CompletedAt == nil || session.StartedAt.IsZero() {
			continue
		}
		minutes := int(math.Round(session.CompletedAt.Sub(session.StartedAt).Minutes()))
		durations = append(durations, minutes)
		analysis.TotalMinutes += minutes

		age := now.Sub(*session.CompletedAt)
		if age <= 7*24*time.Hour {
			analysis.SessionsLast7Days++
		}
		if age <= 30*24*time.Hour {
			analysis.SessionsLast30Days++
		}
	}

	if len(durations) > 0 {
		analysis.AverageSessionMinutes = int(math.Round(float64(analysis.TotalMinutes) / float64(len(durations))))
	}
	return analysis
}

// buildRecommendations 三个独立触发的建议桶，互不排斥
func (s *ReportService) buildRecommendations(metrics []model.SessionTopicMetric) []model.Recommendation {
	buckets := map[string][]string{}
	seen := map[string]map[string]bool{}
	for _, m := range metrics {
		if seen[m.Difficulty] == nil {
			seen[m.Difficulty] = map[string]bool{}
		}
		if seen[m.Difficulty][m.Topic] {
			continue
		}
		seen[m.Difficulty][m.Topic] = true
		buckets[m.Difficulty] = append(buckets[m.Difficulty], m.Topic)
	}

	recommendations := []model.Recommendation{}
	if topics := buckets[model.DifficultyStruggling]; len(topics) > 0 {
		recommendations = append(recommendations, model.Recommendation{
			Type:    "focus_on_struggling",
			Topics:  topics,
			Message: "这些主题需要 4 轮以上才能达到满分，建议优先重点复习",
		})
	}
	if topics := buckets[model.DifficultyNeedsWork]; len(topics) > 0 {
		recommendations = append(recommendations, model.Recommendation{
			Type:    "review_needs_work",
			Topics:  topics,
			Message: "这些主题还不够熟练，建议安排再次复习",
		})
	}
	if topics := buckets[model.DifficultyMastered]; len(topics) > 0 {
		recommendations = append(recommendations, model.Recommendation{
			Type:    "maintain_mastery",
			Topics:  topics,
			Message: "这些主题已经掌握，定期回顾保持状态即可",
		})
	}
	return recommendations
}
