package service

import "javacert_backend/internal/model"

// 两套掌握度阈值并存：一套基于 TopicMastery 聚合，一套基于近 5 次会话。
// 消费方期望的分界不同，不要合并。

// DetermineMasteryLevel 基于持久化聚合（总会话数 + 平均轮数）
func DetermineMasteryLevel(totalSessions int, averageRounds float64) string {
	switch {
	case totalSessions >= 3 && averageRounds <= 1.5:
		return model.MasteryLevelMastered
	case totalSessions >= 2 && averageRounds <= 2.5:
		return model.MasteryLevelAdvanced
	case totalSessions >= 1 && averageRounds <= 4:
		return model.MasteryLevelIntermediate
	default:
		return model.MasteryLevelBeginner
	}
}

// CalculateMasteryLevel 基于最近至多 5 次会话的得分与轮数
func CalculateMasteryLevel(recent []model.RecentSessionStat) string {
	if len(recent) == 0 {
		return model.MasteryLevelBeginner
	}

	var scoreSum, roundSum int
	for _, s := range recent {
		scoreSum += s.FinalScore
		roundSum += s.Rounds
	}
	avgScore := float64(scoreSum) / float64(len(recent))
	avgRounds := float64(roundSum) / float64(len(recent))

	switch {
	case avgScore == 100 && avgRounds <= 1.2:
		return model.MasteryLevelMastered
	case avgScore >= 90 && avgRounds <= 2:
		return model.MasteryLevelAdvanced
	case avgScore >= 70 && avgRounds <= 3:
		return model.MasteryLevelIntermediate
	default:
		return model.MasteryLevelBeginner
	}
}
