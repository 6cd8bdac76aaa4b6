package service

import (
	"testing"

	"javacert_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestDetermineMasteryLevel(t *testing.T) {
	tests := []struct {
		sessions  int
		avgRounds float64
		want      string
	}{
		{3, 1.5, model.MasteryLevelMastered},
		{5, 1.0, model.MasteryLevelMastered},
		{3, 1.6, model.MasteryLevelAdvanced},
		{2, 2.5, model.MasteryLevelAdvanced},
		{2, 2.6, model.MasteryLevelIntermediate},
		{1, 4, model.MasteryLevelIntermediate},
		{1, 5, model.MasteryLevelBeginner},
		{0, 0, model.MasteryLevelBeginner},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetermineMasteryLevel(tt.sessions, tt.avgRounds),
			"sessions=%d avgRounds=%v", tt.sessions, tt.avgRounds)
	}
}

func TestCalculateMasteryLevel(t *testing.T) {
	stats := func(rounds ...int) []model.RecentSessionStat {
		out := make([]model.RecentSessionStat, 0, len(rounds))
		for _, r := range rounds {
			out = append(out, model.RecentSessionStat{FinalScore: 100, Rounds: r})
		}
		return out
	}

	assert.Equal(t, model.MasteryLevelBeginner, CalculateMasteryLevel(nil))
	assert.Equal(t, model.MasteryLevelMastered, CalculateMasteryLevel(stats(1, 1, 1, 1, 2))) // avg 1.2
	assert.Equal(t, model.MasteryLevelAdvanced, CalculateMasteryLevel(stats(2, 2)))
	assert.Equal(t, model.MasteryLevelIntermediate, CalculateMasteryLevel(stats(3, 3)))
	assert.Equal(t, model.MasteryLevelBeginner, CalculateMasteryLevel(stats(4, 5)))

	// 得分不足 100 时按分数阈值降档
	mixed := []model.RecentSessionStat{
		{FinalScore: 80, Rounds: 1},
		{FinalScore: 50, Rounds: 1},
	}
	assert.Equal(t, model.MasteryLevelBeginner, CalculateMasteryLevel(mixed))
}
