package service

import (
	"testing"

	"javacert_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func single(v string) model.SubmittedAnswer {
	return model.SubmittedAnswer{Value: v}
}

func multi(vs ...string) model.SubmittedAnswer {
	return model.SubmittedAnswer{Values: vs, IsList: true}
}

func TestValidateAnswerSingle(t *testing.T) {
	v := NewValidationService()

	tests := []struct {
		name      string
		submitted model.SubmittedAnswer
		correct   string
		want      bool
	}{
		{"exact match", single("B"), "B", true},
		{"wrong letter", single("A"), "B", false},
		{"case sensitive", single("b"), "B", false},
		{"empty string", single(""), "B", false},
		{"array for single choice", multi("B"), "B", false},
		{"malformed json input", model.SubmittedAnswer{Invalid: true}, "B", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.ValidateAnswer(tt.submitted, tt.correct, model.QuestionTypeSingle)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateAnswerMultiple(t *testing.T) {
	v := NewValidationService()

	tests := []struct {
		name      string
		submitted model.SubmittedAnswer
		correct   string
		want      bool
	}{
		{"same order", multi("A", "C", "D"), "A,C,D", true},
		{"order irrelevant", multi("D", "A", "C"), "A,C,D", true},
		{"missing member", multi("A", "B"), "A,B,C", false},
		{"extra member", multi("A", "B", "C"), "A,B", false},
		{"disjoint", multi("D", "E"), "A,B", false},
		{"empty array", multi(), "A,B", false},
		{"scalar for multiple choice", single("A"), "A,B", false},
		{"duplicate selections collapse", multi("A", "A", "B"), "A,B", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.ValidateAnswer(tt.submitted, tt.correct, model.QuestionTypeMultiple)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateAnswerQuestionType(t *testing.T) {
	v := NewValidationService()

	// 缺失题型按单选处理
	assert.True(t, v.ValidateAnswer(single("A"), "A", ""))
	assert.False(t, v.ValidateAnswer(multi("A"), "A", ""))

	// 未知题型一律判错
	assert.False(t, v.ValidateAnswer(single("A"), "A", "essay"))
}

func TestScoreRound(t *testing.T) {
	v := NewValidationService()

	correct, total, percentage := v.ScoreRound([]bool{true, true, false})
	assert.Equal(t, 2, correct)
	assert.Equal(t, 3, total)
	assert.Equal(t, 67, percentage)

	correct, total, percentage = v.ScoreRound([]bool{false, true, false})
	assert.Equal(t, 1, correct)
	assert.Equal(t, 3, total)
	assert.Equal(t, 33, percentage)

	correct, total, percentage = v.ScoreRound(nil)
	assert.Equal(t, 0, correct)
	assert.Equal(t, 0, total)
	assert.Equal(t, 0, percentage)
}

func TestRoundPercentageHalfUp(t *testing.T) {
	assert.Equal(t, 50, RoundPercentage(1, 2))
	assert.Equal(t, 67, RoundPercentage(2, 3))
	assert.Equal(t, 33, RoundPercentage(1, 3))
	assert.Equal(t, 13, RoundPercentage(1, 8)) // 12.5 → 13
	assert.Equal(t, 100, RoundPercentage(5, 5))
	assert.Equal(t, 0, RoundPercentage(0, 0))
}
