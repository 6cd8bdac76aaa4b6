package service

import (
	"testing"

	"javacert_backend/internal/model"
	"javacert_backend/internal/repository"
	"javacert_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQuizService(db *gorm.DB) *QuizService {
	return NewQuizService(
		repository.NewQuizRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewTopicRepository(db),
		NewValidationService(),
	)
}

func TestSubmitQuiz(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	seedTopic(t, db, "streams")
	q1 := seedQuestion(t, db, "streams", "A", model.QuestionTypeSingle)
	q2 := seedQuestion(t, db, "streams", "B,C", model.QuestionTypeMultiple)
	q3 := seedQuestion(t, db, "streams", "D", model.QuestionTypeSingle)

	result, err := svc.SubmitQuiz("u1", "streams", []RoundAnswer{
		{QuestionID: q1.ID, SelectedAnswer: single("A")},
		{QuestionID: q2.ID, SelectedAnswer: multi("C", "B")},
		{QuestionID: q3.ID, SelectedAnswer: single("A")},
		{QuestionID: "foreign", SelectedAnswer: single("A")},
	})
	require.NoError(t, err)

	// 不属于本主题的题目被跳过，不计入判分
	require.Len(t, result.Results, 3)
	assert.True(t, result.Results[0].IsCorrect)
	assert.True(t, result.Results[1].IsCorrect)
	assert.False(t, result.Results[2].IsCorrect)
	assert.Equal(t, QuizSummary{Correct: 2, Total: 3, Percentage: 67}, result.Summary)

	history, err := svc.History("u1", 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 2, history[0].Score)
	assert.Equal(t, 3, history[0].Total)
	assert.Equal(t, 67, history[0].Percentage)
}

func TestSubmitQuizInvalidTopic(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)

	_, err := svc.SubmitQuiz("u1", "nope", nil)
	assert.ErrorIs(t, err, util.ErrInvalidTopic)
}

func TestSubmitQuizNoQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	seedTopic(t, db, "empty")

	_, err := svc.SubmitQuiz("u1", "empty", nil)
	assert.ErrorIs(t, err, util.ErrNoQuestionsAvailable)
}
