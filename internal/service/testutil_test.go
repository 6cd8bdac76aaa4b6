package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"javacert_backend/internal/model"
	"javacert_backend/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个测试一个独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Topic{},
		&model.Question{},
		&model.ReviewSession{},
		&model.ReviewAttempt{},
		&model.TopicMastery{},
		&model.QuizResult{},
	))
	return db
}

func newReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(
		repository.NewReviewRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewTopicRepository(db),
		repository.NewMasteryRepository(db),
		NewValidationService(),
	)
}

func seedTopic(t *testing.T, db *gorm.DB, code string) {
	t.Helper()
	require.NoError(t, db.Create(&model.Topic{
		Code:    code,
		Domain:  "集合与泛型",
		Name:    code,
		Enabled: true,
	}).Error)
}

func seedQuestion(t *testing.T, db *gorm.DB, topic, correct, questionType string) *model.Question {
	t.Helper()

	options, err := json.Marshal([]model.QuestionOption{
		{Key: "A", Text: "选项 A"},
		{Key: "B", Text: "选项 B"},
		{Key: "C", Text: "选项 C"},
		{Key: "D", Text: "选项 D"},
	})
	require.NoError(t, err)

	q := &model.Question{
		Domain:        "集合与泛型",
		Topic:         topic,
		QuestionText:  "以下哪个选项是正确的？",
		Options:       options,
		CorrectAnswer: correct,
		QuestionType:  questionType,
		Explanation:   "见官方教程对应章节",
	}
	require.NoError(t, db.Create(q).Error)
	return q
}
