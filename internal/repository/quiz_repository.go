package repository

import (
	"javacert_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(result *model.QuizResult) error {
	return r.DB.Create(result).Error
}

func (r *QuizRepository) ListByUser(userID string, limit int) ([]model.QuizResult, error) {
	var results []model.QuizResult
	query := r.DB.Where("user_id = ?", userID).Order("completed_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&results).Error
	return results, err
}
