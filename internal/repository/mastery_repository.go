package repository

import (
	"errors"

	"javacert_backend/internal/model"

	"gorm.io/gorm"
)

type MasteryRepository struct {
	DB *gorm.DB
}

func NewMasteryRepository(db *gorm.DB) *MasteryRepository {
	return &MasteryRepository{DB: db}
}

func (r *MasteryRepository) FindByUserAndTopic(userID, topic string) (*model.TopicMastery, error) {
	var mastery model.TopicMastery
	err := r.DB.First(&mastery, "user_id = ? AND topic = ?", userID, topic).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mastery, nil
}

func (r *MasteryRepository) ListByUser(userID string) ([]model.TopicMastery, error) {
	var masteries []model.TopicMastery
	err := r.DB.Where("user_id = ?", userID).Find(&masteries).Error
	return masteries, err
}

func (r *MasteryRepository) Create(mastery *model.TopicMastery) error {
	return r.DB.Create(mastery).Error
}

func (r *MasteryRepository) Update(mastery *model.TopicMastery) error {
	return r.DB.Save(mastery).Error
}
