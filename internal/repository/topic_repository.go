package repository

import (
	"javacert_backend/internal/model"

	"gorm.io/gorm"
)

type TopicRepository struct {
	DB *gorm.DB
}

func NewTopicRepository(db *gorm.DB) *TopicRepository {
	return &TopicRepository{DB: db}
}

func (r *TopicRepository) FindByCode(code string) (*model.Topic, error) {
	var topic model.Topic
	err := r.DB.First(&topic, "code = ? AND enabled = ?", code, true).Error
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *TopicRepository) ListEnabled() ([]model.Topic, error) {
	var topics []model.Topic
	err := r.DB.Where("enabled = ?", true).Order("`order` asc, code asc").Find(&topics).Error
	return topics, err
}
