package repository

import (
	"javacert_backend/internal/model"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) CreateSession(session *model.ReviewSession) error {
	return r.DB.Create(session).Error
}

func (r *ReviewRepository) FindSessionByID(id string) (*model.ReviewSession, error) {
	var session model.ReviewSession
	err := r.DB.First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *ReviewRepository) UpdateSession(session *model.ReviewSession) error {
	return r.DB.Save(session).Error
}

// RecordRound 在同一事务内写入本轮作答记录并更新会话计数器，
// 避免两次独立写入之间崩溃导致的不一致
func (r *ReviewRepository) RecordRound(session *model.ReviewSession, attempts []model.ReviewAttempt) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for i := range attempts {
			if err := tx.Create(&attempts[i]).Error; err != nil {
				return err
			}
		}
		return tx.Save(session).Error
	})
}

// WrongQuestionIDs 某一轮答错的题目 ID，按作答顺序
func (r *ReviewRepository) WrongQuestionIDs(sessionID string, round int) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.ReviewAttempt{}).
		Where("session_id = ? AND round = ? AND is_correct = ?", sessionID, round, false).
		Order("created_at asc").
		Pluck("question_id", &ids).Error
	return ids, err
}

func (r *ReviewRepository) CountAttemptsByQuestion(questionID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ReviewAttempt{}).Where("question_id = ?", questionID).Count(&count).Error
	return count, err
}

func (r *ReviewRepository) SessionsByUser(userID string) ([]model.ReviewSession, error) {
	var sessions []model.ReviewSession
	err := r.DB.Where("user_id = ?", userID).Order("started_at asc").Find(&sessions).Error
	return sessions, err
}

func (r *ReviewRepository) SessionsByUserAndTopic(userID, topic string) ([]model.ReviewSession, error) {
	var sessions []model.ReviewSession
	err := r.DB.Where("user_id = ? AND topic = ?", userID, topic).Order("started_at desc").Find(&sessions).Error
	return sessions, err
}

// RecentCompletedSessions 某主题最近完成的 N 次会话，按完成时间倒序
func (r *ReviewRepository) RecentCompletedSessions(userID, topic string, limit int) ([]model.ReviewSession, error) {
	var sessions []model.ReviewSession
	err := r.DB.Where("user_id = ? AND topic = ? AND session_status = ?", userID, topic, model.SessionStatusCompleted).
		Order("completed_at desc").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}
