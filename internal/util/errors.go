package util

import "errors"

var (
	ErrInvalidTopic            = errors.New("Invalid topic")
	ErrNoQuestionsAvailable    = errors.New("No questions available")
	ErrSessionNotFound         = errors.New("Session not found")
	ErrSessionAlreadyCompleted = errors.New("Session already completed")
	ErrNoSessionsFound         = errors.New("No sessions found")
	ErrQuestionNotFound        = errors.New("Question not found")
	ErrQuestionHasAttempts     = errors.New("Question has recorded attempts and cannot be deleted")
	ErrUserIDAndTopicRequired  = errors.New("userId and topic are required")
)
