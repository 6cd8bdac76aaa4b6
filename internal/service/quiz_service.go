package service

import (
	"errors"
	"time"

	"javacert_backend/internal/model"
	"javacert_backend/internal/repository"
	"javacert_backend/internal/util"

	"gorm.io/gorm"
)

// QuizService 一次性测验：整套题一次判分，不进入复习循环
type QuizService struct {
	QuizRepo     *repository.QuizRepository
	QuestionRepo *repository.QuestionRepository
	TopicRepo    *repository.TopicRepository
	Validator    *ValidationService
}

func NewQuizService(
	quizRepo *repository.QuizRepository,
	questionRepo *repository.QuestionRepository,
	topicRepo *repository.TopicRepository,
	validator *ValidationService,
) *QuizService {
	return &QuizService{
		QuizRepo:     quizRepo,
		QuestionRepo: questionRepo,
		TopicRepo:    topicRepo,
		Validator:    validator,
	}
}

type QuizSummary struct {
	Correct    int `json:"correct"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

type QuizSubmitResult struct {
	Results []model.AnswerResult `json:"results"`
	Summary QuizSummary          `json:"summary"`
}

func (s *QuizService) SubmitQuiz(userID, topic string, answers []RoundAnswer) (*QuizSubmitResult, error) {
	if _, err := s.TopicRepo.FindByCode(topic); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidTopic
		}
		return nil, err
	}

	questions, err := s.QuestionRepo.ListByTopic(topic)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.ErrNoQuestionsAvailable
	}

	byID := make(map[string]*model.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	results := make([]model.AnswerResult, 0, len(answers))
	graded := make([]bool, 0, len(answers))

	for _, ans := range answers {
		q, ok := byID[ans.QuestionID]
		if !ok {
			continue
		}

		isCorrect := s.Validator.ValidateAnswer(ans.SelectedAnswer, q.CorrectAnswer, q.EffectiveType())
		graded = append(graded, isCorrect)
		results = append(results, model.AnswerResult{
			QuestionID:     q.ID,
			SelectedAnswer: ans.SelectedAnswer,
			CorrectAnswer:  formatCorrectAnswer(q),
			IsCorrect:      isCorrect,
			Explanation:    q.Explanation,
			QuestionType:   q.EffectiveType(),
		})
	}

	correct, total, percentage := s.Validator.ScoreRound(graded)

	result := &model.QuizResult{
		UserID:      userID,
		Topic:       topic,
		Score:       correct,
		Total:       total,
		Percentage:  percentage,
		CompletedAt: time.Now(),
	}
	if err := s.QuizRepo.Create(result); err != nil {
		return nil, err
	}

	return &QuizSubmitResult{
		Results: results,
		Summary: QuizSummary{Correct: correct, Total: total, Percentage: percentage},
	}, nil
}

func (s *QuizService) History(userID string, limit int) ([]model.QuizResult, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.QuizRepo.ListByUser(userID, limit)
}
