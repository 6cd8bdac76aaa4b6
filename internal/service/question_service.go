package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"javacert_backend/internal/model"
	"javacert_backend/internal/repository"
	"javacert_backend/internal/util"

	"gorm.io/gorm"
)

var optionKeys = []string{"A", "B", "C", "D", "E"}

// QuestionService 题库维护：增删改查、题型归一化、删除保护
type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	TopicRepo    *repository.TopicRepository
	ReviewRepo   *repository.ReviewRepository
}

func NewQuestionService(
	questionRepo *repository.QuestionRepository,
	topicRepo *repository.TopicRepository,
	reviewRepo *repository.ReviewRepository,
) *QuestionService {
	return &QuestionService{
		QuestionRepo: questionRepo,
		TopicRepo:    topicRepo,
		ReviewRepo:   reviewRepo,
	}
}

type QuestionRequest struct {
	Domain        string                 `json:"domain" binding:"required"`
	Topic         string                 `json:"topic" binding:"required"`
	QuestionText  string                 `json:"question_text" binding:"required"`
	Options       []model.QuestionOption `json:"options" binding:"required"`
	CorrectAnswer string                 `json:"correct_answer" binding:"required"`
	QuestionType  string                 `json:"question_type"`
	Explanation   string                 `json:"explanation"`
}

func (s *QuestionService) CreateQuestion(req QuestionRequest) (*model.Question, error) {
	q, err := s.buildQuestion(req)
	if err != nil {
		return nil, err
	}
	if err := s.QuestionRepo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) UpdateQuestion(id string, req QuestionRequest) (*model.Question, error) {
	existing, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	updated, err := s.buildQuestion(req)
	if err != nil {
		return nil, err
	}

	existing.Domain = updated.Domain
	existing.Topic = updated.Topic
	existing.QuestionText = updated.QuestionText
	existing.Options = updated.Options
	existing.CorrectAnswer = updated.CorrectAnswer
	existing.QuestionType = updated.QuestionType
	existing.Explanation = updated.Explanation

	if err := s.QuestionRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteQuestion 有作答记录的题目不可删除，保证审计日志可回放
func (s *QuestionService) DeleteQuestion(id string) error {
	if _, err := s.QuestionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		}
		return err
	}

	count, err := s.ReviewRepo.CountAttemptsByQuestion(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return util.ErrQuestionHasAttempts
	}

	return s.QuestionRepo.Delete(id)
}

func (s *QuestionService) GetQuestion(id string) (*model.Question, error) {
	q, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) ListQuestions(domain, topic string, page, limit int) ([]model.Question, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.QuestionRepo.List(domain, topic, page, limit)
}

func (s *QuestionService) ListTopics() ([]model.Topic, error) {
	return s.TopicRepo.ListEnabled()
}

// buildQuestion 入参校验与题型归一化都收在入库边界，
// 下游永远拿到显式的 question_type
func (s *QuestionService) buildQuestion(req QuestionRequest) (*model.Question, error) {
	if _, err := s.TopicRepo.FindByCode(req.Topic); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidTopic
		}
		return nil, err
	}

	questionType := req.QuestionType
	if questionType == "" {
		questionType = model.QuestionTypeSingle
	}
	if questionType != model.QuestionTypeSingle && questionType != model.QuestionTypeMultiple {
		return nil, fmt.Errorf("unknown question_type %q", questionType)
	}

	if len(req.Options) < 3 || len(req.Options) > 5 {
		return nil, errors.New("options must have between 3 and 5 entries")
	}
	validKeys := make(map[string]bool, len(req.Options))
	for i, opt := range req.Options {
		if opt.Key != optionKeys[i] {
			return nil, fmt.Errorf("option %d must use key %s", i+1, optionKeys[i])
		}
		if strings.TrimSpace(opt.Text) == "" {
			return nil, fmt.Errorf("option %s text is empty", opt.Key)
		}
		validKeys[opt.Key] = true
	}

	letters := strings.Split(req.CorrectAnswer, ",")
	seen := make(map[string]bool, len(letters))
	for _, letter := range letters {
		if !validKeys[letter] {
			return nil, fmt.Errorf("correct_answer letter %q does not match any option", letter)
		}
		if seen[letter] {
			return nil, fmt.Errorf("correct_answer letter %q repeated", letter)
		}
		seen[letter] = true
	}
	if questionType == model.QuestionTypeSingle && len(letters) != 1 {
		return nil, errors.New("single choice question must have exactly one correct letter")
	}
	if questionType == model.QuestionTypeMultiple && len(letters) < 2 {
		return nil, errors.New("multiple choice question must have at least two correct letters")
	}

	optionsJSON, err := json.Marshal(req.Options)
	if err != nil {
		return nil, err
	}

	return &model.Question{
		Domain:        req.Domain,
		Topic:         req.Topic,
		QuestionText:  req.QuestionText,
		Options:       optionsJSON,
		CorrectAnswer: req.CorrectAnswer,
		QuestionType:  questionType,
		Explanation:   req.Explanation,
	}, nil
}

// FormatQuestionForClient 判分前发给客户端的题目必须剥掉答案与解析
func FormatQuestionForClient(q *model.Question) model.ClientQuestion {
	maxSelections := 1
	if q.EffectiveType() == model.QuestionTypeMultiple {
		maxSelections = len(q.CorrectLetters())
	}

	return model.ClientQuestion{
		ID:            q.ID,
		Domain:        q.Domain,
		Topic:         q.Topic,
		QuestionText:  q.QuestionText,
		Options:       q.OptionList(),
		QuestionType:  q.EffectiveType(),
		MaxSelections: maxSelections,
	}
}

func FormatQuestionsForClient(questions []model.Question) []model.ClientQuestion {
	formatted := make([]model.ClientQuestion, 0, len(questions))
	for i := range questions {
		formatted = append(formatted, FormatQuestionForClient(&questions[i]))
	}
	return formatted
}
