package service

import (
	"errors"
	"math"
	"time"

	"javacert_backend/internal/model"
	"javacert_backend/internal/repository"
	"javacert_backend/internal/util"
	"javacert_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// ReviewService 复习会话状态机：
// active(round=r) --(<100%)--> active(round=r+1) --(=100%)--> completed。
// 每个重试轮只包含上一轮答错的题目，轮数不设上限。
type ReviewService struct {
	ReviewRepo   *repository.ReviewRepository
	QuestionRepo *repository.QuestionRepository
	TopicRepo    *repository.TopicRepository
	MasteryRepo  *repository.MasteryRepository
	Validator    *ValidationService
}

func NewReviewService(
	reviewRepo *repository.ReviewRepository,
	questionRepo *repository.QuestionRepository,
	topicRepo *repository.TopicRepository,
	masteryRepo *repository.MasteryRepository,
	validator *ValidationService,
) *ReviewService {
	return &ReviewService{
		ReviewRepo:   reviewRepo,
		QuestionRepo: questionRepo,
		TopicRepo:    topicRepo,
		MasteryRepo:  masteryRepo,
		Validator:    validator,
	}
}

// RoundAnswer 客户端提交的单题答案
type RoundAnswer struct {
	QuestionID     string                `json:"questionId"`
	SelectedAnswer model.SubmittedAnswer `json:"selectedAnswer"`
}

func (s *ReviewService) StartSession(userID, topic string) (*model.StartSessionResult, error) {
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

	now := time.Now()
	session := &model.ReviewSession{
		UserID:                     userID,
		Topic:                      topic,
		CurrentRound:               1,
		QuestionsTotalCurrentRound: len(questions),
		SessionStatus:              model.SessionStatusActive,
		StartedAt:                  now,
		LastActivity:               now,
	}
	if err := s.ReviewRepo.CreateSession(session); err != nil {
		return nil, err
	}

	return &model.StartSessionResult{
		SessionID: session.ID,
		Questions: FormatQuestionsForClient(questions),
		RoundInfo: model.RoundInfo{
			CurrentRound:   1,
			TotalQuestions: len(questions),
		},
	}, nil
}

func (s *ReviewService) SubmitRound(sessionID string, answers []RoundAnswer) (*model.SubmitRoundResult, error) {
	session, err := s.findActiveSession(sessionID)
	if err != nil {
		return nil, err
	}

	active, err := s.activeRoundQuestions(session)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*model.Question, len(active))
	for i := range active {
		byID[active[i].ID] = &active[i]
	}

	results := make([]model.AnswerResult, 0, len(answers))
	attempts := make([]model.ReviewAttempt, 0, len(answers))
	graded := make([]bool, 0, len(answers))
	var wrongIDs []string

	for _, ans := range answers {
		q, ok := byID[ans.QuestionID]
		if !ok {
			// 不属于本轮题集的题目静默跳过，不算错误
			continue
		}

		isCorrect := s.Validator.ValidateAnswer(ans.SelectedAnswer, q.CorrectAnswer, q.EffectiveType())
		graded = append(graded, isCorrect)
		if !isCorrect {
			wrongIDs = append(wrongIDs, q.ID)
		}

		attempts = append(attempts, model.ReviewAttempt{
			SessionID:       session.ID,
			QuestionID:      q.ID,
			Round:           session.CurrentRound,
			SubmittedAnswer: ans.SelectedAnswer.Storage(),
			IsCorrect:       isCorrect,
		})

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
	now := time.Now()
	session.LastActivity = now

	summary := model.RoundSummary{
		CorrectCount: correct,
		TotalCount:   total,
		Percentage:   percentage,
	}

	if percentage == 100 {
		session.SessionStatus = model.SessionStatusCompleted
		session.QuestionsCorrectCurrentRound = correct
		session.CompletedAt = &now
		summary.IsComplete = true
	} else {
		// 下一轮题集收窄为本轮答错的题目
		session.CurrentRound++
		session.QuestionsTotalCurrentRound = len(wrongIDs)
		session.QuestionsCorrectCurrentRound = 0
		summary.NextRoundQuestions = wrongIDs
	}

	if err := s.ReviewRepo.RecordRound(session, attempts); err != nil {
		return nil, err
	}

	return &model.SubmitRoundResult{Results: results, RoundSummary: summary}, nil
}

func (s *ReviewService) NextRoundQuestions(sessionID string) (*model.NextRoundResult, error) {
	session, err := s.findActiveSession(sessionID)
	if err != nil {
		return nil, err
	}

	wrongIDs, err := s.ReviewRepo.WrongQuestionIDs(session.ID, session.CurrentRound-1)
	if err != nil {
		return nil, err
	}
	if len(wrongIDs) == 0 {
		// submitRound 正常跑过后不会出现，防御性检查
		return nil, util.ErrNoQuestionsAvailable
	}

	questions, err := s.questionsInOrder(wrongIDs)
	if err != nil {
		return nil, err
	}

	return &model.NextRoundResult{
		Questions: FormatQuestionsForClient(questions),
		RoundInfo: model.RoundInfo{
			CurrentRound:   session.CurrentRound,
			TotalQuestions: len(questions),
		},
	}, nil
}

// CompleteSession 结束会话并更新主题掌握度聚合。
// finalScore 恒为 100：会话只可能在满分轮结束。
func (s *ReviewService) CompleteSession(sessionID string) (*model.SessionSummary, error) {
	session, err := s.ReviewRepo.FindSessionByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}

	now := time.Now()
	session.SessionStatus = model.SessionStatusCompleted
	if session.CompletedAt == nil {
		session.CompletedAt = &now
	}
	session.LastActivity = now
	if err := s.ReviewRepo.UpdateSession(session); err != nil {
		return nil, err
	}

	if err := s.updateMastery(session, now); err != nil {
		return nil, err
	}

	monitoring.SessionsCompleted.WithLabelValues(session.Topic).Inc()
	monitoring.RoundsPerSession.Observe(float64(session.CurrentRound))

	return &model.SessionSummary{
		Topic:           session.Topic,
		TotalRounds:     session.CurrentRound,
		FinalScore:      100,
		TimeSpent:       int(now.Sub(session.StartedAt).Seconds()),
		MasteryAchieved: true,
	}, nil
}

// updateMastery 加权滚动均值：new = (old*count + rounds) / (count+1)
func (s *ReviewService) updateMastery(session *model.ReviewSession, now time.Time) error {
	mastery, err := s.MasteryRepo.FindByUserAndTopic(session.UserID, session.Topic)
	if err != nil {
		return err
	}

	if mastery == nil {
		return s.MasteryRepo.Create(&model.TopicMastery{
			UserID:        session.UserID,
			Topic:         session.Topic,
			TotalSessions: 1,
			AverageRounds: float64(session.CurrentRound),
			LastPracticed: now,
		})
	}

	oldCount := float64(mastery.TotalSessions)
	mastery.AverageRounds = (mastery.AverageRounds*oldCount + float64(session.CurrentRound)) / (oldCount + 1)
	mastery.TotalSessions++
	mastery.LastPracticed = now
	return s.MasteryRepo.Update(mastery)
}

func (s *ReviewService) MasteryOverview(userID string) (*model.MasteryOverview, error) {
	topics, err := s.TopicRepo.ListEnabled()
	if err != nil {
		return nil, err
	}

	masteries, err := s.MasteryRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	byTopic := make(map[string]*model.TopicMastery, len(masteries))
	for i := range masteries {
		byTopic[masteries[i].Topic] = &masteries[i]
	}

	overview := &model.MasteryOverview{Mastery: []model.TopicMasteryEntry{}}
	totalTime := 0.0

	for _, topic := range topics {
		mastery, ok := byTopic[topic.Code]
		if !ok {
			continue
		}

		level := DetermineMasteryLevel(mastery.TotalSessions, mastery.AverageRounds)
		if level == model.MasteryLevelMastered {
			overview.OverallStats.TopicsMastered++
		} else {
			overview.OverallStats.TopicsInProgress++
		}

		// 估算耗时：sessions * avgRounds * 60 秒，非实测
		totalTime += float64(mastery.TotalSessions) * mastery.AverageRounds * 60

		lastPracticed := mastery.LastPracticed
		overview.Mastery = append(overview.Mastery, model.TopicMasteryEntry{
			Topic:         topic.Code,
			Domain:        topic.Domain,
			Name:          topic.Name,
			Level:         level,
			TotalSessions: mastery.TotalSessions,
			AverageRounds: mastery.AverageRounds,
			LastPracticed: &lastPracticed,
		})
	}

	overview.OverallStats.TopicsNotStarted = len(topics) - len(overview.Mastery)
	overview.OverallStats.TotalTimeSpent = int(math.Round(totalTime))
	return overview, nil
}

func (s *ReviewService) TopicHistory(userID, topic string) (*model.TopicHistory, error) {
	sessions, err := s.ReviewRepo.SessionsByUserAndTopic(userID, topic)
	if err != nil {
		return nil, err
	}

	history := &model.TopicHistory{History: []model.SessionHistoryEntry{}}
	for _, session := range sessions {
		entry := model.SessionHistoryEntry{
			SessionID:   session.ID,
			StartedAt:   session.StartedAt,
			CompletedAt: session.CompletedAt,
			Rounds:      session.CurrentRound,
			FinalScore:  RoundPercentage(session.QuestionsCorrectCurrentRound, session.QuestionsTotalCurrentRound),
		}
		if session.CompletedAt != nil {
			entry.TimeSpent = int(session.CompletedAt.Sub(session.StartedAt).Seconds())
		}
		history.History = append(history.History, entry)
	}
	return history, nil
}

// findActiveSession 查找未完成的会话，供提交与取题路径复用
func (s *ReviewService) findActiveSession(sessionID string) (*model.ReviewSession, error) {
	session, err := s.ReviewRepo.FindSessionByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}
	if session.IsCompleted() {
		return nil, util.ErrSessionAlreadyCompleted
	}
	return session, nil
}

// activeRoundQuestions 本轮生效题集：首轮为主题全部题目，
// 之后各轮由上一轮答错的作答记录重建
func (s *ReviewService) activeRoundQuestions(session *model.ReviewSession) ([]model.Question, error) {
	if session.CurrentRound == 1 {
		return s.QuestionRepo.ListByTopic(session.Topic)
	}

	wrongIDs, err := s.ReviewRepo.WrongQuestionIDs(session.ID, session.CurrentRound-1)
	if err != nil {
		return nil, err
	}
	return s.questionsInOrder(wrongIDs)
}

// questionsInOrder 按给定 ID 顺序取题
func (s *ReviewService) questionsInOrder(ids []string) ([]model.Question, error) {
	fetched, err := s.QuestionRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*model.Question, len(fetched))
	for i := range fetched {
		byID[fetched[i].ID] = &fetched[i]
	}

	ordered := make([]model.Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			ordered = append(ordered, *q)
		}
	}
	return ordered, nil
}

// formatCorrectAnswer 展示用：多选拆成字母数组，单选保留裸字母
func formatCorrectAnswer(q *model.Question) interface{} {
	if q.EffectiveType() == model.QuestionTypeMultiple {
		return q.CorrectLetters()
	}
	return q.CorrectAnswer
}
