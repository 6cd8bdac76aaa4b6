package service

import (
	"testing"

	"javacert_backend/internal/model"
	"javacert_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartSessionInvalidTopic(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)

	_, err := svc.StartSession("u1", "no-such-topic")
	assert.ErrorIs(t, err, util.ErrInvalidTopic)
}

func TestStartSessionNoQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	seedTopic(t, db, "generics")

	_, err := svc.StartSession("u1", "generics")
	assert.ErrorIs(t, err, util.ErrNoQuestionsAvailable)
}

func TestStartSessionStripsAnswers(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	seedTopic(t, db, "generics")
	seedQuestion(t, db, "generics", "B", model.QuestionTypeSingle)
	seedQuestion(t, db, "generics", "A,C", model.QuestionTypeMultiple)

	result, err := svc.StartSession("u1", "generics")
	require.NoError(t, err)

	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, 1, result.RoundInfo.CurrentRound)
	assert.Equal(t, 2, result.RoundInfo.TotalQuestions)
	require.Len(t, result.Questions, 2)

	assert.Equal(t, 1, result.Questions[0].MaxSelections)
	assert.Equal(t, model.QuestionTypeSingle, result.Questions[0].QuestionType)
	assert.Equal(t, 2, result.Questions[1].MaxSelections)
	assert.Len(t, result.Questions[0].Options, 4)
}

func TestSubmitRoundNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)

	_, err := svc.SubmitRound("missing", nil)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

// 完整走一遍：3 题首轮 2 对 1 错，第二轮补答后满分，最后结算
func TestReviewSessionLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	seedTopic(t, db, "streams")

	q1 := seedQuestion(t, db, "streams", "B", model.QuestionTypeSingle)
	q2 := seedQuestion(t, db, "streams", "A,C", model.QuestionTypeMultiple)
	q3 := seedQuestion(t, db, "streams", "D", model.QuestionTypeSingle)

	started, err := svc.StartSession("u1", "streams")
	require.NoError(t, err)
	sessionID := started.SessionID

	// 第一轮：q2 答错
	round1, err := svc.SubmitRound(sessionID, []RoundAnswer{
		{QuestionID: q1.ID, SelectedAnswer: single("B")},
		{QuestionID: q2.ID, SelectedAnswer: multi("A", "B")},
		{QuestionID: q3.ID, SelectedAnswer: single("D")},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, round1.RoundSummary.CorrectCount)
	assert.Equal(t, 3, round1.RoundSummary.TotalCount)
	assert.Equal(t, 67, round1.RoundSummary.Percentage)
	assert.False(t, round1.RoundSummary.IsComplete)
	assert.Equal(t, []string{q2.ID}, round1.RoundSummary.NextRoundQuestions)

	require.Len(t, round1.Results, 3)
	assert.True(t, round1.Results[0].IsCorrect)
	assert.False(t, round1.Results[1].IsCorrect)
	assert.Equal(t, []string{"A", "C"}, round1.Results[1].CorrectAnswer)
	assert.Equal(t, "B", round1.Results[0].CorrectAnswer)

	// 会话推进到第二轮，计数器重置
	var session model.ReviewSession
	require.NoError(t, db.First(&session, "id = ?", sessionID).Error)
	assert.Equal(t, 2, session.CurrentRound)
	assert.Equal(t, 1, session.QuestionsTotalCurrentRound)
	assert.Equal(t, 0, session.QuestionsCorrectCurrentRound)
	assert.Equal(t, model.SessionStatusActive, session.SessionStatus)

	// 下一轮题集只含答错的那道
	next, err := svc.NextRoundQuestions(sessionID)
	require.NoError(t, err)
	require.Len(t, next.Questions, 1)
	assert.Equal(t, q2.ID, next.Questions[0].ID)
	assert.Equal(t, 2, next.RoundInfo.CurrentRound)

	// 第二轮满分
	round2, err := svc.SubmitRound(sessionID, []RoundAnswer{
		{QuestionID: q2.ID, SelectedAnswer: multi("C", "A")},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, round2.RoundSummary.CorrectCount)
	assert.Equal(t, 1, round2.RoundSummary.TotalCount)
	assert.Equal(t, 100, round2.RoundSummary.Percentage)
	assert.True(t, round2.RoundSummary.IsComplete)
	assert.Empty(t, round2.RoundSummary.NextRoundQuestions)

	require.NoError(t, db.First(&session, "id = ?", sessionID).Error)
	assert.Equal(t, model.SessionStatusCompleted, session.SessionStatus)
	assert.Equal(t, 2, session.CurrentRound)
	require.NotNil(t, session.CompletedAt)

	// 已完成会话拒绝再次提交与取题
	_, err = svc.SubmitRound(sessionID, nil)
	assert.ErrorIs(t, err, util.ErrSessionAlreadyCompleted)
	_, err = svc.NextRoundQuestions(sessionID)
	assert.ErrorIs(t, err, util.ErrSessionAlreadyCompleted)

	// 结算：轮数与主题写入掌握度聚合
	summary, err := svc.CompleteSession(sessionID)
	require.NoError(t, err)
	assert.Equal(t, "streams", summary.Topic)
	assert.Equal(t, 2, summary.TotalRounds)
	assert.Equal(t, 100, summary.FinalScore)
	assert.True(t, summary.MasteryAchieved)

	var mastery model.TopicMastery
	require.NoError(t, db.First(&mastery, "user_id = ? AND topic = ?", "u1", "streams").Error)
	assert.Equal(t, 1, mastery.TotalSessions)
	assert.Equal(t, 2.0, mastery.AverageRounds)
}

func TestSubmitRoundSkipsForeignQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	seedTopic(t, db, "generics")
	q1 := seedQuestion(t, db, "generics", "A", model.QuestionTypeSingle)

	started, err := svc.StartSession("u1", "generics")
	require.NoError(t, err)

	result, err := svc.SubmitRound(started.SessionID, []RoundAnswer{
		{QuestionID: q1.ID, SelectedAnswer: single("A")},
		{QuestionID: "not-in-this-topic", SelectedAnswer: single("A")},
	})
	require.NoError(t, err)

	// 未知题目静默跳过，不计入本轮统计
	assert.Len(t, result.Results, 1)
	assert.Equal(t, 1, result.RoundSummary.TotalCount)
	assert.Equal(t, 100, result.RoundSummary.Percentage)
}

func TestSubmitRoundStoresAuditTrail(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	seedTopic(t, db, "generics")
	q1 := seedQuestion(t, db, "generics", "A,C", model.QuestionTypeMultiple)
	q2 := seedQuestion(t, db, "generics", "B", model.QuestionTypeSingle)

	started, err := svc.StartSession("u1", "generics")
	require.NoError(t, err)

	_, err = svc.SubmitRound(started.SessionID, []RoundAnswer{
		{QuestionID: q1.ID, SelectedAnswer: multi("A", "C")},
		{QuestionID: q2.ID, SelectedAnswer: single("B")},
	})
	require.NoError(t, err)

	// 数组答案存 JSON 字符串，标量原样存
	var attempts []model.ReviewAttempt
	require.NoError(t, db.Where("session_id = ?", started.SessionID).Order("created_at asc").Find(&attempts).Error)
	require.Len(t, attempts, 2)
	assert.Equal(t, `["A","C"]`, attempts[0].SubmittedAnswer)
	assert.Equal(t, "B", attempts[1].SubmittedAnswer)
	assert.Equal(t, 1, attempts[0].Round)
}

func TestCompleteSessionUpdatesRunningAverage(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	seedTopic(t, db, "generics")
	q := seedQuestion(t, db, "generics", "A", model.QuestionTypeSingle)

	runSession := func(wrongFirst bool) {
		started, err := svc.StartSession("u1", "generics")
		require.NoError(t, err)

		if wrongFirst {
			_, err = svc.SubmitRound(started.SessionID, []RoundAnswer{
				{QuestionID: q.ID, SelectedAnswer: single("B")},
			})
			require.NoError(t, err)
		}
		_, err = svc.SubmitRound(started.SessionID, []RoundAnswer{
			{QuestionID: q.ID, SelectedAnswer: single("A")},
		})
		require.NoError(t, err)

		_, err = svc.CompleteSession(started.SessionID)
		require.NoError(t, err)
	}

	runSession(false) // 1 轮
	runSession(true)  // 2 轮

	var mastery model.TopicMastery
	require.NoError(t, db.First(&mastery, "user_id = ? AND topic = ?", "u1", "generics").Error)
	assert.Equal(t, 2, mastery.TotalSessions)
	assert.Equal(t, 1.5, mastery.AverageRounds) // (1*1 + 2) / 2
}

func TestMasteryOverview(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	seedTopic(t, db, "generics")
	seedTopic(t, db, "streams")
	seedTopic(t, db, "jdbc")

	require.NoError(t, db.Create(&model.TopicMastery{
		UserID: "u1", Topic: "generics", TotalSessions: 3, AverageRounds: 1.2,
	}).Error)
	require.NoError(t, db.Create(&model.TopicMastery{
		UserID: "u1", Topic: "streams", TotalSessions: 1, AverageRounds: 3,
	}).Error)

	overview, err := svc.MasteryOverview("u1")
	require.NoError(t, err)

	assert.Equal(t, 1, overview.OverallStats.TopicsMastered)
	assert.Equal(t, 1, overview.OverallStats.TopicsInProgress)
	assert.Equal(t, 1, overview.OverallStats.TopicsNotStarted)
	// 3*1.2*60 + 1*3*60
	assert.Equal(t, 396, overview.OverallStats.TotalTimeSpent)

	require.Len(t, overview.Mastery, 2)
	assert.Equal(t, model.MasteryLevelMastered, overview.Mastery[0].Level)
	assert.Equal(t, model.MasteryLevelIntermediate, overview.Mastery[1].Level)
}

func TestTopicHistory(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	seedTopic(t, db, "generics")
	q := seedQuestion(t, db, "generics", "A", model.QuestionTypeSingle)

	started, err := svc.StartSession("u1", "generics")
	require.NoError(t, err)
	_, err = svc.SubmitRound(started.SessionID, []RoundAnswer{
		{QuestionID: q.ID, SelectedAnswer: single("A")},
	})
	require.NoError(t, err)

	history, err := svc.TopicHistory("u1", "generics")
	require.NoError(t, err)
	require.Len(t, history.History, 1)
	assert.Equal(t, started.SessionID, history.History[0].SessionID)
	assert.Equal(t, 1, history.History[0].Rounds)
	assert.Equal(t, 100, history.History[0].FinalScore)
}
