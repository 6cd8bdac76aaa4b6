package controller

import (
	"errors"

	"javacert_backend/internal/service"
	"javacert_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Service *service.ReviewService
}

func NewReviewController(svc *service.ReviewService) *ReviewController {
	return &ReviewController{Service: svc}
}

type startReviewRequest struct {
	UserID string `json:"userId"`
	Topic  string `json:"topic"`
}

// @Summary 开始复习会话
// @Tags 复习
// @Accept json
// @Produce json
// @Param body body startReviewRequest true "用户与主题"
// @Success 200 {object} model.StartSessionResult
// @Failure 400 {object} util.ErrorResponse
// @Router /review/start [post]
func (c *ReviewController) StartReview(ctx *gin.Context) {
	var req startReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.UserID == "" || req.Topic == "" {
		util.BadRequest(ctx, util.ErrUserIDAndTopicRequired.Error())
		return
	}

	result, err := c.Service.StartSession(req.UserID, req.Topic)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidTopic), errors.Is(err, util.ErrNoQuestionsAvailable):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

type submitRoundRequest struct {
	SessionID string                `json:"sessionId"`
	Answers   []service.RoundAnswer `json:"answers"`
}

// @Summary 提交一轮答案
// @Tags 复习
// @Accept json
// @Produce json
// @Param body body submitRoundRequest true "会话与答案列表"
// @Success 200 {object} model.SubmitRoundResult
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /review/submit-round [post]
func (c *ReviewController) SubmitRound(ctx *gin.Context) {
	var req submitRoundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.SessionID == "" {
		util.BadRequest(ctx, "sessionId is required")
		return
	}

	result, err := c.Service.SubmitRound(req.SessionID, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrSessionAlreadyCompleted):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// @Summary 获取下一轮题目
// @Tags 复习
// @Produce json
// @Param sessionId path string true "会话ID"
// @Success 200 {object} model.NextRoundResult
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /review/next-round/{sessionId} [get]
func (c *ReviewController) NextRound(ctx *gin.Context) {
	result, err := c.Service.NextRoundQuestions(ctx.Param("sessionId"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrSessionAlreadyCompleted), errors.Is(err, util.ErrNoQuestionsAvailable):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// @Summary 结束复习会话
// @Tags 复习
// @Produce json
// @Param sessionId path string true "会话ID"
// @Success 200 {object} map[string]model.SessionSummary
// @Failure 404 {object} util.ErrorResponse
// @Router /review/complete/{sessionId} [post]
func (c *ReviewController) Complete(ctx *gin.Context) {
	summary, err := c.Service.CompleteSession(ctx.Param("sessionId"))
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"sessionSummary": summary})
}

// @Summary 用户掌握度总览
// @Tags 复习
// @Produce json
// @Param userId path string true "用户ID"
// @Success 200 {object} model.MasteryOverview
// @Router /review/mastery/{userId} [get]
func (c *ReviewController) Mastery(ctx *gin.Context) {
	overview, err := c.Service.MasteryOverview(ctx.Param("userId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, overview)
}

// @Summary 主题复习历史
// @Tags 复习
// @Produce json
// @Param userId path string true "用户ID"
// @Param topic path string true "主题"
// @Success 200 {object} model.TopicHistory
// @Router /review/history/{userId}/{topic} [get]
func (c *ReviewController) History(ctx *gin.Context) {
	history, err := c.Service.TopicHistory(ctx.Param("userId"), ctx.Param("topic"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, history)
}
