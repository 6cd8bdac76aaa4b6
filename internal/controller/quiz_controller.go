package controller

import (
	"errors"

	"javacert_backend/internal/service"
	"javacert_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc}
}

type submitQuizRequest struct {
	UserID  string                `json:"userId"`
	Topic   string                `json:"topic"`
	Answers []service.RoundAnswer `json:"answers"`
}

// @Summary 提交一次性测验
// @Tags 测验
// @Accept json
// @Produce json
// @Param body body submitQuizRequest true "用户、主题与答案"
// @Success 200 {object} service.QuizSubmitResult
// @Failure 400 {object} util.ErrorResponse
// @Router /quiz/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	var req submitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.UserID == "" || req.Topic == "" {
		util.BadRequest(ctx, util.ErrUserIDAndTopicRequired.Error())
		return
	}

	result, err := c.Service.SubmitQuiz(req.UserID, req.Topic, req.Answers)
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

// @Summary 测验历史
// @Tags 测验
// @Produce json
// @Param userId path string true "用户ID"
// @Param limit query int false "条数上限"
// @Success 200 {object} map[string]interface{}
// @Router /quiz/history/{userId} [get]
func (c *QuizController) History(ctx *gin.Context) {
	limit := util.ParseIntDefault(ctx.Query("limit"), 20)

	results, err := c.Service.History(ctx.Param("userId"), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"history": results})
}
