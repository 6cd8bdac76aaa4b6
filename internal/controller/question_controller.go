package controller

import (
	"errors"

	"javacert_backend/internal/service"
	"javacert_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

// @Summary 主题目录
// @Tags 题库
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /topics [get]
func (c *QuestionController) ListTopics(ctx *gin.Context) {
	topics, err := c.Service.ListTopics()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"topics": topics})
}

// @Summary 题目列表
// @Tags 题库
// @Produce json
// @Param domain query string false "大类"
// @Param topic query string false "主题"
// @Param page query int false "页码"
// @Param limit query int false "每页条数"
// @Success 200 {object} map[string]interface{}
// @Router /questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	page := util.ParseIntDefault(ctx.Query("page"), 1)
	limit := util.ParseIntDefault(ctx.Query("limit"), 20)

	questions, total, err := c.Service.ListQuestions(ctx.Query("domain"), ctx.Query("topic"), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"questions": questions,
		"total":     total,
		"page":      page,
		"limit":     limit,
	})
}

// @Summary 题目详情
// @Tags 题库
// @Produce json
// @Param id path string true "题目ID"
// @Success 200 {object} model.Question
// @Failure 404 {object} util.ErrorResponse
// @Router /questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	q, err := c.Service.GetQuestion(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, q)
}

// @Summary 新建题目
// @Tags 题库
// @Accept json
// @Produce json
// @Param body body service.QuestionRequest true "题目信息"
// @Success 201 {object} model.Question
// @Failure 400 {object} util.ErrorResponse
// @Router /questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.CreateQuestion(req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, q)
}

// @Summary 更新题目
// @Tags 题库
// @Accept json
// @Produce json
// @Param id path string true "题目ID"
// @Param body body service.QuestionRequest true "题目信息"
// @Success 200 {object} model.Question
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /questions/{id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.UpdateQuestion(ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, q)
}

// @Summary 删除题目
// @Tags 题库
// @Produce json
// @Param id path string true "题目ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} util.ErrorResponse
// @Failure 409 {object} util.ErrorResponse
// @Router /questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	err := c.Service.DeleteQuestion(ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrQuestionHasAttempts):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}
