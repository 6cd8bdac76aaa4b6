package controller

import (
	"errors"

	"javacert_backend/internal/service"
	"javacert_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Service *service.ReportService
}

func NewReportController(svc *service.ReportService) *ReportController {
	return &ReportController{Service: svc}
}

// @Summary 用户学习报告
// @Tags 报告
// @Produce json
// @Param userId path string true "用户ID"
// @Success 200 {object} model.UserReport
// @Failure 404 {object} util.ErrorResponse
// @Router /reports/{userId} [get]
func (c *ReportController) UserReport(ctx *gin.Context) {
	report, err := c.Service.GenerateUserReport(ctx.Param("userId"))
	if err != nil {
		if errors.Is(err, util.ErrNoSessionsFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, report)
}
