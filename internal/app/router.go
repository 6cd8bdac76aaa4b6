package app

import (
	"javacert_backend/docs"
	"javacert_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// 复习相关路径与响应体被前端契约固定，注册时保持原样，不加统一前缀
func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	review := router.Group("/review")
	{
		review.POST("/start", c.review.StartReview)
		review.POST("/submit-round", c.review.SubmitRound)
		review.GET("/next-round/:sessionId", c.review.NextRound)
		review.POST("/complete/:sessionId", c.review.Complete)
		review.GET("/mastery/:userId", c.review.Mastery)
		review.GET("/history/:userId/:topic", c.review.History)
	}

	router.GET("/reports/:userId", c.report.UserReport)

	router.GET("/topics", c.question.ListTopics)
	questions := router.Group("/questions")
	{
		questions.GET("", c.question.ListQuestions)
		questions.GET("/:id", c.question.GetQuestion)
		questions.POST("", c.question.CreateQuestion)
		questions.PUT("/:id", c.question.UpdateQuestion)
		questions.DELETE("/:id", c.question.DeleteQuestion)
	}

	quiz := router.Group("/quiz")
	{
		quiz.POST("/submit", c.quiz.SubmitQuiz)
		quiz.GET("/history/:userId", c.quiz.History)
	}
}
