package app

import (
	"git_quiz_backend/docs"
	"git_quiz_backend/internal/config"
	"git_quiz_backend/pkg/monitoring"
	"git_quiz_backend/pkg/security"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 课程内容
		api.GET("/steps", c.quiz.ListSteps)
		api.GET("/steps/:order", c.quiz.GetStep)

		// 答题进度
		api.POST("/attempts", c.quiz.StartAttempt)
		api.GET("/attempts/:id/state", c.quiz.GetAttemptState)
		api.PUT("/attempts/:id/state", c.quiz.SaveAttemptState)

		// 评分接口单独挂一层更紧的限流，每次调用都会打到外部模型
		gradeMax := cfg.RateLimit.GradeMaxRequests
		if gradeMax <= 0 {
			gradeMax = 30
		}
		api.POST("/grade", security.RateLimiter(gradeMax, time.Minute), c.grade.Grade)

		// 结算与排行榜
		api.POST("/complete", c.ranking.Complete)
		api.GET("/rankings", c.ranking.ListRankings)
	}
}
