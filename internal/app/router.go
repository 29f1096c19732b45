package app

import (
	"team_goal_tracker/docs"
	"team_goal_tracker/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.GET("/team-members", c.teamMember.GetAll)

		api.GET("/goals", c.goal.GetGoals)
		api.POST("/goals", c.goal.CreateGoal)
		api.PATCH("/goals/:id/complete", c.goal.CompleteGoal)

		api.PUT("/moods", c.mood.UpdateMood)

		api.GET("/stats", c.stats.GetStats)
		api.GET("/dashboard", c.dashboard.GetDashboard)
	}
}
