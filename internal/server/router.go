package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/teampath/learnhub-backend/internal/handlers"
)

type RouterConfig struct {
	ModulesHandler        *handlers.ModulesHandler
	CollabHandler         *handlers.CollabHandler
	ChatHandler           *handlers.ChatHandler
	ActivityHandler       *handlers.ActivityHandler
	RecommendationHandler *handlers.RecommendationHandler
	PlannerHandler        *handlers.PlannerHandler
	CatalogHandler        *handlers.CatalogHandler
	AllowOrigins          []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/catalog", cfg.CatalogHandler.List)

		users := api.Group("/users/:userId")
		{
			users.GET("/modules", cfg.ModulesHandler.Get)
			users.PUT("/modules", cfg.ModulesHandler.Save)
			users.POST("/modules", cfg.ModulesHandler.Add)
			users.DELETE("/modules/:moduleId", cfg.ModulesHandler.Remove)
			users.PATCH("/modules/:moduleId/progress", cfg.ModulesHandler.UpdateProgress)
			users.POST("/modules/reset-completed", cfg.ModulesHandler.ResetCompleted)
			users.GET("/branches", cfg.CollabHandler.UserBranches)
		}

		api.POST("/branches", cfg.CollabHandler.CreateBranch)
		api.POST("/branches/pull", cfg.CollabHandler.Pull)
		api.GET("/branches/team", cfg.CollabHandler.TeamBranches)

		api.GET("/chat/:roomId/messages", cfg.ChatHandler.Messages)
		api.POST("/chat/:roomId/messages", cfg.ChatHandler.Post)

		api.POST("/activity", cfg.ActivityHandler.Log)
		api.GET("/activity", cfg.ActivityHandler.Recent)

		api.POST("/recommendations", cfg.RecommendationHandler.Recommend)
		api.POST("/plan/match", cfg.PlannerHandler.Match)
	}

	return router
}
