package team

import (
	"github.com/DhavalSuthar-24/cricsim/config"
	mw "github.com/DhavalSuthar-24/cricsim/internal/middleware"
	"github.com/DhavalSuthar-24/cricsim/internal/player"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TeamRoutes sets up all team-related routes
func TeamRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	teamRepo := NewTeamRepository(db)
	teamController := NewTeamController(teamRepo, player.NewPlayerRepository(db), appConfig)

	// Public team routes
	router.GET("/teams", teamController.GetAllTeams)
	router.GET("/teams/:team_id", teamController.GetTeamByID)
	router.GET("/teams/:team_id/playing-eleven", teamController.GetPlayingEleven)

	// Authenticated user routes
	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.POST("/teams", teamController.CreateTeam)
		authRoutes.PUT("/teams/:team_id/first-eleven", teamController.SetFirstEleven) // owner only, checked in handler
		authRoutes.GET("/users/me/teams", teamController.GetMyTeams)
	}
}
