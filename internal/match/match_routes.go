package match

import (
	"github.com/DhavalSuthar-24/cricsim/internal/condition"
	mw "github.com/DhavalSuthar-24/cricsim/internal/middleware"
	"github.com/DhavalSuthar-24/cricsim/internal/team"
	"github.com/DhavalSuthar-24/cricsim/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MatchRoutes sets up all match-related routes.
func MatchRoutes(router *gin.RouterGroup, db *gorm.DB, service *Service, jwtSecret string) {
	matchController := NewMatchController(
		NewGormMatchRepository(db),
		team.NewTeamRepository(db),
		condition.NewConditionRepository(db),
		service,
	)

	matches := router.Group("/matches")
	{
		matches.GET("", matchController.GetMatches)
		matches.GET("/:id", matchController.GetMatchByID)
		matches.GET("/:id/performances", matchController.GetPerformances)

		authRoutes := matches.Group("")
		authRoutes.Use(mw.AuthMiddleware(jwtSecret, db)) // Require authentication
		{
			authRoutes.POST("", matchController.CreateMatch)
			authRoutes.POST("/:id/simulate", matchController.SimulateMatch)
			authRoutes.POST("/:id/simulate-ball", matchController.SimulateBall)
		}
	}

	tournaments := router.Group("/tournaments")
	{
		tournaments.GET("", matchController.GetTournaments)
		tournaments.GET("/:id", matchController.GetTournamentByID)

		adminRoutes := tournaments.Group("")
		adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db), rmiddleware.AdminMiddleware(db))
		{
			adminRoutes.POST("", matchController.CreateTournament)
		}
	}
}
