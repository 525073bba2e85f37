package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/cricsim/config"
	"github.com/DhavalSuthar-24/cricsim/internal/condition"
	"github.com/DhavalSuthar-24/cricsim/internal/match"
	"github.com/DhavalSuthar-24/cricsim/internal/player"
	"github.com/DhavalSuthar-24/cricsim/internal/rating"
	"github.com/DhavalSuthar-24/cricsim/internal/team"
	"github.com/DhavalSuthar-24/cricsim/internal/user"
)

// Models lists every table the API needs, in migration order.
func Models() []interface{} {
	all := []interface{}{
		&user.User{}, &user.Role{},
		&team.Team{},
		&player.Player{}, &player.BowlingAttributes{}, &player.BattingAttributes{}, &player.KeepingAttributes{},
		&condition.PitchCondition{}, &condition.WeatherCondition{},
	}
	all = append(all, match.Models()...)
	return append(all, rating.Models()...)
}

// SetupRoutes builds the gin engine. locker serializes rating updates across
// instances; pass rating.NoLocks() when Redis is not configured.
func SetupRoutes(cfg *config.Config, db *gorm.DB, locker rating.Locker) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if cfg.App.FrontendURL == "" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{cfg.App.FrontendURL}
	}
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	secret := cfg.JWT.AccessTokenSecret

	service := match.NewService(db, locker, cfg.Sim.DefaultMaxOvers)

	player.PlayerRoutes(api, db)
	team.TeamRoutes(api, db, cfg, secret)
	condition.ConditionRoutes(api, db, secret)
	match.MatchRoutes(api, db, service, secret)
	rating.RatingRoutes(api, db, secret)

	return r
}
