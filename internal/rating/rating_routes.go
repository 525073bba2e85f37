package rating

import (
	mw "github.com/DhavalSuthar-24/cricsim/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RatingRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	controller := NewRatingController(NewRatingRepository(db))

	ratings := router.Group("/ratings")
	{
		ratings.GET("/leaderboard", controller.GetLeaderboard)
		ratings.GET("/users/:user_id", controller.GetProfile)
		ratings.GET("/users/:user_id/history", controller.GetHistory)
		ratings.GET("/users/:user_id/achievements", controller.GetAchievements)
		ratings.GET("/users/:user_id/career", controller.GetCareer)
		ratings.GET("/me", mw.AuthMiddleware(jwtSecret, db), controller.GetMyProfile)
	}
}
