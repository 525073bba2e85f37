package condition

import (
	mw "github.com/DhavalSuthar-24/cricsim/internal/middleware"
	"github.com/DhavalSuthar-24/cricsim/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ConditionRoutes registers pitch and weather reference data.
func ConditionRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	controller := NewConditionController(NewConditionRepository(db))

	conditions := router.Group("/conditions")
	{
		conditions.GET("/pitches", controller.GetPitches)
		conditions.GET("/pitches/:id", controller.GetPitch)
		conditions.GET("/weather", controller.GetWeather)
		conditions.GET("/weather/:id", controller.GetWeatherByID)

		admin := conditions.Group("/")
		admin.Use(mw.AuthMiddleware(jwtSecret, db), rmiddleware.AdminMiddleware(db))
		{
			admin.POST("/pitches", controller.CreatePitch)
			admin.POST("/weather", controller.CreateWeather)
		}
	}
}
