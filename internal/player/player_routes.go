package player

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PlayerRoutes registers the public player endpoints.
func PlayerRoutes(router *gin.RouterGroup, db *gorm.DB) {
	controller := NewPlayerController(NewPlayerRepository(db))

	router.GET("/players", controller.GetAllPlayers)
	router.GET("/players/:player_id", controller.GetPlayerByID)
}
