package main

import (
	"log"

	"github.com/DhavalSuthar-24/cricsim/config"
	_ "github.com/DhavalSuthar-24/cricsim/docs"
	"github.com/DhavalSuthar-24/cricsim/internal/rating"
	"github.com/DhavalSuthar-24/cricsim/pkg/distributed"
	"github.com/DhavalSuthar-24/cricsim/pkg/logger"
	"github.com/DhavalSuthar-24/cricsim/routes"
)

// @title Cricsim REST API
// @version 1.0
// @description Ball-by-ball cricket match simulation with ELO ratings.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		// the logger may not be built yet
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer logger.Sync()

	cfg := config.GetConfig()

	if err := config.DB.AutoMigrate(routes.Models()...); err != nil {
		logger.Fatal("AutoMigrate failed", "error", err)
	}
	logger.Info("AutoMigrate successful")

	locker := rating.NoLocks()
	if config.Redis != nil {
		locker = distributed.NewUserLocker(config.Redis, "cricsim:rating:user", cfg.Rating.LockTTL)
		defer config.Redis.Close()
	}

	r := routes.SetupRoutes(cfg, config.DB, locker)

	logger.Info("starting server", "port", cfg.App.Port, "env", cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		logger.Fatal("failed to run server", "error", err)
	}
}
