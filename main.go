package main

import (
	"log"

	"github.com/Yourhonour365/matchfeemate/config"
	_ "github.com/Yourhonour365/matchfeemate/docs"
	"github.com/Yourhonour365/matchfeemate/internal/account"
	"github.com/Yourhonour365/matchfeemate/internal/club"
	"github.com/Yourhonour365/matchfeemate/internal/fixture"
	"github.com/Yourhonour365/matchfeemate/internal/opposition"
	"github.com/Yourhonour365/matchfeemate/internal/player"
	"github.com/Yourhonour365/matchfeemate/internal/selection"
	"github.com/Yourhonour365/matchfeemate/pkg/logger"
	"github.com/Yourhonour365/matchfeemate/routes"
)

// @title MatchFeeMate REST API
// @version 1.0
// @description Availability and team selection tracking for amateur sports clubs.
// @host localhost:8088
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()
	appLogger := logger.NewFromEnv()

	err := config.DB.AutoMigrate(
		&account.Account{}, &account.RefreshToken{},
		&club.Club{},
		&player.Player{},
		&opposition.Opposition{},
		&fixture.Match{},
		&selection.MatchPlayer{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	appLogger.Info("migrations applied")

	r := routes.SetupRoutes(config.DB, cfg, appLogger)

	appLogger.Info("starting server", "port", cfg.App.Port, "env", cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
