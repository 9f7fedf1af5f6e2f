package selection

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Yourhonour365/matchfeemate/config"
	"github.com/Yourhonour365/matchfeemate/internal/club"
	"github.com/Yourhonour365/matchfeemate/internal/fixture"
	"github.com/Yourhonour365/matchfeemate/internal/middleware"
	"github.com/Yourhonour365/matchfeemate/internal/player"
)

func RegisterSelectionRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	playerRepo := player.NewPlayerRepository(db)
	clubRepo := club.NewClubRepository(db)
	matchRepo := fixture.NewMatchRepository(db)
	responseStore := NewResponseStore(db)

	engine := NewEngine(playerRepo, matchRepo, responseStore)
	projector := NewProjector(playerRepo, matchRepo, responseStore)
	controller := NewSelectionController(engine, projector, playerRepo, clubRepo, matchRepo, appConfig)

	auth := middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db)

	matches := router.Group("/matches/:id")
	matches.Use(auth)
	{
		matches.POST("/availability", controller.SetAvailability)
		matches.GET("/availability", controller.AvailabilityBoard)
		matches.POST("/selection", controller.BulkTransition)
		matches.GET("/team", controller.TeamSheet)
		matches.GET("/not-responded", controller.NotResponded)
	}

	clubScoped := router.Group("/clubs/:club_id/matches/summary")
	clubScoped.Use(auth)
	clubScoped.GET("", controller.MatchSummaries)

	my := router.Group("/my")
	my.Use(auth)
	my.GET("/availability", controller.MySchedule)

	players := router.Group("/players/:id")
	players.Use(auth)
	players.GET("/availability", controller.PlayerSchedule)
}
