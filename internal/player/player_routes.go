package player

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Yourhonour365/matchfeemate/config"
	"github.com/Yourhonour365/matchfeemate/internal/middleware"
)

func RegisterPlayerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewPlayerRepository(db)
	controller := NewPlayerController(repo, appConfig)

	auth := middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db)

	clubScoped := router.Group("/clubs/:club_id/players")
	clubScoped.Use(auth)
	{
		clubScoped.POST("", controller.CreatePlayer)
		clubScoped.GET("", controller.ListPlayers)
	}

	players := router.Group("/players")
	players.Use(auth)
	{
		players.GET("/:id", controller.GetPlayer)
		players.PUT("/:id", controller.UpdatePlayer)
		players.DELETE("/:id", controller.DeletePlayer)
	}
}
