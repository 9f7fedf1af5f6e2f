package fixture

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Yourhonour365/matchfeemate/config"
	"github.com/Yourhonour365/matchfeemate/internal/club"
	"github.com/Yourhonour365/matchfeemate/internal/middleware"
	"github.com/Yourhonour365/matchfeemate/internal/opposition"
)

func RegisterMatchRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewMatchRepository(db)
	clubRepo := club.NewClubRepository(db)
	oppositionRepo := opposition.NewOppositionRepository(db)
	controller := NewMatchController(repo, clubRepo, oppositionRepo, appConfig)

	auth := middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db)

	clubScoped := router.Group("/clubs/:club_id/matches")
	clubScoped.Use(auth)
	{
		clubScoped.POST("", controller.CreateMatch)
		clubScoped.GET("", controller.ListMatches)
	}

	matches := router.Group("/matches")
	matches.Use(auth)
	{
		matches.GET("/:id", controller.GetMatch)
		matches.PUT("/:id", controller.UpdateMatch)
		matches.DELETE("/:id", controller.DeleteMatch)
	}
}
