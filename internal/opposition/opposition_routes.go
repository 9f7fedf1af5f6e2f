package opposition

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Yourhonour365/matchfeemate/config"
	"github.com/Yourhonour365/matchfeemate/internal/club"
	"github.com/Yourhonour365/matchfeemate/internal/middleware"
)

func RegisterOppositionRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewOppositionRepository(db)
	clubRepo := club.NewClubRepository(db)
	controller := NewOppositionController(repo, clubRepo, appConfig)

	auth := middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db)

	clubScoped := router.Group("/clubs/:club_id/oppositions")
	clubScoped.Use(auth)
	{
		clubScoped.POST("", controller.CreateOpposition)
		clubScoped.GET("", controller.ListOppositions)
	}

	oppositions := router.Group("/oppositions")
	oppositions.Use(auth)
	{
		oppositions.PUT("/:id", controller.UpdateOpposition)
		oppositions.DELETE("/:id", controller.DeleteOpposition)
	}
}
