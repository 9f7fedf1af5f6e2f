package club

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Yourhonour365/matchfeemate/config"
	"github.com/Yourhonour365/matchfeemate/internal/middleware"
)

func RegisterClubRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewClubRepository(db)
	controller := NewClubController(repo, appConfig)

	clubs := router.Group("/clubs")
	clubs.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		clubs.POST("", controller.CreateClub)
		clubs.GET("/mine", controller.MyClubs)
		clubs.GET("/:club_id", controller.GetClub)
		clubs.PUT("/:club_id", controller.UpdateClub)
		clubs.DELETE("/:club_id", controller.DeleteClub)
	}
}
