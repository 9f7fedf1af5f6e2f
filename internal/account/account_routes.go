package account

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Yourhonour365/matchfeemate/config"
	"github.com/Yourhonour365/matchfeemate/internal/middleware"
	"github.com/Yourhonour365/matchfeemate/internal/player"
	"github.com/Yourhonour365/matchfeemate/pkg/logger"
)

func RegisterAccountRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, log logger.Logger) {
	repo := NewAccountRepository(db)
	playerRepo := player.NewPlayerRepository(db)
	controller := NewAccountController(repo, playerRepo, appConfig, log)

	authPublic := router.Group("/auth")
	{
		authPublic.POST("/register", controller.Register)
		authPublic.POST("/login", controller.Login)
		authPublic.POST("/refresh-token", controller.Refresh)
	}

	authProtected := router.Group("/auth")
	authProtected.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authProtected.GET("/me", controller.Me)
		authProtected.POST("/logout", controller.Logout)
	}
}
