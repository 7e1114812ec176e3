package routes

import (
	"github.com/Sishir120/PackYourBags-sub000/controllers"
	"github.com/Sishir120/PackYourBags-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(api *gin.RouterGroup) {
	userController := controllers.NewUserController()
	profileController := controllers.NewUserProfileController()

	auth := api.Group("/auth")
	{
		auth.POST("/register", userController.Register)
		auth.POST("/login", userController.Login)
		auth.GET("/google", userController.GoogleLogin)
		auth.GET("/google/callback", userController.GoogleCallback)
	}

	authed := api.Group("/auth", middleware.JWTAuthMiddleware())
	{
		authed.GET("/profile", profileController.GetProfile)
		authed.POST("/change-password", profileController.ChangePassword)
		authed.POST("/upgrade-tier", profileController.UpgradeTier)
		authed.POST("/preferences", profileController.UpdatePreferences)
		authed.POST("/logout", profileController.Logout)
	}
}
