package routes

import (
	"github.com/Sishir120/PackYourBags-sub000/controllers"
	"github.com/Sishir120/PackYourBags-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func SetupFavoriteRoutes(api *gin.RouterGroup) {
	favoriteController := controllers.NewFavoriteController()

	grp := api.Group("/favorites", middleware.JWTAuthMiddleware())
	{
		grp.POST("", favoriteController.Create)
		grp.GET("", favoriteController.List)
		grp.DELETE("/:id", favoriteController.Delete)
	}
}
