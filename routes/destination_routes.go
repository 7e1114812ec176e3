package routes

import (
	"github.com/Sishir120/PackYourBags-sub000/controllers"
	"github.com/Sishir120/PackYourBags-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func SetupDestinationRoutes(api *gin.RouterGroup) {
	destinationController := controllers.NewDestinationController()

	grp := api.Group("/destinations")
	{
		grp.GET("", destinationController.List)
		grp.GET("/random", destinationController.Random)
		grp.GET("/continents", destinationController.Continents)
		grp.GET("/:idOrSlug", destinationController.Get)
	}

	admin := api.Group("/destinations", middleware.JWTAuthMiddleware(), middleware.AdminOnly())
	{
		admin.POST("", destinationController.Create)
		admin.PUT("/:idOrSlug", destinationController.Update)
		admin.DELETE("/:idOrSlug", destinationController.Delete)
	}
}
