package routes

import (
	"github.com/Sishir120/PackYourBags-sub000/controllers"
	"github.com/Sishir120/PackYourBags-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func SetupPriceWatchRoutes(api *gin.RouterGroup) {
	priceWatchController := controllers.NewPriceWatchController()

	grp := api.Group("/price-watch", middleware.JWTAuthMiddleware())
	{
		grp.POST("", priceWatchController.Create)
		grp.GET("", priceWatchController.List)
		grp.PUT("/:id", priceWatchController.Update)
		grp.POST("/:id/mute", priceWatchController.Mute)
		grp.DELETE("/:id", priceWatchController.Delete)
	}
}
