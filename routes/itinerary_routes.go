package routes

import (
	"github.com/Sishir120/PackYourBags-sub000/controllers"
	"github.com/Sishir120/PackYourBags-sub000/middleware"
	"github.com/Sishir120/PackYourBags-sub000/services"

	"github.com/gin-gonic/gin"
)

func SetupItineraryRoutes(api *gin.RouterGroup, tracker *services.TrackerService) {
	itineraryController := controllers.NewItineraryController(tracker)

	grp := api.Group("/itineraries", middleware.JWTAuthMiddleware())
	{
		grp.POST("", itineraryController.Create)
		grp.GET("", itineraryController.List)
		grp.GET("/:id", itineraryController.Get)
		grp.PUT("/:id", itineraryController.Update)
		grp.DELETE("/:id", itineraryController.Delete)
		grp.GET("/:id/pdf", itineraryController.DownloadPDF)
		grp.POST("/:id/deals", itineraryController.CheckDeals)
		grp.GET("/:id/deals", itineraryController.ListDeals)
	}

	// public share link, no auth
	api.GET("/shared/:token", itineraryController.GetShared)
}
