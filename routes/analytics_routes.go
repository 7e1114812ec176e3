package routes

import (
	"github.com/Sishir120/PackYourBags-sub000/controllers"
	"github.com/Sishir120/PackYourBags-sub000/middleware"
	"github.com/Sishir120/PackYourBags-sub000/services"

	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(api *gin.RouterGroup, analytics *services.AnalyticsService) {
	analyticsController := controllers.NewAnalyticsController(analytics)

	// anonymous tracking is allowed, a valid token just attaches the user
	api.POST("/analytics/track", middleware.OptionalJWTAuth(), analyticsController.Track)
}
