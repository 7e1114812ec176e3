package routes

import (
	"github.com/Sishir120/PackYourBags-sub000/controllers"
	"github.com/Sishir120/PackYourBags-sub000/middleware"
	"github.com/Sishir120/PackYourBags-sub000/services"

	"github.com/gin-gonic/gin"
)

func SetupWizardRoutes(api *gin.RouterGroup, calendar *services.CalendarService, flights *services.FlightsService) {
	wizardController := controllers.NewWizardController(calendar, flights)

	api.POST("/weekend-wizard", middleware.JWTAuthMiddleware(), wizardController.FindWeekend)
}
