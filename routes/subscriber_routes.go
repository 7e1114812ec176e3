package routes

import (
	"github.com/Sishir120/PackYourBags-sub000/config"
	"github.com/Sishir120/PackYourBags-sub000/controllers"

	"github.com/gin-gonic/gin"
)

func SetupSubscriberRoutes(api *gin.RouterGroup, cfg *config.Config) {
	subscriberController := controllers.NewSubscriberController(cfg)

	api.POST("/subscribe", subscriberController.Subscribe)
	api.POST("/unsubscribe", subscriberController.Unsubscribe)
}
