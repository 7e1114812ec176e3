package routes

import (
	"github.com/Sishir120/PackYourBags-sub000/controllers"
	"github.com/Sishir120/PackYourBags-sub000/middleware"
	"github.com/Sishir120/PackYourBags-sub000/services"

	"github.com/gin-gonic/gin"
)

func SetupAIRoutes(api *gin.RouterGroup, ai *services.AIService) {
	aiController := controllers.NewAIController(ai)

	grp := api.Group("/ai", middleware.JWTAuthMiddleware())
	{
		grp.POST("/chat", aiController.Chat)
	}
}
