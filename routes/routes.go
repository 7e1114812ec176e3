package routes

import (
	"net/http"

	"github.com/Sishir120/PackYourBags-sub000/config"
	"github.com/Sishir120/PackYourBags-sub000/middleware"
	"github.com/Sishir120/PackYourBags-sub000/services"
	"github.com/Sishir120/PackYourBags-sub000/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter creates the gin.Engine, wires services and registers all routes
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RecoveryMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	aiService := services.NewAIService(cfg)
	flightsService := services.NewFlightsService(cfg)
	calendarService := services.NewCalendarService()
	trackerService := services.NewTrackerService(aiService)
	analyticsService := services.NewAnalyticsService(utils.GetDB(), cfg)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"result": gin.H{"status": "ok"}, "success": true})
	})

	SetupAuthRoutes(api)
	SetupDestinationRoutes(api)
	SetupBlogRoutes(api)
	SetupSubscriberRoutes(api, cfg)
	SetupFavoriteRoutes(api)
	SetupItineraryRoutes(api, trackerService)
	SetupAIRoutes(api, aiService)
	SetupWizardRoutes(api, calendarService, flightsService)
	SetupPriceWatchRoutes(api)
	SetupAnalyticsRoutes(api, analyticsService)

	return r
}
