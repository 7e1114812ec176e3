package routes

import (
	"github.com/Sishir120/PackYourBags-sub000/controllers"
	"github.com/Sishir120/PackYourBags-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func SetupBlogRoutes(api *gin.RouterGroup) {
	blogController := controllers.NewBlogController()

	grp := api.Group("/blogs")
	{
		grp.GET("", blogController.List)
		grp.GET("/:slug", blogController.GetBySlug)
	}

	admin := api.Group("/blogs", middleware.JWTAuthMiddleware(), middleware.AdminOnly())
	{
		admin.POST("", blogController.Create)
		admin.PUT("/:slug", blogController.Update)
		admin.DELETE("/:slug", blogController.Delete)
	}
}
