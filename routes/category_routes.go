package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/inkwell/api-go/controllers"
)

func SetupCategoryReadRoutes(public *gin.RouterGroup, categoryController *controllers.CategoryController) {
	categories := public.Group("/categories")
	{
		categories.GET("", categoryController.ListCategories)
		categories.GET("/:slug", categoryController.GetCategoryFeed)
	}
}

func SetupCategoryAdminRoutes(admin *gin.RouterGroup, categoryController *controllers.CategoryController) {
	categories := admin.Group("/categories")
	{
		categories.POST("", categoryController.CreateCategory)
		categories.PUT("/:slug", categoryController.UpdateCategory)
		categories.DELETE("/:slug", categoryController.DeleteCategory)
	}
}
