package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/inkwell/api-go/controllers"
)

func SetupLocationReadRoutes(public *gin.RouterGroup, locationController *controllers.LocationController) {
	public.GET("/locations", locationController.ListLocations)
}

func SetupLocationAdminRoutes(admin *gin.RouterGroup, locationController *controllers.LocationController) {
	locations := admin.Group("/locations")
	{
		locations.POST("", locationController.CreateLocation)
		locations.PUT("/:id", locationController.UpdateLocation)
		locations.DELETE("/:id", locationController.DeleteLocation)
	}
}
