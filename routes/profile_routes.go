package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/inkwell/api-go/controllers"
)

func SetupProfileRoutes(public *gin.RouterGroup, profileController *controllers.ProfileController) {
	public.GET("/profiles/:username", profileController.GetUserProfile)
}
