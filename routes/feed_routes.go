package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/inkwell/api-go/controllers"
)

func SetupFeedRoutes(public *gin.RouterGroup, feedController *controllers.FeedController) {
	public.GET("/posts", feedController.GetHomeFeed)
}
