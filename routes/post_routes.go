package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/inkwell/api-go/controllers"
)

func SetupPostReadRoutes(public *gin.RouterGroup, postController *controllers.PostController) {
	public.GET("/posts/:id", postController.GetPostDetail)
}

func SetupPostWriteRoutes(protected *gin.RouterGroup, postController *controllers.PostController) {
	posts := protected.Group("/posts")
	{
		posts.POST("", postController.CreatePost)
		posts.PUT("/:id", postController.UpdatePost)
		posts.DELETE("/:id", postController.DeletePost)
	}
}
