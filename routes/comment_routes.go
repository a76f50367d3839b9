package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/inkwell/api-go/controllers"
)

func SetupCommentRoutes(protected *gin.RouterGroup, commentController *controllers.CommentController) {
	protected.POST("/posts/:id/comments", commentController.CreateComment)

	comments := protected.Group("/comments")
	{
		comments.PUT("/:id", commentController.UpdateComment)
		comments.DELETE("/:id", commentController.DeleteComment)
	}
}
