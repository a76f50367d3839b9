package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/inkwell/api-go/controllers"
	"github.com/inkwell/api-go/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	feedController := controllers.NewFeedController(db)
	postController := controllers.NewPostController(db)
	categoryController := controllers.NewCategoryController(db)
	locationController := controllers.NewLocationController(db)
	profileController := controllers.NewProfileController(db)
	commentController := controllers.NewCommentController(db)

	// Public routes; read paths resolve the viewer when a token is present
	// so authors can reach their own hidden posts
	public := r.Group("/api")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/refresh-token", authController.RefreshToken)

		SetupFeedRoutes(public, feedController)
		SetupPostReadRoutes(public, postController)
		SetupCategoryReadRoutes(public, categoryController)
		SetupLocationReadRoutes(public, locationController)
		SetupProfileRoutes(public, profileController)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.PUT("/profile", authController.UpdateProfile)
		protected.DELETE("/account", authController.DeleteAccount)

		SetupPostWriteRoutes(protected, postController)
		SetupCommentRoutes(protected, commentController)
	}

	// Taxonomy management is admin-only
	admin := protected.Group("")
	admin.Use(middleware.AdminMiddleware())
	{
		SetupCategoryAdminRoutes(admin, categoryController)
		SetupLocationAdminRoutes(admin, locationController)
	}
}
