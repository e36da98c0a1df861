package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/udyogsaathi/udyog-saathi/controllers"
	"github.com/udyogsaathi/udyog-saathi/middlewares"
	"github.com/udyogsaathi/udyog-saathi/services"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	// 50 requests per second per IP across the whole API. Registered here,
	// before any route, so every handler sits behind it.
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	accountCtrl := controllers.NewAccountController(db)
	jobCtrl := controllers.NewJobController(db)
	workerCtrl := controllers.NewWorkerProfileController(db)
	instantCtrl := controllers.NewInstantServiceController(db)
	listingCtrl := controllers.NewListingController(db)
	socialCtrl := controllers.NewSocialController(db)
	applicationCtrl := controllers.NewApplicationController(db)
	chatCtrl := controllers.NewChatController(db)
	careerCtrl := controllers.NewCareerController(services.GetCareerService())
	uploadCtrl := controllers.NewUploadController(services.GetUploadService())

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusOK, gin.H{"db": "disconnected"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"db": "connected"})
	})

	// Signup/login sit behind the strict limiter.
	public := api.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/signup", accountCtrl.Signup)
		public.POST("/login", accountCtrl.Login)
	}

	// Primary feeds and listing creation.
	api.GET("/jobs", jobCtrl.GetAllJobs)
	api.POST("/jobs", jobCtrl.CreateJob)
	api.GET("/worker-profiles", workerCtrl.GetAllWorkerProfiles)
	api.POST("/worker-profile", workerCtrl.CreateWorkerProfile)
	api.GET("/instant-services", instantCtrl.GetAllInstantServices)
	api.POST("/post-instant", instantCtrl.CreateInstantService)
	api.DELETE("/delete/:type/:id", listingCtrl.DeleteListing)

	// Application workflow. Reads and transitions are open by design;
	// the recorded access model has no per-record authorization here.
	api.POST("/apply", applicationCtrl.Apply)
	api.GET("/notifications/:email", applicationCtrl.GetNotifications)
	api.POST("/notifications", applicationCtrl.CreateNotification)
	api.PUT("/notifications/:id", applicationCtrl.UpdateNotificationStatus)
	api.DELETE("/notifications/clear/:email", applicationCtrl.ClearNotifications)
	api.PUT("/application-status/:id", applicationCtrl.UpdateApplicationStatus)

	// Chat.
	api.GET("/chat/:u1/:u2", chatCtrl.GetChatHistory)
	api.POST("/send-message", chatCtrl.SendMessage)

	// Proxies.
	api.POST("/career-guidance", careerCtrl.GetGuidance)
	api.POST("/upload-image", uploadCtrl.UploadImage)

	// Account-scoped routes require a token.
	auth := api.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/logout", accountCtrl.Logout)
		auth.PUT("/profile-update", accountCtrl.UpdateProfile)
		auth.GET("/user-activity/:email", accountCtrl.GetUserActivity)

		auth.POST("/jobs/:id/like", socialCtrl.LikeJob)
		auth.POST("/jobs/:id/comments", socialCtrl.CommentJob)
		auth.POST("/worker-profiles/:id/like", socialCtrl.LikeWorker)
		auth.POST("/worker-profiles/:id/comments", socialCtrl.CommentWorker)
	}

	return r
}
