package router

import (
	"github.com/gin-gonic/gin"

	"supreme_fitness_backend/internal/handlers"
	"supreme_fitness_backend/internal/middleware"
	"supreme_fitness_backend/internal/models"
)

// SetupUserRoutes sets up the admin user-management routes.
func SetupUserRoutes(authenticatedGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	userRoutes := authenticatedGroup.Group("/users")
	userRoutes.Use(middleware.RequireRoles(models.RoleAdmin))
	{
		userRoutes.GET("", authHandler.ListUsers)
		userRoutes.PUT("/:id/approve", authHandler.ApproveUser)
		userRoutes.PUT("/:id/deactivate", authHandler.DeactivateUser)
	}
}

// SetupClassRoutes sets up the class catalog routes. Listing is open to any
// authenticated caller; publishing needs a trainer or admin.
func SetupClassRoutes(authenticatedGroup *gin.RouterGroup, classHandler *handlers.ClassHandler) {
	authenticatedGroup.POST("/classes",
		middleware.RequireRoles(models.RoleTrainer, models.RoleAdmin), classHandler.CreateClass)
	authenticatedGroup.GET("/classes", classHandler.ListClasses)
	authenticatedGroup.GET("/classes/trainer/:id", classHandler.ListTrainerClasses)
}

// SetupBookingRoutes sets up the booking routes.
func SetupBookingRoutes(authenticatedGroup *gin.RouterGroup, bookingHandler *handlers.BookingHandler) {
	authenticatedGroup.POST("/bookings",
		middleware.RequireRoles(models.RoleMember), bookingHandler.CreateBooking)
	authenticatedGroup.GET("/bookings/member",
		middleware.RequireRoles(models.RoleMember), bookingHandler.ListMemberBookings)
	// Ownership for cancellation is checked in the service: the owning
	// member, a trainer, or an admin may cancel.
	authenticatedGroup.PUT("/bookings/:id/cancel", bookingHandler.CancelBooking)
	authenticatedGroup.PUT("/bookings/:id/attendance",
		middleware.RequireRoles(models.RoleTrainer, models.RoleAdmin), bookingHandler.MarkAttendance)
}

// SetupPaymentRoutes sets up the payment routes.
func SetupPaymentRoutes(authenticatedGroup *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	paymentRoutes := authenticatedGroup.Group("/payments")
	{
		paymentRoutes.POST("/create-order", paymentHandler.CreateOrder)
		paymentRoutes.POST("/:id/complete", paymentHandler.CompleteOrder)
	}
}

// SetupProgressRoutes sets up the progress tracking routes.
func SetupProgressRoutes(authenticatedGroup *gin.RouterGroup, progressHandler *handlers.ProgressHandler) {
	progressRoutes := authenticatedGroup.Group("/progress")
	progressRoutes.Use(middleware.RequireRoles(models.RoleMember))
	{
		progressRoutes.POST("", progressHandler.RecordProgress)
		progressRoutes.GET("/member", progressHandler.ListMemberProgress)
	}
}

// SetupFeedbackRoutes sets up the feedback routes.
func SetupFeedbackRoutes(authenticatedGroup *gin.RouterGroup, feedbackHandler *handlers.FeedbackHandler) {
	authenticatedGroup.POST("/feedback",
		middleware.RequireRoles(models.RoleMember), feedbackHandler.CreateFeedback)
	authenticatedGroup.GET("/feedback/trainer/:id", feedbackHandler.ListTrainerFeedback)
}

// SetupNotificationRoutes sets up the notification routes.
func SetupNotificationRoutes(authenticatedGroup *gin.RouterGroup, notificationHandler *handlers.NotificationHandler) {
	notificationRoutes := authenticatedGroup.Group("/notifications")
	{
		notificationRoutes.GET("", notificationHandler.ListNotifications)
		notificationRoutes.PUT("/:id/read", notificationHandler.MarkNotificationRead)
	}
}

// SetupAnalyticsRoutes sets up the admin analytics routes.
func SetupAnalyticsRoutes(authenticatedGroup *gin.RouterGroup, analyticsHandler *handlers.AnalyticsHandler) {
	analyticsRoutes := authenticatedGroup.Group("/analytics")
	analyticsRoutes.Use(middleware.RequireRoles(models.RoleAdmin))
	{
		analyticsRoutes.GET("/dashboard", analyticsHandler.GetDashboard)
	}
}
