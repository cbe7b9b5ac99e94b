package router

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"supreme_fitness_backend/internal/handlers"
	"supreme_fitness_backend/internal/middleware"
	"supreme_fitness_backend/internal/repositories"
	"supreme_fitness_backend/internal/services"
	"supreme_fitness_backend/pkg/utils"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB, tokens *utils.TokenManager) {
	// Initialize Repositories
	userRepo := repositories.NewUserRepository(db)
	classRepo := repositories.NewClassRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	progressRepo := repositories.NewProgressRepository(db)
	feedbackRepo := repositories.NewFeedbackRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	analyticsRepo := repositories.NewAnalyticsRepository(db)

	// Initialize Services
	notificationService := services.NewNotificationService(notificationRepo)
	authService := services.NewAuthService(userRepo, notificationService, tokens, db)
	classService := services.NewClassService(classRepo, userRepo, db)
	bookingService := services.NewBookingService(bookingRepo, classRepo, notificationService, db)
	paymentService := services.NewPaymentService(paymentRepo, bookingRepo, classRepo, notificationService, db)
	progressService := services.NewProgressService(progressRepo, bookingRepo)
	feedbackService := services.NewFeedbackService(feedbackRepo, notificationService)
	analyticsService := services.NewAnalyticsService(analyticsRepo)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	classHandler := handlers.NewClassHandler(classService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	progressHandler := handlers.NewProgressHandler(progressService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	apiV1 := engine.Group("/api/v1")

	// Public routes
	apiV1.POST("/register", authHandler.Register)
	apiV1.POST("/login", authHandler.Login)

	// Authenticated routes
	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware(tokens, userRepo))
	{
		SetupUserRoutes(authenticated, authHandler)
		SetupClassRoutes(authenticated, classHandler)
		SetupBookingRoutes(authenticated, bookingHandler)
		SetupPaymentRoutes(authenticated, paymentHandler)
		SetupProgressRoutes(authenticated, progressHandler)
		SetupFeedbackRoutes(authenticated, feedbackHandler)
		SetupNotificationRoutes(authenticated, notificationHandler)
		SetupAnalyticsRoutes(authenticated, analyticsHandler)
	}
}
