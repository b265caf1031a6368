package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quickhub/config"
	"quickhub/database"
	bookingRepoPkg "quickhub/database/repository/booking"
	companyRepoPkg "quickhub/database/repository/company"
	feedbackRepoPkg "quickhub/database/repository/feedback"
	notificationRepoPkg "quickhub/database/repository/notification"
	staffRepoPkg "quickhub/database/repository/staff"
	userRepoPkg "quickhub/database/repository/user"
	"quickhub/handlers"
	"quickhub/routes"
	bookingSvc "quickhub/services/booking"
	notificationSvc "quickhub/services/notification"
	staffSvc "quickhub/services/staff"
	"quickhub/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	client, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to database: %v", err)
	}
	defer database.Disconnect(client)
	db := client.Database(config.AppConfig.DatabaseName)

	utils.InitAuthCache(
		config.AppConfig.RedisAddr,
		config.AppConfig.RedisPassword,
		config.AppConfig.RedisAuthDB,
	)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	staffRepo := staffRepoPkg.NewMongoStaffRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo(db)
	companyRepo := companyRepoPkg.NewMongoCompanyRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	feedbackRepo := feedbackRepoPkg.NewMongoFeedbackRepo(db)

	// services.
	staffService := &staffSvc.DefaultStaffService{
		Repo:         staffRepo,
		CompanyRepo:  companyRepo,
		FeedbackRepo: feedbackRepo,
		Logger:       logger,
	}
	bookingService := &bookingSvc.DefaultBookingService{
		Repo:             bookingRepo,
		StaffRepo:        staffRepo,
		UserRepo:         userRepo,
		CompanyRepo:      companyRepo,
		NotificationRepo: notificationRepo,
		Logger:           logger,
	}
	notificationService := &notificationSvc.DefaultNotificationService{
		Repo:        notificationRepo,
		UserRepo:    userRepo,
		CompanyRepo: companyRepo,
		Logger:      logger,
	}

	handlerBundle := handlers.NewHandlerBundle(bookingService, staffService, notificationService)
	routes.RegisterRoutes(router, handlerBundle, &config.AppConfig)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
