// File: docportal/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"docportal/config"
	"docportal/database"
	bookingRepoPkg "docportal/database/repository/booking"
	doctorRepoPkg "docportal/database/repository/doctor"
	paymentRepoPkg "docportal/database/repository/payment"
	serviceRepoPkg "docportal/database/repository/service"
	userRepoPkg "docportal/database/repository/user"
	"docportal/handlers"
	"docportal/middleware"
	"docportal/routes"
	"docportal/services/booking"
	"docportal/services/doctor"
	"docportal/services/user"
	"docportal/utils"
	"docportal/workers"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	svcRepo := serviceRepoPkg.NewMongoServiceRepo()
	bkRepo := bookingRepoPkg.NewMongoBookingRepo()
	usrRepo := userRepoPkg.NewMongoUserRepo()
	docRepo := doctorRepoPkg.NewMongoDoctorRepo()
	payRepo := paymentRepoPkg.NewMongoPaymentRepo()

	// background reconciliation worker and its enqueuer.
	workers.InitReconcileWorker(bkRepo, payRepo)
	enqueuer := workers.NewEnqueuer()
	defer enqueuer.Close()

	// services.
	bookingService := &booking.DefaultBookingService{
		Services:   svcRepo,
		Bookings:   bkRepo,
		Gateway:    booking.StripeGateway{},
		Reconciler: enqueuer,
		Logger:     logger,
	}
	userService := &user.DefaultUserService{
		Repo:   usrRepo,
		Logger: logger,
	}
	doctorService := &doctor.DefaultDoctorService{
		Repo:   docRepo,
		Logger: logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: usrRepo,
		Booking:  handlers.NewBookingHandler(bookingService, logger),
		User:     handlers.NewUserHandler(userService, logger),
		Doctor:   handlers.NewDoctorHandler(doctorService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
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
