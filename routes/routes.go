package routes

import (
	"net/http"
	"time"

	"docportal/handlers"
	"docportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the endpoints that need no credential.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Doctors portal server is running")
	})
	r.GET("/service", hb.Booking.GetServices)
	r.GET("/available", hb.Booking.GetAvailable)
	r.POST("/booking", hb.Booking.CreateBooking)
	r.PUT("/user/:email", hb.User.Login)
	r.GET("/admin/:email", hb.User.CheckAdmin)
}

// RegisterProtectedRoutes registers endpoints behind bearer authentication.
func RegisterProtectedRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.GET("/user", hb.User.GetAllUsers)
		api.GET("/booking", hb.Booking.GetPatientBookings)
		api.GET("/booking/:id", hb.Booking.GetBookingByID)
		api.PATCH("/booking/:id", hb.Booking.PayBooking)
		api.POST("/create-payment-intent", hb.Booking.CreatePaymentIntent)
	}
}

// RegisterAdminRoutes registers endpoints behind bearer auth plus the admin
// role check.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("")
	adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.RequireAdmin(hb.UserRepo))
	{
		adminGroup.PUT("/user/admin/:email", hb.User.PromoteAdmin)
		adminGroup.GET("/doctor", hb.Doctor.GetDoctors)
		adminGroup.POST("/doctor", hb.Doctor.AddDoctor)
		adminGroup.DELETE("/doctor/:email", hb.Doctor.DeleteDoctor)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm the doctors portal"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterProtectedRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
