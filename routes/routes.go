package routes

import (
	"time"

	"quickhub/config"
	"quickhub/handlers"
	"quickhub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the customer booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, secret []byte) {
	bookingGroup := r.Group("/booking")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware(secret))
		bookingGroup.Use(middleware.RequireRole(middleware.RoleCustomer))
		bookingGroup.POST("/customer/bookings", hb.Booking.CreateBooking)
		bookingGroup.GET("/customer/bookings", hb.Booking.ListCustomerBookings)
	}
}

// RegisterCompanyRoutes sets up the company dashboard endpoints.
func RegisterCompanyRoutes(r *gin.Engine, hb *handlers.HandlerBundle, secret []byte) {
	companyGroup := r.Group("/company")
	{
		companyGroup.Use(middleware.JWTAuthMiddleware(secret))
		companyGroup.Use(middleware.RequireRole(middleware.RoleCompany))
		companyGroup.GET("/dashboard/bookings", hb.Company.DashboardBookings)
		companyGroup.GET("/bookings/:bookingId", hb.Company.BookingDetails)
		companyGroup.POST("/bookings/:bookingId/manage", hb.Company.ManageBooking)
	}
}

// RegisterStaffRoutes sets up the staff directory endpoints. The customer
// subpaths use customer tokens, everything else requires a company token.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle, secret []byte) {
	staffGroup := r.Group("/staff")
	staffGroup.Use(middleware.JWTAuthMiddleware(secret))
	{
		customer := staffGroup.Group("/customer")
		customer.Use(middleware.RequireRole(middleware.RoleCustomer))
		customer.GET("/list-staff", hb.Staff.ListStaffCustomer)
		customer.GET("/staff-details/:id", hb.Staff.StaffDetailsCustomer)
		customer.GET("/company-detail/:id", hb.Staff.CompanyDetailCustomer)

		company := staffGroup.Group("")
		company.Use(middleware.RequireRole(middleware.RoleCompany))
		company.GET("/list-staff", hb.Staff.ListStaff)
		company.POST("/create-staff", hb.Staff.CreateStaff)
		company.POST("/update-staff/:id", hb.Staff.UpdateStaff)
	}
}

// RegisterNotificationRoutes sets up the notification inbox endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle, secret []byte) {
	notificationGroup := r.Group("/notifications")
	notificationGroup.Use(middleware.JWTAuthMiddleware(secret))
	{
		notificationGroup.GET("/list", hb.Notification.List)
		notificationGroup.PATCH("/:id/read", hb.Notification.MarkRead)
		notificationGroup.PATCH("/read-all", hb.Notification.MarkAllRead)

		company := notificationGroup.Group("/company")
		company.Use(middleware.RequireRole(middleware.RoleCompany))
		company.GET("/list", hb.Notification.ListCompany)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, cfg *config.Config) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	secret := []byte(cfg.JWTSecret)
	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb, secret)
	RegisterCompanyRoutes(r, hb, secret)
	RegisterStaffRoutes(r, hb, secret)
	RegisterNotificationRoutes(r, hb, secret)
}
