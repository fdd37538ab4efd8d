package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "github.com/Prathamraj05/railbooker-zenith/internal/config"
	h "github.com/Prathamraj05/railbooker-zenith/internal/http/handlers"
	"github.com/Prathamraj05/railbooker-zenith/internal/http/middleware"
)

func NewRouter(env intconfig.Env, handlers *h.API) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	api.Use(middleware.AuthOptional(env.JWTSecret))
	{
		api.GET("/health", handlers.Health)

		// Auth (stub credential check)
		auth := api.Group("/auth")
		auth.POST("/login", handlers.Login)
		auth.POST("/register", handlers.Register)

		// Catalog (read-only to the booking flow)
		api.GET("/stations", handlers.ListStations)
		api.GET("/trains", handlers.ListTrains)
		api.GET("/trains/:id", handlers.GetTrain)
		api.GET("/payment-methods", handlers.ListPaymentMethods)

		// Search
		api.GET("/search", handlers.Search)
		api.GET("/fare/quote", handlers.FareQuote)

		// Booking workflow steps (stateless, draft carried in params)
		workflow := api.Group("/workflow")
		workflow.GET("/review", handlers.WorkflowReview)
		workflow.POST("/passengers", handlers.WorkflowPassengers)
		workflow.POST("/payment", handlers.WorkflowPayment)

		// Bookings
		bookings := api.Group("/bookings")
		bookings.GET("", handlers.MyBookings)
		bookings.GET("/pnr/:pnr", handlers.BookingByPNR)
		bookings.POST("/:id/cancel", handlers.CancelBooking)
		bookings.GET("/:id/e-ticket", handlers.ETicket)

		// Admin inventory editor
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin(env.JWTSecret))
		admin.PUT("/trains/:id/seats", handlers.AdminSetSeats)
		admin.PUT("/bookings/:id/status", handlers.AdminSetStatus)
		admin.GET("/bookings", handlers.AdminListBookings)
	}

	return r
}
