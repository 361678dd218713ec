package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"skyroute/internal/config"
	h "skyroute/internal/http/handlers"
	"skyroute/internal/http/middleware"
)

// NewRouter assembles the gin engine with the standard middleware chain
// and the booking-flow routes.
func NewRouter(env config.Env, handlers *h.Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.Metrics(), middleware.CORS(env.CORSAllowedOrigins))

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

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)
		api.GET("/config", handlers.Config)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", handlers.Login)
		auth.POST("/logout", handlers.Logout)
		auth.GET("/session", handlers.Session)

		// Catalog, open to unauthenticated search
		api.GET("/destinations", handlers.Destinations)
		api.GET("/flights", handlers.Flights)
		api.GET("/seatmap", handlers.SeatMap)

		// Payment intent creation keeps the public path the client
		// checkout form posts to.
		api.POST("/create-payment-intent", handlers.CreatePaymentIntent)

		// Booking flow requires a session, mirroring the client-side
		// page guards.
		bookings := api.Group("/bookings")
		bookings.Use(middleware.SessionRequired([]byte(env.SessionSecret)))
		bookings.POST("", handlers.CreateBooking)
		bookings.GET("", handlers.BookingHistory)
		bookings.GET("/current", handlers.CurrentBooking)
		bookings.PATCH("/current", handlers.UpdateCurrentBooking)
		bookings.PUT("/current/seats", handlers.AssignSeat)
		bookings.GET("/current/quote", handlers.QuoteCurrentBooking)
		bookings.POST("/current/confirm", handlers.ConfirmBooking)
		bookings.DELETE("/:index", handlers.RemoveBooking)
		bookings.GET("/:index/tickets.pdf", handlers.TicketsPDF)
		bookings.GET("/:index/baggage-tags.pdf", handlers.BaggageTagsPDF)
		bookings.GET("/:index/tickets/print", handlers.TicketsPrint)
		bookings.GET("/:index/baggage-tags/print", handlers.BaggageTagsPrint)
	}

	return r
}
