package api

import (
	"log"
	stdhttp "net/http"
	"time"

	h "travelmap/internal/http/handlers"
	"travelmap/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(a *h.API) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware())

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
	{
		api.GET("/health", h.Health)
		api.GET("/ready", h.Ready)

		api.GET("/destinations", a.GetDestinations)
		api.GET("/search", a.Search)

		viewport := api.Group("/viewport")
		viewport.GET("", a.GetViewState)
		viewport.POST("", a.SetViewport)
		viewport.POST("/gesture", a.ReportGesture)
		viewport.GET("/commands", a.DrainWidgetCommands)

		api.POST("/select", a.Select)

		bookings := api.Group("/bookings")
		bookings.GET("", a.GetBookings)
		bookings.POST("", a.CreateBooking)
		bookings.DELETE("/:id", a.CancelBooking)
		bookings.GET("/:id/itinerary", a.GetBookingItinerary)
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
	return cors.New(cfg)
}
