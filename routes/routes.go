package routes

import (
	"net/http"
	"time"

	"shipquote/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router needs.
type HandlerBundle struct {
	Quote    *handlers.QuoteHandler
	Shipment *handlers.ShipmentHandler
}

// RegisterQuoteRoutes registers quote aggregation endpoints.
func RegisterQuoteRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/quotes")
	{
		api.POST("", hb.Quote.GetQuotes)
	}
}

// RegisterShipmentRoutes registers shipment lifecycle endpoints.
func RegisterShipmentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/shipments")
	{
		api.POST("", hb.Shipment.CreateShipment)
		api.GET("", hb.Shipment.ListShipments)
		api.GET("/:id", hb.Shipment.GetShipment)
		api.POST("/:id/pay", hb.Shipment.PayShipment)
		api.POST("/:id/book", hb.Shipment.BookShipment)
		api.DELETE("/:id", hb.Shipment.CancelShipment)
	}
}

// RegisterHealthRoute exposes a liveness probe.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterQuoteRoutes(r, hb)
	RegisterShipmentRoutes(r, hb)
	RegisterHealthRoute(r)
}
