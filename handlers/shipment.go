package handlers

import (
	"errors"
	"net/http"
	"time"

	"shipquote/models"
	"shipquote/services/shipment"
	"shipquote/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShipmentHandler exposes the shipment lifecycle endpoints.
type ShipmentHandler struct {
	svc    shipment.ShipmentService
	logger *zap.Logger
}

func NewShipmentHandler(svc shipment.ShipmentService, logger *zap.Logger) *ShipmentHandler {
	return &ShipmentHandler{svc: svc, logger: logger}
}

type createShipmentInput struct {
	Origin      string       `json:"origin" binding:"required"`
	Destination string       `json:"destination" binding:"required"`
	WeightKg    float64      `json:"weightKg" binding:"required"`
	PickupDate  string       `json:"pickupDate" binding:"required"`
	Fragile     bool         `json:"fragile"`
	ChosenQuote models.Quote `json:"chosenQuote" binding:"required"`
}

// CreateShipment handles POST /api/shipments.
func (h *ShipmentHandler) CreateShipment(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing user", "X-User-ID header is required")
		return
	}

	var input createShipmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	pickup, err := time.Parse(time.DateOnly, input.PickupDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid pickup date",
			"pickupDate must be formatted as YYYY-MM-DD")
		return
	}

	req := models.QuoteRequest{
		Origin:      input.Origin,
		Destination: input.Destination,
		WeightKg:    input.WeightKg,
		PickupDate:  pickup,
		Fragile:     input.Fragile,
	}
	record, err := h.svc.Create(c.Request.Context(), req, input.ChosenQuote, userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create shipment", err.Error())
		return
	}
	c.JSON(http.StatusCreated, record)
}

// PayShipment handles POST /api/shipments/:id/pay.
func (h *ShipmentHandler) PayShipment(c *gin.Context) {
	var input struct {
		PaymentMethodID string `json:"paymentMethodId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	record, err := h.svc.Pay(c.Request.Context(), c.Param("id"), input.PaymentMethodID)
	if err != nil {
		h.respondLifecycleError(c, err, "payment failed")
		return
	}
	c.JSON(http.StatusOK, record)
}

// BookShipment handles POST /api/shipments/:id/book.
func (h *ShipmentHandler) BookShipment(c *gin.Context) {
	record, err := h.svc.Book(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondLifecycleError(c, err, "booking failed")
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetShipment handles GET /api/shipments/:id.
func (h *ShipmentHandler) GetShipment(c *gin.Context) {
	record, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "shipment not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, record)
}

// ListShipments handles GET /api/shipments.
func (h *ShipmentHandler) ListShipments(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing user", "X-User-ID header is required")
		return
	}
	records, err := h.svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list shipments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"shipments": records})
}

// CancelShipment handles DELETE /api/shipments/:id.
func (h *ShipmentHandler) CancelShipment(c *gin.Context) {
	if err := h.svc.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		h.respondLifecycleError(c, err, "cancellation failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *ShipmentHandler) respondLifecycleError(c *gin.Context, err error, message string) {
	var notFound *shipment.NotFoundError
	var transition *shipment.TransitionError
	switch {
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, "shipment not found", err.Error())
	case errors.As(err, &transition):
		utils.JSONError(c, http.StatusConflict, message, err.Error())
	default:
		h.logger.Error(message, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, message, err.Error())
	}
}
