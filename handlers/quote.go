package handlers

import (
	"net/http"
	"time"

	"shipquote/models"
	"shipquote/services/quote"
	"shipquote/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxShipmentWeightKg is the edge ceiling; heavier loads need a manual freight
// contract and never reach the aggregation core.
const maxShipmentWeightKg = 1000

// QuoteHandler exposes the aggregation core over HTTP.
type QuoteHandler struct {
	aggregator *quote.Aggregator
	logger     *zap.Logger
}

func NewQuoteHandler(aggregator *quote.Aggregator, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{aggregator: aggregator, logger: logger}
}

type quoteRequestInput struct {
	Origin      string  `json:"origin" binding:"required"`
	Destination string  `json:"destination" binding:"required"`
	WeightKg    float64 `json:"weightKg" binding:"required"`
	PickupDate  string  `json:"pickupDate" binding:"required"`
	Fragile     bool    `json:"fragile"`
}

// GetQuotes handles POST /api/quotes. Range validation happens here, at the
// edge; the aggregator receives only requests that already satisfy it.
func (h *QuoteHandler) GetQuotes(c *gin.Context) {
	var input quoteRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if input.WeightKg <= 0 || input.WeightKg > maxShipmentWeightKg {
		utils.JSONError(c, http.StatusBadRequest, "invalid weight",
			"weightKg must be greater than 0 and at most 1000")
		return
	}

	pickup, err := time.Parse(time.DateOnly, input.PickupDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid pickup date",
			"pickupDate must be formatted as YYYY-MM-DD")
		return
	}
	today := time.Now().Truncate(24 * time.Hour)
	if pickup.Before(today) {
		utils.JSONError(c, http.StatusBadRequest, "invalid pickup date",
			"pickupDate must not be in the past")
		return
	}

	req := models.QuoteRequest{
		Origin:      input.Origin,
		Destination: input.Destination,
		WeightKg:    input.WeightKg,
		PickupDate:  pickup,
		Fragile:     input.Fragile,
	}

	quotes, messages := h.aggregator.Aggregate(c.Request.Context(), req)

	// An empty quote list is still a successful response; the messages tell
	// the client which carriers were unavailable.
	c.JSON(http.StatusOK, gin.H{
		"quotes":           quotes,
		"providerMessages": messages,
	})
}
