package models

import (
	"fmt"
	"math"
	"time"
)

// QuoteRequest describes the shipment a client wants priced. Range rules
// (weight ceiling, pickup date not in the past) are enforced at the HTTP edge;
// the aggregation core only assumes Weight > 0.
type QuoteRequest struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	WeightKg    float64   `json:"weightKg"`
	PickupDate  time.Time `json:"pickupDate"`
	Fragile     bool      `json:"fragile"`
}

// Quote is a single carrier's priced offer.
type Quote struct {
	ProviderID    string  `bson:"provider_id" json:"providerId"`
	ProviderName  string  `bson:"provider_name" json:"providerName"`
	Price         float64 `bson:"price" json:"price"`
	Currency      string  `bson:"currency" json:"currency"`
	MinDays       int     `bson:"min_days" json:"minDays"`
	MaxDays       int     `bson:"max_days" json:"maxDays"`
	TransportMode string  `bson:"transport_mode" json:"transportMode"`
	IsCheapest    bool    `bson:"is_cheapest" json:"isCheapest"`
	IsFastest     bool    `bson:"is_fastest" json:"isFastest"`
}

// NewQuote builds a validated Quote. A failure here means a carrier integration
// handed back garbage, so callers should log it loudly.
func NewQuote(providerID, providerName string, price float64, currency string, minDays, maxDays int, transportMode string) (Quote, error) {
	if providerID == "" {
		return Quote{}, fmt.Errorf("quote: provider id must not be empty")
	}
	if providerName == "" {
		return Quote{}, fmt.Errorf("quote: provider name must not be empty")
	}
	if price <= 0 {
		return Quote{}, fmt.Errorf("quote: price must be positive, got %v", price)
	}
	if len(currency) != 3 {
		return Quote{}, fmt.Errorf("quote: currency must be a 3-letter code, got %q", currency)
	}
	if minDays < 0 {
		return Quote{}, fmt.Errorf("quote: minDays must not be negative, got %d", minDays)
	}
	if maxDays < minDays {
		return Quote{}, fmt.Errorf("quote: maxDays (%d) must not be less than minDays (%d)", maxDays, minDays)
	}
	return Quote{
		ProviderID:    providerID,
		ProviderName:  providerName,
		Price:         price,
		Currency:      currency,
		MinDays:       minDays,
		MaxDays:       maxDays,
		TransportMode: transportMode,
	}, nil
}

// EstimatedDays is the midpoint of the delivery window, rounded to the nearest day.
func (q Quote) EstimatedDays() int {
	return int(math.Round(float64(q.MinDays+q.MaxDays) / 2))
}

// ProviderMessage documents a carrier that produced no usable quote for a request.
type ProviderMessage struct {
	Provider string `json:"provider"`
	Message  string `json:"message"`
	Error    string `json:"error,omitempty"`
}

// CachedQuoteSet is the snapshot stored under a request fingerprint. Staleness
// is judged against CreatedAt by the aggregator, not by the store.
type CachedQuoteSet struct {
	Quotes    []Quote   `json:"quotes"`
	CreatedAt time.Time `json:"createdAt"`
}
