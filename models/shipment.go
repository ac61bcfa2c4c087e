package models

import "time"

// Shipment status values. Transitions are validated in the shipment service:
// pending -> paid -> booked, with pending/paid also cancellable.
const (
	ShipmentStatusPending   = "pending"
	ShipmentStatusPaid      = "paid"
	ShipmentStatusBooked    = "booked"
	ShipmentStatusCancelled = "cancelled"
)

// Shipment is a confirmed shipment record built around a chosen quote.
type Shipment struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id" json:"userId"`
	Origin      string    `bson:"origin" json:"origin"`
	Destination string    `bson:"destination" json:"destination"`
	WeightKg    float64   `bson:"weight_kg" json:"weightKg"`
	Fragile     bool      `bson:"fragile" json:"fragile"`
	PickupDate  time.Time `bson:"pickup_date" json:"pickupDate"`
	ChosenQuote Quote     `bson:"chosen_quote" json:"chosenQuote"`
	Status      string    `bson:"status" json:"status"`
	InvoiceID   string    `bson:"invoice_id,omitempty" json:"invoiceId,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// ShipmentBookedPayload is the task payload published when a shipment is booked.
type ShipmentBookedPayload struct {
	ShipmentID string `json:"shipmentId"`
	UserID     string `json:"userId"`
	Provider   string `json:"provider"`
	PickupDate string `json:"pickupDate"`
}
