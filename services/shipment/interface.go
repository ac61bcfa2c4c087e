package shipment

import (
	"context"

	"shipquote/models"
)

// ShipmentService manages the shipment lifecycle around a chosen quote:
// pending -> paid -> booked, with pending/paid also cancellable.
type ShipmentService interface {
	Create(ctx context.Context, req models.QuoteRequest, chosenQuote models.Quote, userID string) (*models.Shipment, error)
	Pay(ctx context.Context, shipmentID, paymentMethodID string) (*models.Shipment, error)
	Book(ctx context.Context, shipmentID string) (*models.Shipment, error)
	Get(ctx context.Context, shipmentID string) (*models.Shipment, error)
	ListByUser(ctx context.Context, userID string) ([]models.Shipment, error)
	Cancel(ctx context.Context, shipmentID string) error
}
