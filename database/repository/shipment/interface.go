package shipmentRepo

import (
	"context"

	"shipquote/models"
)

// ShipmentRepository abstracts shipment persistence.
type ShipmentRepository interface {
	Create(ctx context.Context, shipment models.Shipment) (string, error)
	GetByID(ctx context.Context, id string) (*models.Shipment, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Shipment, error)
	Update(ctx context.Context, shipment models.Shipment) error
	DeleteByID(ctx context.Context, id string) error
}
