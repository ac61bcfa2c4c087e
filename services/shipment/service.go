package shipment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	shipmentRepo "shipquote/database/repository/shipment"
	"shipquote/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeShipmentBooked is the task type published when a shipment is booked.
const TypeShipmentBooked = "shipment:booked"

// DefaultShipmentService is the production ShipmentService.
type DefaultShipmentService struct {
	Repo     shipmentRepo.ShipmentRepository
	Payments PaymentHandler
	Tasks    *asynq.Client
	Logger   *zap.Logger
}

func (s *DefaultShipmentService) Create(ctx context.Context, req models.QuoteRequest, chosenQuote models.Quote, userID string) (*models.Shipment, error) {
	if userID == "" {
		return nil, fmt.Errorf("missing user id")
	}
	record := models.Shipment{
		UserID:      userID,
		Origin:      req.Origin,
		Destination: req.Destination,
		WeightKg:    req.WeightKg,
		Fragile:     req.Fragile,
		PickupDate:  req.PickupDate,
		ChosenQuote: chosenQuote,
		Status:      models.ShipmentStatusPending,
	}
	id, err := s.Repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to persist shipment: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *DefaultShipmentService) Pay(ctx context.Context, shipmentID, paymentMethodID string) (*models.Shipment, error) {
	record, err := s.Get(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if record.Status != models.ShipmentStatusPending {
		return nil, &TransitionError{From: record.Status, To: models.ShipmentStatusPaid}
	}

	invoiceID, err := s.Payments.Capture(ctx, *record, paymentMethodID)
	if err != nil {
		return nil, &PaymentError{ShipmentID: shipmentID, Err: err}
	}

	record.Status = models.ShipmentStatusPaid
	record.InvoiceID = invoiceID
	if err := s.Repo.Update(ctx, *record); err != nil {
		return nil, fmt.Errorf("failed to update shipment after payment: %w", err)
	}
	return s.Get(ctx, shipmentID)
}

func (s *DefaultShipmentService) Book(ctx context.Context, shipmentID string) (*models.Shipment, error) {
	record, err := s.Get(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if record.Status != models.ShipmentStatusPaid {
		return nil, &TransitionError{From: record.Status, To: models.ShipmentStatusBooked}
	}

	record.Status = models.ShipmentStatusBooked
	if err := s.Repo.Update(ctx, *record); err != nil {
		return nil, fmt.Errorf("failed to update shipment: %w", err)
	}

	// Notification delivery is best-effort; the booking itself already stands.
	s.enqueueBookedTask(*record)

	return s.Get(ctx, shipmentID)
}

func (s *DefaultShipmentService) Get(ctx context.Context, shipmentID string) (*models.Shipment, error) {
	record, err := s.Repo.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, &NotFoundError{ShipmentID: shipmentID}
	}
	return record, nil
}

func (s *DefaultShipmentService) ListByUser(ctx context.Context, userID string) ([]models.Shipment, error) {
	return s.Repo.GetByUserID(ctx, userID)
}

func (s *DefaultShipmentService) Cancel(ctx context.Context, shipmentID string) error {
	record, err := s.Get(ctx, shipmentID)
	if err != nil {
		return err
	}
	if record.Status != models.ShipmentStatusPending && record.Status != models.ShipmentStatusPaid {
		return &TransitionError{From: record.Status, To: models.ShipmentStatusCancelled}
	}
	record.Status = models.ShipmentStatusCancelled
	return s.Repo.Update(ctx, *record)
}

func (s *DefaultShipmentService) enqueueBookedTask(record models.Shipment) {
	if s.Tasks == nil {
		return
	}
	payload, err := json.Marshal(models.ShipmentBookedPayload{
		ShipmentID: record.ID,
		UserID:     record.UserID,
		Provider:   record.ChosenQuote.ProviderName,
		PickupDate: record.PickupDate.Format(time.DateOnly),
	})
	if err != nil {
		s.Logger.Error("failed to marshal booked-shipment payload", zap.Error(err))
		return
	}
	if _, err := s.Tasks.Enqueue(asynq.NewTask(TypeShipmentBooked, payload)); err != nil {
		s.Logger.Warn("failed to enqueue booked-shipment task",
			zap.String("shipment", record.ID), zap.Error(err))
	}
}
