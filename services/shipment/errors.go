package shipment

import "fmt"

// NotFoundError signals that the requested shipment does not exist.
type NotFoundError struct {
	ShipmentID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("shipment %s not found", e.ShipmentID)
}

// TransitionError signals an illegal shipment status transition.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move shipment from %q to %q", e.From, e.To)
}

// PaymentError wraps a failure from the payment processor.
type PaymentError struct {
	ShipmentID string
	Err        error
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment for shipment %s failed: %v", e.ShipmentID, e.Err)
}

func (e *PaymentError) Unwrap() error { return e.Err }
