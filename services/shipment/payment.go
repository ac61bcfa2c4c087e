package shipment

import (
	"context"
	"fmt"
	"math"
	"strings"

	"shipquote/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler captures payment for a shipment's chosen quote.
type PaymentHandler interface {
	Capture(ctx context.Context, shipment models.Shipment, paymentMethodID string) (invoiceID string, err error)
}

// StripePaymentHandler charges the quote amount through a Stripe PaymentIntent.
type StripePaymentHandler struct {
	logger *zap.Logger
}

func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

func (h *StripePaymentHandler) Capture(ctx context.Context, s models.Shipment, paymentMethodID string) (string, error) {
	if paymentMethodID == "" {
		return "", fmt.Errorf("missing payment method")
	}
	amount := int64(math.Round(s.ChosenQuote.Price * 100))
	if amount <= 0 {
		return "", fmt.Errorf("invalid charge amount for shipment %s", s.ID)
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amount),
		Currency:      stripe.String(strings.ToLower(s.ChosenQuote.Currency)),
		PaymentMethod: stripe.String(paymentMethodID),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx
	params.AddMetadata("shipment_id", s.ID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}

	h.logger.Info("payment captured",
		zap.String("shipment", s.ID),
		zap.String("paymentIntent", pi.ID),
		zap.Int64("amountCents", amount))
	return pi.ID, nil
}
