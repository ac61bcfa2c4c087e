package pricing

import (
	"context"
	"fmt"

	"shipquote/models"
)

// OceanicCargo is the sea/intermodal carrier: cheapest per kilogram at volume,
// with the widest delivery window.
type OceanicCargo struct {
	card rateCard
}

func NewOceanicCargo() *OceanicCargo {
	return &OceanicCargo{
		card: rateCard{
			Zones: map[string]int{
				"rotterdam":   1,
				"hamburg":     1,
				"new york":    2,
				"santos":      3,
				"singapore":   4,
				"shanghai":    4,
				"los angeles": 5,
			},
			FallbackZone: 4,
			Multipliers: map[int]float64{
				1: 1.0,
				2: 1.1,
				3: 1.3,
				4: 1.45,
				5: 1.6,
			},
			Tiers: []weightTier{
				{MinWeight: 0, MaxWeight: 50, RatePerKg: 0.9},
				{MinWeight: 50, MaxWeight: 250, RatePerKg: 0.7},
				{MinWeight: 250, MaxWeight: 1000, RatePerKg: 0.5},
				{MinWeight: 1000, RatePerKg: 0.4, OpenEnded: true},
			},
		},
	}
}

func (p *OceanicCargo) ID() string   { return "oceanic-cargo" }
func (p *OceanicCargo) Name() string { return "Oceanic Cargo" }

func (p *OceanicCargo) Quote(ctx context.Context, weightKg float64, destination string) (models.Quote, error) {
	if err := validateQuoteInput(ctx, weightKg, destination); err != nil {
		return models.Quote{}, fmt.Errorf("oceanic cargo: %w", err)
	}
	price := p.card.price(18.0, weightKg, destination)
	return models.NewQuote(p.ID(), p.Name(), price, "USD", 10, 20, "sea")
}
