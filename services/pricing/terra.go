package pricing

import (
	"context"
	"fmt"

	"shipquote/models"
)

// TerraFreight is the road freight carrier. Its rate card rewards heavy loads
// and its geography is continental, so its zone map and multipliers look
// nothing like the air carrier's.
type TerraFreight struct {
	card rateCard
}

func NewTerraFreight() *TerraFreight {
	return &TerraFreight{
		card: rateCard{
			Zones: map[string]int{
				"berlin":   1,
				"paris":    1,
				"london":   2,
				"madrid":   2,
				"warsaw":   3,
				"istanbul": 4,
				"moscow":   5,
			},
			FallbackZone: 2,
			Multipliers: map[int]float64{
				1: 0.9,
				2: 1.0,
				3: 1.2,
				4: 1.45,
				5: 1.7,
			},
			Tiers: []weightTier{
				{MinWeight: 0, MaxWeight: 10, RatePerKg: 2.5},
				{MinWeight: 10, MaxWeight: 50, RatePerKg: 1.9},
				{MinWeight: 50, MaxWeight: 200, RatePerKg: 1.4},
				{MinWeight: 200, RatePerKg: 1.1, OpenEnded: true},
			},
		},
	}
}

func (p *TerraFreight) ID() string   { return "terra-freight" }
func (p *TerraFreight) Name() string { return "TerraFreight" }

func (p *TerraFreight) Quote(ctx context.Context, weightKg float64, destination string) (models.Quote, error) {
	if err := validateQuoteInput(ctx, weightKg, destination); err != nil {
		return models.Quote{}, fmt.Errorf("terrafreight: %w", err)
	}
	price := p.card.price(6.0, weightKg, destination)
	return models.NewQuote(p.ID(), p.Name(), price, "USD", 4, 8, "road")
}
