package pricing

import (
	"context"
	"fmt"

	"shipquote/models"
)

// VelocityExpress is the air express carrier: the fastest window in the fleet,
// priced accordingly.
type VelocityExpress struct {
	card rateCard
}

func NewVelocityExpress() *VelocityExpress {
	return &VelocityExpress{
		card: rateCard{
			Zones: map[string]int{
				"new york":  1,
				"toronto":   1,
				"london":    2,
				"paris":     2,
				"dubai":     3,
				"mumbai":    3,
				"singapore": 4,
				"tokyo":     4,
				"sydney":    5,
			},
			FallbackZone: 3,
			Multipliers: map[int]float64{
				1: 1.0,
				2: 1.25,
				3: 1.5,
				4: 1.8,
				5: 2.1,
			},
			Tiers: []weightTier{
				{MinWeight: 0, MaxWeight: 5, RatePerKg: 4.8},
				{MinWeight: 5, MaxWeight: 20, RatePerKg: 4.2},
				{MinWeight: 20, MaxWeight: 100, RatePerKg: 3.6},
				{MinWeight: 100, RatePerKg: 3.1, OpenEnded: true},
			},
		},
	}
}

func (p *VelocityExpress) ID() string   { return "velocity-express" }
func (p *VelocityExpress) Name() string { return "Velocity Express" }

func (p *VelocityExpress) Quote(ctx context.Context, weightKg float64, destination string) (models.Quote, error) {
	if err := validateQuoteInput(ctx, weightKg, destination); err != nil {
		return models.Quote{}, fmt.Errorf("velocity express: %w", err)
	}
	price := p.card.price(12.5, weightKg, destination)
	return models.NewQuote(p.ID(), p.Name(), price, "USD", 1, 3, "air")
}
