package pricing

import (
	"context"
	"fmt"
	"strings"

	"shipquote/models"
)

// Provider is a single carrier's pricing backend.
type Provider interface {
	ID() string
	Name() string
	Quote(ctx context.Context, weightKg float64, destination string) (models.Quote, error)
}

// weightTier is one band of a carrier's rate card. A tier covers
// [MinWeight, MaxWeight); OpenEnded marks the last band, which has no ceiling.
type weightTier struct {
	MinWeight float64
	MaxWeight float64
	RatePerKg float64
	OpenEnded bool
}

// rateCard holds the three fixed tables every carrier owns: a destination
// zone classifier, an ordered weight-tier list, and per-zone multipliers.
type rateCard struct {
	Zones        map[string]int
	FallbackZone int
	Multipliers  map[int]float64
	Tiers        []weightTier
}

// zoneFor classifies a destination by canonical city name, case-insensitively.
// Unrecognized destinations fall back to the carrier's default zone.
func (rc rateCard) zoneFor(destination string) int {
	key := strings.ToLower(strings.TrimSpace(destination))
	if zone, ok := rc.Zones[key]; ok {
		return zone
	}
	return rc.FallbackZone
}

// ratePerKg selects the tier whose band contains the weight. A weight exactly
// on a tier's lower bound belongs to that tier; anything above every band
// lands in the last, open-ended tier.
func (rc rateCard) ratePerKg(weight float64) float64 {
	for _, tier := range rc.Tiers {
		if tier.OpenEnded && weight >= tier.MinWeight {
			return tier.RatePerKg
		}
		if weight >= tier.MinWeight && weight < tier.MaxWeight {
			return tier.RatePerKg
		}
	}
	// Tables always end with an open-ended tier, so this is unreachable for
	// positive weights.
	return rc.Tiers[len(rc.Tiers)-1].RatePerKg
}

// price applies the shared carrier formula: base + weight * rate * multiplier.
func (rc rateCard) price(basePrice, weight float64, destination string) float64 {
	zone := rc.zoneFor(destination)
	return basePrice + weight*rc.ratePerKg(weight)*rc.Multipliers[zone]
}

func validateQuoteInput(ctx context.Context, weightKg float64, destination string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if weightKg <= 0 {
		return fmt.Errorf("weight must be positive, got %v", weightKg)
	}
	if strings.TrimSpace(destination) == "" {
		return fmt.Errorf("destination must not be empty")
	}
	return nil
}
