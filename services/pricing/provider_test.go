package pricing

import (
	"context"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestVelocityExpress_PriceFormula(t *testing.T) {
	p := NewVelocityExpress()
	// London is zone 2 (x1.25); 2kg sits in the first tier (4.8/kg).
	q, err := p.Quote(context.Background(), 2, "London")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 12.5 + 2*4.8*1.25
	if !almostEqual(q.Price, want) {
		t.Fatalf("price = %v, want %v", q.Price, want)
	}
	if q.TransportMode != "air" || q.MinDays != 1 || q.MaxDays != 3 {
		t.Fatalf("unexpected fixed fields: %+v", q)
	}
}

func TestVelocityExpress_UnknownDestinationFallsBack(t *testing.T) {
	p := NewVelocityExpress()
	// Nairobi is not in the zone table; fallback zone 3 carries x1.5.
	q, err := p.Quote(context.Background(), 2, "Nairobi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 12.5 + 2*4.8*1.5
	if !almostEqual(q.Price, want) {
		t.Fatalf("price = %v, want %v", q.Price, want)
	}
}

func TestVelocityExpress_ZoneLookupIsCaseInsensitive(t *testing.T) {
	p := NewVelocityExpress()
	lower, err := p.Quote(context.Background(), 3, "new york")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	upper, err := p.Quote(context.Background(), 3, "  NEW YORK ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(lower.Price, upper.Price) {
		t.Fatalf("case should not matter: %v vs %v", lower.Price, upper.Price)
	}
}

func TestWeightTierBoundary_BelongsToUpperTier(t *testing.T) {
	p := NewTerraFreight()
	// 10kg is exactly the lower bound of the second tier (1.9/kg), not the
	// ceiling of the first (2.5/kg). Berlin is zone 1 (x0.9).
	q, err := p.Quote(context.Background(), 10, "Berlin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 6.0 + 10*1.9*0.9
	if !almostEqual(q.Price, want) {
		t.Fatalf("price = %v, want %v (boundary weight must use the upper tier)", q.Price, want)
	}
}

func TestOpenEndedTier_CatchesHeavyLoads(t *testing.T) {
	p := NewOceanicCargo()
	// 1500kg is above every bounded tier; the open-ended band prices at 0.4/kg.
	// Rotterdam is zone 1 (x1.0).
	q, err := p.Quote(context.Background(), 1500, "Rotterdam")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 18.0 + 1500*0.4*1.0
	if !almostEqual(q.Price, want) {
		t.Fatalf("price = %v, want %v", q.Price, want)
	}
}

func TestProviders_RejectInvalidInput(t *testing.T) {
	providers := []Provider{NewVelocityExpress(), NewTerraFreight(), NewOceanicCargo()}
	for _, p := range providers {
		if _, err := p.Quote(context.Background(), 0, "London"); err == nil {
			t.Fatalf("%s: expected error for zero weight", p.Name())
		}
		if _, err := p.Quote(context.Background(), -3, "London"); err == nil {
			t.Fatalf("%s: expected error for negative weight", p.Name())
		}
		if _, err := p.Quote(context.Background(), 5, "  "); err == nil {
			t.Fatalf("%s: expected error for blank destination", p.Name())
		}
	}
}

func TestProviders_RespectCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, p := range []Provider{NewVelocityExpress(), NewTerraFreight(), NewOceanicCargo()} {
		if _, err := p.Quote(ctx, 5, "London"); err == nil {
			t.Fatalf("%s: expected error for cancelled context", p.Name())
		}
	}
}
