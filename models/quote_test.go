package models

import "testing"

func TestNewQuote_Valid(t *testing.T) {
	q, err := NewQuote("terra-freight", "TerraFreight", 42.5, "USD", 4, 8, "road")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ProviderID != "terra-freight" || q.Price != 42.5 {
		t.Fatalf("unexpected quote: %+v", q)
	}
	if q.IsCheapest || q.IsFastest {
		t.Fatalf("badges must default to false: %+v", q)
	}
}

func TestNewQuote_Invalid(t *testing.T) {
	cases := []struct {
		name             string
		providerID       string
		providerName     string
		price            float64
		currency         string
		minDays, maxDays int
	}{
		{"empty provider id", "", "Carrier", 10, "USD", 1, 2},
		{"empty provider name", "carrier", "", 10, "USD", 1, 2},
		{"zero price", "carrier", "Carrier", 0, "USD", 1, 2},
		{"negative price", "carrier", "Carrier", -5, "USD", 1, 2},
		{"bad currency", "carrier", "Carrier", 10, "US", 1, 2},
		{"negative minDays", "carrier", "Carrier", 10, "USD", -1, 2},
		{"maxDays below minDays", "carrier", "Carrier", 10, "USD", 5, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewQuote(tc.providerID, tc.providerName, tc.price, tc.currency, tc.minDays, tc.maxDays, "road"); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestEstimatedDays(t *testing.T) {
	cases := []struct {
		minDays, maxDays, want int
	}{
		{3, 5, 4},
		{5, 5, 5},
		{1, 3, 2},
		{10, 20, 15},
		{0, 1, 1}, // midpoint 0.5 rounds up
	}
	for _, tc := range cases {
		q := Quote{MinDays: tc.minDays, MaxDays: tc.maxDays}
		if got := q.EstimatedDays(); got != tc.want {
			t.Fatalf("EstimatedDays(%d, %d) = %d, want %d", tc.minDays, tc.maxDays, got, tc.want)
		}
	}
}
