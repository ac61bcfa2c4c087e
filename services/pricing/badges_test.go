package pricing

import (
	"testing"

	"shipquote/models"
)

func quote(id string, price float64, minDays, maxDays int) models.Quote {
	return models.Quote{
		ProviderID:   id,
		ProviderName: id,
		Price:        price,
		Currency:     "USD",
		MinDays:      minDays,
		MaxDays:      maxDays,
	}
}

func TestAssignBadges_Empty(t *testing.T) {
	badged := AssignBadges(nil)
	if len(badged) != 0 {
		t.Fatalf("expected empty result, got %d", len(badged))
	}
}

func TestAssignBadges_SingleQuoteGetsBoth(t *testing.T) {
	badged := AssignBadges([]models.Quote{quote("solo", 20, 2, 4)})
	if len(badged) != 1 {
		t.Fatalf("expected 1 quote, got %d", len(badged))
	}
	if !badged[0].IsCheapest || !badged[0].IsFastest {
		t.Fatalf("single quote must carry both badges: %+v", badged[0])
	}
}

func TestAssignBadges_CheapestAndFastestDiffer(t *testing.T) {
	badged := AssignBadges([]models.Quote{
		quote("express", 90, 1, 3),  // fastest
		quote("freight", 30, 4, 8),  // cheapest
		quote("sea", 45, 10, 20),
	})

	if !badged[0].IsFastest || badged[0].IsCheapest {
		t.Fatalf("express should be fastest only: %+v", badged[0])
	}
	if !badged[1].IsCheapest || badged[1].IsFastest {
		t.Fatalf("freight should be cheapest only: %+v", badged[1])
	}
	if badged[2].IsCheapest || badged[2].IsFastest {
		t.Fatalf("sea should have no badges: %+v", badged[2])
	}
}

func TestAssignBadges_ExactlyOneOfEach(t *testing.T) {
	badged := AssignBadges([]models.Quote{
		quote("a", 50, 2, 4),
		quote("b", 40, 3, 5),
		quote("c", 60, 1, 1),
	})
	cheapest, fastest := 0, 0
	for _, q := range badged {
		if q.IsCheapest {
			cheapest++
		}
		if q.IsFastest {
			fastest++
		}
	}
	if cheapest != 1 || fastest != 1 {
		t.Fatalf("expected exactly one of each badge, got cheapest=%d fastest=%d", cheapest, fastest)
	}
}

func TestAssignBadges_TieGoesToFirst(t *testing.T) {
	badged := AssignBadges([]models.Quote{
		quote("first", 30, 3, 5),
		quote("second", 30, 3, 5), // same price, same window
	})
	if !badged[0].IsCheapest || !badged[0].IsFastest {
		t.Fatalf("first quote must win both ties: %+v", badged[0])
	}
	if badged[1].IsCheapest || badged[1].IsFastest {
		t.Fatalf("second quote must win nothing on a tie: %+v", badged[1])
	}
}

func TestAssignBadges_InputNotMutated(t *testing.T) {
	input := []models.Quote{
		quote("a", 50, 2, 4),
		quote("b", 40, 1, 3),
	}
	AssignBadges(input)
	for _, q := range input {
		if q.IsCheapest || q.IsFastest {
			t.Fatalf("input slice was mutated: %+v", q)
		}
	}
}
