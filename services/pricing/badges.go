package pricing

import "shipquote/models"

// AssignBadges returns a new slice in which exactly one quote is marked
// cheapest and exactly one fastest (both on the same quote when it wins both).
// Ties go to the earliest quote in the input; the input is never mutated.
func AssignBadges(quotes []models.Quote) []models.Quote {
	if len(quotes) == 0 {
		return []models.Quote{}
	}

	cheapestIdx := 0
	fastestIdx := 0
	for i, q := range quotes {
		if q.Price < quotes[cheapestIdx].Price {
			cheapestIdx = i
		}
		if q.EstimatedDays() < quotes[fastestIdx].EstimatedDays() {
			fastestIdx = i
		}
	}

	badged := make([]models.Quote, len(quotes))
	for i, q := range quotes {
		q.IsCheapest = i == cheapestIdx
		q.IsFastest = i == fastestIdx
		badged[i] = q
	}
	return badged
}
