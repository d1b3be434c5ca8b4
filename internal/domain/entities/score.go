package entities

import "sort"

// Composite score weights. A bid is ranked by a weighted blend of its
// price discount, the bidder's historical rating and the promised
// completion speed.
const (
	PriceWeight  = 0.5
	RatingWeight = 0.3
	TimeWeight   = 0.2
)

// CompositeScore blends the three sub-scores:
//
//	priceScore  = (initialPrice - proposedPrice) / initialPrice * 100
//	ratingScore = reputation / 5 * 100
//	timeScore   = max(0, 100 - (estimatedMinutes-30)/30*10)
//
// timeScore is floored at 0 but deliberately not capped at 100: estimates
// under 30 minutes push it above 100, matching the historical behavior
// bidders already optimize against.
func CompositeScore(initialPrice, proposedPrice, reputation float64, estimatedMinutes int) float64 {
	priceScore := (initialPrice - proposedPrice) / initialPrice * 100
	ratingScore := reputation / 5 * 100
	timeScore := 100 - (float64(estimatedMinutes)-30)/30*10
	if timeScore < 0 {
		timeScore = 0
	}
	return PriceWeight*priceScore + RatingWeight*ratingScore + TimeWeight*timeScore
}

// RankBids orders the non-cancelled bids of one auction by composite
// score descending. Equal scores break by earliest submission, then by
// bid id, so the order is deterministic across replicas.
//
// The input slice is not modified.
func RankBids(bids []Bid) []Bid {
	ranked := make([]Bid, 0, len(bids))
	for _, b := range bids {
		if b.Active() {
			ranked = append(ranked, b)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].CompositeScore != ranked[j].CompositeScore {
			return ranked[i].CompositeScore > ranked[j].CompositeScore
		}
		if !ranked[i].CreatedAt.Equal(ranked[j].CreatedAt) {
			return ranked[i].CreatedAt.Before(ranked[j].CreatedAt)
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked
}

// RankOf returns the 1-based position of bidID in the ranked order, or 0
// when the bid is absent (cancelled or unknown).
func RankOf(ranked []Bid, bidID string) int {
	for i, b := range ranked {
		if b.ID == bidID {
			return i + 1
		}
	}
	return 0
}
