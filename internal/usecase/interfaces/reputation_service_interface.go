package interfaces

import "context"

// IReputationService abstracts the external rating service.
//
// GetAverageRating returns the bidder's historical average on a 0-5
// scale. Bidders without rating history get the neutral default (3.0);
// the implementation, not the caller, applies that default.
type IReputationService interface {
	GetAverageRating(ctx context.Context, bidderID string) (float64, error)
}
