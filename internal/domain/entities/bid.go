package entities

import "time"

// BidStatus represents the lifecycle of a single offer inside an auction.

type BidStatus string

const (
	BidStatusOpen      BidStatus = "open"
	BidStatusAccepted  BidStatus = "accepted"
	BidStatusLost      BidStatus = "lost"
	BidStatusCancelled BidStatus = "cancelled"
)

// Bid is a courier's priced, timed offer against one auction.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (auction_id-index): auction_id
//
// Scoring:
//   - BidderReputation is snapshotted at submission time and never
//     recomputed later.
//   - CompositeScore is computed once at submission; ranking re-sorts
//     existing scores, it does not re-derive them.
//
// Invariant: within one auction, at most one non-cancelled bid per bidder.
type Bid struct {
	ID                         string    `json:"id"`
	AuctionID                  string    `json:"auction_id"`
	BidderID                   string    `json:"bidder_id"`
	ProposedPrice              float64   `json:"proposed_price"`
	EstimatedCompletionMinutes int       `json:"estimated_completion_minutes"`
	BidderReputation           float64   `json:"bidder_reputation"`
	CompositeScore             float64   `json:"composite_score"`
	Status                     BidStatus `json:"status"`
	Notes                      string    `json:"notes,omitempty"`
	ValidUntil                 time.Time `json:"valid_until"`
	CreatedAt                  time.Time `json:"created_at"`
}

// Active reports whether the bid still participates in the auction.
func (b Bid) Active() bool {
	return b.Status != BidStatusCancelled
}

const (
	// DefaultEstimatedMinutes applies when the bidder omits an estimate.
	DefaultEstimatedMinutes = 60
	// MinEstimatedMinutes is the lowest accepted completion estimate.
	MinEstimatedMinutes = 15
	// DefaultBidValidity bounds how long a bid is advertised as valid.
	// Informational only: the engine does not auto-expire individual bids.
	DefaultBidValidity = 24 * time.Hour
	// NeutralReputation is used for bidders without rating history.
	NeutralReputation = 3.0
)
