package entities

import "time"

// AuctionStatus represents the lifecycle of a reverse auction.
//
// Domain notes:
//   - ACTIVE is the only state that accepts bids or transitions.
//   - COMPLETED, CANCELLED and EXPIRED are terminal.
//   - EXPIRED is surfaced lazily on reads/submits once expires_at has
//     passed; a separate janitor persists it, this service never does.

type AuctionStatus string

const (
	AuctionStatusActive    AuctionStatus = "active"
	AuctionStatusCompleted AuctionStatus = "completed"
	AuctionStatusCancelled AuctionStatus = "cancelled"
	AuctionStatusExpired   AuctionStatus = "expired"
)

// Terminal reports whether no further transition is allowed from s.
func (s AuctionStatus) Terminal() bool {
	return s == AuctionStatusCompleted || s == AuctionStatusCancelled || s == AuctionStatusExpired
}

// Auction is a time-boxed competitive pricing round bound 1:1 to a task.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (task_id-index): task_id
//
// Monetary representation:
//   - InitialPrice is the requester's ceiling; MinimumPrice the floor.
//   - CurrentBestPrice starts at InitialPrice and only ever decreases;
//     the repository enforces this with a conditional update so two
//     concurrent bids cannot both observe the same best price.
//
// Auctions are never deleted; resolved and cancelled rounds remain as
// audit records.
type Auction struct {
	ID                  string        `json:"id"`
	TaskID              string        `json:"task_id"`
	InitialPrice        float64       `json:"initial_price"`
	MinimumPrice        float64       `json:"minimum_price"`
	CurrentBestPrice    float64       `json:"current_best_price"`
	MaxBidders          int           `json:"max_bidders"`
	AutoAcceptThreshold *float64      `json:"auto_accept_threshold,omitempty"`
	DurationHours       float64       `json:"duration_hours"`
	ExpiresAt           time.Time     `json:"expires_at"`
	Status              AuctionStatus `json:"status"`
	WinningBidID        string        `json:"winning_bid_id,omitempty"`
	BidCount            int           `json:"bid_count"`
	CancelReason        string        `json:"cancel_reason,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
	CompletedAt         *time.Time    `json:"completed_at,omitempty"`
	CancelledAt         *time.Time    `json:"cancelled_at,omitempty"`

	// Bids is eager-loaded by IAuctionRepository.GetByID; it is a read
	// projection, never written back through the auction item.
	Bids []Bid `json:"bids,omitempty"`
}

// PastDeadline reports whether the auction deadline has passed at now.
func (a Auction) PastDeadline(now time.Time) bool {
	return !now.Before(a.ExpiresAt)
}

// EffectiveStatus is the status a reader should see at now: a persisted
// ACTIVE auction past its deadline reads as EXPIRED even though the
// janitor has not flipped the item yet.
func (a Auction) EffectiveStatus(now time.Time) AuctionStatus {
	if a.Status == AuctionStatusActive && a.PastDeadline(now) {
		return AuctionStatusExpired
	}
	return a.Status
}

// Configuration bounds enforced at creation time.
const (
	MinInitialPrice  = 5.0
	MinMinimumPrice  = 1.0
	MinDurationHours = 0.5
	MaxDurationHours = 24.0
	MinMaxBidders    = 3
	MaxMaxBidders    = 20
)
