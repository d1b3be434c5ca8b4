package interfaces

import (
	"context"
	"time"

	"delivery_auction/internal/domain/entities"
)

// SubmitTransaction carries every write of one accepted offer: the bid
// record plus the auction's new best price and bid count. The repository
// applies all of it in one transaction so the advertised best price can
// never get ahead of the bids backing it.
type SubmitTransaction struct {
	Bid        entities.Bid
	MaxBidders int
}

// ResolveTransaction carries every write of a manual or automatic accept.
// The repository applies all of it in one transaction, conditioned on the
// auction still being active.
type ResolveTransaction struct {
	AuctionID    string
	WinningBidID string
	CompletedAt  time.Time

	TaskID       string
	AssignedTo   string
	AgreedPrice  float64
	LosingBidIDs []string
}

// CancelTransaction carries every write of an auction cancellation,
// including the task revert to its pre-auction biddable state.
type CancelTransaction struct {
	AuctionID   string
	Reason      string
	CancelledAt time.Time

	TaskID         string
	OpenBidIDs     []string
	RevertToStatus entities.TaskStatus
}

// IAuctionRepository abstracts DynamoDB persistence for auctions and bids.
//
// Lookups return zero-value entities when the record does not exist.
// Conditional operations return ok=false (without error) when the guard
// failed, so the use case can re-read and classify the conflict.
type IAuctionRepository interface {
	// CreateWithTaskFlag stores the auction and flips the bound task to
	// the auctioning state in one transaction; both succeed or neither.
	// ok=false when the task was no longer biddable or already carried an
	// auction.
	CreateWithTaskFlag(ctx context.Context, a entities.Auction) (ok bool, err error)

	// GetByID and GetByTaskID load an auction with its bids eager-loaded.
	GetByID(ctx context.Context, id string) (entities.Auction, error)
	GetByTaskID(ctx context.Context, taskID string) (entities.Auction, error)

	// TransactionalSubmit stores the bid and, in the same transaction,
	// lowers current_best_price to the bid's price and increments
	// bid_count, guarded on the auction being active, the price strictly
	// improving and the bidder cap not being reached.
	TransactionalSubmit(ctx context.Context, tx SubmitTransaction) (ok bool, err error)

	GetBidByID(ctx context.Context, bidID string) (entities.Bid, error)
	ListBidsByAuction(ctx context.Context, auctionID string) ([]entities.Bid, error)

	// TransactionalResolve finalizes the winner, assigns the task and
	// marks losers; ok=false when the auction was no longer active.
	TransactionalResolve(ctx context.Context, tx ResolveTransaction) (ok bool, err error)

	// TransactionalCancel voids the auction and its open bids and
	// reverts the task; ok=false when the auction was no longer active.
	TransactionalCancel(ctx context.Context, tx CancelTransaction) (ok bool, err error)
}
