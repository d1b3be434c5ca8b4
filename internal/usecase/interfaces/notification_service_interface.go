package interfaces

import "context"

// Auction lifecycle event types published to the notification sink.
const (
	EventAuctionCreated   = "auction.created"
	EventBidSubmitted     = "bid.submitted"
	EventAuctionCompleted = "auction.completed"
	EventAuctionCancelled = "auction.cancelled"
)

// INotificationService abstracts the fire-and-forget notification sink.
//
// Use cases invoke it only after the state change committed, off the
// request path. A non-nil error is for logging; it must never fail or
// roll back the operation that produced the event.
type INotificationService interface {
	Notify(ctx context.Context, eventType string, auctionID string, payload map[string]any) error
}
