package usecase

import (
	"context"
	"log"

	"delivery_auction/internal/usecase/interfaces"
)

// publishEvent is the single post-commit notification hook used by every
// operation. It runs only after the atomic state change succeeded and must
// never block, fail or roll back the operation that produced the event:
// delivery happens on its own goroutine, detached from the request's
// cancellation, and every failure is swallowed.
func publishEvent(ctx context.Context, n interfaces.INotificationService, eventType, auctionID string, payload map[string]any) {
	if n == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[auction][notify] sink panic event=%s auction_id=%s recovered=%v", eventType, auctionID, r)
			}
		}()
		if err := n.Notify(ctx, eventType, auctionID, payload); err != nil {
			log.Printf("[auction][notify] sink failed event=%s auction_id=%s err=%v", eventType, auctionID, err)
		}
	}()
}
