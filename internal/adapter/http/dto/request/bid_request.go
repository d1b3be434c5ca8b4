package request

import "strings"

// SubmitBidRequest is a courier's offer against an auction.
type SubmitBidRequest struct {
	BidderID         string  `json:"bidder_id" binding:"required"`
	ProposedPrice    float64 `json:"proposed_price" binding:"required"`
	EstimatedMinutes int     `json:"estimated_minutes"`
	Notes            string  `json:"notes"`
}

func (r SubmitBidRequest) ResolveBidderID() string {
	return strings.TrimSpace(r.BidderID)
}

// AcceptBidRequest resolves the auction to the chosen bid.
type AcceptBidRequest struct {
	ActorID string `json:"actor_id" binding:"required"`
}

func (r AcceptBidRequest) ResolveActorID() string {
	return strings.TrimSpace(r.ActorID)
}
