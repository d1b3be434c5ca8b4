package request

import "strings"

// CreateAuctionRequest opens a reverse auction for a task.
//
// Bounds are enforced by the use case, not by binding tags, so every
// violation maps to the same stable error envelope.
type CreateAuctionRequest struct {
	TaskID              string   `json:"task_id" binding:"required"`
	InitialPrice        float64  `json:"initial_price" binding:"required"`
	MinimumPrice        float64  `json:"minimum_price" binding:"required"`
	DurationHours       float64  `json:"duration_hours" binding:"required"`
	MaxBidders          int      `json:"max_bidders" binding:"required"`
	AutoAcceptThreshold *float64 `json:"auto_accept_threshold"`
}

func (r CreateAuctionRequest) ResolveTaskID() string {
	return strings.TrimSpace(r.TaskID)
}

// CancelAuctionRequest voids the auction bound to a task.
type CancelAuctionRequest struct {
	ActorID   string `json:"actor_id" binding:"required"`
	ActorRole string `json:"actor_role"`
	Reason    string `json:"reason"`
}

func (r CancelAuctionRequest) ResolveActorID() string {
	return strings.TrimSpace(r.ActorID)
}
