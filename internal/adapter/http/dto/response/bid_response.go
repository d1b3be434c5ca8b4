package response

import (
	"time"

	"delivery_auction/internal/domain/entities"
	"delivery_auction/internal/usecase"
)

type BidResponse struct {
	ID               string    `json:"id"`
	AuctionID        string    `json:"auction_id"`
	BidderID         string    `json:"bidder_id"`
	ProposedPrice    float64   `json:"proposed_price"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	BidderReputation float64   `json:"bidder_reputation"`
	CompositeScore   float64   `json:"composite_score"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes,omitempty"`
	ValidUntil       time.Time `json:"valid_until"`
	CreatedAt        time.Time `json:"created_at"`
	CurrentRank      int       `json:"current_rank,omitempty"`
}

// FromBid converts a bid with its 1-based rank in the auction's live
// ordering; rank 0 means the bid no longer participates.
func FromBid(b entities.Bid, rank int) BidResponse {
	return BidResponse{
		ID:               b.ID,
		AuctionID:        b.AuctionID,
		BidderID:         b.BidderID,
		ProposedPrice:    b.ProposedPrice,
		EstimatedMinutes: b.EstimatedCompletionMinutes,
		BidderReputation: b.BidderReputation,
		CompositeScore:   b.CompositeScore,
		Status:           string(b.Status),
		Notes:            b.Notes,
		ValidUntil:       b.ValidUntil,
		CreatedAt:        b.CreatedAt,
		CurrentRank:      rank,
	}
}

// SubmitBidResponse reports the offer's standing right after intake.
type SubmitBidResponse struct {
	BidID        string `json:"bid_id"`
	CurrentRank  int    `json:"current_rank"`
	IsWinning    bool   `json:"is_winning"`
	AutoAccepted bool   `json:"auto_accepted"`
}

func FromSubmitBidResult(r usecase.SubmitBidResult) SubmitBidResponse {
	return SubmitBidResponse{
		BidID:        r.BidID,
		CurrentRank:  r.CurrentRank,
		IsWinning:    r.IsWinning,
		AutoAccepted: r.AutoAccepted,
	}
}
