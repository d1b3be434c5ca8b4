package response

import (
	"time"

	"delivery_auction/internal/domain/entities"
	"delivery_auction/internal/usecase"
)

type AuctionResponse struct {
	ID                  string        `json:"id"`
	TaskID              string        `json:"task_id"`
	InitialPrice        float64       `json:"initial_price"`
	MinimumPrice        float64       `json:"minimum_price"`
	CurrentBestPrice    float64       `json:"current_best_price"`
	MaxBidders          int           `json:"max_bidders"`
	AutoAcceptThreshold *float64      `json:"auto_accept_threshold,omitempty"`
	DurationHours       float64       `json:"duration_hours"`
	ExpiresAt           time.Time     `json:"expires_at"`
	Status              string        `json:"status"`
	WinningBidID        string        `json:"winning_bid_id,omitempty"`
	BidCount            int           `json:"bid_count"`
	CancelReason        string        `json:"cancel_reason,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
	Bids                []BidResponse `json:"bids,omitempty"`
}

func FromAuction(a entities.Auction) AuctionResponse {
	resp := AuctionResponse{
		ID:                  a.ID,
		TaskID:              a.TaskID,
		InitialPrice:        a.InitialPrice,
		MinimumPrice:        a.MinimumPrice,
		CurrentBestPrice:    a.CurrentBestPrice,
		MaxBidders:          a.MaxBidders,
		AutoAcceptThreshold: a.AutoAcceptThreshold,
		DurationHours:       a.DurationHours,
		ExpiresAt:           a.ExpiresAt,
		Status:              string(a.Status),
		WinningBidID:        a.WinningBidID,
		BidCount:            a.BidCount,
		CancelReason:        a.CancelReason,
		CreatedAt:           a.CreatedAt,
	}
	if len(a.Bids) > 0 {
		ranked := entities.RankBids(a.Bids)
		resp.Bids = make([]BidResponse, 0, len(ranked))
		for i, b := range ranked {
			resp.Bids = append(resp.Bids, FromBid(b, i+1))
		}
	}
	return resp
}

// AuctionResultsResponse is the statistics projection for one auction,
// valid whether the round is still open or already resolved.
type AuctionResultsResponse struct {
	AuctionID         string        `json:"auction_id"`
	TaskID            string        `json:"task_id"`
	Status            string        `json:"status"`
	InitialPrice      float64       `json:"initial_price"`
	CurrentBestPrice  float64       `json:"current_best_price"`
	ExpiresAt         time.Time     `json:"expires_at"`
	TotalBids         int           `json:"total_bids"`
	AveragePrice      float64       `json:"average_price"`
	SavingsAmount     float64       `json:"savings_amount"`
	SavingsPercentage float64       `json:"savings_percentage"`
	WinningBid        *BidResponse  `json:"winning_bid,omitempty"`
	Bids              []BidResponse `json:"bids"`
}

func FromAuctionResults(r usecase.AuctionResults) AuctionResultsResponse {
	resp := AuctionResultsResponse{
		AuctionID:         r.AuctionID,
		TaskID:            r.TaskID,
		Status:            string(r.Status),
		InitialPrice:      r.InitialPrice,
		CurrentBestPrice:  r.CurrentBestPrice,
		ExpiresAt:         r.ExpiresAt,
		TotalBids:         r.TotalBids,
		AveragePrice:      r.AveragePrice,
		SavingsAmount:     r.SavingsAmount,
		SavingsPercentage: r.SavingsPercentage,
		Bids:              make([]BidResponse, 0, len(r.RankedBids)),
	}
	for i, b := range r.RankedBids {
		resp.Bids = append(resp.Bids, FromBid(b, i+1))
	}
	if r.WinningBid != nil {
		wb := FromBid(*r.WinningBid, entities.RankOf(r.RankedBids, r.WinningBid.ID))
		resp.WinningBid = &wb
	}
	return resp
}
