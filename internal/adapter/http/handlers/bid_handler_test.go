package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"delivery_auction/internal/adapter/http/handlers/mocks"
	"delivery_auction/internal/domain/entities"
	"delivery_auction/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBidHandler_SubmitBid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc)

		r := gin.New()
		r.POST("/v1/auctions/:auction_id/bids", h.SubmitBid)

		req := httptest.NewRequest(http.MethodPost, "/v1/auctions/a-1/bids", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing proposed price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc)

		r := gin.New()
		r.POST("/v1/auctions/:auction_id/bids", h.SubmitBid)

		req := httptest.NewRequest(http.MethodPost, "/v1/auctions/a-1/bids", bytes.NewBufferString(`{"bidder_id":"courier-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("error taxonomy maps to status codes", func(t *testing.T) {
		cases := []struct {
			err  error
			code int
			want string
		}{
			{usecase.ErrAuctionNotFound, http.StatusNotFound, "AUCTION_NOT_FOUND"},
			{usecase.ErrAuctionExpired, http.StatusGone, "AUCTION_EXPIRED"},
			{usecase.ErrPriceBelowMinimum, http.StatusUnprocessableEntity, "PRICE_BELOW_MINIMUM"},
			{usecase.ErrBidNotCompetitive, http.StatusUnprocessableEntity, "BID_NOT_COMPETITIVE"},
			{usecase.ErrDuplicateBid, http.StatusConflict, "DUPLICATE_BID"},
			{usecase.ErrAuctionFull, http.StatusConflict, "AUCTION_FULL"},
			{usecase.ErrInvalidAuctionState, http.StatusConflict, "INVALID_AUCTION_STATE"},
		}

		for _, tc := range cases {
			t.Run(tc.want, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIBidUseCase(ctrl)
				h := NewBidHandler(uc)

				r := gin.New()
				r.POST("/v1/auctions/:auction_id/bids", h.SubmitBid)

				uc.EXPECT().SubmitBid(gomock.Any(), gomock.Any()).Return(usecase.SubmitBidResult{}, tc.err)

				body := `{"bidder_id":"courier-1","proposed_price":15}`
				req := httptest.NewRequest(http.MethodPost, "/v1/auctions/a-1/bids", bytes.NewBufferString(body))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != tc.code {
					t.Fatalf("expected %d, got %d", tc.code, w.Code)
				}
				var envelope map[string]string
				if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
					t.Fatalf("invalid error body: %v", err)
				}
				if envelope["code"] != tc.want {
					t.Fatalf("expected %s, got %q", tc.want, envelope["code"])
				}
			})
		}
	})

	t.Run("submit success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc)

		r := gin.New()
		r.POST("/v1/auctions/:auction_id/bids", h.SubmitBid)

		uc.EXPECT().SubmitBid(gomock.Any(), gomock.AssignableToTypeOf(usecase.SubmitBidCommand{})).DoAndReturn(
			func(_ context.Context, cmd usecase.SubmitBidCommand) (usecase.SubmitBidResult, error) {
				if cmd.AuctionID != "a-1" || cmd.BidderID != "courier-1" || cmd.ProposedPrice != 15.0 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				if cmd.EstimatedMinutes != 45 || cmd.Notes != "have a cargo bike" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return usecase.SubmitBidResult{BidID: "b-1", CurrentRank: 1, IsWinning: true}, nil
			},
		)

		body := `{"bidder_id":"courier-1","proposed_price":15,"estimated_minutes":45,"notes":"have a cargo bike"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/auctions/a-1/bids", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["bid_id"] != "b-1" || resp["is_winning"] != true || resp["auto_accepted"] != false {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestBidHandler_AcceptBid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing actor id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc)

		r := gin.New()
		r.POST("/v1/bids/:bid_id/accept", h.AcceptBid)

		req := httptest.NewRequest(http.MethodPost, "/v1/bids/b-1/accept", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("forbidden maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc)

		r := gin.New()
		r.POST("/v1/bids/:bid_id/accept", h.AcceptBid)

		uc.EXPECT().AcceptBid(gomock.Any(), "b-1", "intruder", false).Return(usecase.AuctionResults{}, usecase.ErrNotAuthorized)

		req := httptest.NewRequest(http.MethodPost, "/v1/bids/b-1/accept", bytes.NewBufferString(`{"actor_id":"intruder"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("second accept maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc)

		r := gin.New()
		r.POST("/v1/bids/:bid_id/accept", h.AcceptBid)

		uc.EXPECT().AcceptBid(gomock.Any(), "b-1", "owner-1", false).Return(usecase.AuctionResults{}, usecase.ErrInvalidAuctionState)

		req := httptest.NewRequest(http.MethodPost, "/v1/bids/b-1/accept", bytes.NewBufferString(`{"actor_id":"owner-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("accept success returns results", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc)

		r := gin.New()
		r.POST("/v1/bids/:bid_id/accept", h.AcceptBid)

		winner := entities.Bid{ID: "b-1", BidderID: "courier-1", ProposedPrice: 15.0, Status: entities.BidStatusAccepted}
		uc.EXPECT().AcceptBid(gomock.Any(), "b-1", "owner-1", false).Return(usecase.AuctionResults{
			AuctionID:         "a-1",
			TaskID:            "task-1",
			Status:            entities.AuctionStatusCompleted,
			InitialPrice:      20.0,
			CurrentBestPrice:  15.0,
			TotalBids:         1,
			AveragePrice:      15.0,
			SavingsAmount:     5.0,
			SavingsPercentage: 25.0,
			WinningBid:        &winner,
			RankedBids:        []entities.Bid{winner},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/bids/b-1/accept", bytes.NewBufferString(`{"actor_id":"owner-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Status        string  `json:"status"`
			SavingsAmount float64 `json:"savings_amount"`
			WinningBid    *struct {
				ID string `json:"id"`
			} `json:"winning_bid"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Status != "completed" || resp.SavingsAmount != 5.0 {
			t.Fatalf("unexpected response: %+v", resp)
		}
		if resp.WinningBid == nil || resp.WinningBid.ID != "b-1" {
			t.Fatalf("unexpected winner: %+v", resp.WinningBid)
		}
	})
}
