package handlers

import (
	"errors"
	"log"
	"net/http"

	request "delivery_auction/internal/adapter/http/dto/request"
	response "delivery_auction/internal/adapter/http/dto/response"
	"delivery_auction/internal/usecase"
	"delivery_auction/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBidPayload = pkg.NewDomainErrorSimple("INVALID_BID_INPUT", "Invalid bid payload", http.StatusBadRequest)

// BidHandler handles HTTP requests for bid intake and auction resolution.

type BidHandler struct {
	usecase usecase.IBidUseCase
}

func NewBidHandler(uc usecase.IBidUseCase) *BidHandler {
	return &BidHandler{usecase: uc}
}

// SubmitBid records a courier's offer against the auction in the path.
func (h *BidHandler) SubmitBid(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var payload request.SubmitBidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	log.Printf("[bid][handler] submit start auction_id=%s bidder_id=%s", auctionID, payload.ResolveBidderID())
	result, err := h.usecase.SubmitBid(c.Request.Context(), usecase.SubmitBidCommand{
		AuctionID:        auctionID,
		BidderID:         payload.ResolveBidderID(),
		ProposedPrice:    payload.ProposedPrice,
		EstimatedMinutes: payload.EstimatedMinutes,
		Notes:            payload.Notes,
	})
	if err != nil {
		log.Printf("[bid][handler] submit failed auction_id=%s bidder_id=%s err=%v", auctionID, payload.ResolveBidderID(), err)
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[bid][handler] submit success auction_id=%s bid_id=%s rank=%d auto_accepted=%t", auctionID, result.BidID, result.CurrentRank, result.AutoAccepted)

	c.JSON(http.StatusCreated, response.FromSubmitBidResult(result))
}

// AcceptBid resolves the auction to the bid in the path. Manual path
// only: the automatic variant is invoked internally by bid intake.
func (h *BidHandler) AcceptBid(c *gin.Context) {
	bidID := c.Param("bid_id")

	var payload request.AcceptBidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	log.Printf("[bid][handler] accept start bid_id=%s actor_id=%s", bidID, payload.ResolveActorID())
	results, err := h.usecase.AcceptBid(c.Request.Context(), bidID, payload.ResolveActorID(), false)
	if err != nil {
		log.Printf("[bid][handler] accept failed bid_id=%s err=%v", bidID, err)
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[bid][handler] accept success bid_id=%s auction_id=%s savings=%.2f", bidID, results.AuctionID, results.SavingsAmount)

	c.JSON(http.StatusOK, response.FromAuctionResults(results))
}

func mapBidError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAuctionID),
		errors.Is(err, usecase.ErrInvalidBidID),
		errors.Is(err, usecase.ErrInvalidBidderID),
		errors.Is(err, usecase.ErrInvalidActorID),
		errors.Is(err, usecase.ErrInvalidProposedPrice),
		errors.Is(err, usecase.ErrInvalidEstimatedMinutes):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAuctionNotFound):
		return pkg.NewDomainErrorSimple("AUCTION_NOT_FOUND", "Auction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBidNotFound):
		return pkg.NewDomainErrorSimple("BID_NOT_FOUND", "Bid not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTaskNotFound):
		return pkg.NewDomainErrorSimple("TASK_NOT_FOUND", "Task not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAuctionExpired):
		return pkg.NewDomainErrorSimple("AUCTION_EXPIRED", "Auction deadline has passed", http.StatusGone)
	case errors.Is(err, usecase.ErrPriceBelowMinimum):
		return pkg.NewDomainErrorSimple("PRICE_BELOW_MINIMUM", "Proposed price is below the auction floor", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrBidNotCompetitive):
		return pkg.NewDomainErrorSimple("BID_NOT_COMPETITIVE", "Proposed price must beat the current best price", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDuplicateBid):
		return pkg.NewDomainErrorSimple("DUPLICATE_BID", "Bidder already has an open bid on this auction", http.StatusConflict)
	case errors.Is(err, usecase.ErrAuctionFull):
		return pkg.NewDomainErrorSimple("AUCTION_FULL", "Auction reached its maximum number of bidders", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidAuctionState):
		return pkg.NewDomainErrorSimple("INVALID_AUCTION_STATE", "Auction is not active", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor is not allowed to perform this operation", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
