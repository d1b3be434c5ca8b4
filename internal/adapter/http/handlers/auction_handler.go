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

var errInvalidAuctionPayload = pkg.NewDomainErrorSimple("INVALID_AUCTION_INPUT", "Invalid auction payload", http.StatusBadRequest)

// AuctionHandler handles HTTP requests for the auction lifecycle:
// creation, cancellation and the results projection.

type AuctionHandler struct {
	usecase usecase.IAuctionUseCase
}

func NewAuctionHandler(uc usecase.IAuctionUseCase) *AuctionHandler {
	return &AuctionHandler{usecase: uc}
}

// CreateAuction opens a reverse auction bound to a task.
func (h *AuctionHandler) CreateAuction(c *gin.Context) {
	var payload request.CreateAuctionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuctionPayload.HTTPStatus, errInvalidAuctionPayload.ToHTTPError())
		return
	}

	log.Printf("[auction][handler] create start task_id=%s", payload.ResolveTaskID())
	created, err := h.usecase.CreateAuction(c.Request.Context(), usecase.CreateAuctionCommand{
		TaskID:              payload.ResolveTaskID(),
		InitialPrice:        payload.InitialPrice,
		MinimumPrice:        payload.MinimumPrice,
		DurationHours:       payload.DurationHours,
		MaxBidders:          payload.MaxBidders,
		AutoAcceptThreshold: payload.AutoAcceptThreshold,
	})
	if err != nil {
		log.Printf("[auction][handler] create failed task_id=%s err=%v", payload.ResolveTaskID(), err)
		appErr := mapAuctionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAuction(created))
}

// GetAuction returns one auction with its ranked bids.
func (h *AuctionHandler) GetAuction(c *gin.Context) {
	auctionID := c.Param("auction_id")

	a, err := h.usecase.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		appErr := mapAuctionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuction(a))
}

// GetResultsByTaskID returns the statistics projection for the auction
// bound to a task.
func (h *AuctionHandler) GetResultsByTaskID(c *gin.Context) {
	taskID := c.Param("task_id")

	results, err := h.usecase.GetResults(c.Request.Context(), taskID)
	if err != nil {
		appErr := mapAuctionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuctionResults(results))
}

// CancelAuctionByTaskID voids the auction bound to a task.
func (h *AuctionHandler) CancelAuctionByTaskID(c *gin.Context) {
	taskID := c.Param("task_id")

	var payload request.CancelAuctionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuctionPayload.HTTPStatus, errInvalidAuctionPayload.ToHTTPError())
		return
	}

	log.Printf("[auction][handler] cancel start task_id=%s actor_id=%s", taskID, payload.ResolveActorID())
	cancelled, err := h.usecase.CancelAuction(c.Request.Context(), taskID, payload.ResolveActorID(), payload.ActorRole, payload.Reason)
	if err != nil {
		log.Printf("[auction][handler] cancel failed task_id=%s err=%v", taskID, err)
		appErr := mapAuctionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuction(cancelled))
}

func mapAuctionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTaskID),
		errors.Is(err, usecase.ErrInvalidAuctionID),
		errors.Is(err, usecase.ErrInvalidActorID),
		errors.Is(err, usecase.ErrInvalidInitialPrice),
		errors.Is(err, usecase.ErrInvalidMinimumPrice),
		errors.Is(err, usecase.ErrInvalidDuration),
		errors.Is(err, usecase.ErrInvalidMaxBidders),
		errors.Is(err, usecase.ErrInvalidThreshold):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTaskNotFound):
		return pkg.NewDomainErrorSimple("TASK_NOT_FOUND", "Task not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAuctionNotFound):
		return pkg.NewDomainErrorSimple("AUCTION_NOT_FOUND", "Auction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAuctionAlreadyExists):
		return pkg.NewDomainErrorSimple("AUCTION_ALREADY_EXISTS", "An auction already exists for this task", http.StatusConflict)
	case errors.Is(err, usecase.ErrTaskNotBiddable):
		return pkg.NewDomainErrorSimple("TASK_NOT_BIDDABLE", "Task is not open for bidding", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidAuctionState):
		return pkg.NewDomainErrorSimple("INVALID_AUCTION_STATE", "Auction is not active", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor is not allowed to perform this operation", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
