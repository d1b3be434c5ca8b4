package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"delivery_auction/internal/domain/entities"
	"delivery_auction/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrAuctionNotFound      = errors.New("auction not found")
	ErrAuctionAlreadyExists = errors.New("auction already exists for this task")
	ErrTaskNotBiddable      = errors.New("task is not in a biddable state")
	ErrInvalidTaskID        = errors.New("invalid task_id")
	ErrInvalidActorID       = errors.New("invalid actor_id")
	ErrInvalidInitialPrice  = errors.New("invalid initial price")
	ErrInvalidMinimumPrice  = errors.New("invalid minimum price")
	ErrInvalidDuration      = errors.New("invalid auction duration")
	ErrInvalidMaxBidders    = errors.New("invalid max bidders")
	ErrInvalidThreshold     = errors.New("invalid auto-accept threshold")
	ErrInvalidAuctionState  = errors.New("auction is not active")
	ErrNotAuthorized        = errors.New("actor not authorized for this operation")
)

// AdminRole is the task-service role allowed to cancel any auction.
const AdminRole = "admin"

// CreateAuctionCommand is the validated input for opening an auction.
type CreateAuctionCommand struct {
	TaskID              string
	InitialPrice        float64
	MinimumPrice        float64
	DurationHours       float64
	MaxBidders          int
	AutoAcceptThreshold *float64
}

// AuctionResults is the statistics projection shared by acceptBid and
// getAuctionResults. For a still-active auction the savings figures are
// computed against the current best price; once resolved they are fixed
// against the winning price.
type AuctionResults struct {
	AuctionID         string
	TaskID            string
	Status            entities.AuctionStatus
	InitialPrice      float64
	CurrentBestPrice  float64
	ExpiresAt         time.Time
	TotalBids         int
	AveragePrice      float64
	SavingsAmount     float64
	SavingsPercentage float64
	WinningBid        *entities.Bid
	RankedBids        []entities.Bid
}

// IAuctionUseCase exposes auction lifecycle operations: creation,
// cancellation and the results projection. Bid intake and resolution live
// in IBidUseCase.

type IAuctionUseCase interface {
	CreateAuction(ctx context.Context, cmd CreateAuctionCommand) (entities.Auction, error)
	GetAuction(ctx context.Context, auctionID string) (entities.Auction, error)
	CancelAuction(ctx context.Context, taskID, actorID, actorRole, reason string) (entities.Auction, error)
	GetResults(ctx context.Context, taskID string) (AuctionResults, error)
}

type AuctionUseCase struct {
	repo     interfaces.IAuctionRepository
	taskRepo interfaces.ITaskRepository
	notifier interfaces.INotificationService
}

var _ IAuctionUseCase = (*AuctionUseCase)(nil)

func NewAuctionUseCase(repo interfaces.IAuctionRepository, taskRepo interfaces.ITaskRepository, notifier interfaces.INotificationService) *AuctionUseCase {
	return &AuctionUseCase{repo: repo, taskRepo: taskRepo, notifier: notifier}
}

// CreateAuction validates the configuration, binds a new active auction to
// the task and flips the task to the auctioning state, atomically.
func (u *AuctionUseCase) CreateAuction(ctx context.Context, cmd CreateAuctionCommand) (entities.Auction, error) {
	cmd.TaskID = strings.TrimSpace(cmd.TaskID)
	log.Printf("[auction][usecase] create start task_id=%s initial_price=%.2f minimum_price=%.2f duration_hours=%.2f max_bidders=%d",
		cmd.TaskID, cmd.InitialPrice, cmd.MinimumPrice, cmd.DurationHours, cmd.MaxBidders)

	if err := validateCreateCommand(cmd); err != nil {
		log.Printf("[auction][usecase] create rejected task_id=%s err=%v", cmd.TaskID, err)
		return entities.Auction{}, err
	}

	task, err := u.taskRepo.GetByID(ctx, cmd.TaskID)
	if err != nil {
		return entities.Auction{}, err
	}
	if task.ID == "" {
		log.Printf("[auction][usecase] task not found task_id=%s", cmd.TaskID)
		return entities.Auction{}, ErrTaskNotFound
	}

	if existing, err := u.repo.GetByTaskID(ctx, cmd.TaskID); err != nil {
		return entities.Auction{}, err
	} else if existing.ID != "" {
		log.Printf("[auction][usecase] auction already exists task_id=%s auction_id=%s", cmd.TaskID, existing.ID)
		return entities.Auction{}, ErrAuctionAlreadyExists
	}

	if !task.Biddable() {
		log.Printf("[auction][usecase] task not biddable task_id=%s status=%s under_auction=%t", task.ID, task.Status, task.UnderAuction)
		return entities.Auction{}, ErrTaskNotBiddable
	}

	now := time.Now().UTC()
	a := entities.Auction{
		ID:                  uuid.NewString(),
		TaskID:              cmd.TaskID,
		InitialPrice:        cmd.InitialPrice,
		MinimumPrice:        cmd.MinimumPrice,
		CurrentBestPrice:    cmd.InitialPrice,
		MaxBidders:          cmd.MaxBidders,
		AutoAcceptThreshold: cmd.AutoAcceptThreshold,
		DurationHours:       cmd.DurationHours,
		ExpiresAt:           now.Add(time.Duration(cmd.DurationHours * float64(time.Hour))),
		Status:              entities.AuctionStatusActive,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	ok, err := u.repo.CreateWithTaskFlag(ctx, a)
	if err != nil {
		log.Printf("[auction][usecase] create failed task_id=%s err=%v", cmd.TaskID, err)
		return entities.Auction{}, err
	}
	if !ok {
		// Lost a race against a concurrent create; re-read to name the
		// conflict.
		log.Printf("[auction][usecase] create lost race task_id=%s", cmd.TaskID)
		if existing, rerr := u.repo.GetByTaskID(ctx, cmd.TaskID); rerr != nil {
			return entities.Auction{}, rerr
		} else if existing.ID != "" {
			return entities.Auction{}, ErrAuctionAlreadyExists
		}
		if fresh, rerr := u.taskRepo.GetByID(ctx, cmd.TaskID); rerr != nil {
			return entities.Auction{}, rerr
		} else if fresh.ID == "" {
			return entities.Auction{}, ErrTaskNotFound
		}
		return entities.Auction{}, ErrTaskNotBiddable
	}
	log.Printf("[auction][usecase] create success task_id=%s auction_id=%s expires_at=%s", cmd.TaskID, a.ID, a.ExpiresAt.Format(time.RFC3339))

	publishEvent(ctx, u.notifier, interfaces.EventAuctionCreated, a.ID, map[string]any{
		"task_id":       a.TaskID,
		"initial_price": a.InitialPrice,
		"minimum_price": a.MinimumPrice,
		"expires_at":    a.ExpiresAt.Format(time.RFC3339Nano),
	})
	return a, nil
}

// GetAuction loads one auction with its bids. The returned status is the
// effective one: a persisted ACTIVE round past its deadline reads as
// EXPIRED without being written back (the janitor owns that write).
func (u *AuctionUseCase) GetAuction(ctx context.Context, auctionID string) (entities.Auction, error) {
	auctionID = strings.TrimSpace(auctionID)
	if auctionID == "" {
		return entities.Auction{}, ErrInvalidAuctionID
	}

	a, err := u.repo.GetByID(ctx, auctionID)
	if err != nil {
		return entities.Auction{}, err
	}
	if a.ID == "" {
		return entities.Auction{}, ErrAuctionNotFound
	}
	a.Status = a.EffectiveStatus(time.Now().UTC())
	return a, nil
}

// CancelAuction voids an active auction and all its open bids, reverting
// the task to its pre-auction biddable state. Allowed for the task owner
// or an administrator.
func (u *AuctionUseCase) CancelAuction(ctx context.Context, taskID, actorID, actorRole, reason string) (entities.Auction, error) {
	taskID = strings.TrimSpace(taskID)
	actorID = strings.TrimSpace(actorID)
	log.Printf("[auction][usecase] cancel start task_id=%s actor_id=%s", taskID, actorID)
	if taskID == "" {
		return entities.Auction{}, ErrInvalidTaskID
	}
	if actorID == "" {
		return entities.Auction{}, ErrInvalidActorID
	}

	a, err := u.repo.GetByTaskID(ctx, taskID)
	if err != nil {
		return entities.Auction{}, err
	}
	if a.ID == "" {
		return entities.Auction{}, ErrAuctionNotFound
	}

	task, err := u.taskRepo.GetByID(ctx, a.TaskID)
	if err != nil {
		return entities.Auction{}, err
	}
	if task.ID == "" {
		return entities.Auction{}, ErrTaskNotFound
	}
	if actorID != task.OwnerID && actorRole != AdminRole {
		log.Printf("[auction][usecase] cancel forbidden task_id=%s actor_id=%s owner_id=%s role=%s", taskID, actorID, task.OwnerID, actorRole)
		return entities.Auction{}, ErrNotAuthorized
	}

	if a.Status != entities.AuctionStatusActive {
		log.Printf("[auction][usecase] cancel invalid state task_id=%s auction_id=%s status=%s", taskID, a.ID, a.Status)
		return entities.Auction{}, ErrInvalidAuctionState
	}

	now := time.Now().UTC()
	openBidIDs := make([]string, 0, len(a.Bids))
	for _, b := range a.Bids {
		if b.Active() {
			openBidIDs = append(openBidIDs, b.ID)
		}
	}

	ok, err := u.repo.TransactionalCancel(ctx, interfaces.CancelTransaction{
		AuctionID:      a.ID,
		Reason:         strings.TrimSpace(reason),
		CancelledAt:    now,
		TaskID:         a.TaskID,
		OpenBidIDs:     openBidIDs,
		RevertToStatus: entities.TaskStatusOpen,
	})
	if err != nil {
		log.Printf("[auction][usecase] cancel failed task_id=%s auction_id=%s err=%v", taskID, a.ID, err)
		return entities.Auction{}, err
	}
	if !ok {
		// Lost a race against accept or another cancel.
		log.Printf("[auction][usecase] cancel lost race task_id=%s auction_id=%s", taskID, a.ID)
		return entities.Auction{}, ErrInvalidAuctionState
	}

	a.Status = entities.AuctionStatusCancelled
	a.CancelReason = strings.TrimSpace(reason)
	a.CancelledAt = &now
	a.UpdatedAt = now
	for i := range a.Bids {
		a.Bids[i].Status = entities.BidStatusCancelled
	}
	log.Printf("[auction][usecase] cancel success task_id=%s auction_id=%s voided_bids=%d", taskID, a.ID, len(openBidIDs))

	publishEvent(ctx, u.notifier, interfaces.EventAuctionCancelled, a.ID, map[string]any{
		"task_id": a.TaskID,
		"reason":  a.CancelReason,
	})
	return a, nil
}

// GetResults projects the auction statistics for a task from current
// persisted state. Works for active, resolved and lazily-expired rounds.
func (u *AuctionUseCase) GetResults(ctx context.Context, taskID string) (AuctionResults, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return AuctionResults{}, ErrInvalidTaskID
	}

	a, err := u.repo.GetByTaskID(ctx, taskID)
	if err != nil {
		return AuctionResults{}, err
	}
	if a.ID == "" {
		return AuctionResults{}, ErrAuctionNotFound
	}
	return buildResults(a, time.Now().UTC()), nil
}

func validateCreateCommand(cmd CreateAuctionCommand) error {
	if cmd.TaskID == "" {
		return ErrInvalidTaskID
	}
	if cmd.InitialPrice < entities.MinInitialPrice {
		return ErrInvalidInitialPrice
	}
	if cmd.MinimumPrice < entities.MinMinimumPrice || cmd.MinimumPrice > cmd.InitialPrice {
		return ErrInvalidMinimumPrice
	}
	if cmd.DurationHours < entities.MinDurationHours || cmd.DurationHours > entities.MaxDurationHours {
		return ErrInvalidDuration
	}
	if cmd.MaxBidders < entities.MinMaxBidders || cmd.MaxBidders > entities.MaxMaxBidders {
		return ErrInvalidMaxBidders
	}
	if t := cmd.AutoAcceptThreshold; t != nil {
		if *t < cmd.MinimumPrice || *t > cmd.InitialPrice {
			return ErrInvalidThreshold
		}
	}
	return nil
}

// buildResults derives the shared statistics projection from an auction
// with its bids eager-loaded.
func buildResults(a entities.Auction, now time.Time) AuctionResults {
	ranked := entities.RankBids(a.Bids)

	res := AuctionResults{
		AuctionID:        a.ID,
		TaskID:           a.TaskID,
		Status:           a.EffectiveStatus(now),
		InitialPrice:     a.InitialPrice,
		CurrentBestPrice: a.CurrentBestPrice,
		ExpiresAt:        a.ExpiresAt,
		TotalBids:        len(ranked),
		RankedBids:       ranked,
	}

	if len(ranked) == 0 {
		return res
	}

	sum := decimal.Zero
	for _, b := range ranked {
		sum = sum.Add(decimal.NewFromFloat(b.ProposedPrice))
	}
	res.AveragePrice = sum.Div(decimal.NewFromInt(int64(len(ranked)))).Round(2).InexactFloat64()

	reference := a.CurrentBestPrice
	if a.Status == entities.AuctionStatusCompleted && a.WinningBidID != "" {
		for i := range a.Bids {
			if a.Bids[i].ID == a.WinningBidID {
				winner := a.Bids[i]
				res.WinningBid = &winner
				reference = winner.ProposedPrice
				break
			}
		}
	}

	initial := decimal.NewFromFloat(a.InitialPrice)
	savings := initial.Sub(decimal.NewFromFloat(reference))
	res.SavingsAmount = savings.Round(2).InexactFloat64()
	res.SavingsPercentage = savings.Div(initial).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
	return res
}
