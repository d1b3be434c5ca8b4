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
)

var (
	ErrInvalidAuctionID        = errors.New("invalid auction_id")
	ErrInvalidBidID            = errors.New("invalid bid_id")
	ErrInvalidBidderID         = errors.New("invalid bidder_id")
	ErrInvalidProposedPrice    = errors.New("invalid proposed price")
	ErrInvalidEstimatedMinutes = errors.New("invalid estimated completion minutes")
	ErrAuctionExpired          = errors.New("auction deadline has passed")
	ErrPriceBelowMinimum       = errors.New("proposed price is below the auction floor")
	ErrBidNotCompetitive       = errors.New("proposed price does not beat the current best price")
	ErrDuplicateBid            = errors.New("bidder already has an open bid on this auction")
	ErrAuctionFull             = errors.New("auction reached its maximum number of bidders")
	ErrBidNotFound             = errors.New("bid not found")
)

// SubmitBidCommand is the validated input for one offer.
type SubmitBidCommand struct {
	AuctionID        string
	BidderID         string
	ProposedPrice    float64
	EstimatedMinutes int
	Notes            string
}

// SubmitBidResult reports the bid's live standing right after insertion.
type SubmitBidResult struct {
	BidID        string
	CurrentRank  int
	IsWinning    bool
	AutoAccepted bool
}

// IBidUseCase covers bid intake/ranking and auction resolution.

type IBidUseCase interface {
	SubmitBid(ctx context.Context, cmd SubmitBidCommand) (SubmitBidResult, error)
	AcceptBid(ctx context.Context, bidID, actorID string, isAutomatic bool) (AuctionResults, error)
}

type BidUseCase struct {
	repo       interfaces.IAuctionRepository
	taskRepo   interfaces.ITaskRepository
	reputation interfaces.IReputationService
	notifier   interfaces.INotificationService
}

var _ IBidUseCase = (*BidUseCase)(nil)

func NewBidUseCase(repo interfaces.IAuctionRepository, taskRepo interfaces.ITaskRepository, reputation interfaces.IReputationService, notifier interfaces.INotificationService) *BidUseCase {
	return &BidUseCase{repo: repo, taskRepo: taskRepo, reputation: reputation, notifier: notifier}
}

// SubmitBid validates, scores and records an offer, updating the
// auction's best price atomically so racing submissions cannot both pass
// the strict-improvement check. When the auto-accept threshold is met by
// a winning bid, the auction resolves immediately.
func (u *BidUseCase) SubmitBid(ctx context.Context, cmd SubmitBidCommand) (SubmitBidResult, error) {
	cmd.AuctionID = strings.TrimSpace(cmd.AuctionID)
	cmd.BidderID = strings.TrimSpace(cmd.BidderID)
	log.Printf("[bid][usecase] submit start auction_id=%s bidder_id=%s proposed_price=%.2f", cmd.AuctionID, cmd.BidderID, cmd.ProposedPrice)

	if cmd.AuctionID == "" {
		return SubmitBidResult{}, ErrInvalidAuctionID
	}
	if cmd.BidderID == "" {
		return SubmitBidResult{}, ErrInvalidBidderID
	}
	if cmd.ProposedPrice <= 0 {
		return SubmitBidResult{}, ErrInvalidProposedPrice
	}
	if cmd.EstimatedMinutes == 0 {
		cmd.EstimatedMinutes = entities.DefaultEstimatedMinutes
	}
	if cmd.EstimatedMinutes < entities.MinEstimatedMinutes {
		return SubmitBidResult{}, ErrInvalidEstimatedMinutes
	}

	a, err := u.repo.GetByID(ctx, cmd.AuctionID)
	if err != nil {
		return SubmitBidResult{}, err
	}
	if a.ID == "" {
		return SubmitBidResult{}, ErrAuctionNotFound
	}

	now := time.Now().UTC()
	if err := checkBidAgainstAuction(a, cmd, now); err != nil {
		log.Printf("[bid][usecase] submit rejected auction_id=%s bidder_id=%s err=%v", cmd.AuctionID, cmd.BidderID, err)
		return SubmitBidResult{}, err
	}

	reputation := u.lookupReputation(ctx, cmd.BidderID)
	score := entities.CompositeScore(a.InitialPrice, cmd.ProposedPrice, reputation, cmd.EstimatedMinutes)

	bid := entities.Bid{
		ID:                         uuid.NewString(),
		AuctionID:                  a.ID,
		BidderID:                   cmd.BidderID,
		ProposedPrice:              cmd.ProposedPrice,
		EstimatedCompletionMinutes: cmd.EstimatedMinutes,
		BidderReputation:           reputation,
		CompositeScore:             score,
		Status:                     entities.BidStatusOpen,
		Notes:                      strings.TrimSpace(cmd.Notes),
		ValidUntil:                 now.Add(entities.DefaultBidValidity),
		CreatedAt:                  now,
	}

	// Serialization point: one transaction stores the bid and advances the
	// best price, re-checking status, strict improvement and capacity
	// against the stored item. Losing the race means some check above no
	// longer holds; re-read to name which one.
	ok, err := u.repo.TransactionalSubmit(ctx, interfaces.SubmitTransaction{
		Bid:        bid,
		MaxBidders: a.MaxBidders,
	})
	if err != nil {
		log.Printf("[bid][usecase] submit tx failed auction_id=%s bid_id=%s err=%v", a.ID, bid.ID, err)
		return SubmitBidResult{}, err
	}
	if !ok {
		fresh, ferr := u.repo.GetByID(ctx, a.ID)
		if ferr != nil {
			return SubmitBidResult{}, ferr
		}
		if cerr := checkBidAgainstAuction(fresh, cmd, time.Now().UTC()); cerr != nil {
			log.Printf("[bid][usecase] submit lost race auction_id=%s bidder_id=%s err=%v", cmd.AuctionID, cmd.BidderID, cerr)
			return SubmitBidResult{}, cerr
		}
		return SubmitBidResult{}, ErrBidNotCompetitive
	}

	bids, err := u.repo.ListBidsByAuction(ctx, a.ID)
	if err != nil {
		return SubmitBidResult{}, err
	}
	ranked := entities.RankBids(bids)
	rank := entities.RankOf(ranked, bid.ID)

	res := SubmitBidResult{
		BidID:       bid.ID,
		CurrentRank: rank,
		IsWinning:   rank == 1,
	}
	log.Printf("[bid][usecase] submit success auction_id=%s bid_id=%s rank=%d score=%.2f", a.ID, bid.ID, rank, score)

	if t := a.AutoAcceptThreshold; t != nil && cmd.ProposedPrice <= *t && res.IsWinning {
		if _, err := u.AcceptBid(ctx, bid.ID, "", true); err != nil {
			// The bid stands; the owner can still accept manually.
			log.Printf("[bid][usecase] auto-accept failed auction_id=%s bid_id=%s err=%v", a.ID, bid.ID, err)
		} else {
			res.AutoAccepted = true
		}
	}

	publishEvent(ctx, u.notifier, interfaces.EventBidSubmitted, a.ID, map[string]any{
		"bid_id":         bid.ID,
		"bidder_id":      bid.BidderID,
		"proposed_price": bid.ProposedPrice,
		"current_rank":   res.CurrentRank,
		"is_winning":     res.IsWinning,
		"auto_accepted":  res.AutoAccepted,
	})
	return res, nil
}

// AcceptBid resolves an active auction to the chosen bid: the bid is
// accepted, every other open bid is marked lost and the task is assigned
// to the winner at the bid's price, in one transaction. Manual accepts
// require the task owner; isAutomatic marks the system-invoked
// auto-accept path, which bypasses the ownership check.
func (u *BidUseCase) AcceptBid(ctx context.Context, bidID, actorID string, isAutomatic bool) (AuctionResults, error) {
	bidID = strings.TrimSpace(bidID)
	actorID = strings.TrimSpace(actorID)
	log.Printf("[bid][usecase] accept start bid_id=%s actor_id=%s automatic=%t", bidID, actorID, isAutomatic)
	if bidID == "" {
		return AuctionResults{}, ErrInvalidBidID
	}
	if !isAutomatic && actorID == "" {
		return AuctionResults{}, ErrInvalidActorID
	}

	bid, err := u.repo.GetBidByID(ctx, bidID)
	if err != nil {
		return AuctionResults{}, err
	}
	if bid.ID == "" {
		return AuctionResults{}, ErrBidNotFound
	}

	a, err := u.repo.GetByID(ctx, bid.AuctionID)
	if err != nil {
		return AuctionResults{}, err
	}
	if a.ID == "" {
		return AuctionResults{}, ErrAuctionNotFound
	}

	if a.Status != entities.AuctionStatusActive {
		log.Printf("[bid][usecase] accept invalid state auction_id=%s status=%s", a.ID, a.Status)
		return AuctionResults{}, ErrInvalidAuctionState
	}
	now := time.Now().UTC()
	if a.PastDeadline(now) {
		log.Printf("[bid][usecase] accept past deadline auction_id=%s expires_at=%s", a.ID, a.ExpiresAt.Format(time.RFC3339))
		return AuctionResults{}, ErrAuctionExpired
	}
	if bid.Status != entities.BidStatusOpen {
		return AuctionResults{}, ErrInvalidAuctionState
	}

	task, err := u.taskRepo.GetByID(ctx, a.TaskID)
	if err != nil {
		return AuctionResults{}, err
	}
	if task.ID == "" {
		return AuctionResults{}, ErrTaskNotFound
	}
	if !isAutomatic && actorID != task.OwnerID {
		log.Printf("[bid][usecase] accept forbidden auction_id=%s actor_id=%s owner_id=%s", a.ID, actorID, task.OwnerID)
		return AuctionResults{}, ErrNotAuthorized
	}

	losingBidIDs := make([]string, 0, len(a.Bids))
	for _, b := range a.Bids {
		if b.ID != bid.ID && b.Active() {
			losingBidIDs = append(losingBidIDs, b.ID)
		}
	}

	ok, err := u.repo.TransactionalResolve(ctx, interfaces.ResolveTransaction{
		AuctionID:    a.ID,
		WinningBidID: bid.ID,
		CompletedAt:  now,
		TaskID:       a.TaskID,
		AssignedTo:   bid.BidderID,
		AgreedPrice:  bid.ProposedPrice,
		LosingBidIDs: losingBidIDs,
	})
	if err != nil {
		log.Printf("[bid][usecase] resolve failed auction_id=%s bid_id=%s err=%v", a.ID, bid.ID, err)
		return AuctionResults{}, err
	}
	if !ok {
		// Another accept or a cancel won the race.
		log.Printf("[bid][usecase] resolve lost race auction_id=%s bid_id=%s", a.ID, bid.ID)
		return AuctionResults{}, ErrInvalidAuctionState
	}

	a.Status = entities.AuctionStatusCompleted
	a.WinningBidID = bid.ID
	a.CompletedAt = &now
	a.UpdatedAt = now
	for i := range a.Bids {
		if a.Bids[i].ID == bid.ID {
			a.Bids[i].Status = entities.BidStatusAccepted
		} else if a.Bids[i].Active() {
			a.Bids[i].Status = entities.BidStatusLost
		}
	}

	results := buildResults(a, now)
	log.Printf("[bid][usecase] accept success auction_id=%s bid_id=%s winner_id=%s winning_price=%.2f savings=%.2f",
		a.ID, bid.ID, bid.BidderID, bid.ProposedPrice, results.SavingsAmount)

	publishEvent(ctx, u.notifier, interfaces.EventAuctionCompleted, a.ID, map[string]any{
		"task_id":            a.TaskID,
		"winning_bid_id":     bid.ID,
		"winner_id":          bid.BidderID,
		"winning_price":      bid.ProposedPrice,
		"savings_amount":     results.SavingsAmount,
		"savings_percentage": results.SavingsPercentage,
		"automatic":          isAutomatic,
	})
	return results, nil
}

// checkBidAgainstAuction runs the submit validations in their fixed
// order: active status, deadline, floor, strict improvement, duplicate
// bidder, capacity. The first failing check wins.
func checkBidAgainstAuction(a entities.Auction, cmd SubmitBidCommand, now time.Time) error {
	if a.Status != entities.AuctionStatusActive {
		return ErrInvalidAuctionState
	}
	if a.PastDeadline(now) {
		return ErrAuctionExpired
	}
	if cmd.ProposedPrice < a.MinimumPrice {
		return ErrPriceBelowMinimum
	}
	if cmd.ProposedPrice >= a.CurrentBestPrice {
		return ErrBidNotCompetitive
	}
	activeBids := 0
	for _, b := range a.Bids {
		if !b.Active() {
			continue
		}
		if b.BidderID == cmd.BidderID {
			return ErrDuplicateBid
		}
		activeBids++
	}
	if activeBids >= a.MaxBidders {
		return ErrAuctionFull
	}
	return nil
}

// lookupReputation snapshots the bidder's rating. A lookup failure only
// degrades the snapshot to the neutral default; it never blocks intake.
func (u *BidUseCase) lookupReputation(ctx context.Context, bidderID string) float64 {
	if u.reputation == nil {
		return entities.NeutralReputation
	}
	rating, err := u.reputation.GetAverageRating(ctx, bidderID)
	if err != nil {
		log.Printf("[bid][usecase] reputation lookup failed bidder_id=%s err=%v", bidderID, err)
		return entities.NeutralReputation
	}
	if rating < 0 || rating > 5 {
		log.Printf("[bid][usecase] reputation out of range bidder_id=%s rating=%.2f", bidderID, rating)
		return entities.NeutralReputation
	}
	return rating
}
