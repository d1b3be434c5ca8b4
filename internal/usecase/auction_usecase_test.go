package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"delivery_auction/internal/domain/entities"
	"delivery_auction/internal/usecase/interfaces"
	mock_interfaces "delivery_auction/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func floatPtr(v float64) *float64 { return &v }

func validCreateCommand() CreateAuctionCommand {
	return CreateAuctionCommand{
		TaskID:        "task-1",
		InitialPrice:  20.0,
		MinimumPrice:  8.0,
		DurationHours: 2.0,
		MaxBidders:    5,
	}
}

func TestAuctionUseCase_CreateAuction(t *testing.T) {
	t.Run("invalid task id", func(t *testing.T) {
		uc := NewAuctionUseCase(nil, nil, nil)
		cmd := validCreateCommand()
		cmd.TaskID = "   "
		_, err := uc.CreateAuction(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidTaskID) {
			t.Fatalf("expected ErrInvalidTaskID, got %v", err)
		}
	})

	t.Run("initial price below floor", func(t *testing.T) {
		uc := NewAuctionUseCase(nil, nil, nil)
		cmd := validCreateCommand()
		cmd.InitialPrice = 4.99
		_, err := uc.CreateAuction(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidInitialPrice) {
			t.Fatalf("expected ErrInvalidInitialPrice, got %v", err)
		}
	})

	t.Run("minimum price above initial price", func(t *testing.T) {
		uc := NewAuctionUseCase(nil, nil, nil)
		cmd := validCreateCommand()
		cmd.MinimumPrice = 25.0
		_, err := uc.CreateAuction(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidMinimumPrice) {
			t.Fatalf("expected ErrInvalidMinimumPrice, got %v", err)
		}
	})

	t.Run("duration just outside bounds", func(t *testing.T) {
		uc := NewAuctionUseCase(nil, nil, nil)
		for _, hours := range []float64{0.49, 24.01} {
			cmd := validCreateCommand()
			cmd.DurationHours = hours
			_, err := uc.CreateAuction(context.Background(), cmd)
			if !errors.Is(err, ErrInvalidDuration) {
				t.Fatalf("hours=%v: expected ErrInvalidDuration, got %v", hours, err)
			}
		}
	})

	t.Run("max bidders out of bounds", func(t *testing.T) {
		uc := NewAuctionUseCase(nil, nil, nil)
		for _, n := range []int{2, 21} {
			cmd := validCreateCommand()
			cmd.MaxBidders = n
			_, err := uc.CreateAuction(context.Background(), cmd)
			if !errors.Is(err, ErrInvalidMaxBidders) {
				t.Fatalf("max_bidders=%d: expected ErrInvalidMaxBidders, got %v", n, err)
			}
		}
	})

	t.Run("threshold outside price band", func(t *testing.T) {
		uc := NewAuctionUseCase(nil, nil, nil)
		for _, v := range []float64{7.99, 20.01} {
			cmd := validCreateCommand()
			cmd.AutoAcceptThreshold = floatPtr(v)
			_, err := uc.CreateAuction(context.Background(), cmd)
			if !errors.Is(err, ErrInvalidThreshold) {
				t.Fatalf("threshold=%v: expected ErrInvalidThreshold, got %v", v, err)
			}
		}
	})

	t.Run("task not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		taskRepo := mock_interfaces.NewMockITaskRepository(ctrl)
		uc := NewAuctionUseCase(nil, taskRepo, nil)

		taskRepo.EXPECT().GetByID(gomock.Any(), "task-1").Return(entities.Task{}, nil)

		_, err := uc.CreateAuction(context.Background(), validCreateCommand())
		if !errors.Is(err, ErrTaskNotFound) {
			t.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("auction already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		taskRepo := mock_interfaces.NewMockITaskRepository(ctrl)
		uc := NewAuctionUseCase(repo, taskRepo, nil)

		taskRepo.EXPECT().GetByID(gomock.Any(), "task-1").Return(entities.Task{ID: "task-1", Status: entities.TaskStatusOpen}, nil)
		repo.EXPECT().GetByTaskID(gomock.Any(), "task-1").Return(entities.Auction{ID: "existing"}, nil)

		_, err := uc.CreateAuction(context.Background(), validCreateCommand())
		if !errors.Is(err, ErrAuctionAlreadyExists) {
			t.Fatalf("expected ErrAuctionAlreadyExists, got %v", err)
		}
	})

	t.Run("task not biddable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		taskRepo := mock_interfaces.NewMockITaskRepository(ctrl)
		uc := NewAuctionUseCase(repo, taskRepo, nil)

		taskRepo.EXPECT().GetByID(gomock.Any(), "task-1").Return(entities.Task{ID: "task-1", Status: entities.TaskStatusAssigned}, nil)
		repo.EXPECT().GetByTaskID(gomock.Any(), "task-1").Return(entities.Auction{}, nil)

		_, err := uc.CreateAuction(context.Background(), validCreateCommand())
		if !errors.Is(err, ErrTaskNotBiddable) {
			t.Fatalf("expected ErrTaskNotBiddable, got %v", err)
		}
	})

	t.Run("create success at half-hour minimum duration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		taskRepo := mock_interfaces.NewMockITaskRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationService(ctrl)
		uc := NewAuctionUseCase(repo, taskRepo, notifier)

		taskRepo.EXPECT().GetByID(gomock.Any(), "task-1").Return(entities.Task{ID: "task-1", OwnerID: "owner-1", Status: entities.TaskStatusOpen}, nil)
		repo.EXPECT().GetByTaskID(gomock.Any(), "task-1").Return(entities.Auction{}, nil)
		repo.EXPECT().CreateWithTaskFlag(gomock.Any(), gomock.AssignableToTypeOf(entities.Auction{})).DoAndReturn(
			func(_ context.Context, a entities.Auction) (bool, error) {
				if a.ID == "" || a.TaskID != "task-1" {
					t.Fatalf("unexpected auction: %+v", a)
				}
				if a.Status != entities.AuctionStatusActive {
					t.Fatalf("expected active status, got %v", a.Status)
				}
				if a.CurrentBestPrice != a.InitialPrice {
					t.Fatalf("best price should start at the ceiling, got %v", a.CurrentBestPrice)
				}
				if got := a.ExpiresAt.Sub(a.CreatedAt); got != 30*time.Minute {
					t.Fatalf("expected 30m window, got %v", got)
				}
				if a.BidCount != 0 || a.WinningBidID != "" {
					t.Fatalf("expected pristine round: %+v", a)
				}
				return true, nil
			},
		)
		published := make(chan struct{})
		notifier.EXPECT().Notify(gomock.Any(), interfaces.EventAuctionCreated, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, _ map[string]any) error {
				close(published)
				return nil
			},
		)

		cmd := validCreateCommand()
		cmd.TaskID = " task-1 "
		cmd.DurationHours = 0.5
		created, err := uc.CreateAuction(context.Background(), cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.TaskID != "task-1" {
			t.Fatalf("expected trimmed task id, got %q", created.TaskID)
		}
		select {
		case <-published:
		case <-time.After(time.Second):
			t.Fatal("creation event was never published")
		}
	})

	t.Run("create success at 24h maximum duration survives notify failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		taskRepo := mock_interfaces.NewMockITaskRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationService(ctrl)
		uc := NewAuctionUseCase(repo, taskRepo, notifier)

		taskRepo.EXPECT().GetByID(gomock.Any(), "task-1").Return(entities.Task{ID: "task-1", Status: entities.TaskStatusOpen}, nil)
		repo.EXPECT().GetByTaskID(gomock.Any(), "task-1").Return(entities.Auction{}, nil)
		repo.EXPECT().CreateWithTaskFlag(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Auction) (bool, error) {
				if got := a.ExpiresAt.Sub(a.CreatedAt); got != 24*time.Hour {
					t.Fatalf("expected 24h window, got %v", got)
				}
				return true, nil
			},
		)
		published := make(chan struct{})
		notifier.EXPECT().Notify(gomock.Any(), interfaces.EventAuctionCreated, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, _ map[string]any) error {
				close(published)
				return errors.New("webhook down")
			},
		)

		cmd := validCreateCommand()
		cmd.DurationHours = 24.0
		if _, err := uc.CreateAuction(context.Background(), cmd); err != nil {
			t.Fatalf("notify failures must not fail the create: %v", err)
		}
		select {
		case <-published:
		case <-time.After(time.Second):
			t.Fatal("creation event was never published")
		}
	})

	t.Run("create does not block on a slow notification sink", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		taskRepo := mock_interfaces.NewMockITaskRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationService(ctrl)
		uc := NewAuctionUseCase(repo, taskRepo, notifier)

		taskRepo.EXPECT().GetByID(gomock.Any(), "task-1").Return(entities.Task{ID: "task-1", Status: entities.TaskStatusOpen}, nil)
		repo.EXPECT().GetByTaskID(gomock.Any(), "task-1").Return(entities.Auction{}, nil)
		repo.EXPECT().CreateWithTaskFlag(gomock.Any(), gomock.Any()).Return(true, nil)

		published := make(chan struct{})
		notifier.EXPECT().Notify(gomock.Any(), interfaces.EventAuctionCreated, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, _ map[string]any) error {
				time.Sleep(150 * time.Millisecond)
				close(published)
				return nil
			},
		)

		start := time.Now()
		if _, err := uc.CreateAuction(context.Background(), validCreateCommand()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if elapsed := time.Since(start); elapsed >= 100*time.Millisecond {
			t.Fatalf("create waited on the sink: %v", elapsed)
		}
		select {
		case <-published:
		case <-time.After(time.Second):
			t.Fatal("creation event was never published")
		}
	})

	t.Run("lost create race reports the existing auction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		taskRepo := mock_interfaces.NewMockITaskRepository(ctrl)
		uc := NewAuctionUseCase(repo, taskRepo, nil)

		taskRepo.EXPECT().GetByID(gomock.Any(), "task-1").Return(entities.Task{ID: "task-1", Status: entities.TaskStatusOpen}, nil)
		repo.EXPECT().GetByTaskID(gomock.Any(), "task-1").Return(entities.Auction{}, nil)
		repo.EXPECT().CreateWithTaskFlag(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().GetByTaskID(gomock.Any(), "task-1").Return(entities.Auction{ID: "rival"}, nil)

		_, err := uc.CreateAuction(context.Background(), validCreateCommand())
		if !errors.Is(err, ErrAuctionAlreadyExists) {
			t.Fatalf("expected ErrAuctionAlreadyExists, got %v", err)
		}
	})

	t.Run("lost create race reports the task no longer biddable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		taskRepo := mock_interfaces.NewMockITaskRepository(ctrl)
		uc := NewAuctionUseCase(repo, taskRepo, nil)

		taskRepo.EXPECT().GetByID(gomock.Any(), "task-1").Return(entities.Task{ID: "task-1", Status: entities.TaskStatusOpen}, nil)
		repo.EXPECT().GetByTaskID(gomock.Any(), "task-1").Return(entities.Auction{}, nil)
		repo.EXPECT().CreateWithTaskFlag(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().GetByTaskID(gomock.Any(), "task-1").Return(entities.Auction{}, nil)
		taskRepo.EXPECT().GetByID(gomock.Any(), "task-1").Return(entities.Task{ID: "task-1", Status: entities.TaskStatusAssigned}, nil)

		_, err := uc.CreateAuction(context.Background(), validCreateCommand())
		if !errors.Is(err, ErrTaskNotBiddable) {
			t.Fatalf("expected ErrTaskNotBiddable, got %v", err)
		}
	})
}

func TestAuctionUseCase_GetAuction(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewAuctionUseCase(nil, nil, nil)
		_, err := uc.GetAuction(context.Background(), " ")
		if !errors.Is(err, ErrInvalidAuctionID) {
			t.Fatalf("expected ErrInvalidAuctionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		uc := NewAuctionUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Auction{}, nil)

		_, err := uc.GetAuction(context.Background(), "a-1")
		if !errors.Is(err, ErrAuctionNotFound) {
			t.Fatalf("expected ErrAuctionNotFound, got %v", err)
		}
	})

	t.Run("active past deadline reads as expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		uc := NewAuctionUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Auction{
			ID:        "a-1",
			Status:    entities.AuctionStatusActive,
			ExpiresAt: time.Now().UTC().Add(-time.Minute),
		}, nil)

		a, err := uc.GetAuction(context.Background(), "a-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Status != entities.AuctionStatusExpired {
			t.Fatalf("expected expired, got %v", a.Status)
		}
	})
}

func TestAuctionUseCase_CancelAuction(t *testing.T) {
	activeAuction := func() entities.Auction {
		return entities.Auction{
			ID:        "a-1",
			TaskID:    "task-1",
			Status:    entities.AuctionStatusActive,
			ExpiresAt: time.Now().UTC().Add(time.Hour),
			Bids: []entities.Bid{
				{ID: "b-1", Status: entities.BidStatusOpen},
				{ID: "b-2", Status: entities.BidStatusCancelled},
				{ID: "b-3", Status: entities.BidStatusOpen},
			},
		}
	}

	t.Run("auction not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		uc := NewAuctionUseCase(repo, nil, nil)

		repo.EXPECT().GetByTaskID(gomock.Any(), "task-1").Return(entities.Auction{}, nil)

		_, err := uc.CancelAuction(context.Background(), "task-1", "owner-1", "", "")
		if !errors.Is(err, ErrAuctionNotFound) {
			t.Fatalf("expected ErrAuctionNotFound, got %v", err)
		}
	})

	t.Run("forbidden for non-owner without admin role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		taskRepo := mock_interfaces.NewMockITaskRepository(ctrl)
		uc := NewAuctionUseCase(repo, taskRepo, nil)

		repo.EXPECT().GetByTaskID(gomock.Any(), "task-1").Return(activeAuction(), nil)
		taskRepo.EXPECT().GetByID(gomock.Any(), "task-1").Return(entities.Task{ID: "task-1", OwnerID: "owner-1"}, nil)

		_, err := uc.CancelAuction(context.Background(), "task-1", "intruder", "courier", "changed my mind")
		if !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("already resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		taskRepo := mock_interfaces.NewMockITaskRepository(ctrl)
		uc := NewAuctionUseCase(repo, taskRepo, nil)

		done := activeAuction()
		done.Status = entities.AuctionStatusCompleted
		repo.EXPECT().GetByTaskID(gomock.Any(), "task-1").Return(done, nil)
		taskRepo.EXPECT().GetByID(gomock.Any(), "task-1").Return(entities.Task{ID: "task-1", OwnerID: "owner-1"}, nil)

		_, err := uc.CancelAuction(context.Background(), "task-1", "owner-1", "", "")
		if !errors.Is(err, ErrInvalidAuctionState) {
			t.Fatalf("expected ErrInvalidAuctionState, got %v", err)
		}
	})

	t.Run("cancel success voids open bids and reverts the task", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		taskRepo := mock_interfaces.NewMockITaskRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationService(ctrl)
		uc := NewAuctionUseCase(repo, taskRepo, notifier)

		repo.EXPECT().GetByTaskID(gomock.Any(), "task-1").Return(activeAuction(), nil)
		taskRepo.EXPECT().GetByID(gomock.Any(), "task-1").Return(entities.Task{ID: "task-1", OwnerID: "owner-1"}, nil)
		repo.EXPECT().TransactionalCancel(gomock.Any(), gomock.AssignableToTypeOf(interfaces.CancelTransaction{})).DoAndReturn(
			func(_ context.Context, tx interfaces.CancelTransaction) (bool, error) {
				if tx.AuctionID != "a-1" || tx.TaskID != "task-1" {
					t.Fatalf("unexpected transaction: %+v", tx)
				}
				if tx.Reason != "changed my mind" {
					t.Fatalf("expected trimmed reason, got %q", tx.Reason)
				}
				if len(tx.OpenBidIDs) != 2 || tx.OpenBidIDs[0] != "b-1" || tx.OpenBidIDs[1] != "b-3" {
					t.Fatalf("expected only open bids voided, got %v", tx.OpenBidIDs)
				}
				if tx.RevertToStatus != entities.TaskStatusOpen {
					t.Fatalf("expected task revert to open, got %v", tx.RevertToStatus)
				}
				return true, nil
			},
		)
		published := make(chan struct{})
		notifier.EXPECT().Notify(gomock.Any(), interfaces.EventAuctionCancelled, "a-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, _ map[string]any) error {
				close(published)
				return nil
			},
		)

		a, err := uc.CancelAuction(context.Background(), "task-1", "owner-1", "", " changed my mind ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Status != entities.AuctionStatusCancelled || a.CancelledAt == nil {
			t.Fatalf("expected cancelled auction: %+v", a)
		}
		for _, b := range a.Bids {
			if b.Status != entities.BidStatusCancelled {
				t.Fatalf("expected all bids cancelled, got %v", b.Status)
			}
		}
		select {
		case <-published:
		case <-time.After(time.Second):
			t.Fatal("cancellation event was never published")
		}
	})

	t.Run("admin may cancel someone else's auction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		taskRepo := mock_interfaces.NewMockITaskRepository(ctrl)
		uc := NewAuctionUseCase(repo, taskRepo, nil)

		repo.EXPECT().GetByTaskID(gomock.Any(), "task-1").Return(activeAuction(), nil)
		taskRepo.EXPECT().GetByID(gomock.Any(), "task-1").Return(entities.Task{ID: "task-1", OwnerID: "owner-1"}, nil)
		repo.EXPECT().TransactionalCancel(gomock.Any(), gomock.Any()).Return(true, nil)

		if _, err := uc.CancelAuction(context.Background(), "task-1", "ops-user", AdminRole, "fraud"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lost race against accept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		taskRepo := mock_interfaces.NewMockITaskRepository(ctrl)
		uc := NewAuctionUseCase(repo, taskRepo, nil)

		repo.EXPECT().GetByTaskID(gomock.Any(), "task-1").Return(activeAuction(), nil)
		taskRepo.EXPECT().GetByID(gomock.Any(), "task-1").Return(entities.Task{ID: "task-1", OwnerID: "owner-1"}, nil)
		repo.EXPECT().TransactionalCancel(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := uc.CancelAuction(context.Background(), "task-1", "owner-1", "", "")
		if !errors.Is(err, ErrInvalidAuctionState) {
			t.Fatalf("expected ErrInvalidAuctionState, got %v", err)
		}
	})
}

func TestAuctionUseCase_GetResults(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		uc := NewAuctionUseCase(repo, nil, nil)

		repo.EXPECT().GetByTaskID(gomock.Any(), "task-1").Return(entities.Auction{}, nil)

		_, err := uc.GetResults(context.Background(), "task-1")
		if !errors.Is(err, ErrAuctionNotFound) {
			t.Fatalf("expected ErrAuctionNotFound, got %v", err)
		}
	})

	t.Run("active auction measures savings against current best", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		uc := NewAuctionUseCase(repo, nil, nil)

		repo.EXPECT().GetByTaskID(gomock.Any(), "task-1").Return(entities.Auction{
			ID:               "a-1",
			TaskID:           "task-1",
			Status:           entities.AuctionStatusActive,
			InitialPrice:     20.0,
			CurrentBestPrice: 15.0,
			ExpiresAt:        time.Now().UTC().Add(time.Hour),
			Bids: []entities.Bid{
				{ID: "b-1", ProposedPrice: 18.0, CompositeScore: 40, Status: entities.BidStatusOpen},
				{ID: "b-2", ProposedPrice: 15.0, CompositeScore: 55, Status: entities.BidStatusOpen},
			},
		}, nil)

		res, err := uc.GetResults(context.Background(), "task-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TotalBids != 2 {
			t.Fatalf("expected 2 bids, got %d", res.TotalBids)
		}
		if res.AveragePrice != 16.5 {
			t.Fatalf("expected average 16.5, got %v", res.AveragePrice)
		}
		if res.SavingsAmount != 5.0 || res.SavingsPercentage != 25.0 {
			t.Fatalf("expected savings 5.00/25%%, got %v/%v", res.SavingsAmount, res.SavingsPercentage)
		}
		if res.WinningBid != nil {
			t.Fatalf("active auction has no winner yet")
		}
		if res.RankedBids[0].ID != "b-2" {
			t.Fatalf("expected best score first, got %v", res.RankedBids[0].ID)
		}
	})

	t.Run("completed auction fixes savings to the winning price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		uc := NewAuctionUseCase(repo, nil, nil)

		repo.EXPECT().GetByTaskID(gomock.Any(), "task-1").Return(entities.Auction{
			ID:               "a-1",
			TaskID:           "task-1",
			Status:           entities.AuctionStatusCompleted,
			InitialPrice:     20.0,
			CurrentBestPrice: 12.0,
			WinningBidID:     "b-2",
			Bids: []entities.Bid{
				{ID: "b-1", ProposedPrice: 14.0, CompositeScore: 40, Status: entities.BidStatusLost},
				{ID: "b-2", ProposedPrice: 12.0, CompositeScore: 55, Status: entities.BidStatusAccepted},
			},
		}, nil)

		res, err := uc.GetResults(context.Background(), "task-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.WinningBid == nil || res.WinningBid.ID != "b-2" {
			t.Fatalf("expected winning bid b-2, got %+v", res.WinningBid)
		}
		if res.SavingsAmount != 8.0 || res.SavingsPercentage != 40.0 {
			t.Fatalf("expected savings 8.00/40%%, got %v/%v", res.SavingsAmount, res.SavingsPercentage)
		}
		if math.Abs(res.AveragePrice-13.0) > 1e-9 {
			t.Fatalf("expected average 13.0, got %v", res.AveragePrice)
		}
	})

	t.Run("no bids yields zeroed statistics", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		uc := NewAuctionUseCase(repo, nil, nil)

		repo.EXPECT().GetByTaskID(gomock.Any(), "task-1").Return(entities.Auction{
			ID:               "a-1",
			TaskID:           "task-1",
			Status:           entities.AuctionStatusActive,
			InitialPrice:     20.0,
			CurrentBestPrice: 20.0,
			ExpiresAt:        time.Now().UTC().Add(time.Hour),
		}, nil)

		res, err := uc.GetResults(context.Background(), "task-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TotalBids != 0 || res.AveragePrice != 0 || res.SavingsAmount != 0 {
			t.Fatalf("expected zeroed stats, got %+v", res)
		}
	})
}
