package repository

import (
	"context"
	"errors"
	"time"

	"delivery_auction/internal/domain/entities"
	"delivery_auction/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAuctionsTableName = "auctions"
	defaultBidsTableName     = "bids"

	auctionTaskIndex = "task_id-index"
	bidAuctionIndex  = "auction_id-index"
)

type auctionItem struct {
	ID                  string   `dynamodbav:"id"`
	TaskID              string   `dynamodbav:"task_id"`
	InitialPrice        float64  `dynamodbav:"initial_price"`
	MinimumPrice        float64  `dynamodbav:"minimum_price"`
	CurrentBestPrice    float64  `dynamodbav:"current_best_price"`
	MaxBidders          int      `dynamodbav:"max_bidders"`
	AutoAcceptThreshold *float64 `dynamodbav:"auto_accept_threshold,omitempty"`
	DurationHours       float64  `dynamodbav:"duration_hours"`
	ExpiresAt           string   `dynamodbav:"expires_at"`
	Status              string   `dynamodbav:"status"`
	WinningBidID        string   `dynamodbav:"winning_bid_id,omitempty"`
	BidCount            int      `dynamodbav:"bid_count"`
	CancelReason        string   `dynamodbav:"cancel_reason,omitempty"`
	CreatedAt           string   `dynamodbav:"created_at"`
	UpdatedAt           string   `dynamodbav:"updated_at"`
	CompletedAt         string   `dynamodbav:"completed_at,omitempty"`
	CancelledAt         string   `dynamodbav:"cancelled_at,omitempty"`
}

type bidItem struct {
	ID               string  `dynamodbav:"id"`
	AuctionID        string  `dynamodbav:"auction_id"`
	BidderID         string  `dynamodbav:"bidder_id"`
	ProposedPrice    float64 `dynamodbav:"proposed_price"`
	EstimatedMinutes int     `dynamodbav:"estimated_minutes"`
	BidderReputation float64 `dynamodbav:"bidder_reputation"`
	CompositeScore   float64 `dynamodbav:"composite_score"`
	Status           string  `dynamodbav:"status"`
	Notes            string  `dynamodbav:"notes,omitempty"`
	ValidUntil       string  `dynamodbav:"valid_until"`
	CreatedAt        string  `dynamodbav:"created_at"`
}

// AuctionDynamoRepository persists auctions and bids in DynamoDB.
//
// Table requirements:
//   - auctions: PK id (string), GSI task_id-index on task_id
//   - bids:     PK id (string), GSI auction_id-index on auction_id
//
// Prices and counters are stored as numbers so conditional expressions
// can compare them; the strict-improvement and capacity invariants are
// enforced on the auction item itself, which serializes concurrent
// submissions per auction.
//
// The task item lives in the task service's table; this repository only
// touches it inside TransactWriteItems, together with the auction write.

type AuctionDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	bidsTableName string
	tasksTable    string
}

var _ interfaces.IAuctionRepository = (*AuctionDynamoRepository)(nil)

func NewAuctionDynamoRepository(ddb *dynamodb.Client) *AuctionDynamoRepository {
	return &AuctionDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("AUCTIONS_TABLE", defaultAuctionsTableName),
		bidsTableName: getenvDefault("BIDS_TABLE", defaultBidsTableName),
		tasksTable:    getenvDefault("TASKS_TABLE", defaultTasksTableName),
	}
}

func (r *AuctionDynamoRepository) CreateWithTaskFlag(ctx context.Context, a entities.Auction) (bool, error) {
	av, err := attributevalue.MarshalMap(toAuctionItem(a))
	if err != nil {
		return false, err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     av,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.tasksTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: a.TaskID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :biddable AND (attribute_not_exists(#under_auction) OR #under_auction = :false)"),
					UpdateExpression:    aws.String("SET #status = :auctioning, #under_auction = :true, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":            "id",
						"#status":        "status",
						"#under_auction": "under_auction",
						"#updated_at":    "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":biddable":   &types.AttributeValueMemberS{Value: string(entities.TaskStatusOpen)},
						":auctioning": &types.AttributeValueMemberS{Value: string(entities.TaskStatusAuctioning)},
						":true":       &types.AttributeValueMemberBOOL{Value: true},
						":false":      &types.AttributeValueMemberBOOL{Value: false},
						":updated_at": &types.AttributeValueMemberS{Value: now},
					},
				},
			},
		},
	})
	if err != nil {
		if isConditionalCancellation(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *AuctionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Auction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Auction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Auction{}, nil
	}

	var it auctionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Auction{}, err
	}
	return r.withBids(ctx, fromAuctionItem(it))
}

func (r *AuctionDynamoRepository) GetByTaskID(ctx context.Context, taskID string) (entities.Auction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(auctionTaskIndex),
		KeyConditionExpression:    aws.String("#task_id = :task_id"),
		ExpressionAttributeNames:  map[string]string{"#task_id": "task_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":task_id": &types.AttributeValueMemberS{Value: taskID}},
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return entities.Auction{}, err
	}
	if len(out.Items) == 0 {
		return entities.Auction{}, nil
	}

	var it auctionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Auction{}, err
	}
	return r.withBids(ctx, fromAuctionItem(it))
}

func (r *AuctionDynamoRepository) TransactionalSubmit(ctx context.Context, tx interfaces.SubmitTransaction) (bool, error) {
	av, err := attributevalue.MarshalMap(toBidItem(tx.Bid))
	if err != nil {
		return false, err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: tx.Bid.AuctionID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :active AND #best > :price AND #bid_count < :max"),
					UpdateExpression:    aws.String("SET #best = :price, #bid_count = #bid_count + :one, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#status":     "status",
						"#best":       "current_best_price",
						"#bid_count":  "bid_count",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":active":     &types.AttributeValueMemberS{Value: string(entities.AuctionStatusActive)},
						":price":      &types.AttributeValueMemberN{Value: floatToString(tx.Bid.ProposedPrice)},
						":max":        &types.AttributeValueMemberN{Value: intToString(tx.MaxBidders)},
						":one":        &types.AttributeValueMemberN{Value: "1"},
						":updated_at": &types.AttributeValueMemberS{Value: now},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:                aws.String(r.bidsTableName),
					Item:                     av,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
		},
	})
	if err != nil {
		if isConditionalCancellation(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *AuctionDynamoRepository) GetBidByID(ctx context.Context, bidID string) (entities.Bid, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.bidsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: bidID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Bid{}, err
	}
	if len(out.Item) == 0 {
		return entities.Bid{}, nil
	}

	var it bidItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Bid{}, err
	}
	return fromBidItem(it), nil
}

func (r *AuctionDynamoRepository) ListBidsByAuction(ctx context.Context, auctionID string) ([]entities.Bid, error) {
	bids := make([]entities.Bid, 0)
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.bidsTableName),
			IndexName:                 aws.String(bidAuctionIndex),
			KeyConditionExpression:    aws.String("#auction_id = :auction_id"),
			ExpressionAttributeNames:  map[string]string{"#auction_id": "auction_id"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":auction_id": &types.AttributeValueMemberS{Value: auctionID}},
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it bidItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			bids = append(bids, fromBidItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return bids, nil
}

func (r *AuctionDynamoRepository) TransactionalResolve(ctx context.Context, tx interfaces.ResolveTransaction) (bool, error) {
	now := tx.CompletedAt.UTC().Format(time.RFC3339Nano)

	items := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: tx.AuctionID},
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :active"),
				UpdateExpression:    aws.String("SET #status = :completed, #winning_bid_id = :winning_bid_id, #completed_at = :now, #updated_at = :now"),
				ExpressionAttributeNames: map[string]string{
					"#id":             "id",
					"#status":         "status",
					"#winning_bid_id": "winning_bid_id",
					"#completed_at":   "completed_at",
					"#updated_at":     "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":active":         &types.AttributeValueMemberS{Value: string(entities.AuctionStatusActive)},
					":completed":      &types.AttributeValueMemberS{Value: string(entities.AuctionStatusCompleted)},
					":winning_bid_id": &types.AttributeValueMemberS{Value: tx.WinningBidID},
					":now":            &types.AttributeValueMemberS{Value: now},
				},
			},
		},
		{
			Update: &types.Update{
				TableName: aws.String(r.tasksTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: tx.TaskID},
				},
				ConditionExpression: aws.String("attribute_exists(#id)"),
				UpdateExpression:    aws.String("SET #status = :assigned, #under_auction = :false, #assigned_to = :assigned_to, #agreed_price = :agreed_price, #updated_at = :now"),
				ExpressionAttributeNames: map[string]string{
					"#id":            "id",
					"#status":        "status",
					"#under_auction": "under_auction",
					"#assigned_to":   "assigned_to",
					"#agreed_price":  "agreed_price",
					"#updated_at":    "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":assigned":     &types.AttributeValueMemberS{Value: string(entities.TaskStatusAssigned)},
					":false":        &types.AttributeValueMemberBOOL{Value: false},
					":assigned_to":  &types.AttributeValueMemberS{Value: tx.AssignedTo},
					":agreed_price": &types.AttributeValueMemberN{Value: floatToString(tx.AgreedPrice)},
					":now":          &types.AttributeValueMemberS{Value: now},
				},
			},
		},
		r.bidStatusUpdate(tx.WinningBidID, entities.BidStatusAccepted),
	}
	for _, bidID := range tx.LosingBidIDs {
		items = append(items, r.bidStatusUpdate(bidID, entities.BidStatusLost))
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isConditionalCancellation(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *AuctionDynamoRepository) TransactionalCancel(ctx context.Context, tx interfaces.CancelTransaction) (bool, error) {
	now := tx.CancelledAt.UTC().Format(time.RFC3339Nano)

	items := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: tx.AuctionID},
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :active"),
				UpdateExpression:    aws.String("SET #status = :cancelled, #cancel_reason = :reason, #cancelled_at = :now, #updated_at = :now"),
				ExpressionAttributeNames: map[string]string{
					"#id":            "id",
					"#status":        "status",
					"#cancel_reason": "cancel_reason",
					"#cancelled_at":  "cancelled_at",
					"#updated_at":    "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":active":    &types.AttributeValueMemberS{Value: string(entities.AuctionStatusActive)},
					":cancelled": &types.AttributeValueMemberS{Value: string(entities.AuctionStatusCancelled)},
					":reason":    &types.AttributeValueMemberS{Value: tx.Reason},
					":now":       &types.AttributeValueMemberS{Value: now},
				},
			},
		},
		{
			Update: &types.Update{
				TableName: aws.String(r.tasksTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: tx.TaskID},
				},
				ConditionExpression: aws.String("attribute_exists(#id)"),
				UpdateExpression:    aws.String("SET #status = :reverted, #under_auction = :false, #updated_at = :now"),
				ExpressionAttributeNames: map[string]string{
					"#id":            "id",
					"#status":        "status",
					"#under_auction": "under_auction",
					"#updated_at":    "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":reverted": &types.AttributeValueMemberS{Value: string(tx.RevertToStatus)},
					":false":    &types.AttributeValueMemberBOOL{Value: false},
					":now":      &types.AttributeValueMemberS{Value: now},
				},
			},
		},
	}
	for _, bidID := range tx.OpenBidIDs {
		items = append(items, r.bidStatusUpdate(bidID, entities.BidStatusCancelled))
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isConditionalCancellation(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *AuctionDynamoRepository) bidStatusUpdate(bidID string, status entities.BidStatus) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.bidsTableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: bidID},
			},
			ConditionExpression: aws.String("attribute_exists(#id)"),
			UpdateExpression:    aws.String("SET #status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#id":     "id",
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
		},
	}
}

func (r *AuctionDynamoRepository) withBids(ctx context.Context, a entities.Auction) (entities.Auction, error) {
	bids, err := r.ListBidsByAuction(ctx, a.ID)
	if err != nil {
		return entities.Auction{}, err
	}
	a.Bids = bids
	return a, nil
}

// isConditionalCancellation reports whether a TransactWriteItems failure
// was caused purely by condition checks, i.e. a lost race rather than an
// infrastructure problem.
func isConditionalCancellation(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	sawConditional := false
	for _, reason := range tce.CancellationReasons {
		code := aws.ToString(reason.Code)
		switch code {
		case "ConditionalCheckFailed":
			sawConditional = true
		case "", "None":
		default:
			return false
		}
	}
	return sawConditional
}

func toAuctionItem(a entities.Auction) auctionItem {
	it := auctionItem{
		ID:                  a.ID,
		TaskID:              a.TaskID,
		InitialPrice:        a.InitialPrice,
		MinimumPrice:        a.MinimumPrice,
		CurrentBestPrice:    a.CurrentBestPrice,
		MaxBidders:          a.MaxBidders,
		AutoAcceptThreshold: a.AutoAcceptThreshold,
		DurationHours:       a.DurationHours,
		ExpiresAt:           a.ExpiresAt.UTC().Format(time.RFC3339Nano),
		Status:              string(a.Status),
		WinningBidID:        a.WinningBidID,
		BidCount:            a.BidCount,
		CancelReason:        a.CancelReason,
		CreatedAt:           a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if a.CompletedAt != nil {
		it.CompletedAt = a.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	if a.CancelledAt != nil {
		it.CancelledAt = a.CancelledAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromAuctionItem(it auctionItem) entities.Auction {
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	a := entities.Auction{
		ID:                  it.ID,
		TaskID:              it.TaskID,
		InitialPrice:        it.InitialPrice,
		MinimumPrice:        it.MinimumPrice,
		CurrentBestPrice:    it.CurrentBestPrice,
		MaxBidders:          it.MaxBidders,
		AutoAcceptThreshold: it.AutoAcceptThreshold,
		DurationHours:       it.DurationHours,
		ExpiresAt:           expiresAt,
		Status:              entities.AuctionStatus(it.Status),
		WinningBidID:        it.WinningBidID,
		BidCount:            it.BidCount,
		CancelReason:        it.CancelReason,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
	if it.CompletedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.CompletedAt); err == nil {
			a.CompletedAt = &t
		}
	}
	if it.CancelledAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.CancelledAt); err == nil {
			a.CancelledAt = &t
		}
	}
	return a
}

func toBidItem(b entities.Bid) bidItem {
	return bidItem{
		ID:               b.ID,
		AuctionID:        b.AuctionID,
		BidderID:         b.BidderID,
		ProposedPrice:    b.ProposedPrice,
		EstimatedMinutes: b.EstimatedCompletionMinutes,
		BidderReputation: b.BidderReputation,
		CompositeScore:   b.CompositeScore,
		Status:           string(b.Status),
		Notes:            b.Notes,
		ValidUntil:       b.ValidUntil.UTC().Format(time.RFC3339Nano),
		CreatedAt:        b.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBidItem(it bidItem) entities.Bid {
	validUntil, _ := time.Parse(time.RFC3339Nano, it.ValidUntil)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Bid{
		ID:                         it.ID,
		AuctionID:                  it.AuctionID,
		BidderID:                   it.BidderID,
		ProposedPrice:              it.ProposedPrice,
		EstimatedCompletionMinutes: it.EstimatedMinutes,
		BidderReputation:           it.BidderReputation,
		CompositeScore:             it.CompositeScore,
		Status:                     entities.BidStatus(it.Status),
		Notes:                      it.Notes,
		ValidUntil:                 validUntil,
		CreatedAt:                  createdAt,
	}
}
