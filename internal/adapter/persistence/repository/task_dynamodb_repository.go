package repository

import (
	"context"
	"time"

	"delivery_auction/internal/domain/entities"
	"delivery_auction/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTasksTableName = "tasks"

type taskItem struct {
	ID           string  `dynamodbav:"id"`
	OwnerID      string  `dynamodbav:"owner_id"`
	Status       string  `dynamodbav:"status"`
	UnderAuction bool    `dynamodbav:"under_auction"`
	AssignedTo   string  `dynamodbav:"assigned_to,omitempty"`
	AgreedPrice  float64 `dynamodbav:"agreed_price,omitempty"`
	UpdatedAt    string  `dynamodbav:"updated_at,omitempty"`
}

// TaskDynamoRepository reads tasks from the task service's table.
//
// Read-only on purpose: every task write this engine performs happens
// inside an AuctionDynamoRepository transaction so the flip commits
// together with the auction change.

type TaskDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITaskRepository = (*TaskDynamoRepository)(nil)

func NewTaskDynamoRepository(ddb *dynamodb.Client) *TaskDynamoRepository {
	return &TaskDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TASKS_TABLE", defaultTasksTableName),
	}
}

func (r *TaskDynamoRepository) GetByID(ctx context.Context, id string) (entities.Task, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Task{}, err
	}
	if len(out.Item) == 0 {
		return entities.Task{}, nil
	}

	var it taskItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Task{}, err
	}
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Task{
		ID:           it.ID,
		OwnerID:      it.OwnerID,
		Status:       entities.TaskStatus(it.Status),
		UnderAuction: it.UnderAuction,
		AssignedTo:   it.AssignedTo,
		AgreedPrice:  it.AgreedPrice,
		UpdatedAt:    updatedAt,
	}, nil
}
