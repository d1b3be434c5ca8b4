package interfaces

import (
	"context"

	"delivery_auction/internal/domain/entities"
)

// ITaskRepository reads tasks from the task service's table.
//
// The auction engine never creates or deletes tasks; task writes happen
// only inside IAuctionRepository transactions so the task flip commits or
// rolls back together with the auction change.
type ITaskRepository interface {
	GetByID(ctx context.Context, id string) (entities.Task, error)
}
