package interfaces

import (
	"context"
	"plasticos_xpto/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Orders are owned by the order-management service; this service only needs
// to ingest them and read their status for the releasable-set filter.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}
