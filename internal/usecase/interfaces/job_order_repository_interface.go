package interfaces

import (
	"context"
	"plasticos_xpto/internal/domain/entities"
)

// IJobOrderRepository abstracts DynamoDB persistence for JobOrder.
//
// The production core must be able to:
//   - create a job order when the order-management service pushes one
//   - read a job order for progress/validation
//   - list candidates for the extrusion work queue by status
//   - apply a status transition (conditional on the current status, so
//     concurrent re-evaluations can never move a job order backward)

type IJobOrderRepository interface {
	Create(ctx context.Context, jo entities.JobOrder) (entities.JobOrder, error)
	GetByID(ctx context.Context, id string) (entities.JobOrder, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.JobOrder, error)
	ListByStatuses(ctx context.Context, statuses []entities.JobOrderStatus) ([]entities.JobOrder, error)
	// UpdateStatus persists the transition from -> to and returns the updated
	// row. It returns a zero JobOrder when the row is missing or its stored
	// status no longer equals from (lost race; the caller re-evaluates).
	UpdateStatus(ctx context.Context, id string, from, to entities.JobOrderStatus) (entities.JobOrder, error)
}
