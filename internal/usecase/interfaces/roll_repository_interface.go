package interfaces

import (
	"context"
	"plasticos_xpto/internal/domain/entities"
)

// IRollRepository abstracts DynamoDB persistence for Roll (the Roll Ledger).
//
// Rolls are append-only: ExtrudingQty and JobOrderID are fixed at creation.
// AdvanceStage is the only permitted mutation and never touches ExtrudingQty.

type IRollRepository interface {
	Create(ctx context.Context, r entities.Roll) (entities.Roll, error)
	GetByID(ctx context.Context, id string) (entities.Roll, error)
	// ListByJobOrderID returns every Roll of the job order regardless of its
	// current stage, in ascending id order. A Roll that moved on to printing
	// or cutting still counts toward extrusion completion.
	ListByJobOrderID(ctx context.Context, jobOrderID string) ([]entities.Roll, error)
	ListByStage(ctx context.Context, stage entities.RollStage) ([]entities.Roll, error)
	// GetByIdempotencyKey resolves a caller-supplied idempotency key to the
	// Roll it already created, or a zero Roll when the key is unused.
	GetByIdempotencyKey(ctx context.Context, key string) (entities.Roll, error)
	AdvanceStage(ctx context.Context, id string, from, to entities.RollStage, stageQty float64) (entities.Roll, error)
}
