package interfaces

import (
	"context"
	"plasticos_xpto/internal/domain/entities"
)

// INotifier abstracts the notification collaborator.
//
// The production core only emits one event: a job order finished extrusion.
// Delivery is best-effort; a failed notification must never fail or roll
// back the status transition that triggered it.
type INotifier interface {
	NotifyExtrusionCompleted(ctx context.Context, jo entities.JobOrder, totalExtruded float64)
}
