package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"plasticos_xpto/internal/domain/entities"
	"plasticos_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobOrderNotFound   = errors.New("job order not found")
	ErrInvalidJobOrderID  = errors.New("invalid job order id")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidRequiredQty = errors.New("invalid required quantity")
	ErrInvalidStatus      = errors.New("invalid job order status")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

// IJobOrderUseCase exposes the JobOrder side of the production core:
// ingestion, the progress view and the extrusion status machine.
//
//   - EvaluateExtrusion is the idempotent completion check: it re-derives the
//     extruded total from the Roll Ledger and applies the monotonic
//     transition if one is due. Safe to call any number of times.
//   - OverrideStatus is the supervisory manual override; it goes through the
//     same transition table, so it can never move a job order backward.

type IJobOrderUseCase interface {
	Create(ctx context.Context, orderID, productRef string, requiredQty float64) (entities.JobOrder, error)
	GetByID(ctx context.Context, id string) (entities.JobOrder, error)
	ListByOrder(ctx context.Context, orderID string) ([]entities.JobOrder, error)
	Progress(ctx context.Context, id string) (ProgressReport, error)
	EvaluateExtrusion(ctx context.Context, id string) (entities.JobOrder, error)
	OverrideStatus(ctx context.Context, id string, status entities.JobOrderStatus) (entities.JobOrder, error)
}

type JobOrderUseCase struct {
	repo     interfaces.IJobOrderRepository
	rolls    interfaces.IRollRepository
	orders   interfaces.IOrderRepository
	notifier interfaces.INotifier
}

var _ IJobOrderUseCase = (*JobOrderUseCase)(nil)

func NewJobOrderUseCase(repo interfaces.IJobOrderRepository, rolls interfaces.IRollRepository, orders interfaces.IOrderRepository, notifier interfaces.INotifier) *JobOrderUseCase {
	return &JobOrderUseCase{repo: repo, rolls: rolls, orders: orders, notifier: notifier}
}

func (u *JobOrderUseCase) Create(ctx context.Context, orderID, productRef string, requiredQty float64) (entities.JobOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.JobOrder{}, ErrInvalidOrderID
	}
	if requiredQty <= 0 {
		return entities.JobOrder{}, ErrInvalidRequiredQty
	}

	parent, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.JobOrder{}, err
	}
	if parent.ID == "" {
		return entities.JobOrder{}, ErrOrderNotFound
	}

	now := time.Now().UTC()
	jo := entities.JobOrder{
		ID:          uuid.NewString(),
		OrderID:     orderID,
		ProductRef:  strings.TrimSpace(productRef),
		RequiredQty: requiredQty,
		Status:      entities.JobOrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, jo)
}

func (u *JobOrderUseCase) GetByID(ctx context.Context, id string) (entities.JobOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.JobOrder{}, ErrInvalidJobOrderID
	}

	jo, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.JobOrder{}, err
	}
	if jo.ID == "" {
		return entities.JobOrder{}, ErrJobOrderNotFound
	}
	return jo, nil
}

// ListByOrder returns every JobOrder derived from the given Order.
func (u *JobOrderUseCase) ListByOrder(ctx context.Context, orderID string) ([]entities.JobOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	parent, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if parent.ID == "" {
		return nil, ErrOrderNotFound
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

// Progress recomputes the completion metrics from the current Roll snapshot.
func (u *JobOrderUseCase) Progress(ctx context.Context, id string) (ProgressReport, error) {
	jo, err := u.GetByID(ctx, id)
	if err != nil {
		return ProgressReport{}, err
	}

	rolls, err := u.rolls.ListByJobOrderID(ctx, jo.ID)
	if err != nil {
		return ProgressReport{}, err
	}
	return BuildProgressReport(jo, rolls), nil
}

// EvaluateExtrusion re-runs the completion check for a job order and applies
// the due transition, if any. Calling it when the job order already reached
// extrusion_completed (or a terminal status) is a no-op.
func (u *JobOrderUseCase) EvaluateExtrusion(ctx context.Context, id string) (entities.JobOrder, error) {
	jo, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.JobOrder{}, err
	}
	return evaluateExtrusion(ctx, u.repo, u.rolls, u.notifier, jo)
}

// OverrideStatus applies a supervisory status change through the transition
// table. Setting the status it already has is accepted as a no-op.
func (u *JobOrderUseCase) OverrideStatus(ctx context.Context, id string, status entities.JobOrderStatus) (entities.JobOrder, error) {
	if !status.Valid() {
		return entities.JobOrder{}, ErrInvalidStatus
	}

	jo, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.JobOrder{}, err
	}
	if jo.Status == status {
		return jo, nil
	}
	if !jo.Status.CanTransitionTo(status) {
		return entities.JobOrder{}, ErrInvalidTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, id, jo.Status, status)
	if err != nil {
		return entities.JobOrder{}, err
	}
	if updated.ID == "" {
		// Lost a race against another writer; report the current row.
		return entities.JobOrder{}, ErrInvalidTransition
	}
	log.Printf("[joborder][usecase] status override job_order_id=%s from=%s to=%s", id, jo.Status, status)
	return updated, nil
}

// evaluateExtrusion is the single implementation of the status machine's
// extrusion rules, shared by the coordinator (after every Roll write) and by
// the read-triggered repair path.
//
// Rules:
//   - already at/past extrusion_completed: no-op, no side effects
//   - total extruded >= required: transition to extrusion_completed (from
//     pending or in_progress) and notify once
//   - otherwise, pending with at least one Roll: transition to in_progress
//
// The UpdateStatus write is conditional on the status read above, so a
// concurrent writer can win the race; the loser's outcome is still correct
// because the transition is monotonic and the winner applied the same rule.
func evaluateExtrusion(
	ctx context.Context,
	repo interfaces.IJobOrderRepository,
	rollRepo interfaces.IRollRepository,
	notifier interfaces.INotifier,
	jo entities.JobOrder,
) (entities.JobOrder, error) {
	if jo.Status.ReachedExtrusionCompletion() {
		return jo, nil
	}

	rolls, err := rollRepo.ListByJobOrderID(ctx, jo.ID)
	if err != nil {
		return jo, err
	}
	total := TotalExtruded(rolls)

	target := jo.Status
	switch {
	case IsFullyExtruded(jo.RequiredQty, total):
		target = entities.JobOrderStatusExtrusionCompleted
	case jo.Status == entities.JobOrderStatusPending && len(rolls) > 0:
		target = entities.JobOrderStatusInProgress
	}
	if target == jo.Status {
		return jo, nil
	}

	updated, err := repo.UpdateStatus(ctx, jo.ID, jo.Status, target)
	if err != nil {
		return jo, err
	}
	if updated.ID == "" {
		// Another writer transitioned first. The loser may still owe a
		// transition (its winner could have applied only pending ->
		// in_progress while this ledger read already covers the
		// requirement), so re-derive against the fresh row. Statuses only
		// move forward, so this recursion terminates.
		log.Printf("[joborder][usecase] transition lost race job_order_id=%s from=%s to=%s", jo.ID, jo.Status, target)
		current, err := repo.GetByID(ctx, jo.ID)
		if err != nil {
			return jo, err
		}
		if current.ID == "" {
			return current, nil
		}
		return evaluateExtrusion(ctx, repo, rollRepo, notifier, current)
	}

	log.Printf("[joborder][usecase] transition applied job_order_id=%s from=%s to=%s total_extruded=%.3f required=%.3f",
		jo.ID, jo.Status, target, total, jo.RequiredQty)

	if target == entities.JobOrderStatusExtrusionCompleted && notifier != nil {
		notifier.NotifyExtrusionCompleted(ctx, updated, total)
	}
	return updated, nil
}
