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
	ErrRollNotFound        = errors.New("roll not found")
	ErrInvalidRollID       = errors.New("invalid roll id")
	ErrInvalidExtrudingQty = errors.New("invalid extruding quantity")
	ErrInvalidStageQty     = errors.New("invalid stage quantity")
	ErrInvalidStage        = errors.New("invalid roll stage")
	ErrJobOrderTerminal    = errors.New("job order in terminal state")
	ErrRollCompleted       = errors.New("roll already completed all stages")
	ErrIdempotencyConflict = errors.New("idempotency key already used by another job order")
)

// IRollUseCase is the stage advancement coordinator.
//
// RecordExtrusion is the single externally-triggered entry point coupling
// Roll creation to a JobOrder status transition. Everything else (progress
// display, queue, stage listings) is a passive read.

type IRollUseCase interface {
	RecordExtrusion(ctx context.Context, jobOrderID string, extrudingQty float64, idempotencyKey string) (entities.Roll, error)
	AdvanceStage(ctx context.Context, rollID string, stageQty float64) (entities.Roll, error)
	GetByID(ctx context.Context, id string) (entities.Roll, error)
	ListByStage(ctx context.Context, stage entities.RollStage) ([]entities.Roll, error)
}

type RollUseCase struct {
	repo      interfaces.IRollRepository
	jobOrders interfaces.IJobOrderRepository
	notifier  interfaces.INotifier
}

var _ IRollUseCase = (*RollUseCase)(nil)

func NewRollUseCase(repo interfaces.IRollRepository, jobOrders interfaces.IJobOrderRepository, notifier interfaces.INotifier) *RollUseCase {
	return &RollUseCase{repo: repo, jobOrders: jobOrders, notifier: notifier}
}

// RecordExtrusion registers extrusion output against a job order:
//
//  1. the job order must exist and not be terminal
//  2. the Roll is created at stage extrusion (the durable record)
//  3. the completion check re-runs for the job order
//
// When step 3 fails the created Roll is returned together with the error:
// nothing is rolled back, and a later EvaluateExtrusion repairs the status.
// Callers must not treat that error as data loss.
func (u *RollUseCase) RecordExtrusion(ctx context.Context, jobOrderID string, extrudingQty float64, idempotencyKey string) (entities.Roll, error) {
	jobOrderID = strings.TrimSpace(jobOrderID)
	if jobOrderID == "" {
		return entities.Roll{}, ErrInvalidJobOrderID
	}
	if extrudingQty <= 0 {
		return entities.Roll{}, ErrInvalidExtrudingQty
	}

	jo, err := u.jobOrders.GetByID(ctx, jobOrderID)
	if err != nil {
		return entities.Roll{}, err
	}
	if jo.ID == "" {
		return entities.Roll{}, ErrJobOrderNotFound
	}
	if jo.Status.Terminal() {
		log.Printf("[roll][usecase] rejected roll for terminal job order job_order_id=%s status=%s", jo.ID, jo.Status)
		return entities.Roll{}, ErrJobOrderTerminal
	}

	idempotencyKey = strings.TrimSpace(idempotencyKey)
	if idempotencyKey != "" {
		existing, err := u.repo.GetByIdempotencyKey(ctx, idempotencyKey)
		if err != nil {
			return entities.Roll{}, err
		}
		if existing.ID != "" {
			if existing.JobOrderID != jo.ID {
				// A replay must target the roll's own job order; handing
				// out another job order's roll would silently drop output.
				log.Printf("[roll][usecase] idempotency key bound elsewhere idempotency_key=%s roll_id=%s job_order_id=%s", idempotencyKey, existing.ID, existing.JobOrderID)
				return entities.Roll{}, ErrIdempotencyConflict
			}
			log.Printf("[roll][usecase] idempotent replay resolved idempotency_key=%s roll_id=%s", idempotencyKey, existing.ID)
			return existing, nil
		}
	}

	roll := entities.Roll{
		ID:             uuid.NewString(),
		JobOrderID:     jo.ID,
		Stage:          entities.RollStageExtrusion,
		Status:         entities.RollStatusProcessing,
		ExtrudingQty:   extrudingQty,
		IdempotencyKey: idempotencyKey,
		CreatedAt:      time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, roll)
	if err != nil {
		return entities.Roll{}, err
	}
	log.Printf("[roll][usecase] roll created roll_id=%s job_order_id=%s extruding_qty=%.3f", created.ID, jo.ID, extrudingQty)

	if _, err := evaluateExtrusion(ctx, u.jobOrders, u.repo, u.notifier, jo); err != nil {
		// The Roll is durable; surface the failure but keep the Roll.
		log.Printf("[roll][usecase] status re-evaluation failed job_order_id=%s roll_id=%s err=%v", jo.ID, created.ID, err)
		return created, err
	}
	return created, nil
}

// AdvanceStage moves a Roll to its next production stage, recording the
// stage-specific output quantity. Advancing a Roll never changes the parent
// JobOrder status: only extrusion completion drives that, and ExtrudingQty
// was fixed at creation.
func (u *RollUseCase) AdvanceStage(ctx context.Context, rollID string, stageQty float64) (entities.Roll, error) {
	roll, err := u.GetByID(ctx, rollID)
	if err != nil {
		return entities.Roll{}, err
	}
	if stageQty < 0 {
		return entities.Roll{}, ErrInvalidStageQty
	}

	next, ok := roll.Stage.Next()
	if !ok {
		return entities.Roll{}, ErrRollCompleted
	}
	if roll.Stage == entities.RollStageExtrusion && stageQty != 0 {
		// Extrusion output is already fixed on the roll; there is no field
		// for a quantity here, so a non-zero value is a caller mistake.
		return entities.Roll{}, ErrInvalidStageQty
	}

	updated, err := u.repo.AdvanceStage(ctx, roll.ID, roll.Stage, next, stageQty)
	if err != nil {
		return entities.Roll{}, err
	}
	if updated.ID == "" {
		// Someone advanced it concurrently; the stored stage moved on.
		return entities.Roll{}, ErrInvalidStage
	}
	log.Printf("[roll][usecase] stage advanced roll_id=%s from=%s to=%s stage_qty=%.3f", roll.ID, roll.Stage, next, stageQty)
	return updated, nil
}

func (u *RollUseCase) GetByID(ctx context.Context, id string) (entities.Roll, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Roll{}, ErrInvalidRollID
	}

	roll, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Roll{}, err
	}
	if roll.ID == "" {
		return entities.Roll{}, ErrRollNotFound
	}
	return roll, nil
}

// ListByStage is a display listing only; it plays no part in completion
// accounting.
func (u *RollUseCase) ListByStage(ctx context.Context, stage entities.RollStage) ([]entities.Roll, error) {
	if !stage.Valid() {
		return nil, ErrInvalidStage
	}
	return u.repo.ListByStage(ctx, stage)
}
