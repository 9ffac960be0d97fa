package request

import (
	"errors"
	"strings"

	"plasticos_xpto/internal/domain/entities"
)

var (
	ErrUnsupportedStage = errors.New("unsupported stage for roll creation")
)

// CreateRollRequest is the operator payload recording extrusion output
// against a job order.
//
// stage is accepted for wire compatibility with the factory UI but only
// "extrusion" is valid: downstream stages never create rolls, they advance
// them.
type CreateRollRequest struct {
	Stage          string  `json:"stage"`
	ExtrudingQty   float64 `json:"extruding_qty" binding:"required"`
	IdempotencyKey string  `json:"idempotency_key"`
}

func (r CreateRollRequest) ResolveStage() (entities.RollStage, error) {
	stage := strings.TrimSpace(r.Stage)
	if stage == "" || entities.RollStage(stage) == entities.RollStageExtrusion {
		return entities.RollStageExtrusion, nil
	}
	return "", ErrUnsupportedStage
}

// AdvanceRollRequest carries the output quantity of the stage the roll is
// leaving. It must be zero for extrusion -> printing: extrusion output is
// already on the roll and cannot be restated here.
type AdvanceRollRequest struct {
	StageQty float64 `json:"stage_qty"`
}
