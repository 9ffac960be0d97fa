package entities

import "time"

// RollStage is the production stage a Roll currently occupies.

type RollStage string

const (
	RollStageExtrusion RollStage = "extrusion"
	RollStagePrinting  RollStage = "printing"
	RollStageCutting   RollStage = "cutting"
	RollStageCompleted RollStage = "completed"
)

// Valid reports whether s is a known stage.
func (s RollStage) Valid() bool {
	switch s {
	case RollStageExtrusion, RollStagePrinting, RollStageCutting, RollStageCompleted:
		return true
	}
	return false
}

// Next returns the stage a Roll advances to from s. Stages are strictly
// sequential; the second return is false once the Roll is completed.
func (s RollStage) Next() (RollStage, bool) {
	switch s {
	case RollStageExtrusion:
		return RollStagePrinting, true
	case RollStagePrinting:
		return RollStageCutting, true
	case RollStageCutting:
		return RollStageCompleted, true
	}
	return "", false
}

// RollStatus is the processing status of the Roll at its current stage.

type RollStatus string

const (
	RollStatusPending    RollStatus = "pending"
	RollStatusProcessing RollStatus = "processing"
	RollStatusCompleted  RollStatus = "completed"
)

// Roll is an immutable record of physical output attributed to a JobOrder.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_order_id-index): job_order_id
//   - GSI2 (idempotency_key-index): idempotency_key (sparse)
//
// ExtrudingQty is set exactly once, at creation, and is the sole quantity
// signal for extrusion-completion accounting no matter which stage the Roll
// later occupies. PrintingQty/CuttingQty are display/reporting figures for
// the downstream stages and never feed the completion logic.
type Roll struct {
	ID             string     `json:"id"`
	JobOrderID     string     `json:"job_order_id"`
	Stage          RollStage  `json:"stage"`
	Status         RollStatus `json:"status"`
	ExtrudingQty   float64    `json:"extruding_qty"`
	PrintingQty    float64    `json:"printing_qty,omitempty"`
	CuttingQty     float64    `json:"cutting_qty,omitempty"`
	IdempotencyKey string     `json:"idempotency_key,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
