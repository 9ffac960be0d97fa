package response

import (
	"time"

	"plasticos_xpto/internal/domain/entities"
)

type RollResponse struct {
	ID           string    `json:"id"`
	JobOrderID   string    `json:"job_order_id"`
	Stage        string    `json:"stage"`
	Status       string    `json:"status"`
	ExtrudingQty float64   `json:"extruding_qty"`
	PrintingQty  float64   `json:"printing_qty,omitempty"`
	CuttingQty   float64   `json:"cutting_qty,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromRoll(r entities.Roll) RollResponse {
	return RollResponse{
		ID:           r.ID,
		JobOrderID:   r.JobOrderID,
		Stage:        string(r.Stage),
		Status:       string(r.Status),
		ExtrudingQty: r.ExtrudingQty,
		PrintingQty:  r.PrintingQty,
		CuttingQty:   r.CuttingQty,
		CreatedAt:    r.CreatedAt,
	}
}

func FromRolls(rolls []entities.Roll) []RollResponse {
	out := make([]RollResponse, 0, len(rolls))
	for _, r := range rolls {
		out = append(out, FromRoll(r))
	}
	return out
}
