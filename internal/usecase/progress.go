package usecase

import (
	"math"

	"plasticos_xpto/internal/domain/entities"
)

// ProgressReport is the derived completion view of a JobOrder.
type ProgressReport struct {
	TotalExtruded   float64 `json:"total_extruded"`
	ProgressPercent int     `json:"progress_percent"`
	IsFullyExtruded bool    `json:"is_fully_extruded"`
}

// TotalExtruded sums the extrusion-stage quantity over a Roll snapshot.
// The stage a Roll currently occupies is irrelevant: ExtrudingQty was fixed
// at creation and keeps counting after the Roll moved on to printing or
// cutting.
func TotalExtruded(rolls []entities.Roll) float64 {
	total := 0.0
	for _, r := range rolls {
		if r.ExtrudingQty > 0 {
			total += r.ExtrudingQty
		}
	}
	return total
}

// ProgressPercent is the display percentage, capped at 100. A zero required
// quantity yields 0 rather than a division by zero.
func ProgressPercent(requiredQty, totalExtruded float64) int {
	if requiredQty <= 0 || totalExtruded <= 0 {
		return 0
	}
	pct := int(math.Round(100 * totalExtruded / requiredQty))
	if pct > 100 {
		return 100
	}
	return pct
}

// IsFullyExtruded reports whether the accumulated extrusion output meets the
// requirement. The comparison is >=, so exactly reaching the requirement
// counts, and over-production stays true (only the display percentage caps).
func IsFullyExtruded(requiredQty, totalExtruded float64) bool {
	return totalExtruded >= requiredQty
}

// BuildProgressReport derives the full report from a JobOrder and its Roll
// snapshot. Pure; recomputed on every read, no durable aggregate.
func BuildProgressReport(jo entities.JobOrder, rolls []entities.Roll) ProgressReport {
	total := TotalExtruded(rolls)
	return ProgressReport{
		TotalExtruded:   total,
		ProgressPercent: ProgressPercent(jo.RequiredQty, total),
		IsFullyExtruded: IsFullyExtruded(jo.RequiredQty, total),
	}
}
