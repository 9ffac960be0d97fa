package usecase

import (
	"testing"

	"plasticos_xpto/internal/domain/entities"
)

func rollWithQty(id string, qty float64, stage entities.RollStage) entities.Roll {
	return entities.Roll{ID: id, JobOrderID: "jo-1", Stage: stage, ExtrudingQty: qty}
}

func TestTotalExtruded(t *testing.T) {
	t.Run("empty ledger", func(t *testing.T) {
		if got := TotalExtruded(nil); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})

	t.Run("sums extruding qty", func(t *testing.T) {
		rolls := []entities.Roll{
			rollWithQty("r-1", 40, entities.RollStageExtrusion),
			rollWithQty("r-2", 35, entities.RollStageExtrusion),
		}
		if got := TotalExtruded(rolls); got != 75 {
			t.Fatalf("expected 75, got %v", got)
		}
	})

	t.Run("missing qty contributes zero", func(t *testing.T) {
		rolls := []entities.Roll{
			rollWithQty("r-1", 40, entities.RollStageExtrusion),
			rollWithQty("r-2", 0, entities.RollStageExtrusion),
		}
		if got := TotalExtruded(rolls); got != 40 {
			t.Fatalf("expected 40, got %v", got)
		}
	})

	t.Run("stage agnostic", func(t *testing.T) {
		// A roll that moved on to printing/cutting still counts its
		// extrusion output.
		rolls := []entities.Roll{
			rollWithQty("r-1", 40, entities.RollStagePrinting),
			rollWithQty("r-2", 35, entities.RollStageCutting),
			rollWithQty("r-3", 25, entities.RollStageExtrusion),
		}
		if got := TotalExtruded(rolls); got != 100 {
			t.Fatalf("expected 100, got %v", got)
		}
	})
}

func TestProgressPercent(t *testing.T) {
	t.Run("zero required quantity", func(t *testing.T) {
		if got := ProgressPercent(0, 50); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})

	t.Run("no output", func(t *testing.T) {
		if got := ProgressPercent(100, 0); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})

	t.Run("rounds", func(t *testing.T) {
		if got := ProgressPercent(3, 1); got != 33 {
			t.Fatalf("expected 33, got %d", got)
		}
		if got := ProgressPercent(3, 2); got != 67 {
			t.Fatalf("expected 67, got %d", got)
		}
	})

	t.Run("caps at 100", func(t *testing.T) {
		if got := ProgressPercent(100, 120); got != 100 {
			t.Fatalf("expected 100, got %d", got)
		}
	})
}

func TestCompletionThreshold(t *testing.T) {
	// required 100, rolls of 40/35/25: incomplete at 40 and 75, complete
	// at exactly 100.
	required := 100.0
	rolls := []entities.Roll{}

	steps := []struct {
		qty      float64
		wantPct  int
		wantFull bool
	}{
		{40, 40, false},
		{35, 75, false},
		{25, 100, true},
	}

	for i, step := range steps {
		rolls = append(rolls, rollWithQty("r", step.qty, entities.RollStageExtrusion))
		total := TotalExtruded(rolls)
		if got := ProgressPercent(required, total); got != step.wantPct {
			t.Fatalf("step %d: expected %d%%, got %d%%", i, step.wantPct, got)
		}
		if got := IsFullyExtruded(required, total); got != step.wantFull {
			t.Fatalf("step %d: expected fully=%v, got %v", i, step.wantFull, got)
		}
	}
}

func TestOverProduction(t *testing.T) {
	rolls := []entities.Roll{
		rollWithQty("r-1", 70, entities.RollStageExtrusion),
		rollWithQty("r-2", 50, entities.RollStageExtrusion),
	}
	jo := entities.JobOrder{ID: "jo-1", RequiredQty: 100}

	report := BuildProgressReport(jo, rolls)
	if !report.IsFullyExtruded {
		t.Fatalf("expected fully extruded")
	}
	if report.ProgressPercent != 100 {
		t.Fatalf("expected 100%%, got %d%%", report.ProgressPercent)
	}
	if report.TotalExtruded != 120 {
		t.Fatalf("expected total 120, got %v", report.TotalExtruded)
	}
}

func TestProgressMonotonic(t *testing.T) {
	jo := entities.JobOrder{ID: "jo-1", RequiredQty: 200}
	rolls := []entities.Roll{rollWithQty("r-1", 50, entities.RollStageExtrusion)}

	first := BuildProgressReport(jo, rolls)
	second := BuildProgressReport(jo, rolls)
	if first != second {
		t.Fatalf("same snapshot produced different reports: %+v vs %+v", first, second)
	}

	rolls = append(rolls, rollWithQty("r-2", 10, entities.RollStageExtrusion))
	grown := BuildProgressReport(jo, rolls)
	if grown.ProgressPercent < first.ProgressPercent {
		t.Fatalf("progress decreased after adding a roll: %d -> %d", first.ProgressPercent, grown.ProgressPercent)
	}
}
