package entities

import "testing"

func TestJobOrderStatusValid(t *testing.T) {
	for _, s := range []JobOrderStatus{
		JobOrderStatusPending,
		JobOrderStatusInProgress,
		JobOrderStatusExtrusionCompleted,
		JobOrderStatusCompleted,
		JobOrderStatusCancelled,
	} {
		if !s.Valid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if JobOrderStatus("paused").Valid() {
		t.Fatalf("unknown status accepted")
	}
}

func TestJobOrderTransitions(t *testing.T) {
	allowed := []struct{ from, to JobOrderStatus }{
		{JobOrderStatusPending, JobOrderStatusInProgress},
		{JobOrderStatusPending, JobOrderStatusExtrusionCompleted},
		{JobOrderStatusPending, JobOrderStatusCancelled},
		{JobOrderStatusInProgress, JobOrderStatusExtrusionCompleted},
		{JobOrderStatusInProgress, JobOrderStatusCancelled},
		{JobOrderStatusExtrusionCompleted, JobOrderStatusCompleted},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("%s -> %s should be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to JobOrderStatus }{
		{JobOrderStatusInProgress, JobOrderStatusPending},
		{JobOrderStatusExtrusionCompleted, JobOrderStatusPending},
		{JobOrderStatusExtrusionCompleted, JobOrderStatusInProgress},
		{JobOrderStatusExtrusionCompleted, JobOrderStatusCancelled},
		{JobOrderStatusCompleted, JobOrderStatusPending},
		{JobOrderStatusCompleted, JobOrderStatusCancelled},
		{JobOrderStatusCancelled, JobOrderStatusPending},
		{JobOrderStatusCancelled, JobOrderStatusInProgress},
		{JobOrderStatusPending, JobOrderStatusCompleted},
	}
	for _, tc := range denied {
		if tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("%s -> %s should be denied", tc.from, tc.to)
		}
	}
}

func TestJobOrderStatusPredicates(t *testing.T) {
	if JobOrderStatusPending.Terminal() || JobOrderStatusInProgress.Terminal() || JobOrderStatusExtrusionCompleted.Terminal() {
		t.Fatalf("non-terminal status reported terminal")
	}
	if !JobOrderStatusCompleted.Terminal() || !JobOrderStatusCancelled.Terminal() {
		t.Fatalf("terminal status not reported terminal")
	}

	if JobOrderStatusPending.ReachedExtrusionCompletion() || JobOrderStatusInProgress.ReachedExtrusionCompletion() {
		t.Fatalf("active status reported as past extrusion completion")
	}
	for _, s := range []JobOrderStatus{JobOrderStatusExtrusionCompleted, JobOrderStatusCompleted, JobOrderStatusCancelled} {
		if !s.ReachedExtrusionCompletion() {
			t.Fatalf("%s should count as past extrusion completion", s)
		}
	}
}

func TestRollStageNext(t *testing.T) {
	steps := []struct {
		from RollStage
		want RollStage
		ok   bool
	}{
		{RollStageExtrusion, RollStagePrinting, true},
		{RollStagePrinting, RollStageCutting, true},
		{RollStageCutting, RollStageCompleted, true},
		{RollStageCompleted, "", false},
	}
	for _, tc := range steps {
		got, ok := tc.from.Next()
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("%s.Next() = %s, %v; want %s, %v", tc.from, got, ok, tc.want, tc.ok)
		}
	}
}

func TestOrderStatusReleasable(t *testing.T) {
	if !OrderStatusProcessing.Releasable() || !OrderStatusForProduction.Releasable() {
		t.Fatalf("releasable status rejected")
	}
	if OrderStatusCancelled.Releasable() || OrderStatus("on hold").Releasable() {
		t.Fatalf("non-releasable status accepted")
	}
}
