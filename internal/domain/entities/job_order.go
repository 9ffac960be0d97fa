package entities

import "time"

// JobOrderStatus is the production lifecycle of a JobOrder.
//
// The status set is closed on purpose: every transition goes through the
// table below instead of free-form string comparisons, so a typo cannot be
// silently accepted as a brand-new state.

type JobOrderStatus string

const (
	JobOrderStatusPending            JobOrderStatus = "pending"
	JobOrderStatusInProgress         JobOrderStatus = "in_progress"
	JobOrderStatusExtrusionCompleted JobOrderStatus = "extrusion_completed"
	JobOrderStatusCompleted          JobOrderStatus = "completed"
	JobOrderStatusCancelled          JobOrderStatus = "cancelled"
)

// jobOrderTransitions is the closed transition table. A missing entry means
// the transition is not allowed. Statuses never move backward from
// extrusion_completed/completed/cancelled.
var jobOrderTransitions = map[JobOrderStatus][]JobOrderStatus{
	JobOrderStatusPending:            {JobOrderStatusInProgress, JobOrderStatusExtrusionCompleted, JobOrderStatusCancelled},
	JobOrderStatusInProgress:         {JobOrderStatusExtrusionCompleted, JobOrderStatusCancelled},
	JobOrderStatusExtrusionCompleted: {JobOrderStatusCompleted},
	JobOrderStatusCompleted:          {},
	JobOrderStatusCancelled:          {},
}

// Valid reports whether s is one of the known JobOrder statuses.
func (s JobOrderStatus) Valid() bool {
	_, ok := jobOrderTransitions[s]
	return ok
}

// CanTransitionTo reports whether the status machine allows moving from s to
// target. Self-transitions are not part of the table; idempotent re-checks
// are handled by the callers treating "already there" as a no-op.
func (s JobOrderStatus) CanTransitionTo(target JobOrderStatus) bool {
	for _, allowed := range jobOrderTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Terminal reports whether no Roll may be recorded against the JobOrder
// anymore.
func (s JobOrderStatus) Terminal() bool {
	return s == JobOrderStatusCompleted || s == JobOrderStatusCancelled
}

// ReachedExtrusionCompletion reports whether the status already sits at or
// past extrusion completion, i.e. the extrusion completion check is a no-op.
func (s JobOrderStatus) ReachedExtrusionCompletion() bool {
	return s == JobOrderStatusExtrusionCompleted || s.Terminal()
}

// JobOrder is a unit of work derived from an Order: "produce RequiredQty
// kilograms of product ProductRef for Order OrderID".
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// The status field is mutated only through the status machine (and the
// supervisory override, which goes through the same transition table).
type JobOrder struct {
	ID          string         `json:"id"`
	OrderID     string         `json:"order_id"`
	ProductRef  string         `json:"product_ref"`
	RequiredQty float64        `json:"required_qty"`
	Status      JobOrderStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
