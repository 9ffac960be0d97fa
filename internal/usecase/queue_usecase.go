package usecase

import (
	"context"
	"log"
	"sort"

	"plasticos_xpto/internal/domain/entities"
	"plasticos_xpto/internal/usecase/interfaces"
)

// QueueItem is a job order waiting for extrusion work, with its progress
// computed for display.
type QueueItem struct {
	JobOrder        entities.JobOrder `json:"job_order"`
	TotalExtruded   float64           `json:"total_extruded"`
	ProgressPercent int               `json:"progress_percent"`
}

// QueueGroup is the per-Order bucket of the extrusion work queue.
type QueueGroup struct {
	OrderID     string      `json:"order_id"`
	CustomerRef string      `json:"customer_ref"`
	JobOrders   []QueueItem `json:"job_orders"`
}

// IQueueUseCase is the Order Grouping View: the read-only projection behind
// the extrusion work queue screen.

type IQueueUseCase interface {
	ExtrusionQueue(ctx context.Context) ([]QueueGroup, error)
}

type QueueUseCase struct {
	jobOrders interfaces.IJobOrderRepository
	rolls     interfaces.IRollRepository
	orders    interfaces.IOrderRepository
}

var _ IQueueUseCase = (*QueueUseCase)(nil)

func NewQueueUseCase(jobOrders interfaces.IJobOrderRepository, rolls interfaces.IRollRepository, orders interfaces.IOrderRepository) *QueueUseCase {
	return &QueueUseCase{jobOrders: jobOrders, rolls: rolls, orders: orders}
}

// ExtrusionQueue builds the filtered, grouped work queue:
//
//  1. job orders with status pending or in_progress
//  2. minus any that are already fully extruded, checked against the Roll
//     Ledger, not the stored status, so a job order whose transition has not
//     landed yet is still excluded
//  3. minus any whose parent Order is not releasable to production
//  4. grouped by order id, groups ascending by order id, ledger order inside
//     a group
func (u *QueueUseCase) ExtrusionQueue(ctx context.Context) ([]QueueGroup, error) {
	candidates, err := u.jobOrders.ListByStatuses(ctx, []entities.JobOrderStatus{
		entities.JobOrderStatusPending,
		entities.JobOrderStatusInProgress,
	})
	if err != nil {
		return nil, err
	}

	orderCache := make(map[string]entities.Order)
	groups := make(map[string][]QueueItem)

	for _, jo := range candidates {
		rolls, err := u.rolls.ListByJobOrderID(ctx, jo.ID)
		if err != nil {
			return nil, err
		}
		total := TotalExtruded(rolls)
		if IsFullyExtruded(jo.RequiredQty, total) {
			// Stored status lags behind the ledger; keep it out of the queue.
			log.Printf("[queue][usecase] excluding fully extruded job order job_order_id=%s status=%s", jo.ID, jo.Status)
			continue
		}

		parent, ok := orderCache[jo.OrderID]
		if !ok {
			parent, err = u.orders.GetByID(ctx, jo.OrderID)
			if err != nil {
				return nil, err
			}
			orderCache[jo.OrderID] = parent
		}
		if parent.ID == "" || !parent.Status.Releasable() {
			continue
		}

		groups[jo.OrderID] = append(groups[jo.OrderID], QueueItem{
			JobOrder:        jo,
			TotalExtruded:   total,
			ProgressPercent: ProgressPercent(jo.RequiredQty, total),
		})
	}

	orderIDs := make([]string, 0, len(groups))
	for id := range groups {
		orderIDs = append(orderIDs, id)
	}
	sort.Strings(orderIDs)

	out := make([]QueueGroup, 0, len(orderIDs))
	for _, id := range orderIDs {
		out = append(out, QueueGroup{
			OrderID:     id,
			CustomerRef: orderCache[id].CustomerRef,
			JobOrders:   groups[id],
		})
	}
	return out, nil
}
