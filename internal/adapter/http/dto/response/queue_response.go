package response

import "plasticos_xpto/internal/usecase"

type QueueItemResponse struct {
	JobOrder        JobOrderResponse `json:"job_order"`
	TotalExtruded   float64          `json:"total_extruded"`
	ProgressPercent int              `json:"progress_percent"`
}

type QueueGroupResponse struct {
	OrderID     string              `json:"order_id"`
	CustomerRef string              `json:"customer_ref"`
	JobOrders   []QueueItemResponse `json:"job_orders"`
}

func FromQueueGroups(groups []usecase.QueueGroup) []QueueGroupResponse {
	out := make([]QueueGroupResponse, 0, len(groups))
	for _, g := range groups {
		items := make([]QueueItemResponse, 0, len(g.JobOrders))
		for _, it := range g.JobOrders {
			items = append(items, QueueItemResponse{
				JobOrder:        FromJobOrder(it.JobOrder),
				TotalExtruded:   it.TotalExtruded,
				ProgressPercent: it.ProgressPercent,
			})
		}
		out = append(out, QueueGroupResponse{
			OrderID:     g.OrderID,
			CustomerRef: g.CustomerRef,
			JobOrders:   items,
		})
	}
	return out
}
