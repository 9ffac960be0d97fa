package request

import "strings"

// IngestOrderRequest is the payload the order-management service pushes when
// an Order is placed or its lifecycle moves.
type IngestOrderRequest struct {
	ID          string `json:"id"`
	CustomerRef string `json:"customer_ref"`
	Status      string `json:"status" binding:"required"`
}

func (r IngestOrderRequest) ResolveID() string {
	return strings.TrimSpace(r.ID)
}

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateJobOrderRequest derives a unit of production work from an Order:
// produce required_qty kilograms of product_ref.
type CreateJobOrderRequest struct {
	ProductRef  string  `json:"product_ref" binding:"required"`
	RequiredQty float64 `json:"required_qty" binding:"required"`
}

// JobOrderStatusRequest is the supervisory manual override payload.
type JobOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
