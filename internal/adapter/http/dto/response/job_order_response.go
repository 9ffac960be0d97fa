package response

import (
	"time"

	"plasticos_xpto/internal/domain/entities"
	"plasticos_xpto/internal/usecase"
)

type JobOrderResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	ProductRef  string    `json:"product_ref"`
	RequiredQty float64   `json:"required_qty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromJobOrder(jo entities.JobOrder) JobOrderResponse {
	return JobOrderResponse{
		ID:          jo.ID,
		OrderID:     jo.OrderID,
		ProductRef:  jo.ProductRef,
		RequiredQty: jo.RequiredQty,
		Status:      string(jo.Status),
		CreatedAt:   jo.CreatedAt,
		UpdatedAt:   jo.UpdatedAt,
	}
}

func FromJobOrders(jos []entities.JobOrder) []JobOrderResponse {
	out := make([]JobOrderResponse, 0, len(jos))
	for _, jo := range jos {
		out = append(out, FromJobOrder(jo))
	}
	return out
}

type ProgressResponse struct {
	ProgressPercent int     `json:"progress_percent"`
	IsFullyExtruded bool    `json:"is_fully_extruded"`
	TotalExtruded   float64 `json:"total_extruded"`
}

func FromProgressReport(r usecase.ProgressReport) ProgressResponse {
	return ProgressResponse{
		ProgressPercent: r.ProgressPercent,
		IsFullyExtruded: r.IsFullyExtruded,
		TotalExtruded:   r.TotalExtruded,
	}
}

type OrderResponse struct {
	ID          string    `json:"id"`
	CustomerRef string    `json:"customer_ref"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		CustomerRef: o.CustomerRef,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
	}
}
