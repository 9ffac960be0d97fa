package entities

import "time"

// OrderStatus is the lifecycle status of a customer Order.
//
// Domain notes:
//   - The order-management service is the source of truth for Orders; this
//     service only ingests them to drive the production work queues.
//   - The status value set is open on the order-management side. Production
//     only cares about the releasable subset below; everything else keeps the
//     Order out of the stage queues.

type OrderStatus string

const (
	OrderStatusProcessing    OrderStatus = "processing"
	OrderStatusForProduction OrderStatus = "For Production"
	OrderStatusCancelled     OrderStatus = "cancelled"
)

// Releasable reports whether the Order may expose its JobOrders to
// production stage queues.
func (s OrderStatus) Releasable() bool {
	return s == OrderStatusProcessing || s == OrderStatusForProduction
}

// Order is a customer order ingested from the order-management service.
//
// Storage model (DynamoDB):
//   - PK: id
type Order struct {
	ID          string      `json:"id"`
	CustomerRef string      `json:"customer_ref"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}
