package models

import "time"

// Order statuses. Any status may be overwritten with any other; there is no
// transition table and no history kept.
const (
	StatusPending   = "Pending"
	StatusAccepted  = "Accepted"
	StatusPacking   = "Packing"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

var OrderStatuses = []string{
	StatusPending,
	StatusAccepted,
	StatusPacking,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

func ValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// OrderItem snapshots only the product reference and quantity. Price is
// deliberately not stored; displays resolve it live from the product.
type OrderItem struct {
	ProductID string `json:"productId" bson:"productId"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

type Order struct {
	OrderID   string      `json:"orderId" bson:"orderId"`
	UserID    string      `json:"userId" bson:"userId"`
	Items     []OrderItem `json:"items" bson:"items"`
	Status    string      `json:"status" bson:"status"`
	CreatedAt time.Time   `json:"createdAt" bson:"createdAt"`
}

// OrderLine is a populated line item for display: the stored reference plus
// the current product document (nil if the product was deleted since).
type OrderLine struct {
	ProductID string   `json:"productId"`
	Quantity  int      `json:"quantity"`
	Product   *Product `json:"product,omitempty"`
}

// OrderView is an order with its line items populated and the buyer resolved.
type OrderView struct {
	OrderID   string      `json:"orderId"`
	UserID    string      `json:"userId"`
	Buyer     UserSummary `json:"buyer,omitempty"`
	Items     []OrderLine `json:"items"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}
