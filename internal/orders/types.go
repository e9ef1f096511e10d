package orders

import (
	"time"

	"github.com/potterstore/storefront/internal/checkout"
)

// Status is the lifecycle state of an order. Any status may be written at
// any time; an operator drives the transitions.
type Status string

// Order statuses
const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every valid status.
var Statuses = []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Order represents the item stored in the Orders DynamoDB table.
type Order struct {
	OrderID      string                `dynamodbav:"order_id" json:"id"` // PK
	Items        []checkout.Line       `dynamodbav:"items" json:"items"`
	CustomerInfo checkout.CustomerInfo `dynamodbav:"customer_info" json:"customer_info"`
	Total        float64               `dynamodbav:"total" json:"total"`
	Status       Status                `dynamodbav:"status" json:"status"`
	Message      string                `dynamodbav:"message,omitempty" json:"message,omitempty"`
	CreatedAt    time.Time             `dynamodbav:"created_at" json:"created_at"`
	UpdatedAt    time.Time             `dynamodbav:"updated_at" json:"updated_at"`
}

// normalize fills defaults for records written with missing attributes.
func (o *Order) normalize() {
	if o.Items == nil {
		o.Items = []checkout.Line{}
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
}
