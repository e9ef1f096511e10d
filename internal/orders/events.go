package orders

import "time"

// CheckoutEvent is the payload sent from API -> SQS -> Worker after an order is placed.
type CheckoutEvent struct {
	OrderID        string    `json:"order_id"`
	IdempotencyKey string    `json:"idempotency_key"`
	Total          float64   `json:"total"`
	ItemCount      int       `json:"item_count"`
	CorrelationID  string    `json:"correlation_id,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
