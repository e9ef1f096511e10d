package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/potterstore/storefront/internal/aws"
	"github.com/potterstore/storefront/internal/orders"
)

// OrderReader is the part of the order store the worker needs.
type OrderReader interface {
	Get(ctx context.Context, orderID string) (*orders.Order, error)
}

// Processor turns checkout events into CloudWatch metrics.
type Processor struct {
	orders  OrderReader
	metrics *aws.Metrics
	log     *zap.Logger
}

// NewProcessor creates a new worker processor with AWS clients injected.
func NewProcessor(clients *aws.AWSClients, ordersTable, namespace string, log *zap.Logger) *Processor {
	return &Processor{
		orders:  orders.NewStore(clients.DynamoDB, ordersTable),
		metrics: aws.NewMetrics(clients.CloudWatch, namespace),
		log:     log,
	}
}

// Handle receives an SQS batch event and processes each message.
func (p *Processor) Handle(ctx context.Context, ev events.SQSEvent) error {
	p.log.Debug("received batch", zap.Int("records", len(ev.Records)))
	for _, rec := range ev.Records {
		if err := p.processMessage(ctx, rec); err != nil {
			// Return error: Lambda will retry. If failed too many times, message goes to DLQ.
			p.log.Error("worker error", zap.String("message_id", rec.MessageId), zap.Error(err))
			return err
		}
	}
	return nil
}

func (p *Processor) processMessage(ctx context.Context, rec events.SQSMessage) error {
	var msg orders.CheckoutEvent
	if err := json.Unmarshal([]byte(rec.Body), &msg); err != nil {
		return fmt.Errorf("invalid message body: %w", err)
	}
	if msg.OrderID == "" {
		return fmt.Errorf("message %s has no order_id", rec.MessageId)
	}

	log := p.log.With(
		zap.String("order_id", msg.OrderID),
		zap.String("idempotency_key", msg.IdempotencyKey),
		zap.String("correlation_id", msg.CorrelationID))

	// the stored order is authoritative for the amounts
	order, err := p.orders.Get(ctx, msg.OrderID)
	if err != nil {
		return fmt.Errorf("failed to fetch order: %w", err)
	}
	if order == nil {
		return fmt.Errorf("order not found: %s", msg.OrderID)
	}

	items := 0
	for _, l := range order.Items {
		items += l.Quantity
	}
	if err := p.metrics.RecordCheckout(ctx, order.Total, items); err != nil {
		return fmt.Errorf("failed to record metrics: %w", err)
	}

	log.Info("checkout recorded", zap.Float64("total", order.Total), zap.Int("items", items))
	return nil
}
