package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/potterstore/storefront/internal/aws"
	"github.com/potterstore/storefront/internal/checkout"
	"github.com/potterstore/storefront/internal/idempotency"
	"github.com/potterstore/storefront/internal/logging"
	"github.com/potterstore/storefront/internal/orders"
	"github.com/potterstore/storefront/internal/validation"
)

// CheckoutResponse is returned by POST /checkout and replayed verbatim for
// repeated Idempotency-Key values.
type CheckoutResponse struct {
	OrderID     string        `json:"order_id"`
	Status      orders.Status `json:"status"`
	Total       float64       `json:"total"`
	Message     string        `json:"message"`
	WhatsAppURL string        `json:"whatsapp_url"`
}

// RegisterCheckoutRoutes registers POST /checkout.
func RegisterCheckoutRoutes(r gin.IRouter, cfg HandlerConfig) {
	v := validation.New()
	log := cfg.Logger
	idempStore := idempotency.NewStore(cfg.DynamoDBClient, cfg.IdempotencyTable, cfg.TTLWindow)
	ordersStore := orders.NewStore(cfg.DynamoDBClient, cfg.OrdersTable)
	publisher := aws.NewPublisher(cfg.SQSClient, cfg.QueueURL)

	r.POST("/checkout", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.CheckoutRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			// BindAndValidate already wrote a 400
			return
		}

		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing_idempotency_key"})
			return
		}

		books, products, err := checkout.Resolve(cfg.Catalog, req.Books, req.Products)
		switch {
		case errors.Is(err, checkout.ErrUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "item_unavailable", "detail": err.Error()})
			return
		case err != nil:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown_item", "detail": err.Error()})
			return
		}

		summary := checkout.Summarize(books, products)
		message := checkout.RenderMessage(summary, req.Customer)

		orderID := uuid.NewString()
		order := orders.Order{
			OrderID: orderID,
			Items:   summary.Lines(),
			Total:   summary.Total,
			Status:  orders.StatusPending,
			Message: message,
		}
		if req.Customer != nil {
			order.CustomerInfo = *req.Customer
		}

		record := idempStore.NewRecord(idempKey, orderID)
		err = ordersStore.CreateWithIdempotencyTransaction(ctx, idempStore.TableName(), record, order, idempStore.TTL())
		if errors.Is(err, orders.ErrDuplicateRequest) {
			replay(c, idempStore, idempKey, log)
			return
		}
		if err != nil {
			storeError(c, log, "create_order", err)
			return
		}

		if cfg.QueueURL != "" {
			event := orders.CheckoutEvent{
				OrderID:        orderID,
				IdempotencyKey: idempKey,
				Total:          summary.Total,
				ItemCount:      summary.ItemCount(),
				CorrelationID:  logging.RequestID(c),
				OccurredAt:     record.CreatedAt,
			}
			attrs := map[string]string{
				"idempotency_key": idempKey,
				"order_id":        orderID,
				"correlation_id":  event.CorrelationID,
			}
			if err := publisher.PublishJSON(ctx, event, attrs); err != nil {
				// mark idempotency failed so the client learns the attempt did not complete
				_ = idempStore.MarkFailed(ctx, idempKey, fmt.Sprintf("sqs_send_failed: %v", err))
				log.Error("publish checkout event", zap.String("order_id", orderID), zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "enqueue_failed", "detail": err.Error()})
				return
			}
		}

		resp := CheckoutResponse{
			OrderID:     orderID,
			Status:      order.Status,
			Total:       summary.Total,
			Message:     message,
			WhatsAppURL: checkout.DeepLink(cfg.WhatsAppBaseURL, cfg.WhatsAppNumber, message),
		}
		body, err := json.Marshal(resp)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "encode_failed"})
			return
		}
		if err := idempStore.MarkDone(ctx, idempKey, string(body), http.StatusCreated); err != nil {
			// the order exists; a replay will report it as in progress
			log.Warn("mark idempotency done", zap.String("idempotency_key", idempKey), zap.Error(err))
		}

		log.Info("order placed",
			zap.String("order_id", orderID),
			zap.Float64("total", summary.Total),
			zap.Int("items", summary.ItemCount()))
		c.Header("Location", fmt.Sprintf("/orders/%s", orderID))
		c.Data(http.StatusCreated, "application/json; charset=utf-8", body)
	})
}

// replay answers a checkout whose Idempotency-Key was already used.
func replay(c *gin.Context, store *idempotency.Store, key string, log *zap.Logger) {
	rec, err := store.Get(c.Request.Context(), key)
	if err != nil {
		storeError(c, log, "get_idempotency", err)
		return
	}
	if rec == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "transaction_failed_no_idempotency_record"})
		return
	}
	switch rec.Status {
	case idempotency.StatusDone:
		if rec.ResponseBody != "" && json.Valid([]byte(rec.ResponseBody)) {
			c.Data(rec.ResponseStatus, "application/json; charset=utf-8", []byte(rec.ResponseBody))
			return
		}
		c.JSON(http.StatusOK, gin.H{"order_id": rec.OrderID})
	case idempotency.StatusInProgress:
		c.JSON(http.StatusAccepted, gin.H{"message": "request already in progress", "order_id": rec.OrderID})
	case idempotency.StatusFailed:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "previous_attempt_failed", "order_id": rec.OrderID})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unknown_idempotency_status"})
	}
}
