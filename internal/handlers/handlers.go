package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/potterstore/storefront/internal/aws"
	"github.com/potterstore/storefront/internal/catalog"
)

// HandlerConfig groups dependencies for the storefront handlers.
type HandlerConfig struct {
	DynamoDBClient   aws.DynamoDBAPI
	SQSClient        aws.SQSAPI
	Catalog          *catalog.Catalog
	Logger           *zap.Logger
	IdempotencyTable string
	OrdersTable      string
	QueueURL         string
	TTLWindow        time.Duration
	PollInterval     time.Duration
	WhatsAppNumber   string
	WhatsAppBaseURL  string
}

// RegisterRoutes registers the catalog, checkout and order routes.
func RegisterRoutes(r gin.IRouter, cfg HandlerConfig) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	RegisterCatalogRoutes(r, cfg)
	RegisterCheckoutRoutes(r, cfg)
	RegisterOrdersRoutes(r, cfg)
}

// storeError answers a failed DynamoDB call: throttling maps to 503 so
// clients back off, anything else is a 500.
func storeError(c *gin.Context, log *zap.Logger, op string, err error) {
	if aws.IsThrottled(err) {
		log.Warn("store throttled", zap.String("op", op), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store_throttled"})
		return
	}
	log.Error("store failure", zap.String("op", op), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "store_error", "detail": err.Error()})
}
