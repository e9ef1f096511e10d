package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/potterstore/storefront/internal/orders"
	"github.com/potterstore/storefront/internal/validation"
)

// RegisterOrdersRoutes registers the order admin routes.
func RegisterOrdersRoutes(r gin.IRouter, cfg HandlerConfig) {
	v := validation.New()
	log := cfg.Logger
	store := orders.NewStore(cfg.DynamoDBClient, cfg.OrdersTable)
	watcher := orders.NewWatcher(store, cfg.PollInterval, log)

	r.GET("/orders", func(c *gin.Context) {
		list, err := store.List(c.Request.Context())
		if err != nil {
			storeError(c, log, "list_orders", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": list, "count": len(list)})
	})

	// server-sent events: one "orders" event per change, newest first
	r.GET("/orders/stream", func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Header("X-Accel-Buffering", "no")

		for snap := range watcher.Subscribe(c.Request.Context()) {
			if snap.Err != nil {
				c.SSEvent("error", gin.H{"error": "orders_unavailable"})
			} else {
				c.SSEvent("orders", snap.Orders)
			}
			c.Writer.Flush()
		}
		log.Debug("order stream closed")
	})

	r.GET("/orders/:id", func(c *gin.Context) {
		order, err := store.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			storeError(c, log, "get_order", err)
			return
		}
		if order == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order_not_found"})
			return
		}
		c.JSON(http.StatusOK, order)
	})

	r.PATCH("/orders/:id/status", func(c *gin.Context) {
		var req validation.UpdateStatusRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}
		id := c.Param("id")
		err := store.UpdateStatus(c.Request.Context(), id, orders.Status(req.Status))
		switch {
		case errors.Is(err, orders.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order_not_found"})
			return
		case errors.Is(err, orders.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_status"})
			return
		case err != nil:
			storeError(c, log, "update_status", err)
			return
		}
		log.Info("order status updated", zap.String("order_id", id), zap.String("status", req.Status))
		c.JSON(http.StatusOK, gin.H{"order_id": id, "status": req.Status})
	})
}
