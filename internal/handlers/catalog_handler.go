package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/potterstore/storefront/internal/catalog"
	"github.com/potterstore/storefront/internal/validation"
)

// RegisterCatalogRoutes registers the read-only book and product routes.
func RegisterCatalogRoutes(r gin.IRouter, cfg HandlerConfig) {
	v := validation.New()
	cat := cfg.Catalog

	r.GET("/products", func(c *gin.Context) {
		var q validation.ProductQuery
		if err := validation.BindQueryAndValidate(c, &q, v); err != nil {
			return
		}
		products := cat.SearchProducts(catalog.Query{Category: q.Category, Search: q.Search})
		c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
	})

	r.GET("/products/categories", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories})
	})

	r.GET("/books", func(c *gin.Context) {
		books := cat.Books()
		c.JSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
	})
}
