package handler

import (
	"net/http"

	"shop-admin-backend/internal/domains/product"
	"shop-admin-backend/internal/shared/render"
	"shop-admin-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ShopHandler serves the storefront side. Only the index exists; it is
// the landing page the admin routes redirect to when they refuse a
// request.
type ShopHandler struct {
	service product.Service
}

func NewShopHandler(service product.Service) *ShopHandler {
	return &ShopHandler{service: service}
}

// GetIndex handles GET /.
func (h *ShopHandler) GetIndex(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list products", err)
		render.ServerError(c, "Failed to list products")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"prods":     products,
		"pageTitle": "Shop",
		"path":      "/",
	})
}
