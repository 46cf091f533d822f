package handler

import (
	"net/http"

	"shop-admin-backend/internal/domains/product"
	"shop-admin-backend/internal/shared/middleware"
	"shop-admin-backend/internal/shared/render"
	"shop-admin-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin product CRUD routes.
type AdminHandler struct {
	service product.Service
}

// NewAdminHandler creates a new admin handler instance.
// Dependency injection pattern - receives service from container.
func NewAdminHandler(service product.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// GetAddProduct handles GET /admin/add-product.
// Renders the empty product form. No side effects.
func (h *AdminHandler) GetAddProduct(c *gin.Context) {
	c.HTML(http.StatusOK, "edit-product.html", gin.H{
		"pageTitle": "Add Product",
		"path":      "/admin/add-product",
		"editing":   false,
	})
}

// PostAddProduct handles POST /admin/add-product.
// The new product is owned by the request's resolved actor.
func (h *AdminHandler) PostAddProduct(c *gin.Context) {
	var form product.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		render.BadRequest(c, "Invalid form payload")
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		// The resolver failed earlier in the chain; without an actor
		// there is no owner to stamp, so refuse instead of persisting a
		// product with a dangling reference.
		render.ServiceUnavailable(c, "No actor available for this request")
		return
	}

	if _, err := h.service.CreateProduct(c.Request.Context(), &form, actor.ID); err != nil {
		if product.IsInvalidProductInput(err) {
			render.BadRequest(c, err.Error())
			return
		}
		logger.Error("Failed to create product", err)
		render.ServerError(c, "Failed to create product")
		return
	}

	c.Redirect(http.StatusFound, "/admin/products")
}

// GetProducts handles GET /admin/products.
func (h *AdminHandler) GetProducts(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list products", err)
		render.ServerError(c, "Failed to list products")
		return
	}

	c.HTML(http.StatusOK, "products.html", gin.H{
		"prods":     products,
		"pageTitle": "Admin Products",
		"path":      "/admin/products",
	})
}

// GetEditProduct handles GET /admin/edit-product/:productId.
// Refuses to render unless the edit=true query flag is present; a missing
// flag or an unknown id both recover by redirecting to the root route.
func (h *AdminHandler) GetEditProduct(c *gin.Context) {
	if c.Query("edit") != "true" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	prodID := c.Param("productId")

	prod, err := h.service.GetProduct(c.Request.Context(), prodID)
	if err != nil {
		if product.IsProductNotFound(err) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		logger.Error("Failed to load product for edit", err)
		render.ServerError(c, "Failed to load product")
		return
	}

	c.HTML(http.StatusOK, "edit-product.html", gin.H{
		"pageTitle": "Edit Product",
		"path":      "/admin/edit-product",
		"editing":   true,
		"product":   prod,
	})
}

// PostEditProduct handles POST /admin/edit-product.
// Loads the existing record and overwrites all four editable fields; no
// ownership check, last writer wins.
func (h *AdminHandler) PostEditProduct(c *gin.Context) {
	prodID := c.PostForm("productId")

	var form product.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		render.BadRequest(c, "Invalid form payload")
		return
	}

	if _, err := h.service.UpdateProduct(c.Request.Context(), prodID, &form); err != nil {
		switch {
		case product.IsInvalidProductInput(err):
			render.BadRequest(c, err.Error())
		case product.IsProductNotFound(err):
			c.Redirect(http.StatusFound, "/admin/products")
		default:
			logger.Error("Failed to update product", err)
			render.ServerError(c, "Failed to update product")
		}
		return
	}

	c.Redirect(http.StatusFound, "/admin/products")
}

// PostDeleteProduct handles POST /admin/delete-product.
// Unconditional delete by id; deleting an id that is already gone
// redirects the same way, so repeated submits are harmless.
func (h *AdminHandler) PostDeleteProduct(c *gin.Context) {
	prodID := c.PostForm("productId")

	if err := h.service.DeleteProduct(c.Request.Context(), prodID); err != nil {
		logger.Error("Failed to delete product", err)
		render.ServerError(c, "Failed to delete product")
		return
	}

	c.Redirect(http.StatusFound, "/admin/products")
}
