package main

import (
	"context"
	"net/http"
	"time"

	"shop-admin-backend/internal/shared/middleware"
	"shop-admin-backend/internal/shared/render"
	"shop-admin-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the route table. Routes are compiled once here, at
// startup; dispatch at request time is a pure function of method + path,
// with NoRoute as the terminal not-found fallback.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	render.Install(router)

	// Global middlewares. The actor resolver runs before every handler,
	// including the fallback, mirroring the one-read-per-request contract.
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ActorResolver(c.UserService, c.SeedActorID),
	)

	router.GET("/healthz", healthCheckHandler(c))

	// Storefront
	router.GET("/", c.ShopHandler.GetIndex)

	// Admin product management. Concrete paths are matched ahead of the
	// :productId capture by the router.
	admin := router.Group("/admin")
	{
		admin.GET("/add-product", c.AdminHandler.GetAddProduct)
		admin.POST("/add-product", c.AdminHandler.PostAddProduct)
		admin.GET("/products", c.AdminHandler.GetProducts)
		admin.GET("/edit-product/:productId", c.AdminHandler.GetEditProduct)
		admin.POST("/edit-product", c.AdminHandler.PostEditProduct)
		admin.POST("/delete-product", c.AdminHandler.PostDeleteProduct)
	}

	// Everything unmatched, any method.
	router.NoRoute(render.NotFound)

	return router
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		statusCode := http.StatusOK

		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.Ping(ctx); err != nil {
				dbStatus = err.Error()
			}
		}

		if dbStatus != "ok" {
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		}
		health["database"] = dbStatus

		c.JSON(statusCode, health)
	}
}
