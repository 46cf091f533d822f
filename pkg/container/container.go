package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"shop-admin-backend/internal/config"
	"shop-admin-backend/internal/infrastructure/database"

	"shop-admin-backend/internal/domains/product"
	productHandler "shop-admin-backend/internal/domains/product/handler"
	productRepo "shop-admin-backend/internal/domains/product/repository"
	productService "shop-admin-backend/internal/domains/product/service"

	"shop-admin-backend/internal/domains/user"
	userRepo "shop-admin-backend/internal/domains/user/repository"
	userService "shop-admin-backend/internal/domains/user/service"
)

// Container holds the application's full dependency graph.
// Initialization order matters: config → infrastructure → repositories →
// services → handlers, then the seed actor bootstrap.
type Container struct {
	// Infrastructure - singletons shared across domains
	Config *config.Config
	DB     *database.PostgresDB

	// SeedActorID is the fixed actor the resolver loads on every request.
	// Set once at bootstrap, read-only afterwards.
	SeedActorID string

	// Repository layer (data access)
	ProductRepo product.Repository
	UserRepo    user.Repository

	// Service layer (business logic)
	ProductService product.Service
	UserService    user.Service

	// Handler layer (HTTP)
	AdminHandler *productHandler.AdminHandler
	ShopHandler  *productHandler.ShopHandler
}

// NewContainer builds and initializes the whole dependency graph.
// Any failure here means the application must not start.
func NewContainer() (*Container, error) {
	log.Println("Initializing container...")

	c := &Container{}

	// Step 1: configuration (depends on nothing)
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// Step 2: database
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := db.EnsureSchema(ctx); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	// Step 3: repositories
	c.ProductRepo = productRepo.NewPostgresRepository(db.Pool)
	c.UserRepo = userRepo.NewPostgresRepository(db.Pool)

	// Step 4: services
	c.ProductService = productService.NewProductService(c.ProductRepo)
	c.UserService = userService.NewUserService(c.UserRepo)

	// Step 5: handlers
	c.AdminHandler = productHandler.NewAdminHandler(c.ProductService)
	c.ShopHandler = productHandler.NewShopHandler(c.ProductService)

	// Step 6: seed the demo actor (create-if-absent) and pin its id for
	// the per-request resolver.
	actor, err := c.UserService.EnsureSeedActor(ctx, cfg.Seed.ActorName, cfg.Seed.ActorEmail)
	if err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to seed actor: %w", err)
	}
	c.SeedActorID = actor.ID

	log.Println("Container initialized")
	return c, nil
}

// Cleanup releases container resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}
}
