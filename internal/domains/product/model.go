package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the catalog entity managed by the admin CRUD routes.
// It is persisted as one document in the "products" collection; the json
// tags are the document field names.
type Product struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`

	// UserID is the owning actor, stamped at creation and never
	// reassigned. Deleting the actor does not cascade here.
	UserID string `json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
