package user

// User is the actor record attached to every request. The system is
// single-actor: one demo user is seeded at bootstrap and read on each
// request, never updated or deleted by the request path.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Cart  Cart   `json:"cart"`
}

// Cart is the user's cart container. Declared on the document for parity
// with the storefront data model; no admin operation touches it.
type Cart struct {
	Items []CartItem `json:"items"`
}

type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
