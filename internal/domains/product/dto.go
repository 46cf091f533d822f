package product

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// maxPrice bounds what the admin form accepts. Anything above this is far
// more likely a typo than a real catalog price.
var maxPrice = decimal.NewFromInt(1_000_000)

// ProductForm is the form-encoded payload shared by the add and edit
// submit routes. Price arrives as text and is coerced to a decimal at
// this boundary; malformed or negative values are rejected before
// anything touches the store.
type ProductForm struct {
	Title       string `form:"title"`
	ImageURL    string `form:"imageUrl"`
	Price       string `form:"price"`
	Description string `form:"description"`
}

func (f ProductForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&f.Price,
			validation.Required.Error("price is required"),
			validation.By(validatePrice),
		),
	)
}

func validatePrice(value interface{}) error {
	raw, _ := value.(string)

	price, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("must be a valid number")
	}
	if price.IsNegative() {
		return fmt.Errorf("must not be negative")
	}
	if price.GreaterThan(maxPrice) {
		return fmt.Errorf("must not exceed %s", maxPrice.String())
	}
	return nil
}

// PriceDecimal converts the submitted price. Call after Validate.
func (f ProductForm) PriceDecimal() (decimal.Decimal, error) {
	return decimal.NewFromString(f.Price)
}
