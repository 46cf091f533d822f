package product

import (
	"errors"
	"fmt"
)

// ProductError is the base error for the product domain.
type ProductError struct {
	Code    string // Unique error code (e.g. "PRODUCT_NOT_FOUND")
	Message string // Human-readable message
	Err     error  // Underlying error
}

// Error implements error interface
func (e *ProductError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap allows error wrapping compatibility
func (e *ProductError) Unwrap() error {
	return e.Err
}

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

func NewProductNotFound(id string) *ProductError {
	return &ProductError{
		Code:    "PRODUCT_NOT_FOUND",
		Message: fmt.Sprintf("Product not found: %s", id),
	}
}

func NewInvalidProductInput(err error) *ProductError {
	return &ProductError{
		Code:    "INVALID_PRODUCT_INPUT",
		Message: "Product input is invalid",
		Err:     err,
	}
}

func NewCreateProductError(err error) *ProductError {
	return &ProductError{
		Code:    "CREATE_PRODUCT_ERROR",
		Message: "Failed to create product",
		Err:     err,
	}
}

func NewGetProductError(err error) *ProductError {
	return &ProductError{
		Code:    "GET_PRODUCT_ERROR",
		Message: "Failed to get product",
		Err:     err,
	}
}

func NewListProductsError(err error) *ProductError {
	return &ProductError{
		Code:    "LIST_PRODUCTS_ERROR",
		Message: "Failed to list products",
		Err:     err,
	}
}

func NewUpdateProductError(err error) *ProductError {
	return &ProductError{
		Code:    "UPDATE_PRODUCT_ERROR",
		Message: "Failed to update product",
		Err:     err,
	}
}

func NewDeleteProductError(err error) *ProductError {
	return &ProductError{
		Code:    "DELETE_PRODUCT_ERROR",
		Message: "Failed to delete product",
		Err:     err,
	}
}

// ============================================
// ERROR CHECKING FUNCTIONS
// ============================================

func IsProductNotFound(err error) bool {
	var prodErr *ProductError
	return errors.As(err, &prodErr) && prodErr.Code == "PRODUCT_NOT_FOUND"
}

func IsInvalidProductInput(err error) bool {
	var prodErr *ProductError
	return errors.As(err, &prodErr) && prodErr.Code == "INVALID_PRODUCT_INPUT"
}
