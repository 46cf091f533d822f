package user

import (
	"errors"
	"fmt"
)

// UserError is the base error for the user domain.
type UserError struct {
	Code    string
	Message string
	Err     error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *UserError) Unwrap() error {
	return e.Err
}

func NewUserNotFound(id string) *UserError {
	return &UserError{
		Code:    "USER_NOT_FOUND",
		Message: fmt.Sprintf("User not found: %s", id),
	}
}

func NewGetUserError(err error) *UserError {
	return &UserError{
		Code:    "GET_USER_ERROR",
		Message: "Failed to get user",
		Err:     err,
	}
}

func NewSeedUserError(err error) *UserError {
	return &UserError{
		Code:    "SEED_USER_ERROR",
		Message: "Failed to seed user",
		Err:     err,
	}
}

func IsUserNotFound(err error) bool {
	var userErr *UserError
	return errors.As(err, &userErr) && userErr.Code == "USER_NOT_FOUND"
}
