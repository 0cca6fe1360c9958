package services

import (
	"errors"
	"fmt"
)

// Validation errors are detected before any write; the order endpoint
// reports them to the customer as a single message.
var (
	ErrMissingRequiredField = errors.New("please fill in all required fields")
	ErrMissingDeliveryInfo  = errors.New("please select a delivery area and provide an address")
	ErrPriceMismatch        = errors.New("price mismatch detected, please refresh and try again")
	ErrNotFound             = errors.New("record not found")
	ErrInvalidStatus        = errors.New("invalid order status")
)

// PriceNotFoundError reports a cart line with no pricing row behind it.
type PriceNotFoundError struct {
	ProductID uint
	SizeType  string
}

func (e *PriceNotFoundError) Error() string {
	return fmt.Sprintf("no price found for product %d size %s", e.ProductID, e.SizeType)
}

// BelowMinimumError rejects a delivery order whose subtotal is under the
// area minimum.
type BelowMinimumError struct {
	Minimum float64
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("minimum order for delivery is %.2f", e.Minimum)
}
