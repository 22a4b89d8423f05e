package order

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrEmptyOrderItems = errors.New("order has no items")
	ErrInvalidItem     = errors.New("order item has invalid quantity or price")
	ErrTotalMismatch   = errors.New("order total does not match items")
)
