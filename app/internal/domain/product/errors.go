package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductInactive = errors.New("product is not available")
	ErrUnknownOption   = errors.New("unknown product option")
)
