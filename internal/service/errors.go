package service

import "errors"

var (
	ErrInsufficientProducts = errors.New("insufficient products: need at least 2 valid products to compare")
	ErrTooManyProducts      = errors.New("too many products: at most 4 can be compared")
	ErrProductNotFound      = errors.New("product not found")
	ErrInvalidProfile       = errors.New("invalid health profile")
)
