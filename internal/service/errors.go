package service

import "errors"

var (
	ErrEmptyCart         = errors.New("cart is empty, nothing to checkout")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrWrongCredentials  = errors.New("invalid email or password")
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrInvalidTransition = errors.New("illegal transition of order status")
)
