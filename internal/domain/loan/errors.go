package loan

import "errors"

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrClientNotFound      = errors.New("client not found")
	ErrInsufficientBalance = errors.New("insufficient available amount")
)
