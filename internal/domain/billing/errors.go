package billing

import "errors"

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidMethod    = errors.New("invalid payment method")
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)
