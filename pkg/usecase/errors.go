package usecase

import "errors"

// Sentinel errors for use case layer
var (
	ErrItemNotFound  = errors.New("item not found")
	ErrInvalidLength = errors.New("invalid color pattern length")
)

// Context keys for error values
const (
	ItemIDKey = "item_id"
	LengthKey = "length"
)
