package model

import "github.com/m-mizutani/goerr/v2"

// Validation errors
var (
	ErrInvalidColor = goerr.New("invalid color")
	ErrInvalidItem  = goerr.New("invalid item")
)

// Context keys for error values
const (
	ItemIDKey    = "item_id"
	ColorIDKey   = "color_id"
	ColorNameKey = "color_name"
	HexCodeKey   = "hex_code"
)
