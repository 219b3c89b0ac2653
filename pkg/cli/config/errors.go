package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound    = goerr.New("configuration file not found")
	ErrInvalidConfig     = goerr.New("invalid configuration")
	ErrDuplicateItemID   = goerr.New("duplicate item ID")
	ErrDuplicateColor    = goerr.New("duplicate color")
	ErrInvalidLength     = goerr.New("invalid color pattern length")
	ErrInvalidAttempts   = goerr.New("invalid attempt budget")
	ErrInvalidBackend    = goerr.New("invalid repository backend")
	ErrInvalidLogSetting = goerr.New("invalid logger setting")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
	ItemIDKey     = "item_id"
	ItemIndexKey  = "item_index"
	ColorIDKey    = "color_id"
	ColorNameKey  = "color_name"
)
