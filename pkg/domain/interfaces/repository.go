package interfaces

import "github.com/m-mizutani/goerr/v2"

// ErrNotFound is returned by every repository backend when a record does not exist
var ErrNotFound = goerr.New("not found")

// Repository groups the external collaborators consumed by the pattern checks
type Repository interface {
	Item() ItemRepository
	Color() ColorRepository
	Close() error
}
