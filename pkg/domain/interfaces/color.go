package interfaces

import (
	"context"

	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/model"
)

// ColorRepository provides the color master
type ColorRepository interface {
	// List retrieves all colors. An unavailable master is an empty palette.
	List(ctx context.Context) (model.Palette, error)
}
