package memory

import (
	"context"
	"sync"

	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/model"
)

type colorRepository struct {
	mu     sync.RWMutex
	colors model.Palette
}

func newColorRepository() *colorRepository {
	return &colorRepository{}
}

// Put appends a color, or replaces the color with the same ID
func (r *colorRepository) Put(ctx context.Context, color model.NamedColor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.colors {
		if c.ID == color.ID {
			r.colors[i] = color
			return nil
		}
	}
	r.colors = append(r.colors, color)
	return nil
}

// List returns colors in registration order
func (r *colorRepository) List(ctx context.Context) (model.Palette, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	palette := make(model.Palette, len(r.colors))
	copy(palette, r.colors)
	return palette, nil
}
