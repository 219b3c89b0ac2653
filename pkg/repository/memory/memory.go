package memory

import (
	"context"

	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/interfaces"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/model"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = interfaces.ErrNotFound

type Memory struct {
	item  *itemRepository
	color *colorRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		item:  newItemRepository(),
		color: newColorRepository(),
	}
}

func (m *Memory) Item() interfaces.ItemRepository {
	return m.item
}

func (m *Memory) Color() interfaces.ColorRepository {
	return m.color
}

// PutItem creates or replaces an item. The memory store is seeded from an
// inventory snapshot; the other backends are read-only.
func (m *Memory) PutItem(ctx context.Context, item *model.Item) error {
	return m.item.Put(ctx, item)
}

// PutColor adds a color to the color master, replacing the one with the same ID
func (m *Memory) PutColor(ctx context.Context, color model.NamedColor) error {
	return m.color.Put(ctx, color)
}

func (m *Memory) Close() error {
	return nil
}
