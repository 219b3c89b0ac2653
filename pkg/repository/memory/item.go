package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/model"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/types"
)

type itemRepository struct {
	mu    sync.RWMutex
	items map[types.ItemID]*model.Item
}

func newItemRepository() *itemRepository {
	return &itemRepository{
		items: make(map[types.ItemID]*model.Item),
	}
}

// Put creates or replaces an item
func (r *itemRepository) Put(ctx context.Context, item *model.Item) error {
	if item == nil {
		return goerr.New("item is nil")
	}
	if err := item.ID.Validate(); err != nil {
		return goerr.Wrap(err, "failed to put item")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = model.CopyItem(item)
	return nil
}

func (r *itemRepository) Get(ctx context.Context, id types.ItemID) (*model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "item not found", goerr.V(model.ItemIDKey, id))
	}

	return model.CopyItem(item), nil
}

// List returns all items ordered by ID
func (r *itemRepository) List(ctx context.Context) ([]*model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*model.Item, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, model.CopyItem(item))
	}
	slices.SortFunc(items, func(a, b *model.Item) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return items, nil
}
