package interfaces

import (
	"context"

	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/model"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/types"
)

// ItemRepository is the read side of the external item store used for
// cable color pattern checks
type ItemRepository interface {
	// Get retrieves an item by ID
	Get(ctx context.Context, id types.ItemID) (*model.Item, error)

	// List retrieves all items, including disposed ones
	List(ctx context.Context) ([]*model.Item, error)
}
