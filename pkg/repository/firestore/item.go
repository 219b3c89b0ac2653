package firestore

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/model"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/types"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/utils/logging"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// itemDoc is the stored shape of an item. Only the fields needed for pattern
// checks are decoded; absent arrays decode as nil.
type itemDoc struct {
	ID                int64    `firestore:"id"`
	Name              string   `firestore:"name"`
	LabelID           string   `firestore:"label_id"`
	ConnectorNames    []string `firestore:"connector_names"`
	CableColorPattern []string `firestore:"cable_color_pattern"`
	IsDisposed        bool     `firestore:"is_disposed"`
}

// fromItemDoc converts a stored document. Documents written without an id
// field take their ID from the document name.
func fromItemDoc(docID string, d *itemDoc) *model.Item {
	id := types.ItemID(d.ID)
	if id == 0 {
		if parsed, err := types.ParseItemID(docID); err == nil {
			id = parsed
		}
	}
	return &model.Item{
		ID:                id,
		Name:              d.Name,
		LabelID:           d.LabelID,
		ConnectorNames:    d.ConnectorNames,
		CableColorPattern: d.CableColorPattern,
		Disposed:          d.IsDisposed,
	}
}

type itemRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newItemRepository(client *firestore.Client) *itemRepository {
	return &itemRepository{
		client: client,
	}
}

func (r *itemRepository) itemsCollection() string {
	return collectionName(r.collectionPrefix, "items")
}

func (r *itemRepository) Get(ctx context.Context, id types.ItemID) (*model.Item, error) {
	docID := fmt.Sprintf("%d", id)
	docSnap, err := r.client.Collection(r.itemsCollection()).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "item not found", goerr.V(model.ItemIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get item", goerr.V(model.ItemIDKey, id))
	}

	var d itemDoc
	if err := docSnap.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to decode item", goerr.V(model.ItemIDKey, id))
	}
	return fromItemDoc(docSnap.Ref.ID, &d), nil
}

func (r *itemRepository) List(ctx context.Context) ([]*model.Item, error) {
	// No OrderBy: Firestore drops documents lacking the ordered field.
	iter := r.client.Collection(r.itemsCollection()).Documents(ctx)
	defer iter.Stop()

	items := make([]*model.Item, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate items")
		}

		var d itemDoc
		if err := docSnap.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to decode item", goerr.V("doc_id", docSnap.Ref.ID))
		}
		item := fromItemDoc(docSnap.Ref.ID, &d)
		if item.ID == 0 {
			logging.From(ctx).Warn("item document has no usable ID", "doc_id", docSnap.Ref.ID)
		}
		items = append(items, item)
	}

	slices.SortStableFunc(items, func(a, b *model.Item) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return items, nil
}
