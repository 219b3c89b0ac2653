package firestore

import (
	"cmp"
	"context"
	"slices"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/model"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/types"
	"google.golang.org/api/iterator"
)

type colorDoc struct {
	ID      int64  `firestore:"id"`
	Name    string `firestore:"name"`
	HexCode string `firestore:"hex_code"`
}

// fromColorDoc converts a stored document, falling back to the document name
// for the ID like fromItemDoc
func fromColorDoc(docID string, d *colorDoc) model.NamedColor {
	id := types.ColorID(d.ID)
	if id == 0 {
		if parsed, err := types.ParseColorID(docID); err == nil {
			id = parsed
		}
	}
	return model.NamedColor{
		ID:      id,
		Name:    d.Name,
		HexCode: d.HexCode,
	}
}

type colorRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newColorRepository(client *firestore.Client) *colorRepository {
	return &colorRepository{
		client: client,
	}
}

func (r *colorRepository) colorsCollection() string {
	return collectionName(r.collectionPrefix, "colors")
}

func (r *colorRepository) List(ctx context.Context) (model.Palette, error) {
	iter := r.client.Collection(r.colorsCollection()).Documents(ctx)
	defer iter.Stop()

	palette := make(model.Palette, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate colors")
		}

		var d colorDoc
		if err := docSnap.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to decode color", goerr.V("doc_id", docSnap.Ref.ID))
		}
		palette = append(palette, fromColorDoc(docSnap.Ref.ID, &d))
	}

	// Palette order decides which duplicate name stays eligible, so keep it stable by ID
	slices.SortStableFunc(palette, func(a, b model.NamedColor) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return palette, nil
}
