package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	gfirestore "cloud.google.com/go/firestore"
	"github.com/m-mizutani/gt"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/interfaces"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/model"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/types"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/repository/firestore"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/repository/memory"
)

// seeder writes fixtures through whatever the backend offers; the
// repositories under test are read-only.
type seeder interface {
	putItem(t *testing.T, item *model.Item)
	putColor(t *testing.T, color model.NamedColor)
	// the WithoutIDField variants store records whose ID is only the document name
	putItemWithoutIDField(t *testing.T, item *model.Item)
	putColorWithoutIDField(t *testing.T, color model.NamedColor)
}

type testBackend struct {
	repo     interfaces.Repository
	seed     seeder
	notFound error
}

func runItemRepositoryTest(t *testing.T, newBackend func(t *testing.T) *testBackend) {
	t.Helper()

	t.Run("List returns items ordered by ID", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()

		b.seed.putItem(t, &model.Item{ID: 3, Name: "C", ConnectorNames: []string{"DC"}, CableColorPattern: []string{"red"}})
		b.seed.putItem(t, &model.Item{ID: 1, Name: "A", LabelID: "0001", ConnectorNames: []string{"HDMI", "USB"}, CableColorPattern: []string{"red", "blue"}})
		b.seed.putItem(t, &model.Item{ID: 2, Name: "B", Disposed: true})

		items, err := b.repo.Item().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, items).Length(3)

		gt.Value(t, items[0].ID).Equal(types.ItemID(1))
		gt.Value(t, items[0].LabelID).Equal("0001")
		gt.Array(t, items[0].ConnectorNames).Equal([]string{"HDMI", "USB"})
		gt.Array(t, items[0].CableColorPattern).Equal([]string{"red", "blue"})
		gt.Value(t, items[1].ID).Equal(types.ItemID(2))
		gt.Bool(t, items[1].Disposed).True()
		gt.Array(t, items[1].Connectors()).Length(0)
		gt.Array(t, items[1].Colors()).Length(0)
		gt.Value(t, items[2].ID).Equal(types.ItemID(3))
	})

	t.Run("Get retrieves a single item", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()

		b.seed.putItem(t, &model.Item{ID: 10, Name: "Speaker cable", ConnectorNames: []string{"XLR", "XLR"}, CableColorPattern: []string{"green"}})

		item, err := b.repo.Item().Get(ctx, 10)
		gt.NoError(t, err).Required()
		gt.Value(t, item.Name).Equal("Speaker cable")
		gt.Array(t, item.ConnectorNames).Equal([]string{"XLR", "XLR"})
	})

	t.Run("Get returns not found for unknown ID", func(t *testing.T) {
		b := newBackend(t)

		_, err := b.repo.Item().Get(context.Background(), 999)
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, b.notFound)).True()
	})

	t.Run("Color List returns the color master", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()

		b.seed.putColor(t, model.NamedColor{ID: 1, Name: "red", HexCode: "#FF0000"})
		b.seed.putColor(t, model.NamedColor{ID: 2, Name: "blue", HexCode: "#0000FF"})

		palette, err := b.repo.Color().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, palette.Names()).Equal([]string{"red", "blue"})
		gt.Value(t, palette[1].HexCode).Equal("#0000FF")
	})

	t.Run("List includes records stored without an id field", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()

		b.seed.putItem(t, &model.Item{ID: 50, Name: "with id", ConnectorNames: []string{"HDMI"}, CableColorPattern: []string{"red"}})
		b.seed.putItemWithoutIDField(t, &model.Item{ID: 42, Name: "without id", ConnectorNames: []string{"HDMI"}, CableColorPattern: []string{"red"}})

		items, err := b.repo.Item().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, items).Length(2).Required()
		gt.Value(t, items[0].ID).Equal(types.ItemID(42))
		gt.Value(t, items[0].Name).Equal("without id")
		gt.Value(t, items[1].ID).Equal(types.ItemID(50))

		conflicts := model.Scan(model.Candidate{
			Connectors: model.ConnectorSet{"HDMI"},
			Colors:     model.ColorSequence{"red"},
		}, items)
		gt.Array(t, conflicts).Length(2)

		item, err := b.repo.Item().Get(ctx, 42)
		gt.NoError(t, err).Required()
		gt.Value(t, item.ID).Equal(types.ItemID(42))

		b.seed.putColor(t, model.NamedColor{ID: 2, Name: "blue", HexCode: "#0000FF"})
		b.seed.putColorWithoutIDField(t, model.NamedColor{ID: 1, Name: "red", HexCode: "#FF0000"})

		palette, err := b.repo.Color().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, palette.Names()).Equal([]string{"red", "blue"})
		gt.Value(t, palette[0].ID).Equal(types.ColorID(1))
	})

	t.Run("Color List on empty master returns empty palette", func(t *testing.T) {
		b := newBackend(t)

		palette, err := b.repo.Color().List(context.Background())
		gt.NoError(t, err).Required()
		gt.Array(t, palette).Length(0)
	})
}

type memorySeeder struct {
	repo *memory.Memory
}

func (s *memorySeeder) putItem(t *testing.T, item *model.Item) {
	t.Helper()
	gt.NoError(t, s.repo.PutItem(context.Background(), item)).Required()
}

func (s *memorySeeder) putColor(t *testing.T, color model.NamedColor) {
	t.Helper()
	gt.NoError(t, s.repo.PutColor(context.Background(), color)).Required()
}

func TestMemoryItemRepository(t *testing.T) {
	runItemRepositoryTest(t, func(t *testing.T) *testBackend {
		repo := memory.New()
		return &testBackend{
			repo:     repo,
			seed:     &memorySeeder{repo: repo},
			notFound: memory.ErrNotFound,
		}
	})
}

func (s *memorySeeder) putItemWithoutIDField(t *testing.T, item *model.Item) {
	t.Helper()
	s.putItem(t, item)
}

func (s *memorySeeder) putColorWithoutIDField(t *testing.T, color model.NamedColor) {
	t.Helper()
	s.putColor(t, color)
}

type firestoreSeeder struct {
	client *gfirestore.Client
	prefix string
}

func (s *firestoreSeeder) putItem(t *testing.T, item *model.Item) {
	t.Helper()
	s.setItem(t, item, true)
}

func (s *firestoreSeeder) putItemWithoutIDField(t *testing.T, item *model.Item) {
	t.Helper()
	s.setItem(t, item, false)
}

func (s *firestoreSeeder) setItem(t *testing.T, item *model.Item, withID bool) {
	t.Helper()
	doc := map[string]any{
		"id":          int64(item.ID),
		"name":        item.Name,
		"label_id":    item.LabelID,
		"is_disposed": item.Disposed,
	}
	if !withID {
		delete(doc, "id")
	}
	if item.ConnectorNames != nil {
		doc["connector_names"] = item.ConnectorNames
	}
	if item.CableColorPattern != nil {
		doc["cable_color_pattern"] = item.CableColorPattern
	}
	_, err := s.client.Collection(s.prefix+"_items").Doc(fmt.Sprintf("%d", item.ID)).Set(context.Background(), doc)
	gt.NoError(t, err).Required()
}

func (s *firestoreSeeder) putColor(t *testing.T, color model.NamedColor) {
	t.Helper()
	s.setColor(t, color, true)
}

func (s *firestoreSeeder) putColorWithoutIDField(t *testing.T, color model.NamedColor) {
	t.Helper()
	s.setColor(t, color, false)
}

func (s *firestoreSeeder) setColor(t *testing.T, color model.NamedColor, withID bool) {
	t.Helper()
	doc := map[string]any{
		"id":       int64(color.ID),
		"name":     color.Name,
		"hex_code": color.HexCode,
	}
	if !withID {
		delete(doc, "id")
	}
	_, err := s.client.Collection(s.prefix+"_colors").Doc(fmt.Sprintf("%d", color.ID)).Set(context.Background(), doc)
	gt.NoError(t, err).Required()
}

func newFirestoreBackend(t *testing.T) *testBackend {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}

	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")
	if databaseID == "" {
		t.Skip("TEST_FIRESTORE_DATABASE_ID not set")
	}

	ctx := context.Background()
	prefix := fmt.Sprintf("test_%d", time.Now().UnixNano())

	repo, err := firestore.New(ctx, projectID, databaseID, firestore.WithCollectionPrefix(prefix))
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})

	client, err := gfirestore.NewClientWithDatabase(ctx, projectID, databaseID)
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, client.Close())
	})

	return &testBackend{
		repo:     repo,
		seed:     &firestoreSeeder{client: client, prefix: prefix},
		notFound: firestore.ErrNotFound,
	}
}

func TestFirestoreItemRepository(t *testing.T) {
	runItemRepositoryTest(t, newFirestoreBackend)
}
