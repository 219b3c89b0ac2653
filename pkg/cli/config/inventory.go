package config

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/model"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/types"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/repository/memory"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/utils/safe"
)

const gcsScheme = "gs://"

// Inventory is a snapshot of the item repository and the color master,
// used to run checks without the inventory backend.
type Inventory struct {
	Items  []InventoryItem  `toml:"item"`
	Colors []InventoryColor `toml:"color"`
}

// InventoryItem is one [[item]] entry
type InventoryItem struct {
	ID                int64    `toml:"id"`
	Name              string   `toml:"name"`
	LabelID           string   `toml:"label_id"`
	ConnectorNames    []string `toml:"connector_names"`
	CableColorPattern []string `toml:"cable_color_pattern"`
	Disposed          bool     `toml:"disposed"`
}

// ToModel converts the entry to a domain item
func (i InventoryItem) ToModel() *model.Item {
	return &model.Item{
		ID:                types.ItemID(i.ID),
		Name:              i.Name,
		LabelID:           i.LabelID,
		ConnectorNames:    i.ConnectorNames,
		CableColorPattern: i.CableColorPattern,
		Disposed:          i.Disposed,
	}
}

// InventoryColor is one [[color]] entry
type InventoryColor struct {
	ID      int64  `toml:"id"`
	Name    string `toml:"name"`
	HexCode string `toml:"hex_code"`
}

// ToModel converts the entry to a domain color
func (c InventoryColor) ToModel() model.NamedColor {
	return model.NamedColor{
		ID:      types.ColorID(c.ID),
		Name:    c.Name,
		HexCode: c.HexCode,
	}
}

// Validate checks if the Inventory is valid
func (x *Inventory) Validate() error {
	itemIDs := make(map[int64]bool)
	for idx, item := range x.Items {
		if err := item.ToModel().Validate(); err != nil {
			return goerr.Wrap(err, "invalid item", goerr.V(ItemIndexKey, idx))
		}
		if itemIDs[item.ID] {
			return goerr.Wrap(ErrDuplicateItemID, "duplicate item ID", goerr.V(ItemIDKey, item.ID))
		}
		itemIDs[item.ID] = true
	}

	colorIDs := make(map[int64]bool)
	colorNames := make(map[string]bool)
	for _, color := range x.Colors {
		if color.ID < 1 {
			return goerr.Wrap(ErrInvalidConfig, "color ID must be positive",
				goerr.V(ColorIDKey, color.ID),
				goerr.V(ColorNameKey, color.Name))
		}
		if err := color.ToModel().Validate(); err != nil {
			return goerr.Wrap(err, "invalid color", goerr.V(ColorIDKey, color.ID))
		}
		if colorIDs[color.ID] {
			return goerr.Wrap(ErrDuplicateColor, "duplicate color ID", goerr.V(ColorIDKey, color.ID))
		}
		if colorNames[color.Name] {
			return goerr.Wrap(ErrDuplicateColor, "duplicate color name", goerr.V(ColorNameKey, color.Name))
		}
		colorIDs[color.ID] = true
		colorNames[color.Name] = true
	}

	return nil
}

// Seed stores the snapshot into an in-memory repository
func (x *Inventory) Seed(ctx context.Context, repo *memory.Memory) error {
	for _, item := range x.Items {
		if err := repo.PutItem(ctx, item.ToModel()); err != nil {
			return goerr.Wrap(err, "failed to seed item", goerr.V(ItemIDKey, item.ID))
		}
	}
	for _, color := range x.Colors {
		if err := repo.PutColor(ctx, color.ToModel()); err != nil {
			return goerr.Wrap(err, "failed to seed color", goerr.V(ColorIDKey, color.ID))
		}
	}
	return nil
}

// LoadInventory reads and validates a snapshot from a local path or a
// gs://bucket/object URL.
func LoadInventory(ctx context.Context, path string) (*Inventory, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(path, gcsScheme) {
		data, err = readGCSObject(ctx, path)
	} else {
		data, err = readLocalFile(path)
	}
	if err != nil {
		return nil, err
	}

	var inv Inventory
	if err := toml.Unmarshal(data, &inv); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse inventory snapshot",
			goerr.V(ConfigPathKey, path),
			goerr.V("error", err.Error()))
	}

	if err := inv.Validate(); err != nil {
		return nil, goerr.Wrap(err, "inventory snapshot validation failed", goerr.V(ConfigPathKey, path))
	}

	return &inv, nil
}

func readLocalFile(path string) ([]byte, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "inventory snapshot not found", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read inventory snapshot", goerr.V(ConfigPathKey, path))
	}
	return data, nil
}

// parseGCSPath splits gs://bucket/object into its parts
func parseGCSPath(path string) (string, string, error) {
	bucket, object, ok := strings.Cut(strings.TrimPrefix(path, gcsScheme), "/")
	if !ok || bucket == "" || object == "" {
		return "", "", goerr.Wrap(ErrInvalidConfig, "GCS path must be gs://bucket/object", goerr.V(ConfigPathKey, path))
	}
	return bucket, object, nil
}

func readGCSObject(ctx context.Context, path string) ([]byte, error) {
	bucket, object, err := parseGCSPath(path)
	if err != nil {
		return nil, err
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client")
	}
	defer safe.Close(ctx, "storage client", client)

	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "inventory snapshot not found", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to open GCS object", goerr.V(ConfigPathKey, path))
	}
	defer safe.Close(ctx, "inventory object", r)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read GCS object", goerr.V(ConfigPathKey, path))
	}
	return data, nil
}
