package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/interfaces"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/repository/firestore"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/repository/memory"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

const (
	BackendMemory    = "memory"
	BackendFirestore = "firestore"
)

// Repository holds CLI flags for repository backend configuration
type Repository struct {
	backend          string
	projectID        string
	databaseID       string
	collectionPrefix string
	inventory        string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (memory or firestore)",
			Value:       BackendMemory,
			Sources:     cli.EnvVars("HYPERDASHI_REPOSITORY_BACKEND"),
			Destination: &r.backend,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore Project ID (required when using firestore backend)",
			Sources:     cli.EnvVars("HYPERDASHI_FIRESTORE_PROJECT_ID"),
			Destination: &r.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore Database ID",
			Sources:     cli.EnvVars("HYPERDASHI_FIRESTORE_DATABASE_ID"),
			Destination: &r.databaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection-prefix",
			Usage:       "Prefix for the items and colors collections",
			Sources:     cli.EnvVars("HYPERDASHI_FIRESTORE_COLLECTION_PREFIX"),
			Destination: &r.collectionPrefix,
		},
		&cli.StringFlag{
			Name:        "inventory",
			Aliases:     []string{"i"},
			Usage:       "Inventory snapshot TOML (local path or gs://bucket/object) loaded into the memory backend",
			Sources:     cli.EnvVars("HYPERDASHI_INVENTORY"),
			Destination: &r.inventory,
		},
	}
}

// LogValue implements slog.LogValuer
func (r Repository) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", r.backend),
		slog.String("project_id", r.projectID),
		slog.String("database_id", r.databaseID),
		slog.String("collection_prefix", r.collectionPrefix),
		slog.String("inventory", r.inventory),
	)
}

// Configure initializes and returns a repository based on the configured backend.
// The caller is responsible for calling Close() on the returned repository.
func (r *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	switch r.backend {
	case BackendFirestore:
		if r.projectID == "" {
			return nil, goerr.Wrap(ErrInvalidConfig, "firestore-project-id is required when using firestore backend")
		}
		if r.inventory != "" {
			return nil, goerr.Wrap(ErrInvalidConfig, "inventory snapshot can only be used with memory backend")
		}
		repo, err := firestore.New(ctx, r.projectID, r.databaseID,
			firestore.WithCollectionPrefix(r.collectionPrefix))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize firestore repository")
		}
		logging.From(ctx).Info("Using Firestore repository",
			"project_id", r.projectID,
			"database_id", r.databaseID,
		)
		return repo, nil

	case BackendMemory:
		repo := memory.New()
		if r.inventory != "" {
			inv, err := LoadInventory(ctx, r.inventory)
			if err != nil {
				return nil, err
			}
			if err := inv.Seed(ctx, repo); err != nil {
				return nil, err
			}
			logging.From(ctx).Info("Loaded inventory snapshot",
				"path", r.inventory,
				"items", len(inv.Items),
				"colors", len(inv.Colors),
			)
		} else {
			logging.From(ctx).Info("Using empty in-memory repository")
		}
		return repo, nil

	default:
		return nil, goerr.Wrap(ErrInvalidBackend, "invalid repository backend", goerr.V("backend", r.backend))
	}
}
