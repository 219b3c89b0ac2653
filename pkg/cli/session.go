package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/cli/config"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/model"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/types"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/service/cablecolor"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/usecase"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/utils/logging"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

// session bundles the flag groups shared by the subcommands
type session struct {
	repoCfg    config.Repository
	metricsCfg config.Metrics
}

func (x *session) Flags() []cli.Flag {
	var flags []cli.Flag
	flags = append(flags, x.repoCfg.Flags()...)
	flags = append(flags, x.metricsCfg.Flags()...)
	return flags
}

// Do builds the use cases, runs fn and then closes the repository and
// writes metrics.
func (x *session) Do(ctx context.Context, gen *cablecolor.Generator, fn func(ctx context.Context, uc *usecase.UseCases) error) error {
	repo, err := x.repoCfg.Configure(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to configure repository")
	}
	defer safe.Close(ctx, "repository", repo)

	collector, flush := x.metricsCfg.Configure()

	opts := []usecase.Option{usecase.WithMetrics(collector)}
	if gen != nil {
		opts = append(opts, usecase.WithGenerator(gen))
	}
	uc := usecase.New(repo, opts...)

	runErr := fn(ctx, uc)
	if err := flush(); err != nil {
		if runErr != nil {
			logging.From(ctx).Error("failed to write metrics", "error", err)
			return runErr
		}
		return err
	}
	return runErr
}

// candidateFlags are the flags describing the item being edited
type candidateFlags struct {
	connectors []string
	colors     []string
	itemID     int64
}

func (x *candidateFlags) Flags(withColors bool) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "connector",
			Aliases:     []string{"c"},
			Usage:       "Connector name of the cable (repeatable, order does not matter)",
			Destination: &x.connectors,
		},
		&cli.Int64Flag{
			Name:        "item-id",
			Usage:       "Stored item being edited; it is excluded from the scan and fills in missing connectors and colors",
			Destination: &x.itemID,
		},
	}
	if withColors {
		flags = append(flags, &cli.StringSliceFlag{
			Name:        "color",
			Usage:       "Color of the pattern (repeatable, order matters)",
			Destination: &x.colors,
		})
	}
	return flags
}

// Candidate resolves the flags into a model.Candidate. With --item-id the
// stored item supplies connectors and colors that were not given as flags.
func (x *candidateFlags) Candidate(ctx context.Context, uc *usecase.UseCases) (model.Candidate, error) {
	var candidate model.Candidate
	if x.itemID != 0 {
		id := types.ItemID(x.itemID)
		if err := id.Validate(); err != nil {
			return model.Candidate{}, goerr.Wrap(err, "invalid item ID")
		}
		stored, err := uc.CablePattern.CandidateForItem(ctx, id)
		if err != nil {
			return model.Candidate{}, err
		}
		candidate = stored
	} else if len(x.connectors) == 0 {
		return model.Candidate{}, goerr.Wrap(ErrMissingCandidate, "specify --connector or --item-id")
	}

	if len(x.connectors) > 0 {
		candidate.Connectors = model.ConnectorSet(x.connectors)
	}
	if len(x.colors) > 0 {
		candidate.Colors = model.ColorSequence(x.colors)
	}
	return candidate, nil
}
