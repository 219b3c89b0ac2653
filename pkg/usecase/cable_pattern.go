package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/interfaces"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/model"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/types"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/service/cablecolor"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/utils/logging"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/utils/metrics"
	"golang.org/x/sync/errgroup"
)

// CablePatternUseCase checks and proposes cable color patterns against the
// current item collection. It only reads from the repository.
type CablePatternUseCase struct {
	repo      interfaces.Repository
	generator *cablecolor.Generator
	metrics   *metrics.Collector
}

func NewCablePatternUseCase(repo interfaces.Repository, generator *cablecolor.Generator, collector *metrics.Collector) *CablePatternUseCase {
	if generator == nil {
		generator = cablecolor.New()
	}
	return &CablePatternUseCase{
		repo:      repo,
		generator: generator,
		metrics:   collector,
	}
}

// CheckConflicts returns the items whose connector set and color pattern are
// identical to the candidate's. It is meant to be called again whenever the
// candidate or the item collection changes.
func (uc *CablePatternUseCase) CheckConflicts(ctx context.Context, candidate model.Candidate) (model.ConflictResult, error) {
	items, err := uc.repo.Item().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list items")
	}

	result := model.Scan(candidate, items)
	uc.metrics.ObserveScan(result)

	logging.From(ctx).Debug("checked cable color pattern",
		"connectors", candidate.Connectors,
		"colors", candidate.Colors,
		"items", len(items),
		"conflicts", len(result),
	)
	return result, nil
}

// GenerateColorPattern proposes a random pattern of length distinct colors for
// the candidate's connectors. A palette too small for length is reported as
// GenerationStatusDisabled, not as an error.
func (uc *CablePatternUseCase) GenerateColorPattern(ctx context.Context, candidate model.Candidate, length int) (*model.Generation, error) {
	if length < 1 || length > model.MaxColorSequenceLength {
		return nil, goerr.Wrap(ErrInvalidLength, "length out of range",
			goerr.V(LengthKey, length),
			goerr.V("max", model.MaxColorSequenceLength))
	}

	var (
		palette model.Palette
		items   []*model.Item
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		p, err := uc.repo.Color().List(egCtx)
		if err != nil {
			return goerr.Wrap(err, "failed to list colors")
		}
		palette = p
		return nil
	})
	eg.Go(func() error {
		list, err := uc.repo.Item().List(egCtx)
		if err != nil {
			return goerr.Wrap(err, "failed to list items")
		}
		items = list
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	gen := uc.generator.Generate(ctx, palette, length, candidate, items)
	uc.metrics.ObserveGeneration(gen)

	logging.From(ctx).Info("generated cable color pattern",
		"generation_id", gen.ID,
		"status", gen.Status,
		"colors", gen.Colors,
		"attempts", gen.Attempts,
	)
	return gen, nil
}

// Palette returns the stored color master and the part of it the generator
// may draw from
func (uc *CablePatternUseCase) Palette(ctx context.Context) (model.Palette, model.Palette, error) {
	palette, err := uc.repo.Color().List(ctx)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to list colors")
	}
	return palette, uc.generator.EligiblePalette(palette), nil
}

// CanGenerate reports whether a pattern of length colors can be generated
// with the current palette
func (uc *CablePatternUseCase) CanGenerate(ctx context.Context, length int) (bool, error) {
	palette, err := uc.repo.Color().List(ctx)
	if err != nil {
		return false, goerr.Wrap(err, "failed to list colors")
	}
	return uc.generator.CanGenerate(palette, length), nil
}

// CandidateForItem builds the candidate used when editing a stored item: its
// current connectors and colors, excluding the item itself
func (uc *CablePatternUseCase) CandidateForItem(ctx context.Context, id types.ItemID) (model.Candidate, error) {
	item, err := uc.repo.Item().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return model.Candidate{}, goerr.Wrap(ErrItemNotFound, "item not found", goerr.V(ItemIDKey, id))
		}
		return model.Candidate{}, goerr.Wrap(err, "failed to get item", goerr.V(ItemIDKey, id))
	}

	excludeID := item.ID
	return model.Candidate{
		Connectors: item.Connectors(),
		Colors:     item.Colors(),
		ExcludeID:  &excludeID,
	}, nil
}
