package cablecolor

import (
	"context"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/model"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/types"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/utils/logging"
)

// DefaultMaxAttempts is the number of checked samples before falling back
const DefaultMaxAttempts = 50

// Random is the source of randomness used for sampling. *rand.Rand from
// math/rand/v2 satisfies it.
type Random interface {
	// IntN returns a uniform value in [0, n). n is always positive.
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n)
}

// NewSeededRandom returns a deterministic Random. The returned value is not
// safe for concurrent use.
func NewSeededRandom(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generator proposes random cable color patterns that do not collide with
// existing items
type Generator struct {
	random      Random
	maxAttempts int
	reserved    map[string]struct{}
}

type Option func(*Generator)

// WithRandom replaces the randomness source
func WithRandom(r Random) Option {
	return func(g *Generator) {
		if r != nil {
			g.random = r
		}
	}
}

// WithMaxAttempts sets how many samples are checked before falling back.
// Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n >= 1 {
			g.maxAttempts = n
		}
	}
}

// WithReservedNames excludes colors from random generation regardless of the palette
func WithReservedNames(names ...string) Option {
	return func(g *Generator) {
		for _, name := range names {
			g.reserved[name] = struct{}{}
		}
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{
		random:      globalRandom{},
		maxAttempts: DefaultMaxAttempts,
		reserved:    make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// MaxAttempts returns the attempt budget
func (g *Generator) MaxAttempts() int {
	return g.maxAttempts
}

// IsReserved reports whether name is never picked by the generator
func (g *Generator) IsReserved(name string) bool {
	_, ok := g.reserved[name]
	return ok
}

// EligiblePalette returns the palette entries the generator may pick from
func (g *Generator) EligiblePalette(palette model.Palette) model.Palette {
	return palette.Eligible(g.reserved)
}

// CanGenerate reports whether the eligible palette holds at least length
// distinct colors. Callers must not expect sampling when it returns false.
func (g *Generator) CanGenerate(palette model.Palette, length int) bool {
	return length >= 0 && len(g.EligiblePalette(palette)) >= length
}

// Generate samples length distinct eligible colors until the pattern does not
// conflict with any item for candidate's connectors. The first conflict-free
// sample wins. When the budget is exhausted one more sample is returned
// unchecked with GenerationStatusFallback and whatever it conflicts with.
// Candidate.Colors is ignored.
func (g *Generator) Generate(ctx context.Context, palette model.Palette, length int, candidate model.Candidate, items []*model.Item) *model.Generation {
	gen := &model.Generation{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Colors:    model.ColorSequence{},
		Conflicts: model.ConflictResult{},
	}
	logger := logging.From(ctx).With("generation_id", gen.ID)

	eligible := g.EligiblePalette(palette)
	if length < 0 || len(eligible) < length {
		gen.Status = types.GenerationStatusDisabled
		logger.Debug("color pattern generation disabled",
			"length", length,
			"eligible", len(eligible),
		)
		return gen
	}

	idx := model.NewPatternIndex(items)
	probe := model.Candidate{
		Connectors: candidate.Connectors,
		ExcludeID:  candidate.ExcludeID,
	}

	for gen.Attempts < g.maxAttempts {
		gen.Attempts++
		probe.Colors = g.sample(eligible, length)
		if !idx.Scan(probe).HasConflicts() {
			gen.Status = types.GenerationStatusFound
			gen.Colors = probe.Colors
			logger.Debug("generated color pattern",
				"colors", gen.Colors,
				"attempts", gen.Attempts,
			)
			return gen
		}
	}

	probe.Colors = g.sample(eligible, length)
	gen.Status = types.GenerationStatusFallback
	gen.Colors = probe.Colors
	gen.Conflicts = idx.Scan(probe)
	logger.Warn("no conflict-free color pattern within attempt budget",
		"colors", gen.Colors,
		"attempts", gen.Attempts,
		"conflicts", len(gen.Conflicts),
	)
	return gen
}

// sample draws length distinct colors with a partial Fisher-Yates shuffle
func (g *Generator) sample(eligible model.Palette, length int) model.ColorSequence {
	order := make([]int, len(eligible))
	for i := range order {
		order[i] = i
	}

	colors := make(model.ColorSequence, length)
	for i := 0; i < length; i++ {
		j := i + g.random.IntN(len(order)-i)
		order[i], order[j] = order[j], order[i]
		colors[i] = eligible[order[i]].Name
	}
	return colors
}
