package cablecolor_test

import (
	"context"
	"slices"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/model"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/types"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/service/cablecolor"
)

// countingRandom always returns 0 and records how often it was asked
type countingRandom struct {
	calls int
}

func (r *countingRandom) IntN(n int) int {
	r.calls++
	return 0
}

func newPalette(names ...string) model.Palette {
	palette := make(model.Palette, len(names))
	for i, name := range names {
		palette[i] = model.NamedColor{ID: types.ColorID(i + 1), Name: name, HexCode: "#000000"}
	}
	return palette
}

func permutations(values []string) [][]string {
	if len(values) <= 1 {
		return [][]string{slices.Clone(values)}
	}
	var result [][]string
	for i := range values {
		rest := slices.Concat(values[:i:i], values[i+1:])
		for _, p := range permutations(rest) {
			result = append(result, append([]string{values[i]}, p...))
		}
	}
	return result
}

func assertDistinctFrom(t *testing.T, colors model.ColorSequence, palette model.Palette) {
	t.Helper()
	seen := map[string]bool{}
	for _, c := range colors {
		_, ok := palette.Lookup(c)
		gt.Bool(t, ok).Describef("color %s should be in palette", c).True()
		gt.Bool(t, seen[c]).Describef("color %s should appear once", c).False()
		seen[c] = true
	}
}

func TestGenerator_ExactPaletteSucceedsOnFirstAttempt(t *testing.T) {
	palette := newPalette("black", "red", "blue", "green", "white")
	gen := cablecolor.New(
		cablecolor.WithReservedNames("black", "white"),
		cablecolor.WithRandom(cablecolor.NewSeededRandom(1)),
	)
	candidate := model.Candidate{Connectors: model.ConnectorSet{"HDMI"}}

	for i := 0; i < 20; i++ {
		result := gen.Generate(context.Background(), palette, 3, candidate, nil)

		gt.Value(t, result.Status).Equal(types.GenerationStatusFound)
		gt.Number(t, result.Attempts).Equal(1)
		gt.Array(t, result.Colors).Length(3)

		sorted := slices.Sorted(slices.Values(result.Colors))
		gt.Array(t, sorted).Equal([]string{"blue", "green", "red"})
		gt.Array(t, result.Conflicts).Length(0)
	}
}

func TestGenerator_DisabledWhenPaletteTooSmall(t *testing.T) {
	random := &countingRandom{}
	gen := cablecolor.New(
		cablecolor.WithReservedNames("black", "white"),
		cablecolor.WithRandom(random),
	)
	palette := newPalette("black", "red", "blue", "white")

	gt.Bool(t, gen.CanGenerate(palette, 3)).False()
	gt.Bool(t, gen.CanGenerate(palette, 2)).True()

	result := gen.Generate(context.Background(), palette, 3, model.Candidate{Connectors: model.ConnectorSet{"USB"}}, nil)
	gt.Value(t, result.Status).Equal(types.GenerationStatusDisabled)
	gt.Bool(t, result.IsDisabled()).True()
	gt.Number(t, result.Attempts).Equal(0)
	gt.Array(t, result.Colors).Length(0)
	gt.Number(t, random.calls).Equal(0)
}

func TestGenerator_NilPaletteIsDisabled(t *testing.T) {
	gen := cablecolor.New()
	result := gen.Generate(context.Background(), nil, 1, model.Candidate{Connectors: model.ConnectorSet{"USB"}}, nil)
	gt.Value(t, result.Status).Equal(types.GenerationStatusDisabled)
}

func TestGenerator_FallbackAfterExhaustion(t *testing.T) {
	palette := newPalette("red", "blue", "green", "yellow")
	connectors := []string{"HDMI", "USB"}

	// every ordered 3-color pattern from the palette is taken
	var items []*model.Item
	var id int64
	for _, combo := range [][]string{
		{"red", "blue", "green"},
		{"red", "blue", "yellow"},
		{"red", "green", "yellow"},
		{"blue", "green", "yellow"},
	} {
		for _, p := range permutations(combo) {
			id++
			items = append(items, &model.Item{
				ID:                types.ItemID(id),
				Name:              "cable",
				ConnectorNames:    connectors,
				CableColorPattern: p,
			})
		}
	}
	gt.Array(t, items).Length(24)

	gen := cablecolor.New(cablecolor.WithRandom(cablecolor.NewSeededRandom(42)))
	result := gen.Generate(context.Background(), palette, 3, model.Candidate{
		Connectors: model.ConnectorSet{"USB", "HDMI"},
	}, items)

	gt.Value(t, result.Status).Equal(types.GenerationStatusFallback)
	gt.Number(t, result.Attempts).Equal(cablecolor.DefaultMaxAttempts)
	gt.Array(t, result.Colors).Length(3)
	assertDistinctFrom(t, result.Colors, palette)
	gt.Array(t, result.Conflicts).Length(1)
}

func TestGenerator_FallbackWithFixedRandom(t *testing.T) {
	random := &countingRandom{}
	gen := cablecolor.New(
		cablecolor.WithRandom(random),
		cablecolor.WithMaxAttempts(5),
	)
	palette := newPalette("red", "blue", "green")
	items := []*model.Item{{
		ID:                7,
		Name:              "taken",
		LabelID:           "0007",
		ConnectorNames:    []string{"DC"},
		CableColorPattern: []string{"red", "blue"},
	}}

	result := gen.Generate(context.Background(), palette, 2, model.Candidate{Connectors: model.ConnectorSet{"DC"}}, items)

	gt.Value(t, result.Status).Equal(types.GenerationStatusFallback)
	gt.Number(t, result.Attempts).Equal(5)
	gt.Array(t, result.Colors).Equal(model.ColorSequence{"red", "blue"})
	gt.Array(t, result.Conflicts).Length(1)
	gt.Value(t, result.Conflicts[0]).Equal(model.ConflictSummary{ItemID: 7, Name: "taken", LabelID: "0007"})
	// two draws per sample, five checked samples plus the fallback
	gt.Number(t, random.calls).Equal(12)
}

func TestGenerator_ExcludedItemDoesNotBlock(t *testing.T) {
	gen := cablecolor.New(cablecolor.WithRandom(&countingRandom{}))
	palette := newPalette("red", "blue")
	self := types.ItemID(7)
	items := []*model.Item{{
		ID:                self,
		ConnectorNames:    []string{"DC"},
		CableColorPattern: []string{"red", "blue"},
	}}

	result := gen.Generate(context.Background(), palette, 2, model.Candidate{
		Connectors: model.ConnectorSet{"DC"},
		ExcludeID:  &self,
	}, items)

	gt.Value(t, result.Status).Equal(types.GenerationStatusFound)
	gt.Array(t, result.Colors).Equal(model.ColorSequence{"red", "blue"})
}

func TestGenerator_AvoidsTakenPattern(t *testing.T) {
	palette := newPalette("red", "blue", "green", "yellow", "purple")
	items := []*model.Item{
		{ID: 1, ConnectorNames: []string{"XLR"}, CableColorPattern: []string{"red", "blue"}},
		{ID: 2, ConnectorNames: []string{"XLR"}, CableColorPattern: []string{"green", "yellow"}},
	}
	candidate := model.Candidate{Connectors: model.ConnectorSet{"XLR"}}

	for seed := uint64(0); seed < 30; seed++ {
		gen := cablecolor.New(cablecolor.WithRandom(cablecolor.NewSeededRandom(seed)))
		result := gen.Generate(context.Background(), palette, 2, candidate, items)

		gt.Value(t, result.Status).Equal(types.GenerationStatusFound)
		assertDistinctFrom(t, result.Colors, palette)
		gt.Array(t, model.Scan(model.Candidate{Connectors: candidate.Connectors, Colors: result.Colors}, items)).Length(0)
	}
}

func TestGenerator_SeededRandomIsReproducible(t *testing.T) {
	palette := newPalette("red", "blue", "green", "yellow", "purple", "orange")
	candidate := model.Candidate{Connectors: model.ConnectorSet{"USB"}}

	first := cablecolor.New(cablecolor.WithRandom(cablecolor.NewSeededRandom(99))).
		Generate(context.Background(), palette, 4, candidate, nil)
	second := cablecolor.New(cablecolor.WithRandom(cablecolor.NewSeededRandom(99))).
		Generate(context.Background(), palette, 4, candidate, nil)

	gt.Array(t, first.Colors).Equal(second.Colors)
	gt.Value(t, first.ID).NotEqual(second.ID)
}

func TestGenerator_Options(t *testing.T) {
	gen := cablecolor.New(cablecolor.WithMaxAttempts(0), cablecolor.WithReservedNames("black"))
	gt.Number(t, gen.MaxAttempts()).Equal(cablecolor.DefaultMaxAttempts)
	gt.Bool(t, gen.IsReserved("black")).True()
	gt.Bool(t, gen.IsReserved("red")).False()
	gt.Bool(t, gen.CanGenerate(nil, 0)).True()
	gt.Bool(t, gen.CanGenerate(nil, -1)).False()
}
