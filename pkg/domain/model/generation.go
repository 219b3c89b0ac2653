package model

import "github.com/sohosai/hyperdashi-client-sub000/pkg/domain/types"

// Generation is the outcome of a random color pattern generation.
// Colors is empty when Status is GenerationStatusDisabled. Conflicts is only
// populated for a fallback pattern that still collides with existing items.
type Generation struct {
	ID        string
	Status    types.GenerationStatus
	Colors    ColorSequence
	Attempts  int
	Conflicts ConflictResult
}

// IsDisabled reports whether generation could not run
func (g *Generation) IsDisabled() bool {
	return g == nil || g.Status == types.GenerationStatusDisabled
}
