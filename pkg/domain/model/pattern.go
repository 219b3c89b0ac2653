package model

import (
	"slices"

	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/types"
)

// MaxColorSequenceLength caps the number of positions of a cable color pattern
const MaxColorSequenceLength = 10

// ColorSequence is an ordered list of color names from the terminal side to
// the cable side. Order and case are significant.
type ColorSequence []string

// Equal reports whether both sequences have the same colors at every position
func (s ColorSequence) Equal(other ColorSequence) bool {
	return slices.Equal(s, other)
}

// IsEmpty reports whether no color is assigned
func (s ColorSequence) IsEmpty() bool {
	return len(s) == 0
}

// Signature returns a canonical key for the sequence, order preserved
func (s ColorSequence) Signature() string {
	return signature(s)
}

// Candidate is the connector set and color sequence currently being edited.
// ExcludeID is the ID of the item being edited, if it already exists.
type Candidate struct {
	Connectors ConnectorSet
	Colors     ColorSequence
	ExcludeID  *types.ItemID
}

// Excludes reports whether id is the item being edited
func (c Candidate) Excludes(id types.ItemID) bool {
	return c.ExcludeID != nil && *c.ExcludeID == id
}

// Matches reports whether the candidate conflicts with other, i.e. both have
// the same connector multiset and an identical color sequence. The edited item
// itself never matches. Unlike Scan, an empty candidate is not special-cased.
func Matches(candidate Candidate, other *Item) bool {
	if other == nil {
		return false
	}
	if candidate.Excludes(other.ID) {
		return false
	}
	if !candidate.Connectors.Equal(other.Connectors()) {
		return false
	}
	colors := other.Colors()
	if len(candidate.Colors) != len(colors) {
		return false
	}
	for i := range candidate.Colors {
		if candidate.Colors[i] != colors[i] {
			return false
		}
	}
	return true
}
