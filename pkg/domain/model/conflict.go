package model

import "github.com/sohosai/hyperdashi-client-sub000/pkg/domain/types"

// ConflictSummary identifies an item whose cable color pattern collides with a candidate
type ConflictSummary struct {
	ItemID  types.ItemID
	Name    string
	LabelID string
}

// ConflictResult lists conflicting items in the order they were scanned
type ConflictResult []ConflictSummary

// HasConflicts returns true if any item conflicts
func (r ConflictResult) HasConflicts() bool {
	return len(r) > 0
}

// Scan checks the candidate against every item and returns all conflicts in
// input order. A candidate without connectors or without colors has nothing
// to check and always yields an empty result.
func Scan(candidate Candidate, items []*Item) ConflictResult {
	result := ConflictResult{}
	if candidate.Connectors.IsEmpty() || candidate.Colors.IsEmpty() {
		return result
	}

	for _, item := range items {
		if Matches(candidate, item) {
			result = append(result, item.Summary())
		}
	}
	return result
}

type patternKey struct {
	connectors string
	colors     string
}

// PatternIndex groups items by canonical (connector set, color sequence) so a
// candidate can be checked without walking the whole collection. Its Scan
// returns exactly what the package-level Scan returns for the same items.
type PatternIndex struct {
	buckets map[patternKey][]*Item
	size    int
}

// NewPatternIndex builds an index over items. Later changes to the items are
// not reflected.
func NewPatternIndex(items []*Item) *PatternIndex {
	idx := &PatternIndex{
		buckets: make(map[patternKey][]*Item),
	}
	for _, item := range items {
		if item == nil {
			continue
		}
		key := keyOf(item.Connectors(), item.Colors())
		idx.buckets[key] = append(idx.buckets[key], CopyItem(item))
		idx.size++
	}
	return idx
}

// Len returns the number of indexed items
func (x *PatternIndex) Len() int {
	return x.size
}

// Scan returns the indexed items conflicting with candidate, in the order they
// were given to NewPatternIndex
func (x *PatternIndex) Scan(candidate Candidate) ConflictResult {
	result := ConflictResult{}
	if candidate.Connectors.IsEmpty() || candidate.Colors.IsEmpty() {
		return result
	}

	for _, item := range x.buckets[keyOf(candidate.Connectors, candidate.Colors)] {
		if candidate.Excludes(item.ID) {
			continue
		}
		result = append(result, item.Summary())
	}
	return result
}

func keyOf(connectors ConnectorSet, colors ColorSequence) patternKey {
	return patternKey{
		connectors: connectors.Signature(),
		colors:     colors.Signature(),
	}
}
