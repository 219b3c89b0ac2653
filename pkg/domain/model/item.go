package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/types"
)

// Item is the subset of an inventory item needed to check cable color patterns.
// The authoritative record is owned by the external item repository.
type Item struct {
	ID                types.ItemID
	Name              string
	LabelID           string
	ConnectorNames    []string
	CableColorPattern []string
	Disposed          bool
}

// Validate checks if the Item can be used for pattern checks
func (i *Item) Validate() error {
	if err := i.ID.Validate(); err != nil {
		return goerr.Wrap(ErrInvalidItem, "invalid item ID", goerr.V(ItemIDKey, i.ID))
	}
	if len(i.CableColorPattern) > MaxColorSequenceLength {
		return goerr.Wrap(ErrInvalidItem, "cable color pattern is too long",
			goerr.V(ItemIDKey, i.ID),
			goerr.V("length", len(i.CableColorPattern)))
	}
	return nil
}

// Connectors returns the item's connector set. Missing names are an empty set.
func (i *Item) Connectors() ConnectorSet {
	if i == nil || i.ConnectorNames == nil {
		return ConnectorSet{}
	}
	return ConnectorSet(i.ConnectorNames)
}

// Colors returns the item's cable color pattern. A missing pattern is empty.
func (i *Item) Colors() ColorSequence {
	if i == nil || i.CableColorPattern == nil {
		return ColorSequence{}
	}
	return ColorSequence(i.CableColorPattern)
}

// IsActive reports whether the item is still in service
func (i *Item) IsActive() bool {
	return i != nil && !i.Disposed
}

// Summary returns the conflict summary of the item
func (i *Item) Summary() ConflictSummary {
	return ConflictSummary{
		ItemID:  i.ID,
		Name:    i.Name,
		LabelID: i.LabelID,
	}
}

// CopyItem creates a deep copy of an item
func CopyItem(i *Item) *Item {
	if i == nil {
		return nil
	}
	copied := *i
	if i.ConnectorNames != nil {
		copied.ConnectorNames = make([]string, len(i.ConnectorNames))
		copy(copied.ConnectorNames, i.ConnectorNames)
	}
	if i.CableColorPattern != nil {
		copied.CableColorPattern = make([]string, len(i.CableColorPattern))
		copy(copied.CableColorPattern, i.CableColorPattern)
	}
	return &copied
}
