package model

import (
	"slices"
	"strconv"
	"strings"
)

// ConnectorSet is the list of connector (terminal) names declared on an item,
// e.g. ["HDMI", "USB-C"]. It compares as a multiset: order carries no meaning
// but duplicate entries count.
type ConnectorSet []string

// Normalize returns a sorted copy of the set. Duplicates are kept and the
// receiver is never modified.
func (c ConnectorSet) Normalize() ConnectorSet {
	normalized := make(ConnectorSet, len(c))
	copy(normalized, c)
	slices.Sort(normalized)
	return normalized
}

// Equal reports whether both sets hold the same names with the same counts
func (c ConnectorSet) Equal(other ConnectorSet) bool {
	if len(c) != len(other) {
		return false
	}
	return slices.Equal(c.Normalize(), other.Normalize())
}

// IsEmpty reports whether no connector is declared
func (c ConnectorSet) IsEmpty() bool {
	return len(c) == 0
}

// Signature returns a canonical key for the multiset. Two sets have the same
// signature if and only if they are Equal.
func (c ConnectorSet) Signature() string {
	return signature(c.Normalize())
}

// signature encodes each element with its byte length so that names
// containing separator characters cannot produce the same key.
func signature(values []string) string {
	var b strings.Builder
	for _, v := range values {
		b.WriteString(strconv.Itoa(len(v)))
		b.WriteByte(':')
		b.WriteString(v)
	}
	return b.String()
}
