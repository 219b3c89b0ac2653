package model

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/types"
)

var hexCodePattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// NamedColor is an entry of the color master. Name is what gets stored in a
// cable color pattern; HexCode is only used for display.
type NamedColor struct {
	ID      types.ColorID
	Name    string
	HexCode string
}

// Validate checks if the NamedColor is valid
func (c NamedColor) Validate() error {
	if c.Name == "" {
		return goerr.Wrap(ErrInvalidColor, "color name is required", goerr.V(ColorIDKey, c.ID))
	}
	if !hexCodePattern.MatchString(c.HexCode) {
		return goerr.Wrap(ErrInvalidColor, "hex code must be #RRGGBB",
			goerr.V(ColorNameKey, c.Name),
			goerr.V(HexCodeKey, c.HexCode))
	}
	return nil
}

// Palette is the list of colors available for assignment. A nil palette is
// an empty one.
type Palette []NamedColor

// Eligible returns the colors usable for random generation: reserved names,
// empty names and repeated names are dropped, the first occurrence wins and
// palette order is kept.
func (p Palette) Eligible(reserved map[string]struct{}) Palette {
	seen := make(map[string]struct{}, len(p))
	eligible := make(Palette, 0, len(p))
	for _, c := range p {
		if c.Name == "" {
			continue
		}
		if _, ok := reserved[c.Name]; ok {
			continue
		}
		if _, ok := seen[c.Name]; ok {
			continue
		}
		seen[c.Name] = struct{}{}
		eligible = append(eligible, c)
	}
	return eligible
}

// Names returns color names in palette order
func (p Palette) Names() []string {
	names := make([]string, len(p))
	for i, c := range p {
		names[i] = c.Name
	}
	return names
}

// Lookup finds a color by name
func (p Palette) Lookup(name string) (NamedColor, bool) {
	for _, c := range p {
		if c.Name == name {
			return c, true
		}
	}
	return NamedColor{}, false
}
