package types

import (
	"strconv"

	"github.com/m-mizutani/goerr/v2"
)

// ItemID identifies an inventory item in the external item repository
type ItemID int64

// Validate checks if the ItemID is valid
func (id ItemID) Validate() error {
	if id <= 0 {
		return goerr.New("item ID must be positive", goerr.V("id", int64(id)))
	}
	return nil
}

// String returns the decimal representation of ItemID
func (id ItemID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseItemID parses a decimal string into an ItemID
func ParseItemID(s string) (ItemID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid item ID", goerr.V("id", s))
	}
	id := ItemID(v)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ColorID identifies an entry of the color master
type ColorID int64

// String returns the decimal representation of ColorID
func (id ColorID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseColorID parses a decimal string into a positive ColorID
func ParseColorID(s string) (ColorID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid color ID", goerr.V("id", s))
	}
	if v <= 0 {
		return 0, goerr.New("color ID must be positive", goerr.V("id", v))
	}
	return ColorID(v), nil
}
