package cli

import "github.com/m-mizutani/goerr/v2"

var (
	ErrConflictsFound   = goerr.New("cable color pattern conflicts found")
	ErrMissingCandidate = goerr.New("connectors or item ID is required")
)
