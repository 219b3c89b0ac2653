package types

import "fmt"

// GenerationStatus represents the outcome of a random color pattern generation
type GenerationStatus string

const (
	// GenerationStatusFound means a conflict-free pattern was sampled within the attempt budget
	GenerationStatusFound GenerationStatus = "FOUND"
	// GenerationStatusFallback means the budget was exhausted and an unchecked sample was returned
	GenerationStatusFallback GenerationStatus = "FALLBACK"
	// GenerationStatusDisabled means the eligible palette is smaller than the requested length
	GenerationStatusDisabled GenerationStatus = "DISABLED"
)

// AllGenerationStatuses returns all valid generation statuses
func AllGenerationStatuses() []GenerationStatus {
	return []GenerationStatus{
		GenerationStatusFound,
		GenerationStatusFallback,
		GenerationStatusDisabled,
	}
}

// IsValid checks if the generation status is valid
func (s GenerationStatus) IsValid() bool {
	switch s {
	case GenerationStatusFound,
		GenerationStatusFallback,
		GenerationStatusDisabled:
		return true
	default:
		return false
	}
}

// String returns the string representation of the generation status
func (s GenerationStatus) String() string {
	return string(s)
}

// ParseGenerationStatus parses a string into a GenerationStatus
func ParseGenerationStatus(s string) (GenerationStatus, error) {
	status := GenerationStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid generation status: %s", s)
	}
	return status, nil
}
