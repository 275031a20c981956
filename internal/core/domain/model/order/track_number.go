package order

import (
	"strings"

	"cargotrack/internal/pkg/errs"
)

const (
	trackNumberMinLen = 6
	trackNumberMaxLen = 60
)

// TrackNumber is the human-readable identifier printed on a parcel.
// Persisted values are unique and normalized to uppercase with surrounding
// whitespace removed; the zero value is invalid.
type TrackNumber struct {
	value string
}

// NewTrackNumber normalizes and validates a raw track number.
// Normalization trims whitespace and uppercases; the result must be 6-60
// characters long.
func NewTrackNumber(raw string) (TrackNumber, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if normalized == "" {
		return TrackNumber{}, errs.NewValueIsRequiredError("trackNumber")
	}
	if len(normalized) < trackNumberMinLen || len(normalized) > trackNumberMaxLen {
		return TrackNumber{}, errs.NewValueIsOutOfRangeError(
			"trackNumber length", len(normalized), trackNumberMinLen, trackNumberMaxLen)
	}
	return TrackNumber{value: normalized}, nil
}

// Validate returns an error for zero-value track numbers.
func (t TrackNumber) Validate() error {
	if t.value == "" {
		return errs.NewValueIsRequiredError("trackNumber")
	}
	return nil
}

// IsEqual reports whether two track numbers carry the same normalized value.
func (t TrackNumber) IsEqual(other TrackNumber) bool {
	return t.value == other.value
}

// String returns the normalized track number.
func (t TrackNumber) String() string {
	return t.value
}
