package workorder

import (
	"fmt"
	"time"
	"unicode"

	"fleetops/internal/pkg/errs"
)

// codeDateLayout renders the local calendar date that scopes the daily
// sequence, e.g. "20260830".
const codeDateLayout = "20060102"

// Code is the human-readable work-order identifier, built from the local
// calendar date and that day's sequence number: YYYYMMDD followed by the
// zero-padded sequence ("202608300001"). Sequences past 9999 widen into a
// fifth digit; codes stay unique and ordered within the day, only the
// fixed width is lost.
//
// Code is immutable once assigned.
type Code struct {
	value string
}

// NewCode builds a Code from the allocation date and the daily sequence
// number issued by the sequence allocator. The sequence must be positive.
func NewCode(date time.Time, seq int64) (Code, error) {
	if seq < 1 {
		return Code{}, errs.NewValueIsInvalidErrorWithCause("sequence",
			fmt.Errorf("%d is not greater than 0", seq))
	}

	return Code{value: fmt.Sprintf("%s%04d", date.Format(codeDateLayout), seq)}, nil
}

// CodeFromString reconstructs a Code from its persisted representation.
// The value must be at least twelve digits: eight for the date and four
// or more for the sequence.
func CodeFromString(s string) (Code, error) {
	if s == "" {
		return Code{}, errs.NewValueIsRequiredError("code")
	}
	if len(s) < 12 {
		return Code{}, errs.NewValueIsInvalidErrorWithCause("code",
			fmt.Errorf("%q is shorter than twelve characters", s))
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return Code{}, errs.NewValueIsInvalidErrorWithCause("code",
				fmt.Errorf("%q contains a non-digit character", s))
		}
	}
	if _, err := time.Parse(codeDateLayout, s[:8]); err != nil {
		return Code{}, errs.NewValueIsInvalidErrorWithCause("code", err)
	}

	return Code{value: s}, nil
}

// String returns the code's textual form.
func (c Code) String() string {
	return c.value
}

// IsEqual compares two codes by value.
func (c Code) IsEqual(other Code) bool {
	return c.value == other.value
}

// Validate checks that the Code was constructed rather than zero-valued.
func (c Code) Validate() error {
	if c.value == "" {
		return errs.NewValueIsRequiredError("code must be created via NewCode or CodeFromString")
	}
	return nil
}
