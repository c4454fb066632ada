package errors

import (
	"math"
	"unicode"

	"github.com/google/uuid"
)

// maxLabelLength bounds labels attached to dataset items.
const maxLabelLength = 256

// ValidateLabel rejects labels that are too long or contain control
// characters. Empty labels are allowed.
func ValidateLabel(label string) error {
	if len(label) > maxLabelLength {
		return New(ErrCodeInvalidInput, "label too long (max %d characters)", maxLabelLength)
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "label contains invalid control characters")
		}
	}
	return nil
}

// ValidateMagnitude checks that v is a finite, strictly positive number.
// what names the quantity in the error message (e.g. "values[3]").
func ValidateMagnitude(what string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidValue, "%s must be finite, got %v", what, v)
	}
	if v <= 0 {
		return New(ErrCodeInvalidValue, "%s must be positive, got %v", what, v)
	}
	return nil
}

// ValidateLayoutID checks that id is a canonical UUID string.
func ValidateLayoutID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidID, "layout id cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return Wrap(ErrCodeInvalidID, err, "invalid layout id %q", id)
	}
	return nil
}

// ValidateDimensions checks a render viewport.
func ValidateDimensions(width, height float64) error {
	if err := ValidateMagnitude("width", width); err != nil {
		return err
	}
	return ValidateMagnitude("height", height)
}
