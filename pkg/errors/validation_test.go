package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		wantErr bool
	}{
		{"empty", "", false},
		{"plain", "requests", false},
		{"unicode", "Zürich", false},
		{"control character", "bad\x00label", true},
		{"newline", "two\nlines", true},
		{"too long", strings.Repeat("a", 257), true},
		{"max length", strings.Repeat("a", 256), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabel(tt.label)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabel(%q) error = %v, wantErr %v", tt.label, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateMagnitude(t *testing.T) {
	tests := []struct {
		name    string
		v       float64
		wantErr bool
	}{
		{"positive", 4, false},
		{"tiny", 1e-12, false},
		{"zero", 0, true},
		{"negative", -1, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMagnitude("value", tt.v)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMagnitude(%v) error = %v, wantErr %v", tt.v, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidValue) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidValue)
			}
		})
	}
}

func TestValidateLayoutID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"6ba7b810-9dad-11d1-80b4-00c04fd430c8", false},
		{"", true},
		{"not-a-uuid", true},
		{"../../etc/passwd", true},
	}

	for _, tt := range tests {
		err := ValidateLayoutID(tt.id)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateLayoutID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidID) {
			t.Errorf("ValidateLayoutID(%q) code = %v", tt.id, GetCode(err))
		}
	}
}

func TestValidateDimensions(t *testing.T) {
	if err := ValidateDimensions(800, 600); err != nil {
		t.Errorf("ValidateDimensions(800, 600) = %v", err)
	}
	if err := ValidateDimensions(0, 600); err == nil {
		t.Error("zero width should fail")
	}
	if err := ValidateDimensions(800, -1); err == nil {
		t.Error("negative height should fail")
	}
}
