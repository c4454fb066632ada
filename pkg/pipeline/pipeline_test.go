package pipeline

import (
	"testing"

	"github.com/matzehuels/squarespiral/pkg/dataset"
	"github.com/matzehuels/squarespiral/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateStyle(t *testing.T) {
	tests := []struct {
		style   string
		wantErr bool
	}{
		{"simple", false},
		{"handdrawn", false},
		{"invalid", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateStyle(tt.style)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStyle(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
		}
	}
}

func TestOptionsValidateForPack(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"empty", Options{}, errors.ErrCodeInvalidInput},
		{"negative value", Options{Values: []float64{1, -1}}, errors.ErrCodeInvalidValue},
		{"too many labels", Options{Values: []float64{1}, Labels: []string{"a", "b"}}, errors.ErrCodeInvalidInput},
		{"negative max", Options{Values: []float64{1}, MaxValue: -1}, errors.ErrCodeInvalidValue},
		{"valid", Options{Values: []float64{1, 2}}, ""},
		{"dataset wins", Options{Dataset: &dataset.Dataset{Items: []dataset.Item{{Value: 3}}}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateForPack()
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("ValidateForPack() code = %q, want %q (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestOptionsMaxValueDefault(t *testing.T) {
	opts := Options{Values: []float64{2, 9, 4}}
	if err := opts.ValidateForPack(); err != nil {
		t.Fatal(err)
	}
	if opts.MaxValue != 9 {
		t.Errorf("MaxValue = %v, want 9", opts.MaxValue)
	}

	opts = Options{Values: []float64{2, 9}, MaxValue: 100}
	if err := opts.ValidateForPack(); err != nil {
		t.Fatal(err)
	}
	if opts.MaxValue != 100 {
		t.Errorf("explicit MaxValue changed to %v", opts.MaxValue)
	}
}

func TestOptionsValidateForRender(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"defaults", Options{}, false},
		{"bad format", Options{Formats: []string{"gif"}}, true},
		{"bad style", Options{Style: "crayon"}, true},
		{"negative width", Options{Width: -1}, true},
		{"huge margin", Options{Margin: 0.5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateForRender()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateForRender() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Values: []float64{4, 1}}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}
	ds, style, maxValue := opts.Dataset, opts.Style, opts.MaxValue

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}
	if opts.Dataset != ds || opts.Style != style || opts.MaxValue != maxValue {
		t.Error("options changed on second call")
	}
}

func TestSetRenderDefaults(t *testing.T) {
	opts := Options{}
	opts.SetRenderDefaults()

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats should be [svg], got %v", opts.Formats)
	}
	if opts.Style != DefaultStyle {
		t.Errorf("Style should be %s, got %s", DefaultStyle, opts.Style)
	}
	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("size should default to %vx%v, got %vx%v", DefaultWidth, DefaultHeight, opts.Width, opts.Height)
	}
	if opts.Margin != DefaultMargin {
		t.Errorf("Margin should be %v, got %v", DefaultMargin, opts.Margin)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestKeyOptsTrackOptions(t *testing.T) {
	a := Options{Style: "simple", Outline: true}
	b := Options{Style: "simple"}
	if a.ArtifactKeyOpts("svg") == b.ArtifactKeyOpts("svg") {
		t.Error("outline toggle should change artifact key options")
	}
	if a.ArtifactKeyOpts("svg") == a.ArtifactKeyOpts("png") {
		t.Error("format should change artifact key options")
	}
	s := Options{MaxValue: 4, Sort: true}
	if s.LayoutKeyOpts() == (&Options{MaxValue: 4}).LayoutKeyOpts() {
		t.Error("sort should change layout key options")
	}
}

func TestDatasetHash(t *testing.T) {
	a, _ := dataset.New([]float64{1, 2}, []string{"a", "b"})
	b, _ := dataset.New([]float64{1, 2}, []string{"a", "b"})
	c, _ := dataset.New([]float64{2, 1}, []string{"b", "a"})
	if DatasetHash(a) != DatasetHash(b) {
		t.Error("equal datasets should hash equally")
	}
	if DatasetHash(a) == DatasetHash(c) {
		t.Error("order should change the hash")
	}
}
