package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	apperrors "github.com/matzehuels/logogif/pkg/errors"
)

func TestDecodeOptionsPartial(t *testing.T) {
	src := `
label = "acme"
optimize = false

[colors]
background = "#0A0E17"

[timing]
typing = 10

[flag]
enabled = true
rows = ["###", "#.."]
`
	opts, err := DecodeOptions(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeOptions() error: %v", err)
	}

	if opts.Label != "acme" {
		t.Errorf("Label = %q, want acme", opts.Label)
	}
	if opts.Optimize {
		t.Error("Optimize = true, want false")
	}
	if opts.Colors.Background != "#0A0E17" {
		t.Errorf("Background = %q", opts.Colors.Background)
	}
	if opts.Timing.Typing != 10 {
		t.Errorf("Timing.Typing = %d, want 10", opts.Timing.Typing)
	}
	if !opts.Flag.Enabled || len(opts.Flag.Rows) != 2 {
		t.Errorf("Flag = %+v", opts.Flag)
	}

	// untouched keys keep defaults
	if opts.Subtitle != DefaultSubtitle {
		t.Errorf("Subtitle = %q, want default", opts.Subtitle)
	}
	if opts.Timing.Sweep != DefaultSweepDelay {
		t.Errorf("Timing.Sweep = %d, want default", opts.Timing.Sweep)
	}
	if opts.Colors.Text != DefaultTextColor {
		t.Errorf("Colors.Text = %q, want default", opts.Colors.Text)
	}
}

func TestDecodeOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", "label = "},
		{"unknown key", "labl = \"x\""},
		{"unknown section", "[colours]\ntext = \"#fff\""},
		{"wrong type", "[timing]\ntyping = \"fast\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeOptions(strings.NewReader(tt.src))
			if !apperrors.Is(err, apperrors.ErrCodeInvalidConfig) {
				t.Errorf("DecodeOptions() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestEncodeOptionsRoundTrip(t *testing.T) {
	want := Defaults()
	want.Label = "round"
	want.Flag.Enabled = true
	want.Flag.Rows = []string{"##", ".#"}
	want.Quantize.MaxColors = 64

	var buf bytes.Buffer
	if err := EncodeOptions(&buf, want); err != nil {
		t.Fatalf("EncodeOptions() error: %v", err)
	}

	got, err := DecodeOptions(&buf)
	if err != nil {
		t.Fatalf("DecodeOptions() error: %v\n%s", err, buf.String())
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadOptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logo.toml")
	if err := os.WriteFile(path, []byte("label = \"file\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions() error: %v", err)
	}
	if opts.Label != "file" {
		t.Errorf("Label = %q, want file", opts.Label)
	}

	_, err = LoadOptions(filepath.Join(dir, "missing.toml"))
	if !apperrors.Is(err, apperrors.ErrCodeInvalidPath) {
		t.Errorf("LoadOptions(missing) error = %v, want INVALID_PATH", err)
	}
	if apperrors.Remediation(err) == "" {
		t.Error("missing config should carry a remediation hint")
	}
}
