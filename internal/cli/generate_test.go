package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/flowmind/flowviz/pkg/diagram"
	"github.com/flowmind/flowviz/pkg/layoutfile"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to both", "", []string{"png", "svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "png,svg", []string{"png", "svg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
	}{
		{"empty uses default", "", "public/architecture-diagram"},
		{"strips png extension", "out/diagram.png", "out/diagram"},
		{"strips svg extension", "out/diagram.svg", "out/diagram"},
		{"keeps unknown extension", "out/diagram.v2", "out/diagram.v2"},
		{"plain base", "out/diagram", "out/diagram"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output); got != tt.want {
				t.Errorf("basePath(%q) = %q, want %q", tt.output, got, tt.want)
			}
		})
	}
}

func TestRunGenerate(t *testing.T) {
	dir := t.TempDir()
	opts := generateOpts{
		output:  filepath.Join(dir, "diagram"),
		formats: []string{"svg", "png"},
		scale:   20,
	}

	if err := runGenerate(context.Background(), &opts); err != nil {
		t.Fatalf("runGenerate() error: %v", err)
	}

	for _, ext := range []string{".svg", ".png"} {
		path := filepath.Join(dir, "diagram"+ext)
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat(%s) error: %v", path, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", path)
		}
	}
}

func TestRunGenerateInvalidFormat(t *testing.T) {
	opts := generateOpts{
		output:  filepath.Join(t.TempDir(), "diagram"),
		formats: []string{"pdf"},
		scale:   20,
	}

	if err := runGenerate(context.Background(), &opts); err == nil {
		t.Fatal("runGenerate() with invalid format succeeded, want error")
	}
}

func TestRunGenerateCustomLayout(t *testing.T) {
	dir := t.TempDir()
	layoutPath := filepath.Join(dir, "layout.toml")

	var buf bytes.Buffer
	if err := layoutfile.Encode(&buf, diagram.FlowMindLayout()); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if err := os.WriteFile(layoutPath, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	opts := generateOpts{
		output:     filepath.Join(dir, "diagram"),
		formats:    []string{"svg"},
		scale:      20,
		layoutPath: layoutPath,
	}
	if err := runGenerate(context.Background(), &opts); err != nil {
		t.Fatalf("runGenerate() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "diagram.svg")); err != nil {
		t.Fatalf("output missing: %v", err)
	}
}

func TestRunGenerateMissingLayoutFile(t *testing.T) {
	opts := generateOpts{
		output:     filepath.Join(t.TempDir(), "diagram"),
		formats:    []string{"svg"},
		scale:      20,
		layoutPath: filepath.Join(t.TempDir(), "nope.toml"),
	}

	if err := runGenerate(context.Background(), &opts); err == nil {
		t.Fatal("runGenerate() with missing layout file succeeded, want error")
	}
}
