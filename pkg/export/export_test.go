package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flowmind/flowviz/pkg/diagram"
)

func testSurface(t *testing.T) *diagram.Surface {
	t.Helper()
	s := diagram.NewSurface(16, 12)
	if err := s.PlaceNode(1, 1, 2, 1, "A", "frontend"); err != nil {
		t.Fatalf("PlaceNode() error: %v", err)
	}
	s.DrawConnector(3, 1.5, 6, 1.5)
	return s
}

func TestFilesWritesBothFormats(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "architecture-diagram")

	paths, err := Files(testSurface(t), base, nil, WithPNGScale(20))
	if err != nil {
		t.Fatalf("Files() error: %v", err)
	}

	want := []string{base + ".png", base + ".svg"}
	if len(paths) != len(want) {
		t.Fatalf("path count = %d, want %d", len(paths), len(want))
	}
	for i, p := range paths {
		if p != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, p, want[i])
		}
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("Stat(%s) error: %v", p, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", p)
		}
	}
}

func TestFilesSingleFormat(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "diagram")

	paths, err := Files(testSurface(t), base, []string{FormatSVG})
	if err != nil {
		t.Fatalf("Files() error: %v", err)
	}
	if len(paths) != 1 || paths[0] != base+".svg" {
		t.Fatalf("paths = %v, want [%s.svg]", paths, base)
	}
	if _, err := os.Stat(base + ".png"); !os.IsNotExist(err) {
		t.Error("png written despite svg-only format list")
	}
}

func TestFilesNonexistentDirectory(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "missing", "diagram")

	if _, err := Files(testSurface(t), base, []string{FormatSVG}); err == nil {
		t.Fatal("Files() into a nonexistent directory succeeded, want error")
	}
	if _, err := os.Stat(base + ".svg"); !os.IsNotExist(err) {
		t.Error("partial file left behind after failed export")
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid png", []string{"png"}, false},
		{"valid svg", []string{"svg"}, false},
		{"valid both", []string{"png", "svg"}, false},
		{"empty slice", []string{}, false},
		{"invalid format", []string{"pdf"}, true},
		{"mixed valid invalid", []string{"svg", "bmp"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestFilesRejectsInvalidFormat(t *testing.T) {
	dir := t.TempDir()

	if _, err := Files(testSurface(t), filepath.Join(dir, "d"), []string{"gif"}); err == nil {
		t.Fatal("Files() with invalid format succeeded, want error")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("directory not empty after rejected export: %v", entries)
	}
}
