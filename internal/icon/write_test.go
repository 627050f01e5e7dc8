package icon

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestWritePNGRoundTrip(t *testing.T) {
	img, err := Render(Spec{Size: 32, Background: DefaultBackground, Border: true})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	// Nested path checks parent-directory creation.
	path := filepath.Join(t.TempDir(), "sub", "dir", "icon.png")
	if err := WritePNG(img, path); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if decoded.Bounds() != img.Bounds() {
		t.Fatalf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
	for _, p := range []image.Point{{0, 0}, {16, 16}, {31, 31}, {16, 3}} {
		wr, wg, wb, wa := img.At(p.X, p.Y).RGBA()
		gr, gg, gb, ga := decoded.At(p.X, p.Y).RGBA()
		if wr != gr || wg != gg || wb != gb || wa != ga {
			t.Errorf("pixel %v differs after round trip: got (%d,%d,%d,%d), want (%d,%d,%d,%d)",
				p, gr, gg, gb, ga, wr, wg, wb, wa)
		}
	}
}

func TestWritePNGFailureLeavesNoTempFile(t *testing.T) {
	img, err := Render(Spec{Size: 16, Background: DefaultBackground})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	// A directory squatting on the target path makes the final rename fail.
	dir := t.TempDir()
	path := filepath.Join(dir, "icon.png")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}

	if err := WritePNG(img, path); err == nil {
		t.Fatal("WritePNG: expected error, got nil")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind at %s.tmp", path)
	}
}
