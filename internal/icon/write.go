package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WritePNG encodes img and writes it to path via a temporary file +
// rename, so an interrupted run never leaves a truncated icon behind.
// The parent directory is created if needed.
func WritePNG(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("icon: create output dir: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("icon: encode png: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("icon: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("icon: rename into place: %w", err)
	}
	return nil
}
