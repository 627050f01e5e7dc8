// mkicon renders the canonical 512×512 application icon PNG.
// Usage: mkicon [output.png]
//
// This is a best-effort build tool: failures are reported on stderr
// and the exit code is always 0.
package main

import (
	"fmt"
	"os"

	"github.com/aidesk/icongen/internal/icon"
)

const iconSize = 512

func main() {
	out := "icon.png"
	switch len(os.Args) {
	case 1:
	case 2:
		out = os.Args[1]
	default:
		fmt.Fprintln(os.Stderr, "Usage: mkicon [output.png]")
		return
	}

	if err := run(out); err != nil {
		fmt.Fprintf(os.Stderr, "✗ Failed to create icon: %v\n", err)
		return
	}
	fmt.Printf("✓ Created icon: %s\n", out)
}

func run(path string) error {
	img, err := icon.Render(icon.Spec{
		Size:       iconSize,
		Background: icon.DefaultBackground,
		Text:       icon.DefaultText,
	})
	if err != nil {
		return err
	}
	return icon.WritePNG(img, path)
}
