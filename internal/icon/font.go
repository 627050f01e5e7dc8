package icon

import (
	"os"
	"runtime"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// fontCandidates returns the TTF files to try, in preference order, for
// the current platform. A bold sans-serif keeps the two-letter label
// legible at 16px.
func fontCandidates() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
			"/System/Library/Fonts/Supplemental/Arial.ttf",
			"/Library/Fonts/Arial Bold.ttf",
			"DejaVuSans-Bold.ttf",
		}
	case "windows":
		return []string{
			`C:\Windows\Fonts\arialbd.ttf`,
			`C:\Windows\Fonts\arial.ttf`,
			"DejaVuSans-Bold.ttf",
		}
	default:
		return []string{
			"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
			"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
			"DejaVuSans-Bold.ttf",
		}
	}
}

// loadFace tries each candidate font file in order and returns a face
// for the first one that parses, sized in points at 72 DPI. When none
// loads, the fixed-size basicfont face is returned, so the result is
// always usable. No caching: each render call re-evaluates the chain.
func loadFace(points float64, candidates []string) font.Face {
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f, err := truetype.Parse(data)
		if err != nil {
			continue
		}
		return truetype.NewFace(f, &truetype.Options{
			Size:    points,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	return basicfont.Face7x13
}
