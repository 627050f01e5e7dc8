// Package icon renders the application icon: an "AI" label centered on
// a brand-blue square, optionally framed by a rounded-rectangle border.
// Rendering never fails for a valid size; when no usable font can be
// found or the label cannot be drawn, a circle glyph takes its place.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// DefaultBackground is the brand blue (#1890ff).
var DefaultBackground = color.RGBA{R: 24, G: 144, B: 255, A: 255}

// DefaultText is the label drawn on the icon.
const DefaultText = "AI"

// labelScale is the font size relative to the icon edge.
const labelScale = 0.35

// Spec describes a single icon to render. It is immutable for the
// duration of a Render call.
type Spec struct {
	Size       int        // pixel width and height
	Background color.RGBA // canvas fill
	Border     bool       // rounded-rectangle outline inset from the edges
	Text       string     // label; empty means DefaultText
}

func (s Spec) validate() error {
	// The size is rejected rather than clamped: a non-positive canvas
	// has no meaningful render.
	if s.Size < 1 {
		return fmt.Errorf("icon: size must be positive, got %d", s.Size)
	}
	return nil
}

// Render rasterizes spec into a new Size×Size image. The only error
// condition is an invalid Size; every drawing problem downgrades to the
// fallback glyph instead of failing the render.
func Render(spec Spec) (image.Image, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	dc := gg.NewContext(spec.Size, spec.Size)
	dc.SetColor(spec.Background)
	dc.Clear()
	face := loadFace(float64(spec.Size)*labelScale, fontCandidates())
	renderWith(dc, spec, face)
	return dc.Image(), nil
}

// renderWith draws the border and label onto a prepared canvas. A label
// failure is consumed here: the circle glyph replaces the text and the
// render still succeeds.
func renderWith(dc *gg.Context, spec Spec, face font.Face) {
	if spec.Border {
		drawBorder(dc, spec.Size)
	}
	text := spec.Text
	if text == "" {
		text = DefaultText
	}
	if err := drawLabel(dc, face, text, spec.Size); err != nil {
		fmt.Fprintf(os.Stderr, "icon: drawing label %q failed (%v), using fallback glyph\n", text, err)
		drawFallback(dc, spec.Size)
	}
}

// drawBorder strokes a white rounded rectangle inset by size/10 from
// each edge, with corner radius size/5 and stroke width size/40.
func drawBorder(dc *gg.Context, size int) {
	margin := float64(size) / 10
	radius := float64(size) / 5
	width := float64(size) / 40
	if width < 1 {
		width = 1
	}
	dc.SetRGB255(255, 255, 255)
	dc.SetLineWidth(width)
	dc.DrawRoundedRectangle(margin, margin, float64(size)-2*margin, float64(size)-2*margin, radius)
	dc.Stroke()
}

// drawLabel measures text under face and draws it white, centered on
// the canvas. Face implementations backed by arbitrary font files may
// panic on malformed glyph tables; that panic is converted to an error
// so the caller can fall back.
func drawLabel(dc *gg.Context, face font.Face, text string, size int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("text rendering panicked: %v", r)
		}
	}()

	bounds, _ := font.BoundString(face, text)
	tw := (bounds.Max.X - bounds.Min.X).Ceil()
	th := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if tw <= 0 || th <= 0 {
		return fmt.Errorf("label %q has empty bounds", text)
	}

	// Center the ink box, then shift the origin so the pen position
	// accounts for the left bearing and the ascent above the baseline.
	x := float64((size-tw)/2 - bounds.Min.X.Floor())
	y := float64((size-th)/2 - bounds.Min.Y.Floor())

	dc.SetFontFace(face)
	dc.SetRGB255(255, 255, 255)
	dc.DrawString(text, x, y)
	return nil
}

// drawFallback draws the recovery glyph: a semi-transparent white disc
// of radius size/4 with a solid white outline of width size/20,
// centered on the canvas.
func drawFallback(dc *gg.Context, size int) {
	c := float64(size) / 2
	r := float64(size) / 4
	width := float64(size) / 20
	if width < 1 {
		width = 1
	}
	dc.DrawCircle(c, c, r)
	dc.SetRGBA255(255, 255, 255, 200)
	dc.FillPreserve()
	dc.SetRGBA255(255, 255, 255, 255)
	dc.SetLineWidth(width)
	dc.Stroke()
}
