// iconset renders the full application icon set: one PNG per size in
// the configured list plus the canonical icon.png, all written to the
// build-resources directory. A failed size is reported and skipped;
// the remaining sizes are still generated and the exit code stays 0.
//
// ICO and ICNS containers are not produced here; the closing summary
// points at the external tools for those.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/aidesk/icongen/internal/config"
	"github.com/aidesk/icongen/internal/icon"
)

// marks holds the status symbols printed in front of each result line.
type marks struct {
	ok   string
	fail string
}

// statusMarks returns green/red colored marks when stdout is a
// terminal and plain ones otherwise. Only the coloring changes; the
// line content is identical either way.
func statusMarks(colored bool) marks {
	if colored {
		return marks{ok: "\x1b[32m✓\x1b[0m", fail: "\x1b[31m✗\x1b[0m"}
	}
	return marks{ok: "✓", fail: "✗"}
}

// stepResult records the outcome of one render-and-write step.
type stepResult struct {
	name string
	err  error
}

func main() {
	configPath := flag.String("config", "", "optional JSON settings file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m := statusMarks(term.IsTerminal(int(os.Stdout.Fd())))

	fmt.Println("Generating application icons...")
	results := generateAll(cfg, os.Stdout, m)

	written := 0
	for _, r := range results {
		if r.err == nil {
			written++
		}
	}

	fmt.Println()
	if written == len(results) {
		fmt.Printf("%s Icon generation complete: %d files written\n", m.ok, written)
	} else {
		fmt.Printf("%s Icon generation finished: %d of %d files written\n", m.fail, written, len(results))
	}
	fmt.Printf("Output directory: %s\n", cfg.OutputDir)
	fmt.Println()
	fmt.Println("Note:")
	fmt.Println("- PNG icons are ready to use directly")
	fmt.Println("- ICO format (Windows) requires ImageMagick or another external converter")
	fmt.Println("- ICNS format (macOS) requires iconutil or another external tool")
}

// generateAll renders every configured size plus the canonical
// icon.png, writing progress to out. Failures are recorded per step
// and never stop the loop.
func generateAll(cfg config.Config, out io.Writer, m marks) []stepResult {
	bg, err := config.ParseHexColor(cfg.Background)
	if err != nil {
		// Load already validated the color; fall back just in case a
		// hand-built Config slips through.
		bg = icon.DefaultBackground
	}

	results := make([]stepResult, 0, len(cfg.Sizes)+1)
	for _, size := range cfg.Sizes {
		fmt.Fprintf(out, "Generating %dx%d icon...\n", size, size)
		name := fmt.Sprintf("icon-%dx%d.png", size, size)
		results = append(results, generateOne(cfg, bg, size, name, out, m))
	}

	fmt.Fprintln(out, "Generating main icon (512x512)...")
	results = append(results, generateOne(cfg, bg, 512, "icon.png", out, m))
	return results
}

// generateOne renders a single size and writes it under cfg.OutputDir,
// printing one ✓/✗ line. The error is returned for the summary, not
// propagated.
func generateOne(cfg config.Config, bg color.RGBA, size int, name string, out io.Writer, m marks) stepResult {
	path := filepath.Join(cfg.OutputDir, name)
	img, err := icon.Render(icon.Spec{
		Size:       size,
		Background: bg,
		Border:     cfg.Border,
		Text:       cfg.Text,
	})
	if err == nil {
		err = icon.WritePNG(img, path)
	}
	if err != nil {
		fmt.Fprintf(out, "  %s Failed %dx%d: %v\n", m.fail, size, size, err)
		return stepResult{name: name, err: err}
	}
	fmt.Fprintf(out, "  %s Saved %s\n", m.ok, path)
	return stepResult{name: name}
}
