// Package config holds the settings for the icon-set generator. The
// built-in defaults reproduce the stock icon set; a JSON file passed
// via -config overrides individual fields.
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"strconv"
)

// DefaultBackground is the brand blue used on every stock icon.
const DefaultBackground = "#1890ff"

// DefaultOutputDir is where the generated icon set is written.
const DefaultOutputDir = "desk/build-resources"

// DefaultText is the label drawn on the icons.
const DefaultText = "AI"

// defaultSizes lists the icon edge lengths generated by default, in
// the order they are rendered.
var defaultSizes = []int{16, 32, 64, 128, 256, 512}

// Config holds the generator settings.
type Config struct {
	Background string `json:"background,omitempty"` // hex color: #rgb, #rrggbb or #rrggbbaa
	Sizes      []int  `json:"sizes,omitempty"`      // pixel edge lengths to render
	OutputDir  string `json:"output_dir,omitempty"`
	Border     bool   `json:"border"` // rounded-rectangle frame on each icon
	Text       string `json:"text,omitempty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Background: DefaultBackground,
		Sizes:      append([]int(nil), defaultSizes...),
		OutputDir:  DefaultOutputDir,
		Border:     true,
		Text:       DefaultText,
	}
}

// UnmarshalJSON sets defaults then decodes the JSON structure. Go's
// json.Unmarshal merges into existing struct fields, so only values
// present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Load reads settings from an explicit config file. An empty path
// returns the defaults without touching the filesystem; there is no
// implicit config search.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

func (c Config) validate() error {
	if _, err := ParseHexColor(c.Background); err != nil {
		return err
	}
	if len(c.Sizes) == 0 {
		return fmt.Errorf("sizes must not be empty")
	}
	for _, s := range c.Sizes {
		if s < 1 {
			return fmt.Errorf("sizes must be positive, got %d", s)
		}
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if c.Text == "" {
		return fmt.Errorf("text must not be empty")
	}
	return nil
}

// ParseHexColor parses a #rgb, #rrggbb or #rrggbbaa color string.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid color %q: must start with '#'", s)
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
		// rrggbbaa as-is
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #rgb, #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
