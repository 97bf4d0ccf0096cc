// Package preview renders a theme variant as a swatch-strip image, useful
// for eyeballing derived colours without loading the theme into an editor.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"

	"github.com/tonemill/tonemill/internal/theme"
)

// DefaultCellSize is the rendered edge length of one swatch cell in pixels.
const DefaultCellSize = 32

// Render draws the named variant's colours as a horizontal swatch strip.
// An empty variant name selects the first variant. Eight-digit colours are
// alpha-blended over the variant background, matching how an editor would
// composite them.
func Render(artifact *theme.Artifact, variantName string, cellSize int) (image.Image, error) {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}

	variant, err := pickVariant(artifact, variantName)
	if err != nil {
		return nil, err
	}

	background, _ := variant.Style["background"].(string)
	swatches := collectSwatches(variant, background)
	if len(swatches) == 0 {
		return nil, fmt.Errorf("variant %q contains no renderable colours", variant.Name)
	}

	// One pixel per swatch, scaled up without interpolation so each cell
	// stays a flat block of colour.
	strip := image.NewRGBA(image.Rect(0, 0, len(swatches), 1))
	for i, c := range swatches {
		r, g, b := c.RGB255()
		strip.SetRGBA(i, 0, color.RGBA{R: r, G: g, B: b, A: 0xff})
	}

	out := image.NewRGBA(image.Rect(0, 0, len(swatches)*cellSize, cellSize))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), strip, strip.Bounds(), xdraw.Src, nil)
	return out, nil
}

// pickVariant finds a variant by name, defaulting to the first.
func pickVariant(artifact *theme.Artifact, name string) (*theme.Variant, error) {
	if len(artifact.Themes) == 0 {
		return nil, fmt.Errorf("artifact contains no variants")
	}
	if name == "" {
		return &artifact.Themes[0], nil
	}
	for i := range artifact.Themes {
		if artifact.Themes[i].Name == name {
			return &artifact.Themes[i], nil
		}
	}
	return nil, fmt.Errorf("no variant named %q", name)
}

// collectSwatches gathers the variant's parseable colours in stable order:
// top-level style colours first, then the player accents.
func collectSwatches(variant *theme.Variant, background string) []colorful.Color {
	keys := make([]string, 0, len(variant.Style))
	for k := range variant.Style {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var swatches []colorful.Color
	for _, k := range keys {
		s, ok := variant.Style[k].(string)
		if !ok {
			continue
		}
		if c, ok := parseSwatch(s, background); ok {
			swatches = append(swatches, c)
		}
	}

	if players, ok := variant.Style["players"].([]theme.Player); ok {
		for _, p := range players {
			if c, ok := parseSwatch(p.Cursor, background); ok {
				swatches = append(swatches, c)
			}
		}
	}

	return swatches
}

// parseSwatch parses a hex colour for display, compositing an alpha suffix
// over the background. Unparseable strings (including unresolved template
// placeholders) are skipped rather than rendered.
func parseSwatch(s, background string) (colorful.Color, bool) {
	if !strings.HasPrefix(s, "#") {
		return colorful.Color{}, false
	}

	hex := s
	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return colorful.Color{}, false
		}
		alpha = float64(a) / 255.0
		hex = s[:7]
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false
	}

	if alpha < 1.0 {
		bg, err := colorful.Hex(background)
		if err != nil {
			return c, true
		}
		c = bg.BlendRgb(c, alpha)
	}

	return c, true
}
