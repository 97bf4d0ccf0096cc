package colour

import "math"

// Direction controls which way EnsureContrast walks lightness.
type Direction string

const (
	// Lighter forces the search towards higher lightness.
	Lighter Direction = "lighter"
	// Darker forces the search towards lower lightness.
	Darker Direction = "darker"
	// Auto lightens against dark backgrounds and darkens against light ones.
	Auto Direction = "auto"
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(rgb RGB) float64 {
	r := gammaCorrect(float64(rgb.R) / 255.0)
	g := gammaCorrect(float64(rgb.G) / 255.0)
	b := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0. Returns a value between 1 and 21, where 21 is maximum contrast
// (black vs white). Symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b RGB) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// HexContrastRatio calculates the contrast ratio between two hex colour
// strings. Unparseable inputs count as black.
func HexContrastRatio(a, b string) float64 {
	ca, _ := ParseHex(a)
	cb, _ := ParseHex(b)
	return ContrastRatio(ca, cb)
}

// AdjustLightness shifts the HSL lightness of a hex colour by delta
// percentage points, clamped to [0, 100]. Hue and saturation are preserved.
// An unparseable colour is returned unchanged.
func AdjustLightness(hex string, delta float64) string {
	hsl, err := HexToHSL(hex)
	if err != nil {
		return hex
	}
	hsl.L = clampLightness(hsl.L + delta)
	return HSLToHex(hsl)
}

// EnsureContrast adjusts a foreground colour until it meets minRatio against
// the background, walking HSL lightness in fixed 1-point steps.
//
// Already-compliant input is returned unchanged, which also makes the
// function idempotent. If 100 steps (or the 0/100 lightness boundary) do not
// reach minRatio the best-effort boundary colour is returned, so callers must
// not assume the result always satisfies the ratio.
//
// The step size and iteration bound are frozen: changing either changes every
// derived colour downstream.
func EnsureContrast(fg, bg string, minRatio float64, direction Direction) string {
	fgRGB, err := ParseHex(fg)
	if err != nil {
		return fg
	}
	bgRGB, err := ParseHex(bg)
	if err != nil {
		return fg
	}

	if ContrastRatio(fgRGB, bgRGB) >= minRatio {
		return fg
	}

	hsl := RGBToHSL(fgRGB)

	// Lighten against a dark background, darken against a light one.
	goLighter := direction == Lighter ||
		(direction == Auto && Luminance(bgRGB) < 0.5)
	step := -1.0
	if goLighter {
		step = 1.0
	}

	for i := 0; i < 100; i++ {
		hsl.L = clampLightness(hsl.L + step)
		candidate := HSLToRGB(hsl)
		if ContrastRatio(candidate, bgRGB) >= minRatio {
			return candidate.Hex()
		}
	}

	return HSLToHex(hsl)
}

// clampLightness clamps an HSL lightness percentage to [0, 100].
func clampLightness(l float64) float64 {
	return math.Max(0, math.Min(100, l))
}
