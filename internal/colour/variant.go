package colour

// Adjustment describes how a variant reshapes a base colour before the
// contrast search runs.
type Adjustment struct {
	// LightnessDelta is added to the base colour's HSL lightness.
	LightnessDelta float64
	// TargetContrast is the minimum WCAG ratio against the variant background.
	TargetContrast float64
}

// VariantAdjustments maps variant identifiers to their adjustment policy.
// The classic variant has no entry: it always receives the base colour
// untouched. New variants are added here, not in DeriveVariantColor.
var VariantAdjustments = map[string]Adjustment{
	"soft":          {LightnessDelta: 6, TargetContrast: 4.5},
	"high_contrast": {LightnessDelta: -8, TargetContrast: 7.0},
}

// DeriveVariantColor derives a variant colour from a base colour, ensuring
// WCAG contrast against the variant background. The classic variant is the
// identity. Unknown variants fall back to a zero lightness delta and the
// 4.5:1 AA target.
func DeriveVariantColor(baseColour, bgColour, variant string) string {
	if variant == "classic" {
		return baseColour
	}

	adj, ok := VariantAdjustments[variant]
	if !ok {
		adj = Adjustment{TargetContrast: 4.5}
	}

	adjusted := AdjustLightness(baseColour, adj.LightnessDelta)
	return EnsureContrast(adjusted, bgColour, adj.TargetContrast, Auto)
}
