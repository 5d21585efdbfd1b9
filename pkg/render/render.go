package render

import (
	"strings"

	"github.com/chazu/botforge/pkg/robot"
)

// regionFunc draws one body region. Regions run in a fixed order and each
// appends its primitives independently of the others.
type regionFunc func(t Theme, attrs robot.Attributes, name string) []Primitive

// Render maps (kind, attributes, name) to the ordered primitive sequence for
// the surface. A kind the engine does not know yields a single diagnostic
// text primitive so the surface never crashes on a malformed robot.
func Render(kind robot.Kind, attrs robot.Attributes, name string) []Primitive {
	switch kind {
	case robot.KindHumanoid:
		return renderRegions(humanoidRegions, attrs, name)
	case robot.KindHeavy:
		return renderRegions(heavyRegions, attrs, name)
	default:
		return []Primitive{
			label(200, 200, "Unknown robot type", "black", Font{Family: "Helvetica", Size: 16}),
		}
	}
}

func renderRegions(regions []regionFunc, attrs robot.Attributes, name string) []Primitive {
	t := DefaultTheme()
	var out []Primitive
	for _, region := range regions {
		out = append(out, region(t, attrs, name)...)
	}
	return out
}

// styleOf returns the lower-cased value of a style attribute, or fallback
// when the key is absent or empty. Branching on the result gives the
// case-insensitive matching and else-branch defaulting the regions rely on.
func styleOf(attrs robot.Attributes, key, fallback string) string {
	v, ok := attrs[key]
	if !ok || v == "" {
		return fallback
	}
	return strings.ToLower(v)
}

// colorOf returns the raw value of a color attribute, or fallback when
// absent. Color values are used verbatim as fills, never normalized.
func colorOf(attrs robot.Attributes, key, fallback string) string {
	v, ok := attrs[key]
	if !ok || v == "" {
		return fallback
	}
	return v
}

// antennaRegion is shared by both pipelines: any value other than "none"
// draws a stalk topped by a two-tone bulb above the head.
func antennaRegion(t Theme, attrs robot.Attributes, _ string) []Primitive {
	if styleOf(attrs, robot.KeyAntenna, "none") == "none" {
		return nil
	}
	return []Primitive{
		line(200, 40, 200, 15, t.Antenna.Stalk, 2),
		ellipse(195, 10, 205, 20, t.Antenna.Bulb, "black", 1),
		ellipse(197, 12, 203, 18, t.Antenna.Core, t.Antenna.Stalk, 1),
	}
}
