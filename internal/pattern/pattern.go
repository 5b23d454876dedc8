// Package pattern generates plotter fill patterns for polygons. Every
// generator takes a polygon, a spacing and an angle and returns line
// segments clipped to the polygon interior, holes excluded.
package pattern

import (
	"strings"

	"plotfill/internal/geom"
)

// Pattern identifies one of the available fill patterns.
type Pattern int

const (
	PatternLines Pattern = iota
	PatternCrosshatch
	PatternZigzag
	PatternWiggle
	PatternSpiral
	PatternFermat
	PatternConcentric
	PatternRadial
	PatternHoneycomb
	PatternCrossspiral
	PatternHilbert
	PatternGuilloche
	PatternLissajous
	PatternMeander
	PatternRose
	PatternPhyllotaxis
	PatternScribble
	PatternGyroid
	PatternPentagon15
	PatternPentagon14
	PatternBrick
	PatternTruchet
	PatternStipple
	PatternPeano
	PatternSierpinski
	PatternDiagonal
	PatternHerringbone
	PatternStripe
	PatternTessellation
	PatternHarmonograph
	PatternFlowfield
	PatternVoronoi
	PatternGosper
	PatternWave
	PatternSunburst

	numPatterns
)

// All returns every pattern in display order.
func All() []Pattern {
	patterns := make([]Pattern, numPatterns)
	for i := range patterns {
		patterns[i] = Pattern(i)
	}
	return patterns
}

var patternNames = [numPatterns]string{
	PatternLines:        "lines",
	PatternCrosshatch:   "crosshatch",
	PatternZigzag:       "zigzag",
	PatternWiggle:       "wiggle",
	PatternSpiral:       "spiral",
	PatternFermat:       "fermat",
	PatternConcentric:   "concentric",
	PatternRadial:       "radial",
	PatternHoneycomb:    "honeycomb",
	PatternCrossspiral:  "crossspiral",
	PatternHilbert:      "hilbert",
	PatternGuilloche:    "guilloche",
	PatternLissajous:    "lissajous",
	PatternMeander:      "meander",
	PatternRose:         "rose",
	PatternPhyllotaxis:  "phyllotaxis",
	PatternScribble:     "scribble",
	PatternGyroid:       "gyroid",
	PatternPentagon15:   "pentagon15",
	PatternPentagon14:   "pentagon14",
	PatternBrick:        "brick",
	PatternTruchet:      "truchet",
	PatternStipple:      "stipple",
	PatternPeano:        "peano",
	PatternSierpinski:   "sierpinski",
	PatternDiagonal:     "diagonal",
	PatternHerringbone:  "herringbone",
	PatternStripe:       "stripe",
	PatternTessellation: "tessellation",
	PatternHarmonograph: "harmonograph",
	PatternFlowfield:    "flowfield",
	PatternVoronoi:      "voronoi",
	PatternGosper:       "gosper",
	PatternWave:         "wave",
	PatternSunburst:     "sunburst",
}

// Name returns the canonical pattern name.
func (p Pattern) Name() string {
	if p < 0 || p >= numPatterns {
		return "unknown"
	}
	return patternNames[p]
}

func (p Pattern) String() string { return p.Name() }

var patternAliases = map[string]Pattern{
	"sine":          PatternWiggle,
	"spirograph":    PatternGuilloche,
	"serpentine":    PatternMeander,
	"boustrophedon": PatternMeander,
	"rhodonea":      PatternRose,
	"sunflower":     PatternPhyllotaxis,
	"pent15":        PatternPentagon15,
	"pent14":        PatternPentagon14,
	"running-bond":  PatternBrick,
	"dots":          PatternStipple,
	"arrowhead":     PatternSierpinski,
	"chevron":       PatternHerringbone,
	"stripes":       PatternStripe,
	"bands":         PatternStripe,
	"triangulate":   PatternTessellation,
	"triangles":     PatternTessellation,
	"pendulum":      PatternHarmonograph,
	"flow":          PatternFlowfield,
	"noise":         PatternFlowfield,
	"cells":         PatternVoronoi,
	"interference":  PatternWave,
	"rays":          PatternSunburst,
	"starburst":     PatternSunburst,
	"flowsnake":     PatternGosper,
	// grid has no generator of its own; it resolves to crosshatch so
	// documents naming it still fill.
	"grid": PatternCrosshatch,
}

// FromName parses a pattern name or alias, case insensitive.
func FromName(name string) (Pattern, bool) {
	name = strings.ToLower(name)
	for i, n := range patternNames {
		if n == name {
			return Pattern(i), true
		}
	}
	p, ok := patternAliases[name]
	return p, ok
}

// Metadata labels a pattern's parameters for UI display.
type Metadata struct {
	SpacingLabel string
	AngleLabel   string
	Description  string
}

var patternMetadata = [numPatterns]Metadata{
	PatternLines:        {"Line Spacing", "Angle", "Parallel lines at angle"},
	PatternCrosshatch:   {"Line Spacing", "Angle", "Parallel lines at angle"},
	PatternDiagonal:     {"Line Spacing", "Angle", "Parallel lines at angle"},
	PatternZigzag:       {"Amplitude", "Angle", "Zigzag waves with amplitude"},
	PatternWiggle:       {"Wavelength", "Angle", "Smooth sine waves"},
	PatternSpiral:       {"Turn Spacing", "Start Angle", "Archimedean spiral"},
	PatternFermat:       {"Turn Spacing", "Rotation", "Fermat (parabolic) spiral"},
	PatternConcentric:   {"Ring Spacing", "N/A", "Concentric offset rings"},
	PatternRadial:       {"Ray Count", "Offset", "Radial rays from center"},
	PatternHoneycomb:    {"Cell Size", "Angle", "Hexagonal honeycomb grid"},
	PatternCrossspiral:  {"Arm Spacing", "Arms", "Crossed spiral arms"},
	PatternHilbert:      {"Detail", "Rotation", "Hilbert space-filling curve"},
	PatternGuilloche:    {"Complexity", "Phase", "Spirograph-like curves"},
	PatternLissajous:    {"Frequency", "Phase", "Lissajous figure curves"},
	PatternMeander:      {"Row Spacing", "Angle", "Serpentine back-and-forth"},
	PatternRose:         {"Petals", "Rotation", "Rose/rhodonea curves"},
	PatternPhyllotaxis:  {"Dot Spacing", "Golden Angle", "Sunflower seed pattern"},
	PatternScribble:     {"Density", "Chaos", "Random scribble fill"},
	PatternGyroid:       {"Cell Size", "Rotation", "3D gyroid projection"},
	PatternPentagon15:   {"Tile Size", "Rotation", "Pentagonal tiling type 15"},
	PatternPentagon14:   {"Tile Size", "Rotation", "Pentagonal tiling type 14"},
	PatternBrick:        {"Brick Width", "Angle", "Running bond brick"},
	PatternTruchet:      {"Tile Size", "Rotation", "Random Truchet tiles"},
	PatternStipple:      {"Dot Spacing", "Randomness", "Stippled dot pattern"},
	PatternPeano:        {"Detail", "Rotation", "Peano space-filling curve"},
	PatternSierpinski:   {"Detail", "Rotation", "Sierpinski arrowhead"},
	PatternHerringbone:  {"Segment Size", "Angle", "Herringbone chevrons"},
	PatternStripe:       {"Band Width", "Angle", "Grouped stripe bands"},
	PatternTessellation: {"N/A", "N/A", "Triangulate polygon"},
	PatternHarmonograph: {"Curve Count", "Phase", "Decaying pendulum curves"},
	PatternFlowfield:    {"Density", "Base Angle", "Noise-driven flow lines"},
	PatternVoronoi:      {"Cell Size", "Rotation", "Voronoi cell boundaries"},
	PatternGosper:       {"Detail", "Rotation", "Gosper space-filling curve"},
	PatternWave:         {"Wavelength", "Source Angle", "Wave interference pattern"},
	PatternSunburst:     {"Ray Spacing", "Rotation", "Radial rays from center"},
}

// Metadata returns UI labels for the pattern's parameters.
func (p Pattern) Metadata() Metadata {
	if p < 0 || p >= numPatterns {
		return Metadata{}
	}
	return patternMetadata[p]
}

// SpacingMultiplier scales the user-facing spacing so each pattern has
// a sensible density at the shared default.
func (p Pattern) SpacingMultiplier() float64 {
	switch p {
	case PatternFermat, PatternPhyllotaxis, PatternHarmonograph,
		PatternFlowfield, PatternSunburst:
		return 4.0
	case PatternZigzag, PatternWiggle, PatternSpiral,
		PatternHoneycomb, PatternCrossspiral,
		PatternBrick, PatternTruchet, PatternHerringbone, PatternStripe,
		PatternVoronoi, PatternWave, PatternGyroid:
		return 2.0
	}
	return 1.0
}

// Randomized reports whether the pattern consumes the seed.
func (p Pattern) Randomized() bool {
	switch p {
	case PatternTruchet, PatternStipple, PatternScribble,
		PatternVoronoi, PatternFlowfield:
		return true
	}
	return false
}

// Generate runs the pattern over a polygon. Spacing is the user-facing
// value before the per-pattern multiplier; seed feeds the randomized
// patterns and is ignored by the deterministic ones.
func (p Pattern) Generate(polygon *geom.Polygon, spacing, angle float64, seed uint64) []geom.Line {
	effective := spacing * p.SpacingMultiplier()

	switch p {
	case PatternLines:
		return Lines(polygon, spacing, angle)
	case PatternCrosshatch:
		return Crosshatch(polygon, spacing, angle)
	case PatternZigzag:
		return Zigzag(polygon, spacing, angle)
	case PatternWiggle:
		return Wiggle(polygon, spacing, angle, spacing, 0.1)
	case PatternSpiral:
		return Spiral(polygon, spacing, angle)
	case PatternFermat:
		return Fermat(polygon, effective, angle)
	case PatternConcentric:
		return Concentric(polygon, spacing, true)
	case PatternRadial:
		return Radial(polygon, 10.0, angle)
	case PatternHoneycomb:
		return Honeycomb(polygon, effective, angle)
	case PatternCrossspiral:
		return Crossspiral(polygon, spacing, angle)
	case PatternHilbert:
		return Hilbert(polygon, spacing, angle)
	case PatternGuilloche:
		return Guilloche(polygon, spacing, angle)
	case PatternLissajous:
		return Lissajous(polygon, spacing, angle)
	case PatternMeander:
		return Meander(polygon, spacing, angle)
	case PatternRose:
		return Rose(polygon, spacing, angle)
	case PatternPhyllotaxis:
		return Phyllotaxis(polygon, effective, angle)
	case PatternScribble:
		return Scribble(polygon, spacing, angle, seed)
	case PatternGyroid:
		return Gyroid(polygon, effective, angle)
	case PatternPentagon15:
		return Pentagon15(polygon, spacing*3.0, angle)
	case PatternPentagon14:
		return Pentagon14(polygon, spacing*3.0, angle)
	case PatternBrick:
		return Brick(polygon, effective, angle)
	case PatternTruchet:
		return Truchet(polygon, effective, angle, seed)
	case PatternStipple:
		return Stipple(polygon, spacing, angle, seed)
	case PatternPeano:
		return Peano(polygon, spacing, angle)
	case PatternSierpinski:
		return Sierpinski(polygon, spacing, angle)
	case PatternDiagonal:
		return Diagonal(polygon, spacing, angle)
	case PatternHerringbone:
		return Herringbone(polygon, effective, angle)
	case PatternStripe:
		return Stripe(polygon, effective, angle)
	case PatternTessellation:
		return Tessellation(polygon, spacing, angle)
	case PatternHarmonograph:
		return Harmonograph(polygon, effective, angle)
	case PatternFlowfield:
		return Flowfield(polygon, effective, angle, seed)
	case PatternVoronoi:
		return Voronoi(polygon, effective, angle, seed)
	case PatternGosper:
		return Gosper(polygon, spacing, angle)
	case PatternWave:
		return Wave(polygon, effective, angle)
	case PatternSunburst:
		return Sunburst(polygon, effective, angle)
	}
	return nil
}
