package pattern

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

func square(size float64) *geom.Polygon {
	return geom.NewPolygon([]geom.Point{
		geom.Pt(0, 0), geom.Pt(size, 0), geom.Pt(size, size), geom.Pt(0, size),
	})
}

func squareWithHole(size, holeMin, holeMax float64) *geom.Polygon {
	return geom.NewPolygonWithHoles(
		[]geom.Point{
			geom.Pt(0, 0), geom.Pt(size, 0), geom.Pt(size, size), geom.Pt(0, size),
		},
		[][]geom.Point{{
			geom.Pt(holeMin, holeMin), geom.Pt(holeMax, holeMin),
			geom.Pt(holeMax, holeMax), geom.Pt(holeMin, holeMax),
		}},
	)
}

func TestLinesHorizontalCount(t *testing.T) {
	lines := Lines(square(100), 10, 0)

	if len(lines) != 11 {
		t.Fatalf("got %d lines, want 11", len(lines))
	}
	for i, l := range lines {
		if math.Abs(l.Y1-l.Y2) > 1e-9 {
			t.Errorf("line %d not horizontal: y1=%v y2=%v", i, l.Y1, l.Y2)
		}
	}
}

func TestLinesSplitAroundHole(t *testing.T) {
	p := squareWithHole(100, 40, 60)
	lines := Lines(p, 10, 0)

	// The row through the hole must split into two segments, one on
	// each side, neither crossing the hole interior.
	var through []geom.Line
	for _, l := range lines {
		if math.Abs(l.Y1-50) < 1e-6 {
			through = append(through, l)
		}
	}
	if len(through) != 2 {
		t.Fatalf("row at y=50: got %d segments, want 2", len(through))
	}
	for _, l := range through {
		mid := l.Midpoint()
		if mid.X > 40 && mid.X < 60 {
			t.Errorf("segment midpoint %v lies inside the hole", mid)
		}
	}
}

func TestLinesAngled(t *testing.T) {
	lines := Lines(square(100), 10, 45)
	if len(lines) == 0 {
		t.Fatal("no lines at 45 degrees")
	}
	for i, l := range lines {
		dx, dy := l.X2-l.X1, l.Y2-l.Y1
		slope := math.Abs(dy / dx)
		if math.Abs(slope-1) > 1e-6 {
			t.Errorf("line %d slope %v, want 1", i, slope)
		}
	}
}

func TestCrosshatchDoublesLines(t *testing.T) {
	single := Lines(square(100), 10, 0)
	cross := Crosshatch(square(100), 10, 0)
	if len(cross) <= len(single) {
		t.Errorf("crosshatch %d lines, single direction %d", len(cross), len(single))
	}
}

func TestEveryPatternGeneratesInsideSquare(t *testing.T) {
	p := square(100)
	for _, pat := range All() {
		lines := pat.Generate(p, 5, 45, 42)
		if len(lines) == 0 {
			t.Errorf("%s: no lines for a 100x100 square", pat)
		}
	}
}

func TestEveryPatternHandlesDegenerateInput(t *testing.T) {
	empty := geom.NewPolygon(nil)
	twoPoints := geom.NewPolygon([]geom.Point{geom.Pt(0, 0), geom.Pt(1, 1)})

	for _, pat := range All() {
		if got := pat.Generate(empty, 5, 0, 1); len(got) != 0 {
			t.Errorf("%s: %d lines for empty polygon", pat, len(got))
		}
		if got := pat.Generate(twoPoints, 5, 0, 1); len(got) != 0 {
			t.Errorf("%s: %d lines for 2-point polygon", pat, len(got))
		}
		// Radial and tessellation ignore the spacing parameter.
		if pat != PatternRadial && pat != PatternTessellation {
			if got := pat.Generate(square(100), 0, 0, 1); len(got) != 0 {
				t.Errorf("%s: %d lines for zero spacing", pat, len(got))
			}
		}
	}
}

func TestClippedPatternsStayInside(t *testing.T) {
	p := squareWithHole(100, 40, 60)
	checked := []Pattern{
		PatternLines, PatternCrosshatch, PatternZigzag, PatternSpiral,
		PatternHoneycomb, PatternHilbert, PatternBrick, PatternHerringbone,
		PatternWave, PatternMeander,
	}
	for _, pat := range checked {
		for i, l := range pat.Generate(p, 5, 30, 7) {
			mid := l.Midpoint()
			if !clip.PointInBody(mid.X, mid.Y, p) && !clip.PointOnBoundary(mid.X, mid.Y, p) {
				t.Errorf("%s: line %d midpoint %v outside polygon body", pat, i, mid)
				break
			}
		}
	}
}

func TestTessellationAvoidsHoles(t *testing.T) {
	p := squareWithHole(100, 40, 60)
	lines := Tessellation(p, 0, 0)
	if len(lines) == 0 {
		t.Fatal("no lines for holed square")
	}
	for i, l := range lines {
		mid := l.Midpoint()
		if inAnyHole(mid.X, mid.Y, p) {
			t.Errorf("line %d midpoint %v inside hole", i, mid)
		}
	}
}

func TestConcentricAvoidsHoles(t *testing.T) {
	p := squareWithHole(100, 40, 60)
	lines := Concentric(p, 5, true)
	if len(lines) == 0 {
		t.Fatal("no lines for holed square")
	}
	for i, l := range lines {
		mid := l.Midpoint()
		if inAnyHole(mid.X, mid.Y, p) {
			t.Errorf("line %d midpoint %v inside hole", i, mid)
		}
	}
}

func TestSpacingControlsDensity(t *testing.T) {
	p := square(100)
	checked := []Pattern{
		PatternLines, PatternCrosshatch, PatternSpiral, PatternHoneycomb,
		PatternConcentric, PatternHarmonograph,
	}
	for _, pat := range checked {
		dense := pat.Generate(p, 4, 0, 3)
		sparse := pat.Generate(p, 20, 0, 3)
		if len(dense) <= len(sparse) {
			t.Errorf("%s: dense %d <= sparse %d", pat, len(dense), len(sparse))
		}
	}
}

func TestRandomizedPatternsAreSeedDeterministic(t *testing.T) {
	p := square(100)
	for _, pat := range All() {
		if !pat.Randomized() {
			continue
		}
		a := pat.Generate(p, 5, 0, 99)
		b := pat.Generate(p, 5, 0, 99)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("%s: same seed, different output (-first +second):\n%s", pat, diff)
		}

		c := pat.Generate(p, 5, 0, 100)
		if cmp.Equal(a, c) {
			t.Errorf("%s: seeds 99 and 100 produced identical output", pat)
		}
	}
}

func TestFromNameRoundTrip(t *testing.T) {
	for _, pat := range All() {
		got, ok := FromName(pat.Name())
		if !ok || got != pat {
			t.Errorf("FromName(%q) = %v, %v", pat.Name(), got, ok)
		}
	}
	if _, ok := FromName("no-such-pattern"); ok {
		t.Error("FromName accepted an unknown name")
	}
}

func TestFromNameAliases(t *testing.T) {
	cases := map[string]Pattern{
		"sine":          PatternWiggle,
		"spirograph":    PatternGuilloche,
		"serpentine":    PatternMeander,
		"boustrophedon": PatternMeander,
		"rhodonea":      PatternRose,
		"sunflower":     PatternPhyllotaxis,
		"running-bond":  PatternBrick,
		"dots":          PatternStipple,
		"arrowhead":     PatternSierpinski,
		"chevron":       PatternHerringbone,
		"bands":         PatternStripe,
		"triangles":     PatternTessellation,
		"pendulum":      PatternHarmonograph,
		"flow":          PatternFlowfield,
		"cells":         PatternVoronoi,
		"flowsnake":     PatternGosper,
		"interference":  PatternWave,
		"starburst":     PatternSunburst,
		"SCRIBBLE":      PatternScribble,
	}
	for name, want := range cases {
		got, ok := FromName(name)
		if !ok || got != want {
			t.Errorf("FromName(%q) = %v, %v; want %v", name, got, ok, want)
		}
	}
}

func TestSpacingMultipliers(t *testing.T) {
	if got := PatternFermat.SpacingMultiplier(); got != 4.0 {
		t.Errorf("fermat multiplier = %v, want 4", got)
	}
	if got := PatternHoneycomb.SpacingMultiplier(); got != 2.0 {
		t.Errorf("honeycomb multiplier = %v, want 2", got)
	}
	if got := PatternLines.SpacingMultiplier(); got != 1.0 {
		t.Errorf("lines multiplier = %v, want 1", got)
	}
}

func TestMetadataPresent(t *testing.T) {
	for _, pat := range All() {
		meta := pat.Metadata()
		if meta.SpacingLabel == "" || meta.AngleLabel == "" || meta.Description == "" {
			t.Errorf("%s: incomplete metadata %+v", pat, meta)
		}
	}
}

func TestTessellationEdgeCounts(t *testing.T) {
	cases := []struct {
		name  string
		outer []geom.Point
		want  int
	}{
		{
			"square", []geom.Point{
				geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100), geom.Pt(0, 100),
			}, 6,
		},
		{
			"triangle", []geom.Point{
				geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(50, 100),
			}, 3,
		},
		{
			"pentagon", []geom.Point{
				geom.Pt(50, 0), geom.Pt(100, 38), geom.Pt(81, 100),
				geom.Pt(19, 100), geom.Pt(0, 38),
			}, 9,
		},
		{
			"l-shape", []geom.Point{
				geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 50),
				geom.Pt(50, 50), geom.Pt(50, 100), geom.Pt(0, 100),
			}, 12,
		},
	}
	for _, tc := range cases {
		lines := Tessellation(geom.NewPolygon(tc.outer), 10, 0)
		if len(lines) != tc.want {
			t.Errorf("%s: got %d edges, want %d", tc.name, len(lines), tc.want)
		}
	}
}

func TestConcentricShrinksInward(t *testing.T) {
	lines := Concentric(square(100), 10, true)
	if len(lines) == 0 {
		t.Fatal("no concentric lines")
	}
	// Everything stays within the original bounds.
	for i, l := range lines {
		for _, v := range [][2]float64{{l.X1, l.Y1}, {l.X2, l.Y2}} {
			if v[0] < -1e-6 || v[0] > 100+1e-6 || v[1] < -1e-6 || v[1] > 100+1e-6 {
				t.Fatalf("line %d endpoint (%v, %v) escapes the square", i, v[0], v[1])
			}
		}
	}
}

func TestRadialRaysFromCenter(t *testing.T) {
	lines := Radial(square(100), 10, 0)
	if len(lines) != 36 {
		t.Fatalf("got %d rays, want 36", len(lines))
	}
	for i, l := range lines {
		if math.Abs(l.X1-50) > 1e-6 || math.Abs(l.Y1-50) > 1e-6 {
			t.Errorf("ray %d does not start at the center: (%v, %v)", i, l.X1, l.Y1)
		}
	}
}

func TestAngleRotatesDeterministicPatterns(t *testing.T) {
	p := square(100)
	a := Lines(p, 10, 0)
	b := Lines(p, 10, 90)
	if cmp.Equal(a, b) {
		t.Error("0 and 90 degree fills are identical")
	}
}
