package sketchy

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"plotfill/internal/geom"
)

func TestDoubleStrokeQuadruplesSegments(t *testing.T) {
	lines := []geom.Line{
		geom.Ln(0, 0, 100, 0),
		geom.Ln(100, 0, 100, 100),
	}
	cfg := DefaultConfig()
	cfg.Seed = 42

	got := Lines(lines, cfg)
	if len(got) != 8 {
		t.Errorf("got %d segments, want 8", len(got))
	}
}

func TestSingleStrokeSplitsInTwo(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DoubleStroke = false
	cfg.Seed = 42

	got := Lines([]geom.Line{geom.Ln(0, 0, 100, 0)}, cfg)
	if len(got) != 2 {
		t.Errorf("got %d segments, want 2", len(got))
	}
}

func TestSeedDeterminism(t *testing.T) {
	lines := []geom.Line{geom.Ln(0, 0, 100, 100)}
	cfg := DefaultConfig()
	cfg.Seed = 12345

	a := Lines(lines, cfg)
	b := Lines(lines, cfg)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed, different output (-first +second):\n%s", diff)
	}

	cfg.Seed = 54321
	c := Lines(lines, cfg)
	if cmp.Equal(a, c) {
		t.Error("different seeds produced identical output")
	}
}

func TestZeroLengthLinesDropped(t *testing.T) {
	got := Lines([]geom.Line{geom.Ln(5, 5, 5, 5)}, DefaultConfig())
	if len(got) != 0 {
		t.Errorf("got %d segments for a zero-length line, want 0", len(got))
	}
}

func TestRoughnessScalesDeviation(t *testing.T) {
	lines := []geom.Line{geom.Ln(0, 0, 100, 0)}

	smooth := Config{Roughness: 0, Bowing: 0, Seed: 42}
	rough := Config{Roughness: 5, Bowing: 5, Seed: 42}

	deviation := func(segs []geom.Line) float64 {
		total := 0.0
		for _, s := range segs {
			total += math.Abs(s.X1) + math.Abs(s.Y1)
		}
		return total
	}

	if deviation(Lines(lines, rough)) <= deviation(Lines(lines, smooth)) {
		t.Error("higher roughness did not increase endpoint deviation")
	}
}

func TestPolygonEdges(t *testing.T) {
	p := geom.NewPolygonWithHoles(
		[]geom.Point{
			geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100), geom.Pt(0, 100),
		},
		[][]geom.Point{{
			geom.Pt(40, 40), geom.Pt(60, 40), geom.Pt(60, 60),
		}},
	)
	got := PolygonEdges(p)
	if len(got) != 7 {
		t.Errorf("got %d edges, want 7 (4 outer + 3 hole)", len(got))
	}
}
