package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseWKTPolygon(t *testing.T) {
	polys, err := ParseWKTPolygons("POLYGON((0 0, 10 0, 10 10, 0 10, 0 0))")
	if err != nil {
		t.Fatalf("ParseWKTPolygons: %v", err)
	}
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	want := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
	if diff := cmp.Diff(want, polys[0].Outer); diff != "" {
		t.Errorf("outer ring mismatch (-want +got):\n%s", diff)
	}
}

func TestParseWKTPolygonWithHole(t *testing.T) {
	polys, err := ParseWKTPolygons(
		"POLYGON((0 0, 100 0, 100 100, 0 100, 0 0), (40 40, 60 40, 60 60, 40 60, 40 40))")
	if err != nil {
		t.Fatalf("ParseWKTPolygons: %v", err)
	}
	if len(polys[0].Holes) != 1 {
		t.Fatalf("got %d holes, want 1", len(polys[0].Holes))
	}
	if len(polys[0].Holes[0]) != 4 {
		t.Errorf("hole has %d points, want 4", len(polys[0].Holes[0]))
	}
}

func TestParseWKTMultiPolygon(t *testing.T) {
	polys, err := ParseWKTPolygons(
		"MULTIPOLYGON(((0 0, 10 0, 10 10, 0 10, 0 0)), ((20 20, 30 20, 30 30, 20 30, 20 20)))")
	if err != nil {
		t.Fatalf("ParseWKTPolygons: %v", err)
	}
	if len(polys) != 2 {
		t.Fatalf("got %d polygons, want 2", len(polys))
	}
}

func TestParseWKTErrors(t *testing.T) {
	for _, bad := range []string{
		"",
		"POINT(1 2)",
		"POLYGON()",
		"POLYGON((0 0, 1 1))",
	} {
		if _, err := ParseWKTPolygons(bad); err == nil {
			t.Errorf("ParseWKTPolygons(%q) succeeded, want error", bad)
		}
	}
}

func TestDropClosingPoint(t *testing.T) {
	open := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}
	if got := dropClosingPoint(open); len(got) != 3 {
		t.Errorf("open ring changed: %v", got)
	}
	closed := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 0)}
	if got := dropClosingPoint(closed); len(got) != 3 {
		t.Errorf("closed ring not trimmed: %v", got)
	}
}
