package order

import (
	"math"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"plotfill/internal/geom"
)

func squareAt(x, y, size float64) *geom.Polygon {
	return geom.NewPolygon([]geom.Point{
		geom.Pt(x, y), geom.Pt(x+size, y),
		geom.Pt(x+size, y+size), geom.Pt(x, y+size),
	})
}

func TestCentroid(t *testing.T) {
	c := Centroid(squareAt(0, 0, 10))
	if math.Abs(c.X-5) > 0.001 || math.Abs(c.Y-5) > 0.001 {
		t.Errorf("centroid = %v, want (5, 5)", c)
	}

	if c := Centroid(geom.NewPolygon(nil)); c != (geom.Point{}) {
		t.Errorf("empty polygon centroid = %v, want origin", c)
	}
}

func TestTravelDistance(t *testing.T) {
	polygons := []*geom.Polygon{
		squareAt(0, 0, 10),
		squareAt(100, 100, 10),
	}
	// Centroids at (5,5) and (105,105): distance 100*sqrt(2).
	got := TravelDistance(polygons, []int{0, 1})
	want := 100 * math.Sqrt2
	if math.Abs(got-want) > 0.01 {
		t.Errorf("travel = %v, want %v", got, want)
	}

	if d := TravelDistance(polygons, []int{0}); d != 0 {
		t.Errorf("single polygon travel = %v, want 0", d)
	}
}

func TestNearestNeighborReducesTravel(t *testing.T) {
	// Document order zigzags across the page; nearest neighbor should
	// visit each side together.
	polygons := []*geom.Polygon{
		squareAt(0, 0, 10),
		squareAt(100, 0, 10),
		squareAt(10, 10, 10),
		squareAt(90, 10, 10),
	}

	docTravel := TravelDistance(polygons, Polygons(polygons, Document))
	nnTravel := TravelDistance(polygons, Polygons(polygons, Nearest))

	if nnTravel >= docTravel {
		t.Errorf("nearest travel %v not below document travel %v", nnTravel, docTravel)
	}
}

func TestNearestNeighborIsPermutation(t *testing.T) {
	polygons := make([]*geom.Polygon, 10)
	for i := range polygons {
		polygons[i] = squareAt(float64(i)*20, 0, 10)
	}

	got := NearestNeighbor(polygons)
	if len(got) != len(polygons) {
		t.Fatalf("order has %d entries, want %d", len(got), len(polygons))
	}
	sorted := append([]int(nil), got...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i {
			t.Fatalf("order is not a permutation: %v", got)
		}
	}
}

func TestNearestNeighborStartsNearOrigin(t *testing.T) {
	polygons := []*geom.Polygon{
		squareAt(200, 200, 10),
		squareAt(0, 0, 10),
		squareAt(100, 100, 10),
	}
	got := NearestNeighbor(polygons)
	want := []int{1, 2, 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestNearestNeighborTieBreaksLowIndex(t *testing.T) {
	// Two identical polygons equidistant from the first: the lower
	// index must win.
	polygons := []*geom.Polygon{
		squareAt(0, 0, 10),
		squareAt(50, 50, 10),
		squareAt(50, 50, 10),
	}
	got := NearestNeighbor(polygons)
	want := []int{0, 1, 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyAndSingle(t *testing.T) {
	if got := NearestNeighbor(nil); len(got) != 0 {
		t.Errorf("empty input: %v", got)
	}
	if got := NearestNeighbor([]*geom.Polygon{squareAt(0, 0, 10)}); len(got) != 1 || got[0] != 0 {
		t.Errorf("single input: %v", got)
	}
}

func TestStrategyParsing(t *testing.T) {
	cases := []struct {
		name string
		want Strategy
		ok   bool
	}{
		{"nearest", Nearest, true},
		{"nn", Nearest, true},
		{"nearest-neighbor", Nearest, true},
		{"document", Document, true},
		{"DOC", Document, true},
		{"original", Document, true},
		{"invalid", Document, false},
	}
	for _, tc := range cases {
		got, ok := FromName(tc.name)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("FromName(%q) = %v, %v; want %v, %v", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}
