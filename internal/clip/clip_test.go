package clip

import (
	"testing"

	"plotfill/internal/geom"
)

func square(size float64) *geom.Polygon {
	return geom.NewPolygon([]geom.Point{
		geom.Pt(0, 0), geom.Pt(size, 0), geom.Pt(size, size), geom.Pt(0, size),
	})
}

func holedSquare() *geom.Polygon {
	return geom.NewPolygonWithHoles(
		[]geom.Point{
			geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100), geom.Pt(0, 100),
		},
		[][]geom.Point{{
			geom.Pt(40, 40), geom.Pt(60, 40), geom.Pt(60, 60), geom.Pt(40, 60),
		}},
	)
}

func TestPointInRing(t *testing.T) {
	ring := square(10).Outer
	cases := []struct {
		x, y float64
		want bool
	}{
		{5, 5, true},
		{-1, 5, false},
		{11, 5, false},
		{5, -1, false},
		{5, 11, false},
	}
	for _, c := range cases {
		if got := PointInRing(c.x, c.y, ring); got != c.want {
			t.Errorf("PointInRing(%v, %v) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestPointInBodyRespectsHoles(t *testing.T) {
	p := holedSquare()
	if !PointInBody(20, 20, p) {
		t.Error("(20,20) should be inside the body")
	}
	if PointInBody(50, 50, p) {
		t.Error("(50,50) is inside the hole, not the body")
	}
	if PointInBody(150, 50, p) {
		t.Error("(150,50) is outside the outer ring")
	}
}

func TestSegmentIntersection(t *testing.T) {
	ix, iy, tt, ok := SegmentIntersection(0, 0, 10, 10, 0, 10, 10, 0)
	if !ok {
		t.Fatal("crossing diagonals reported no intersection")
	}
	if ix != 5 || iy != 5 {
		t.Errorf("intersection = (%v, %v), want (5, 5)", ix, iy)
	}
	if tt < 0.49 || tt > 0.51 {
		t.Errorf("t = %v, want 0.5", tt)
	}

	if _, _, _, ok := SegmentIntersection(0, 0, 10, 0, 0, 5, 10, 5); ok {
		t.Error("parallel segments reported an intersection")
	}
	if _, _, _, ok := SegmentIntersection(0, 0, 1, 0, 5, -1, 5, 1); ok {
		t.Error("disjoint segments reported an intersection")
	}
}

func TestClipLineInside(t *testing.T) {
	got := ClipLine(geom.Ln(2, 5, 8, 5), square(10))
	if len(got) != 1 {
		t.Fatalf("got %d segments, want 1", len(got))
	}
	if got[0] != geom.Ln(2, 5, 8, 5) {
		t.Errorf("inside line altered: %+v", got[0])
	}
}

func TestClipLineCrossing(t *testing.T) {
	got := ClipLine(geom.Ln(-5, 5, 15, 5), square(10))
	if len(got) != 1 {
		t.Fatalf("got %d segments, want 1", len(got))
	}
	seg := got[0]
	if seg.X1 > 0.01 || seg.X2 < 9.99 {
		t.Errorf("clipped span = %+v, want x in [0,10]", seg)
	}
}

func TestClipLineOutside(t *testing.T) {
	if got := ClipLine(geom.Ln(-5, 20, 15, 20), square(10)); len(got) != 0 {
		t.Errorf("outside line produced %d segments", len(got))
	}
}

func TestClipLineSplitsAroundHole(t *testing.T) {
	got := ClipLine(geom.Ln(0, 50, 100, 50), holedSquare())
	if len(got) != 2 {
		t.Fatalf("got %d segments, want 2", len(got))
	}
	for _, seg := range got {
		if seg.Length() == 0 {
			t.Errorf("zero-length segment %+v", seg)
		}
		mid := seg.Midpoint()
		if mid.X > 40 && mid.X < 60 {
			t.Errorf("segment %+v crosses the hole", seg)
		}
	}
}

func TestClipLineToOuterKeepsBoundaryRow(t *testing.T) {
	p := square(10)
	for _, y := range []float64{0, 10} {
		got := ClipLineToOuter(geom.Ln(-5, y, 15, y), p)
		if len(got) != 1 {
			t.Fatalf("row y=%v: got %d segments, want 1", y, len(got))
		}
		seg := got[0]
		if minf(seg.X1, seg.X2) > 0.01 || maxf(seg.X1, seg.X2) < 9.99 {
			t.Errorf("row y=%v clipped to %+v, want x in [0,10]", y, seg)
		}
	}
}

func TestClipLineEndpointOnBoundary(t *testing.T) {
	got := ClipLine(geom.Ln(0, 5, 10, 5), square(10))
	if len(got) != 1 {
		t.Fatalf("got %d segments, want 1", len(got))
	}
	if got[0].Length() == 0 {
		t.Errorf("zero-length segment %+v", got[0])
	}
}

func TestPointOnBoundary(t *testing.T) {
	p := holedSquare()
	cases := []struct {
		x, y float64
		want bool
	}{
		{50, 100, true},
		{0, 50, true},
		{50, 40, true},
		{50, 50, false},
		{50, 99, false},
	}
	for _, c := range cases {
		if got := PointOnBoundary(c.x, c.y, p); got != c.want {
			t.Errorf("PointOnBoundary(%v, %v) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestClipLinesDegenerate(t *testing.T) {
	if got := ClipLines([]geom.Line{geom.Ln(0, 0, 1, 1)}, geom.NewPolygon(nil)); len(got) != 0 {
		t.Errorf("empty polygon produced %d segments", len(got))
	}
}
