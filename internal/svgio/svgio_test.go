package svgio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"plotfill/internal/chain"
	"plotfill/internal/geom"
)

func parse(t *testing.T, svg string) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(svg))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc
}

func TestParseRect(t *testing.T) {
	doc := parse(t, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
		<rect x="10" y="10" width="80" height="80"/>
	</svg>`)

	if doc.ViewBox != "0 0 100 100" {
		t.Errorf("viewBox = %q", doc.ViewBox)
	}
	if len(doc.Polygons) != 1 {
		t.Fatalf("got %d polygons, want 1", len(doc.Polygons))
	}
	want := []geom.Point{
		geom.Pt(10, 10), geom.Pt(90, 10), geom.Pt(90, 90), geom.Pt(10, 90),
	}
	if diff := cmp.Diff(want, doc.Polygons[0].Outer); diff != "" {
		t.Errorf("outer ring mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePolygonElement(t *testing.T) {
	doc := parse(t, `<svg xmlns="http://www.w3.org/2000/svg">
		<polygon points="10,10 90,10 90,90 10,90"/>
	</svg>`)
	if len(doc.Polygons) != 1 || len(doc.Polygons[0].Outer) != 4 {
		t.Fatalf("polygons = %+v", doc.Polygons)
	}
}

func TestParsePathAbsoluteAndRelative(t *testing.T) {
	doc := parse(t, `<svg xmlns="http://www.w3.org/2000/svg">
		<path d="M 0 0 L 100 0 l 0 100 H 0 Z"/>
	</svg>`)
	if len(doc.Polygons) != 1 {
		t.Fatalf("got %d polygons, want 1", len(doc.Polygons))
	}
	want := []geom.Point{
		geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100), geom.Pt(0, 100),
	}
	if diff := cmp.Diff(want, doc.Polygons[0].Outer); diff != "" {
		t.Errorf("ring mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePathHoleResolution(t *testing.T) {
	// Outer ring counter-clockwise, inner ring clockwise and fully
	// contained: the inner subpath becomes a hole.
	doc := parse(t, `<svg xmlns="http://www.w3.org/2000/svg">
		<path d="M 0 0 L 100 0 L 100 100 L 0 100 Z M 40 40 L 40 60 L 60 60 L 60 40 Z"/>
	</svg>`)
	if len(doc.Polygons) != 1 {
		t.Fatalf("got %d polygons, want 1", len(doc.Polygons))
	}
	p := doc.Polygons[0]
	if len(p.Holes) != 1 {
		t.Fatalf("got %d holes, want 1", len(p.Holes))
	}
	if len(p.Holes[0]) != 4 {
		t.Errorf("hole has %d points, want 4", len(p.Holes[0]))
	}
}

func TestParsePathDisjointSubpathsStaySeparate(t *testing.T) {
	// Same winding, no containment: two polygons.
	doc := parse(t, `<svg xmlns="http://www.w3.org/2000/svg">
		<path d="M 0 0 L 10 0 L 10 10 L 0 10 Z M 50 50 L 60 50 L 60 60 L 50 60 Z"/>
	</svg>`)
	if len(doc.Polygons) != 2 {
		t.Fatalf("got %d polygons, want 2", len(doc.Polygons))
	}
}

func TestParseCurvesFlattenToEndpoints(t *testing.T) {
	doc := parse(t, `<svg xmlns="http://www.w3.org/2000/svg">
		<path d="M 0 0 C 10 10 20 10 30 0 L 30 30 Q 15 40 0 30 Z"/>
	</svg>`)
	want := []geom.Point{
		geom.Pt(0, 0), geom.Pt(30, 0), geom.Pt(30, 30), geom.Pt(0, 30),
	}
	if diff := cmp.Diff(want, doc.Polygons[0].Outer); diff != "" {
		t.Errorf("ring mismatch (-want +got):\n%s", diff)
	}
}

func TestParseGroupAndDataAttributes(t *testing.T) {
	doc := parse(t, `<svg xmlns="http://www.w3.org/2000/svg">
		<g id="water" data-pattern="wiggle" data-color="#0288D1">
			<rect id="lake" x="0" y="0" width="50" height="50"/>
			<rect x="60" y="0" width="30" height="30" data-pattern="spiral" data-spacing="4.5" data-angle="30"/>
		</g>
	</svg>`)
	if len(doc.Polygons) != 2 {
		t.Fatalf("got %d polygons, want 2", len(doc.Polygons))
	}

	lake := doc.Polygons[0]
	if lake.ID != "lake" || lake.GroupID != "water" {
		t.Errorf("lake metadata: id=%q group=%q", lake.ID, lake.GroupID)
	}
	if lake.DataPattern != "wiggle" || lake.DataColor != "#0288D1" {
		t.Errorf("lake inherited attrs: pattern=%q color=%q", lake.DataPattern, lake.DataColor)
	}

	second := doc.Polygons[1]
	if second.DataPattern != "spiral" {
		t.Errorf("element attr should win over group: %q", second.DataPattern)
	}
	if second.DataSpacing == nil || *second.DataSpacing != 4.5 {
		t.Errorf("data-spacing = %v", second.DataSpacing)
	}
	if second.DataAngle == nil || *second.DataAngle != 30 {
		t.Errorf("data-angle = %v", second.DataAngle)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	_, err := Parse(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`))
	if !errors.Is(err, ErrNoPolygons) {
		t.Errorf("err = %v, want ErrNoPolygons", err)
	}
}

func TestLinesSVG(t *testing.T) {
	out := LinesSVG([]geom.Line{geom.Ln(0, 0, 10, 10)}, "0 0 100 100")
	for _, want := range []string{
		`viewBox="0 0 100 100"`,
		`<line x1="0.00" y1="0.00" x2="10.00" y2="10.00"/>`,
		`stroke="black"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestChainsSVG(t *testing.T) {
	chains := []chain.Chain{
		{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(20, 0)},
		{geom.Pt(5, 5), geom.Pt(6, 6)},
	}
	out := ChainsSVG(chains, "")
	if !strings.Contains(out, `<polyline points="0.00,0.00 10.00,0.00 20.00,0.00"/>`) {
		t.Errorf("missing polyline:\n%s", out)
	}
	// Two-point chains stay plain lines.
	if !strings.Contains(out, `<line x1="5.00"`) {
		t.Errorf("missing line for 2-point chain:\n%s", out)
	}
	if !strings.Contains(out, DefaultViewBox) {
		t.Errorf("missing default viewBox:\n%s", out)
	}
}

func TestGroupedSVG(t *testing.T) {
	groups := []StyledGroup{
		{GroupID: "water", Color: "#0288D1", Chains: []chain.Chain{
			{geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 0)},
		}},
		{GroupID: "land", Chains: []chain.Chain{
			{geom.Pt(3, 3), geom.Pt(4, 4)},
		}},
	}
	out := GroupedSVG(groups, "0 0 10 10")
	for _, want := range []string{
		`<g id="water" stroke="#0288D1"`,
		`<g id="land" stroke="#000000"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestOutputRoundTripsThroughParser(t *testing.T) {
	out := LinesSVG([]geom.Line{geom.Ln(0, 0, 10, 0)}, "0 0 20 20")
	// Lines are not polygons, so the parser reports no shapes, but the
	// XML itself must be well formed.
	_, err := Parse(strings.NewReader(out))
	if !errors.Is(err, ErrNoPolygons) {
		t.Errorf("err = %v, want ErrNoPolygons", err)
	}
}

func TestLoadFileByExtension(t *testing.T) {
	dir := t.TempDir()

	svgPath := filepath.Join(dir, "in.svg")
	if err := os.WriteFile(svgPath, []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 50 50"><rect x="0" y="0" width="50" height="50"/></svg>`), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := LoadFile(svgPath)
	if err != nil {
		t.Fatalf("LoadFile svg: %v", err)
	}
	if len(doc.Polygons) != 1 || doc.ViewBox != "0 0 50 50" {
		t.Errorf("svg load: polys=%d viewBox=%q", len(doc.Polygons), doc.ViewBox)
	}

	wktPath := filepath.Join(dir, "in.wkt")
	if err := os.WriteFile(wktPath, []byte("POLYGON((0 0, 10 0, 10 10, 0 10, 0 0))"), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err = LoadFile(wktPath)
	if err != nil {
		t.Fatalf("LoadFile wkt: %v", err)
	}
	if len(doc.Polygons) != 1 || doc.ViewBox == "" {
		t.Errorf("wkt load: polys=%d viewBox=%q", len(doc.Polygons), doc.ViewBox)
	}

	if _, err := LoadFile(filepath.Join(dir, "in.csv")); err == nil {
		t.Error("unsupported extension accepted")
	}
}

func TestBoundsOf(t *testing.T) {
	polys := []*geom.Polygon{
		geom.NewPolygon([]geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10)}),
		geom.NewPolygon([]geom.Point{geom.Pt(50, 50), geom.Pt(60, 50), geom.Pt(60, 70)}),
	}
	box, ok := BoundsOf(polys)
	if !ok {
		t.Fatal("BoundsOf not ok")
	}
	if box.MinX != 0 || box.MinY != 0 || box.MaxX != 60 || box.MaxY != 70 {
		t.Errorf("bounds = %+v", box)
	}

	if _, ok := BoundsOf(nil); ok {
		t.Error("empty input reported bounds")
	}
}

func TestFitViewBoxEmpty(t *testing.T) {
	if got := FitViewBox(nil); got != DefaultViewBox {
		t.Errorf("FitViewBox(nil) = %q", got)
	}
}
