// Package svgio extracts polygons from SVG documents and serializes
// fill results back to SVG. Only the shape subset a plotter workflow
// needs is understood: rect, polygon, polyline, path and groups.
// Curves are flattened to their endpoints.
package svgio

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// ErrNoPolygons is returned when a document parses cleanly but holds
// no usable shapes.
var ErrNoPolygons = errors.New("no polygons found in SVG")

// Document is the parsed input: polygons in document order plus the
// viewBox for sizing the output.
type Document struct {
	Polygons []*geom.Polygon
	ViewBox  string
}

type groupAttrs struct {
	id          string
	dataPattern string
	dataColor   string
}

// Parse reads an SVG document and extracts its shapes as polygons.
// Subpaths of a single path element with opposite winding that are
// fully contained in an outer subpath become hole rings.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	doc := &Document{}
	var groups []groupAttrs

	// Inner groups override outer ones attribute by attribute.
	currentGroup := func() groupAttrs {
		var g groupAttrs
		for _, entry := range groups {
			if entry.id != "" {
				g.id = entry.id
			}
			if entry.dataPattern != "" {
				g.dataPattern = entry.dataPattern
			}
			if entry.dataColor != "" {
				g.dataColor = entry.dataColor
			}
		}
		return g
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse SVG: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "svg":
				if v := attr(t, "viewBox"); v != "" {
					doc.ViewBox = v
				}
			case "g":
				groups = append(groups, groupAttrs{
					id:          attr(t, "id"),
					dataPattern: attr(t, "data-pattern"),
					dataColor:   attr(t, "data-color"),
				})
			case "rect":
				if p := rectPolygon(t); p != nil {
					applyMetadata(p, t, currentGroup())
					doc.Polygons = append(doc.Polygons, p)
				}
			case "polygon", "polyline":
				if ring := parsePoints(attr(t, "points")); len(ring) >= 3 {
					p := geom.NewPolygon(ring)
					applyMetadata(p, t, currentGroup())
					doc.Polygons = append(doc.Polygons, p)
				}
			case "path":
				for _, p := range pathPolygons(attr(t, "d")) {
					applyMetadata(p, t, currentGroup())
					doc.Polygons = append(doc.Polygons, p)
				}
			}
		case xml.EndElement:
			if t.Name.Local == "g" && len(groups) > 0 {
				groups = groups[:len(groups)-1]
			}
		}
	}

	if len(doc.Polygons) == 0 {
		return nil, ErrNoPolygons
	}
	return doc, nil
}

func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func applyMetadata(p *geom.Polygon, el xml.StartElement, g groupAttrs) {
	p.ID = attr(el, "id")
	p.GroupID = g.id

	p.DataPattern = attr(el, "data-pattern")
	if p.DataPattern == "" {
		p.DataPattern = g.dataPattern
	}
	p.DataColor = attr(el, "data-color")
	if p.DataColor == "" {
		p.DataColor = g.dataColor
	}
	p.StrokeColor = attr(el, "stroke")

	if v := attr(el, "data-spacing"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			p.DataSpacing = &f
		}
	}
	if v := attr(el, "data-angle"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			p.DataAngle = &f
		}
	}
}

func rectPolygon(el xml.StartElement) *geom.Polygon {
	x := parseFloat(attr(el, "x"))
	y := parseFloat(attr(el, "y"))
	w := parseFloat(attr(el, "width"))
	h := parseFloat(attr(el, "height"))
	if w <= 0 || h <= 0 {
		return nil
	}
	return geom.NewPolygon([]geom.Point{
		geom.Pt(x, y), geom.Pt(x+w, y), geom.Pt(x+w, y+h), geom.Pt(x, y+h),
	})
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

// parsePoints reads a points attribute: coordinates separated by
// whitespace or commas.
func parsePoints(s string) []geom.Point {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) < 2 {
		return nil
	}
	pts := make([]geom.Point, 0, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		x, err1 := strconv.ParseFloat(fields[i], 64)
		y, err2 := strconv.ParseFloat(fields[i+1], 64)
		if err1 != nil || err2 != nil {
			return nil
		}
		pts = append(pts, geom.Pt(x, y))
	}
	return pts
}

// pathPolygons flattens a path's subpaths to rings and resolves holes
// among them.
func pathPolygons(d string) []*geom.Polygon {
	rings := pathRings(d)

	var kept []*geom.Polygon
	used := make([]bool, len(rings))

	for i, outer := range rings {
		if used[i] || len(outer) < 3 {
			continue
		}
		p := geom.NewPolygon(outer)
		outerArea := geom.SignedAreaOf(outer)
		outerBox, _ := p.BoundingBox()

		for j, inner := range rings {
			if j == i || used[j] || len(inner) < 3 {
				continue
			}
			if geom.SignedAreaOf(inner)*outerArea >= 0 {
				continue
			}
			if ringContained(inner, outer, outerBox) {
				p.Holes = append(p.Holes, inner)
				used[j] = true
			}
		}
		used[i] = true
		kept = append(kept, p)
	}
	return kept
}

// ringContained checks every vertex of inner against outer, with a
// bounding-box rejection first.
func ringContained(inner, outer []geom.Point, outerBox geom.BBox) bool {
	for _, pt := range inner {
		if pt.X < outerBox.MinX || pt.X > outerBox.MaxX ||
			pt.Y < outerBox.MinY || pt.Y > outerBox.MaxY {
			return false
		}
	}
	for _, pt := range inner {
		if !clip.PointInRing(pt.X, pt.Y, outer) {
			return false
		}
	}
	return true
}

// pathRings walks the path data. Line commands keep their endpoints;
// curve commands are approximated by their final endpoint.
func pathRings(d string) [][]geom.Point {
	var rings [][]geom.Point
	var current []geom.Point
	var cx, cy float64
	var startX, startY float64

	flush := func() {
		if len(current) >= 3 {
			rings = append(rings, current)
		}
		current = nil
	}

	s := newPathScanner(d)
	cmd := byte(0)
	for {
		c, ok := s.command()
		if ok {
			cmd = c
		} else if s.done() {
			break
		}
		if cmd == 0 {
			break
		}

		rel := cmd >= 'a' && cmd <= 'z'
		switch cmd | 0x20 {
		case 'm':
			x, y, ok := s.pair()
			if !ok {
				flush()
				return rings
			}
			if rel {
				x += cx
				y += cy
			}
			flush()
			cx, cy = x, y
			startX, startY = x, y
			current = append(current, geom.Pt(x, y))
			// Subsequent implicit pairs are LineTo.
			if cmd == 'm' {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'l':
			x, y, ok := s.pair()
			if !ok {
				flush()
				return rings
			}
			if rel {
				x += cx
				y += cy
			}
			cx, cy = x, y
			current = append(current, geom.Pt(x, y))
		case 'h':
			x, ok := s.number()
			if !ok {
				flush()
				return rings
			}
			if rel {
				x += cx
			}
			cx = x
			current = append(current, geom.Pt(cx, cy))
		case 'v':
			y, ok := s.number()
			if !ok {
				flush()
				return rings
			}
			if rel {
				y += cy
			}
			cy = y
			current = append(current, geom.Pt(cx, cy))
		case 'c', 's', 'q', 't', 'a':
			var skip int
			switch cmd | 0x20 {
			case 'c':
				skip = 4
			case 's', 'q':
				skip = 2
			case 't':
				skip = 0
			case 'a':
				skip = 5
			}
			for k := 0; k < skip; k++ {
				if _, ok := s.number(); !ok {
					flush()
					return rings
				}
			}
			x, y, ok := s.pair()
			if !ok {
				flush()
				return rings
			}
			if rel {
				x += cx
				y += cy
			}
			cx, cy = x, y
			current = append(current, geom.Pt(x, y))
		case 'z':
			cx, cy = startX, startY
			flush()
			cmd = 0
		default:
			flush()
			return rings
		}
	}
	flush()
	return rings
}

type pathScanner struct {
	s   string
	pos int
}

func newPathScanner(s string) *pathScanner {
	return &pathScanner{s: s}
}

func (p *pathScanner) skipSeparators() {
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r' {
			p.pos++
			continue
		}
		break
	}
}

func (p *pathScanner) done() bool {
	p.skipSeparators()
	return p.pos >= len(p.s)
}

// command consumes a letter if one is next.
func (p *pathScanner) command() (byte, bool) {
	p.skipSeparators()
	if p.pos >= len(p.s) {
		return 0, false
	}
	c := p.s[p.pos]
	if (c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') && c != 'e' && c != 'E' {
		p.pos++
		return c, true
	}
	return 0, false
}

func (p *pathScanner) number() (float64, bool) {
	p.skipSeparators()
	start := p.pos
	if p.pos < len(p.s) && (p.s[p.pos] == '-' || p.s[p.pos] == '+') {
		p.pos++
	}
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if c >= '0' && c <= '9' || c == '.' {
			p.pos++
			continue
		}
		if (c == 'e' || c == 'E') && p.pos > start {
			p.pos++
			if p.pos < len(p.s) && (p.s[p.pos] == '-' || p.s[p.pos] == '+') {
				p.pos++
			}
			continue
		}
		break
	}
	if p.pos == start {
		return 0, false
	}
	f, err := strconv.ParseFloat(p.s[start:p.pos], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (p *pathScanner) pair() (float64, float64, bool) {
	x, ok := p.number()
	if !ok {
		return 0, 0, false
	}
	y, ok := p.number()
	if !ok {
		return 0, 0, false
	}
	return x, y, true
}
