package geom

import (
	"errors"
	"strconv"
	"strings"
)

// ParseWKTPolygons parses a subset of WKT into polygons.
// Supported: POLYGON((ring),(hole)...), MULTIPOLYGON(((ring),...),...).
// The first ring of each polygon is the outer boundary, subsequent rings
// are holes.
func ParseWKTPolygons(wkt string) ([]*Polygon, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)

	parseTuples := func(block string) []Point {
		var out []Point
		for _, tup := range strings.Split(block, ",") {
			parts := strings.Fields(strings.TrimSpace(tup))
			if len(parts) < 2 {
				continue
			}
			x, e1 := strconv.ParseFloat(parts[0], 64)
			y, e2 := strconv.ParseFloat(parts[1], 64)
			if e1 != nil || e2 != nil {
				continue
			}
			out = append(out, Point{x, y})
		}
		return out
	}
	parseRings := func(body string) *Polygon {
		norm := strings.ReplaceAll(body, "), (", "),(")
		norm = strings.ReplaceAll(norm, ") , (", "),(")
		var poly Polygon
		for i, rp := range strings.Split(norm, "),(") {
			rp = strings.Trim(rp, "() \t\n")
			pts := dropClosingPoint(parseTuples(rp))
			if len(pts) < 3 {
				continue
			}
			if i == 0 {
				poly.Outer = pts
			} else {
				poly.Holes = append(poly.Holes, pts)
			}
		}
		if len(poly.Outer) < 3 {
			return nil
		}
		return &poly
	}

	switch {
	case strings.HasPrefix(up, "MULTIPOLYGON"):
		i := strings.Index(s, "(((")
		j := strings.LastIndex(s, ")))")
		if i < 0 || j <= i {
			return nil, errors.New("wkt multipolygon: invalid")
		}
		body := s[i+2 : j+1]
		norm := strings.ReplaceAll(body, ")), ((", ")),((")
		var polys []*Polygon
		for _, part := range strings.Split(norm, ")),((") {
			if p := parseRings(strings.Trim(part, "() \t\n")); p != nil {
				polys = append(polys, p)
			}
		}
		if len(polys) == 0 {
			return nil, errors.New("wkt multipolygon: no valid rings")
		}
		return polys, nil
	case strings.HasPrefix(up, "POLYGON"):
		i := strings.Index(s, "((")
		j := strings.LastIndex(s, "))")
		if i < 0 || j <= i {
			return nil, errors.New("wkt polygon: invalid")
		}
		p := parseRings(s[i+1 : j+1])
		if p == nil {
			return nil, errors.New("wkt polygon: no valid outer ring")
		}
		return []*Polygon{p}, nil
	}
	return nil, errors.New("unsupported wkt type (want POLYGON or MULTIPOLYGON)")
}

// WKT rings repeat the first vertex at the end; our rings are
// implicitly closed.
func dropClosingPoint(pts []Point) []Point {
	if n := len(pts); n >= 2 && pts[0] == pts[n-1] {
		return pts[:n-1]
	}
	return pts
}
