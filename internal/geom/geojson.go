package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ParseGeoJSONPolygons extracts Polygon and MultiPolygon geometries from a
// GeoJSON document. Ring 0 of each polygon is the outer boundary, the rest
// become holes. Feature ids are carried into Polygon.ID when present.
func ParseGeoJSONPolygons(data []byte) ([]*Polygon, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	var polys []*Polygon

	parsePoint := func(v any) (Point, bool) {
		a, ok := v.([]any)
		if !ok || len(a) < 2 {
			return Point{}, false
		}
		x, xok := a[0].(float64)
		y, yok := a[1].(float64)
		if !xok || !yok {
			return Point{}, false
		}
		return Point{x, y}, true
	}
	parseRing := func(v any) []Point {
		arr, ok := v.([]any)
		if !ok {
			return nil
		}
		var pts []Point
		for _, el := range arr {
			if pt, ok := parsePoint(el); ok {
				pts = append(pts, pt)
			}
		}
		return dropClosingPoint(pts)
	}
	parsePolygon := func(v any, id string) *Polygon {
		arr, ok := v.([]any)
		if !ok {
			return nil
		}
		var poly Polygon
		poly.ID = id
		for i, ring := range arr {
			pts := parseRing(ring)
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

	var walkGeom func(g map[string]any, id string)
	walkGeom = func(g map[string]any, id string) {
		gt, _ := g["type"].(string)
		switch gt {
		case "Polygon":
			if p := parsePolygon(g["coordinates"], id); p != nil {
				polys = append(polys, p)
			}
		case "MultiPolygon":
			if arr, ok := g["coordinates"].([]any); ok {
				for _, el := range arr {
					if p := parsePolygon(el, id); p != nil {
						polys = append(polys, p)
					}
				}
			}
		case "GeometryCollection":
			if arr, ok := g["geometries"].([]any); ok {
				for _, el := range arr {
					if gm, ok := el.(map[string]any); ok {
						walkGeom(gm, id)
					}
				}
			}
		}
	}

	featureID := func(f map[string]any) string {
		if id, ok := f["id"].(string); ok {
			return id
		}
		if id, ok := f["id"].(float64); ok {
			return fmt.Sprintf("%g", id)
		}
		if props, ok := f["properties"].(map[string]any); ok {
			if id, ok := props["id"].(string); ok {
				return id
			}
			if name, ok := props["name"].(string); ok {
				return name
			}
		}
		return ""
	}

	switch t, _ := raw["type"].(string); t {
	case "FeatureCollection":
		feats, _ := raw["features"].([]any)
		for _, el := range feats {
			f, ok := el.(map[string]any)
			if !ok {
				continue
			}
			g, ok := f["geometry"].(map[string]any)
			if !ok {
				continue
			}
			walkGeom(g, featureID(f))
		}
	case "Feature":
		if g, ok := raw["geometry"].(map[string]any); ok {
			walkGeom(g, featureID(raw))
		}
	default:
		walkGeom(raw, "")
	}

	if len(polys) == 0 {
		return nil, errors.New("geojson: no polygons found")
	}
	return polys, nil
}

// LoadGeoJSON reads a GeoJSON file and extracts its polygons.
func LoadGeoJSON(path string) ([]*Polygon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseGeoJSONPolygons(data)
}
