package svgio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"plotfill/internal/geom"
)

// LoadFile reads polygons from a file, picking the parser by extension.
// Supported: .svg, .wkt, .geojson, .json.
func LoadFile(path string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".svg":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return Parse(f)
	case ".wkt":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		polys, err := geom.ParseWKTPolygons(string(data))
		if err != nil {
			return nil, err
		}
		return &Document{Polygons: polys, ViewBox: FitViewBox(polys)}, nil
	case ".geojson", ".json":
		polys, err := geom.LoadGeoJSON(path)
		if err != nil {
			return nil, err
		}
		return &Document{Polygons: polys, ViewBox: FitViewBox(polys)}, nil
	}
	return nil, fmt.Errorf("unsupported input format %q", ext)
}

// FitViewBox derives a viewBox covering all polygons with a small
// margin, for inputs that carry no viewBox of their own.
func FitViewBox(polys []*geom.Polygon) string {
	box, ok := BoundsOf(polys)
	if !ok {
		return DefaultViewBox
	}
	margin := box.Diagonal() * 0.02
	return fmt.Sprintf("%.2f %.2f %.2f %.2f",
		box.MinX-margin, box.MinY-margin,
		box.Width()+2*margin, box.Height()+2*margin)
}

// BoundsOf unions the bounding boxes of all polygons. ok is false when
// no polygon has an outer ring.
func BoundsOf(polys []*geom.Polygon) (geom.BBox, bool) {
	var box geom.BBox
	found := false
	for _, p := range polys {
		b, ok := p.BoundingBox()
		if !ok {
			continue
		}
		if !found {
			box = b
			found = true
			continue
		}
		if b.MinX < box.MinX {
			box.MinX = b.MinX
		}
		if b.MinY < box.MinY {
			box.MinY = b.MinY
		}
		if b.MaxX > box.MaxX {
			box.MaxX = b.MaxX
		}
		if b.MaxY > box.MaxY {
			box.MaxY = b.MaxY
		}
	}
	return box, found
}
