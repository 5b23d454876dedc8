package tui

import (
	"strings"

	"plotfill/internal/geom"
)

// cellToPos converts a map cell coordinate back into document space
// using bbox, zoom, and pan. Document Y grows downward, matching SVG.
func (m Model) cellToPos(cx, cy, w, h int) (float64, float64, bool) {
	if !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := float64(cy-m.offsetY) / float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	px := m.bbox.MinX + nx*(m.bbox.MaxX-m.bbox.MinX)
	py := m.bbox.MinY + ny*(m.bbox.MaxY-m.bbox.MinY)
	return px, py, true
}

// renderPreview rasterizes the current fill and polygon outlines into
// a braille canvas of w x h cells.
func (m Model) renderPreview(w, h int) string {
	br := newBrailleBuf(w, h)

	if m.showFill {
		for _, l := range m.fill {
			x0, y0, ok0 := m.screenXYMicro(l.X1, l.Y1, w, h)
			x1, y1, ok1 := m.screenXYMicro(l.X2, l.Y2, w, h)
			if !ok0 || !ok1 {
				continue
			}
			br.drawLineMicro(x0, y0, x1, y1)
		}
	}

	if m.showOutline {
		for _, poly := range m.polygons {
			m.drawRing(br, poly.Outer, w, h)
			for _, hole := range poly.Holes {
				m.drawRing(br, hole, w, h)
			}
		}
	}

	lines := br.toLines()
	return strings.Join(lines, "\n")
}

func (m Model) drawRing(br *brailleBuf, ring []geom.Point, w, h int) {
	if len(ring) < 2 {
		return
	}
	for i := range ring {
		a := ring[i]
		b := ring[(i+1)%len(ring)]
		x0, y0, ok0 := m.screenXYMicro(a.X, a.Y, w, h)
		x1, y1, ok1 := m.screenXYMicro(b.X, b.Y, w, h)
		if !ok0 || !ok1 {
			continue
		}
		br.drawLineMicro(x0, y0, x1, y1)
	}
}

// screenXYMicro maps a document point into the 2x4 microgrid per cell
// used by braille rendering.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int, bool) {
	if !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	nx := (x - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (y - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	// Apply zoom around center (0.5, 0.5)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int(zy*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}
