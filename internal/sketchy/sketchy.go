// Package sketchy applies a hand-drawn look to straight lines,
// following the RoughJS recipe: jittered endpoints, a bowed midpoint
// split, and an optional second stroke.
package sketchy

import (
	"math"

	"plotfill/internal/geom"
	"plotfill/internal/rng"
)

// Config controls the hand-drawn effect.
type Config struct {
	// Roughness scales endpoint jitter. 0 is smooth.
	Roughness float64
	// Bowing is the maximum perpendicular midpoint offset.
	Bowing float64
	// DoubleStroke draws each line twice with a lighter offset.
	DoubleStroke bool
	// Seed makes the jitter reproducible.
	Seed uint64
}

// DefaultConfig matches the RoughJS defaults.
func DefaultConfig() Config {
	return Config{Roughness: 1.0, Bowing: 1.0, DoubleStroke: true}
}

// PolygonEdges returns every edge of the outer ring and hole rings as
// segments, for sketching shape outlines.
func PolygonEdges(p *geom.Polygon) []geom.Line {
	var lines []geom.Line
	appendRing := func(ring []geom.Point) {
		if len(ring) < 2 {
			return
		}
		for i := range ring {
			a := ring[i]
			b := ring[(i+1)%len(ring)]
			lines = append(lines, geom.Ln(a.X, a.Y, b.X, b.Y))
		}
	}
	appendRing(p.Outer)
	for _, hole := range p.Holes {
		appendRing(hole)
	}
	return lines
}

// Lines sketchifies every input line. Each line becomes two segments
// split at the bowed midpoint, four with double stroke.
func Lines(lines []geom.Line, cfg Config) []geom.Line {
	r := rng.New(cfg.Seed)
	result := make([]geom.Line, 0, len(lines)*4)
	for _, l := range lines {
		result = append(result, line(l, cfg, r)...)
	}
	return result
}

func line(l geom.Line, cfg Config, r *rng.Rng) []geom.Line {
	dx := l.X2 - l.X1
	dy := l.Y2 - l.Y1
	length := math.Sqrt(dx*dx + dy*dy)
	if length < 0.001 {
		return nil
	}

	// Longer lines get proportionally less jitter.
	dampen := 1 / (length/50 + 1)
	roughness := cfg.Roughness * dampen

	perpX := -dy / length
	perpY := dx / length

	var result []geom.Line
	stroke := func(jitterScale, bowScale float64) {
		off1 := roughness * r.Signed() * jitterScale
		off2 := roughness * r.Signed() * jitterScale
		bow := cfg.Bowing * r.Signed() * dampen * bowScale

		x1 := l.X1 + off1
		y1 := l.Y1 + off1
		x2 := l.X2 + off2
		y2 := l.Y2 + off2

		midX := (x1+x2)/2 + perpX*bow
		midY := (y1+y2)/2 + perpY*bow

		result = append(result,
			geom.Ln(x1, y1, midX, midY),
			geom.Ln(midX, midY, x2, y2),
		)
	}

	stroke(1, 1)
	if cfg.DoubleStroke {
		stroke(0.5, 0.7)
	}
	return result
}
