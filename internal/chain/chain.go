// Package chain joins line segments into polylines where endpoints
// meet, cutting the pen lifts a plotter has to make.
package chain

import (
	"math"

	"plotfill/internal/geom"
)

// Chain is a polyline of connected points.
type Chain []geom.Point

// Config controls endpoint matching.
type Config struct {
	// Tolerance is the maximum endpoint distance still treated as a
	// join. 0.1 is sub-pixel at typical SVG scales.
	Tolerance float64
}

// DefaultConfig returns the default matching tolerance.
func DefaultConfig() Config {
	return Config{Tolerance: 0.1}
}

type cell struct {
	x, y int64
}

type endpoint struct {
	line    int
	isStart bool
}

// Lines chains segments into polylines. Each chain is grown from its
// seed segment, forward by matching unused starts against the chain
// end, then backward by matching unused ends against the chain start.
// Endpoints are looked up through a spatial hash with cells the size
// of the tolerance, so the average case is linear in the segment count.
func Lines(lines []geom.Line, cfg Config) []Chain {
	if len(lines) == 0 {
		return nil
	}

	gridSize := math.Max(cfg.Tolerance, 0.001)
	toleranceSq := cfg.Tolerance * cfg.Tolerance

	grid := make(map[cell][]endpoint, len(lines)*2)
	for i, l := range lines {
		grid[toCell(l.X1, l.Y1, gridSize)] = append(grid[toCell(l.X1, l.Y1, gridSize)], endpoint{i, true})
		grid[toCell(l.X2, l.Y2, gridSize)] = append(grid[toCell(l.X2, l.Y2, gridSize)], endpoint{i, false})
	}

	used := make([]bool, len(lines))

	find := func(x, y float64, matchStart bool) (int, bool) {
		c := toCell(x, y, gridSize)
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for _, ep := range grid[cell{c.x + dx, c.y + dy}] {
					if used[ep.line] || ep.isStart != matchStart {
						continue
					}
					l := lines[ep.line]
					px, py := l.X1, l.Y1
					if !matchStart {
						px, py = l.X2, l.Y2
					}
					ddx, ddy := px-x, py-y
					if ddx*ddx+ddy*ddy <= toleranceSq {
						return ep.line, true
					}
				}
			}
		}
		return 0, false
	}

	var chains []Chain
	for i, l := range lines {
		if used[i] {
			continue
		}
		used[i] = true
		c := Chain{l.Start(), l.End()}

		for {
			end := c[len(c)-1]
			next, ok := find(end.X, end.Y, true)
			if !ok {
				break
			}
			used[next] = true
			c = append(c, lines[next].End())
		}

		for {
			start := c[0]
			prev, ok := find(start.X, start.Y, false)
			if !ok {
				break
			}
			used[prev] = true
			c = append(Chain{lines[prev].Start()}, c...)
		}

		chains = append(chains, c)
	}
	return chains
}

func toCell(x, y, gridSize float64) cell {
	return cell{int64(math.Floor(x / gridSize)), int64(math.Floor(y / gridSize))}
}

// ToLines flattens chains back into individual segments.
func ToLines(chains []Chain) []geom.Line {
	var lines []geom.Line
	for _, c := range chains {
		for i := 1; i < len(c); i++ {
			lines = append(lines, geom.Ln(c[i-1].X, c[i-1].Y, c[i].X, c[i].Y))
		}
	}
	return lines
}

// Stats summarizes a chaining run.
type Stats struct {
	InputLines     int
	OutputChains   int
	AvgChainLength float64
	MaxChainLength int
	ReductionRatio float64
}

// StatsFor computes summary statistics from the chain result.
func StatsFor(inputCount int, chains []Chain) Stats {
	s := Stats{
		InputLines:   inputCount,
		OutputChains: len(chains),
	}

	totalPoints := 0
	for _, c := range chains {
		totalPoints += len(c)
		if len(c) > s.MaxChainLength {
			s.MaxChainLength = len(c)
		}
	}
	if len(chains) > 0 {
		s.AvgChainLength = float64(totalPoints) / float64(len(chains))
	}
	if inputCount > 0 {
		s.ReductionRatio = 1 - float64(len(chains))/float64(inputCount)
	}
	return s
}
