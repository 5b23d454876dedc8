package pattern

import (
	"math"
	"strings"
)

// expandLSystem rewrites the axiom depth times. Characters without a
// rule pass through unchanged.
func expandLSystem(axiom string, rules map[rune]string, depth int) string {
	current := axiom
	for i := 0; i < depth; i++ {
		var next strings.Builder
		next.Grow(len(current) * 4)
		for _, c := range current {
			if repl, ok := rules[c]; ok {
				next.WriteString(repl)
			} else {
				next.WriteRune(c)
			}
		}
		current = next.String()
	}
	return current
}

// turtlePoints walks an L-system command string: letters step forward,
// + turns left, - turns right.
func turtlePoints(commands string, startX, startY, step, startAngle, turnAngle float64) [][2]float64 {
	x, y := startX, startY
	angle := startAngle
	points := [][2]float64{{x, y}}

	for _, c := range commands {
		switch c {
		case '+':
			angle += turnAngle
		case '-':
			angle -= turnAngle
		default:
			x += step * math.Cos(angle)
			y += step * math.Sin(angle)
			points = append(points, [2]float64{x, y})
		}
	}
	return points
}
