package svgio

import (
	"fmt"
	"strings"

	"plotfill/internal/chain"
	"plotfill/internal/geom"
)

// DefaultViewBox sizes output when the input carried no viewBox.
const DefaultViewBox = "0 0 1000 1000"

const svgHeader = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s">
`

// StyledGroup is one output group: the chains of every polygon that
// shared a group id, drawn in one color.
type StyledGroup struct {
	GroupID string
	Chains  []chain.Chain
	Color   string
}

// LinesSVG writes segments as individual line elements.
func LinesSVG(lines []geom.Line, viewBox string) string {
	var b strings.Builder
	fmt.Fprintf(&b, svgHeader, orDefault(viewBox))
	b.WriteString("<g stroke=\"black\" stroke-width=\"0.5\" fill=\"none\">\n")
	for _, l := range lines {
		fmt.Fprintf(&b, "  <line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\"/>\n",
			l.X1, l.Y1, l.X2, l.Y2)
	}
	b.WriteString("</g>\n</svg>\n")
	return b.String()
}

// ChainsSVG writes polylines, one per chain.
func ChainsSVG(chains []chain.Chain, viewBox string) string {
	var b strings.Builder
	fmt.Fprintf(&b, svgHeader, orDefault(viewBox))
	b.WriteString("<g stroke=\"black\" stroke-width=\"0.5\" fill=\"none\">\n")
	writeChains(&b, chains)
	b.WriteString("</g>\n</svg>\n")
	return b.String()
}

// GroupedSVG writes one g element per styled group, carrying its id
// and stroke color.
func GroupedSVG(groups []StyledGroup, viewBox string) string {
	var b strings.Builder
	fmt.Fprintf(&b, svgHeader, orDefault(viewBox))
	for _, g := range groups {
		fmt.Fprintf(&b, "<g id=%q stroke=%q stroke-width=\"0.5\" fill=\"none\">\n",
			g.GroupID, orBlack(g.Color))
		writeChains(&b, g.Chains)
		b.WriteString("</g>\n")
	}
	b.WriteString("</svg>\n")
	return b.String()
}

func writeChains(b *strings.Builder, chains []chain.Chain) {
	for _, c := range chains {
		if len(c) < 2 {
			continue
		}
		if len(c) == 2 {
			fmt.Fprintf(b, "  <line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\"/>\n",
				c[0].X, c[0].Y, c[1].X, c[1].Y)
			continue
		}
		b.WriteString("  <polyline points=\"")
		for i, pt := range c {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(b, "%.2f,%.2f", pt.X, pt.Y)
		}
		b.WriteString("\"/>\n")
	}
}

func orDefault(viewBox string) string {
	if viewBox == "" {
		return DefaultViewBox
	}
	return viewBox
}

func orBlack(color string) string {
	if color == "" {
		return "#000000"
	}
	return color
}
