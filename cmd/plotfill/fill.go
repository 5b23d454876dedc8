package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"plotfill/internal/chain"
	"plotfill/internal/geom"
	"plotfill/internal/order"
	"plotfill/internal/pattern"
	"plotfill/internal/sketchy"
	"plotfill/internal/svgio"
)

// groupStyle is one entry in a fill config file: pattern and styling
// for every shape in a named group.
type groupStyle struct {
	Pattern string   `json:"pattern,omitempty"`
	Spacing *float64 `json:"spacing,omitempty"`
	Angle   *float64 `json:"angle,omitempty"`
	Color   string   `json:"color,omitempty"`
}

// fillConfig maps group ids to styles, with optional fallbacks for
// shapes in no configured group.
type fillConfig struct {
	Defaults *groupStyle           `json:"defaults,omitempty"`
	Groups   map[string]groupStyle `json:"groups,omitempty"`
}

// shapeResult is one filled shape, in plot order.
type shapeResult struct {
	index int
	poly  *geom.Polygon
	lines []geom.Line
	color string
}

type fillOptions struct {
	patternName string
	spacing     float64
	angle       float64
	output      string
	format      string
	grouped     bool
	orderName   string
	noOptimize  bool
	strokes     bool

	sketchy        bool
	roughness      float64
	bowing         float64
	noDoubleStroke bool
	seed           uint64

	raw       bool
	tolerance float64
	quiet     bool
	configPth string
	color     string

	pat pattern.Pattern
	cfg *fillConfig
}

func runFill(args []string) error {
	var opt fillOptions

	fs := flag.NewFlagSet("fill", flag.ContinueOnError)
	fs.StringVar(&opt.patternName, "p", "lines", "")
	fs.StringVar(&opt.patternName, "pattern", "lines", "fill pattern name (see 'plotfill patterns')")
	fs.Float64Var(&opt.spacing, "s", 2.5, "")
	fs.Float64Var(&opt.spacing, "spacing", 2.5, "spacing between pattern lines")
	fs.Float64Var(&opt.angle, "a", 45, "")
	fs.Float64Var(&opt.angle, "angle", 45, "pattern angle in degrees")
	fs.StringVar(&opt.output, "o", "", "")
	fs.StringVar(&opt.output, "output", "", "output file (default stdout)")
	fs.StringVar(&opt.format, "f", "svg", "")
	fs.StringVar(&opt.format, "format", "svg", "output format: svg or json")
	var jsonOut bool
	fs.BoolVar(&jsonOut, "json", false, "shorthand for -format json")
	fs.BoolVar(&opt.grouped, "grouped", false, "group output by shape")
	fs.StringVar(&opt.orderName, "order", "nearest", "plot order: nearest or document")
	fs.BoolVar(&opt.noOptimize, "no-optimize", false, "keep document order, skip travel optimization")
	fs.BoolVar(&opt.strokes, "strokes", false, "include shape outlines in the output")
	fs.BoolVar(&opt.sketchy, "sketchy", false, "apply a hand-drawn look to all lines")
	fs.Float64Var(&opt.roughness, "roughness", 1.0, "sketchy endpoint jitter")
	fs.Float64Var(&opt.bowing, "bowing", 1.0, "sketchy midpoint bowing")
	fs.BoolVar(&opt.noDoubleStroke, "no-double-stroke", false, "sketchy: draw each line once")
	fs.Uint64Var(&opt.seed, "seed", 0, "seed for randomized patterns")
	fs.BoolVar(&opt.raw, "raw", false, "emit unchained line segments")
	fs.Float64Var(&opt.tolerance, "chain-tolerance", 0.1, "endpoint distance for chaining")
	fs.BoolVar(&opt.quiet, "q", false, "")
	fs.BoolVar(&opt.quiet, "quiet", false, "suppress progress output")
	fs.StringVar(&opt.configPth, "config", "", "per-group fill config (JSON)")
	fs.StringVar(&opt.color, "color", "#000000", "default stroke color")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: plotfill fill [options] <input.svg | ->")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("missing input file (use - for stdin)")
	}
	if jsonOut {
		opt.format = "json"
	}
	if opt.format != "svg" && opt.format != "json" {
		return fmt.Errorf("unknown format %q (want svg or json)", opt.format)
	}

	p, ok := pattern.FromName(opt.patternName)
	if !ok {
		return fmt.Errorf("unknown pattern %q (see 'plotfill patterns')", opt.patternName)
	}
	opt.pat = p

	if opt.configPth != "" {
		data, err := os.ReadFile(opt.configPth)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		var cfg fillConfig
		if err := json.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
		opt.cfg = &cfg
	}

	doc, err := loadInput(fs.Arg(0))
	if err != nil {
		return err
	}
	return fill(doc, &opt)
}

func loadInput(path string) (*svgio.Document, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return svgio.Parse(bytes.NewReader(data))
	}
	return svgio.LoadFile(path)
}

func fill(doc *svgio.Document, opt *fillOptions) error {
	start := time.Now()
	polys := doc.Polygons

	holes := 0
	for _, p := range polys {
		if len(p.Holes) > 0 {
			holes++
		}
	}
	report(opt, "Loaded %d polygons (%d with holes)", len(polys), holes)

	// Plot order
	strategy, ok := order.FromName(opt.orderName)
	if !ok {
		return fmt.Errorf("unknown order %q (want nearest or document)", opt.orderName)
	}
	if opt.noOptimize {
		strategy = order.Document
	}
	seq := order.Polygons(polys, strategy)
	if strategy == order.Nearest {
		before := order.TravelDistance(polys, order.Polygons(polys, order.Document))
		after := order.TravelDistance(polys, seq)
		if before > 0 {
			report(opt, "Travel: %.1f -> %.1f (%.0f%% reduction)",
				before, after, (1-after/before)*100)
		}
	}

	// Generate fills in plot order
	var all []geom.Line
	results := make([]shapeResult, 0, len(seq))
	styled := opt.cfg != nil
	for _, idx := range seq {
		p := polys[idx]
		if p.DataPattern != "" || p.DataColor != "" {
			styled = true
		}
		pat, spacing, angle, color := resolveStyle(p, opt)
		lines := pat.Generate(p, spacing, angle, opt.seed+uint64(idx))
		if opt.strokes {
			lines = append(lines, sketchy.PolygonEdges(p)...)
		}
		results = append(results, shapeResult{index: idx, poly: p, lines: lines, color: color})
	}

	if opt.sketchy {
		cfg := sketchy.Config{
			Roughness:    opt.roughness,
			Bowing:       opt.bowing,
			DoubleStroke: !opt.noDoubleStroke,
			Seed:         opt.seed,
		}
		for i := range results {
			results[i].lines = sketchy.Lines(results[i].lines, cfg)
		}
	}
	for _, r := range results {
		all = append(all, r.lines...)
	}

	// Chain
	chainCfg := chain.Config{Tolerance: opt.tolerance}
	var chains []chain.Chain
	var groups []svgio.StyledGroup
	if opt.grouped || styled {
		groupIdx := make(map[string]int)
		for _, r := range results {
			key := r.poly.GroupID
			if key == "" {
				key = r.poly.ID
			}
			if key == "" {
				key = fmt.Sprintf("shape-%d", r.index)
			}
			gi, ok := groupIdx[key]
			if !ok {
				gi = len(groups)
				groupIdx[key] = gi
				groups = append(groups, svgio.StyledGroup{GroupID: key, Color: r.color})
			}
			groups[gi].Chains = append(groups[gi].Chains, chain.Lines(r.lines, chainCfg)...)
		}
		for _, g := range groups {
			chains = append(chains, g.Chains...)
		}
	} else {
		chains = chain.Lines(all, chainCfg)
	}
	stats := chain.StatsFor(len(all), chains)
	report(opt, "Generated %d lines -> %d chains (%.0f%% reduction) in %s",
		stats.InputLines, stats.OutputChains, stats.ReductionRatio*100,
		time.Since(start).Round(time.Millisecond))

	// Emit
	var out string
	switch {
	case opt.format == "json" && opt.grouped:
		out, err := groupedJSON(results)
		if err != nil {
			return err
		}
		return writeOutput(opt.output, out)
	case opt.format == "json":
		out, err := flatJSON(all, chains, stats)
		if err != nil {
			return err
		}
		return writeOutput(opt.output, out)
	case opt.raw:
		out = svgio.LinesSVG(all, doc.ViewBox)
	case opt.grouped || styled:
		out = svgio.GroupedSVG(groups, doc.ViewBox)
	default:
		out = svgio.ChainsSVG(chains, doc.ViewBox)
	}
	return writeOutput(opt.output, out)
}

// resolveStyle picks pattern, spacing, angle and color for one shape.
// Element data attributes win over config groups, which win over the
// command line.
func resolveStyle(p *geom.Polygon, opt *fillOptions) (pattern.Pattern, float64, float64, string) {
	var gs, def *groupStyle
	if opt.cfg != nil {
		if g, ok := opt.cfg.Groups[p.GroupID]; ok {
			gs = &g
		} else if g, ok := opt.cfg.Groups[p.ID]; ok {
			gs = &g
		}
		def = opt.cfg.Defaults
	}

	pat := opt.pat
	name := p.DataPattern
	if name == "" && gs != nil {
		name = gs.Pattern
	}
	if name == "" && def != nil {
		name = def.Pattern
	}
	if name != "" {
		if resolved, ok := pattern.FromName(name); ok {
			pat = resolved
		} else if !opt.quiet {
			fmt.Fprintf(os.Stderr, "warning: unknown pattern %q, using %s\n", name, opt.pat.Name())
		}
	}

	spacing := opt.spacing
	switch {
	case p.DataSpacing != nil:
		spacing = *p.DataSpacing
	case gs != nil && gs.Spacing != nil:
		spacing = *gs.Spacing
	case def != nil && def.Spacing != nil:
		spacing = *def.Spacing
	}

	angle := opt.angle
	switch {
	case p.DataAngle != nil:
		angle = *p.DataAngle
	case gs != nil && gs.Angle != nil:
		angle = *gs.Angle
	case def != nil && def.Angle != nil:
		angle = *def.Angle
	}

	color := p.DataColor
	if color == "" && gs != nil {
		color = gs.Color
	}
	if color == "" && def != nil {
		color = def.Color
	}
	if color == "" {
		color = opt.color
	}
	return pat, spacing, angle, color
}

func report(opt *fillOptions, format string, args ...any) {
	if opt.quiet {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func writeOutput(path, content string) error {
	if path == "" {
		_, err := os.Stdout.WriteString(content)
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
