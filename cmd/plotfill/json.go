package main

import (
	"encoding/json"

	"plotfill/internal/chain"
	"plotfill/internal/geom"
)

type jsonStats struct {
	InputLines       int     `json:"input_lines"`
	OutputChains     int     `json:"output_chains"`
	ReductionPercent float64 `json:"reduction_percent"`
	AvgChainLength   float64 `json:"avg_chain_length"`
}

type jsonOutput struct {
	Lines  [][4]float64   `json:"lines"`
	Chains [][][2]float64 `json:"chains"`
	Stats  jsonStats      `json:"chain_stats"`
}

type jsonShape struct {
	ID    string       `json:"id,omitempty"`
	Index int          `json:"index"`
	Lines [][4]float64 `json:"lines"`
}

type jsonGrouped struct {
	Shapes []jsonShape `json:"shapes"`
}

func jsonLines(lines []geom.Line) [][4]float64 {
	out := make([][4]float64, len(lines))
	for i, l := range lines {
		out[i] = [4]float64{l.X1, l.Y1, l.X2, l.Y2}
	}
	return out
}

func flatJSON(lines []geom.Line, chains []chain.Chain, stats chain.Stats) (string, error) {
	doc := jsonOutput{
		Lines:  jsonLines(lines),
		Chains: make([][][2]float64, len(chains)),
		Stats: jsonStats{
			InputLines:       stats.InputLines,
			OutputChains:     stats.OutputChains,
			ReductionPercent: stats.ReductionRatio * 100,
			AvgChainLength:   stats.AvgChainLength,
		},
	}
	for i, c := range chains {
		pts := make([][2]float64, len(c))
		for j, pt := range c {
			pts[j] = [2]float64{pt.X, pt.Y}
		}
		doc.Chains[i] = pts
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

func groupedJSON(results []shapeResult) (string, error) {
	doc := jsonGrouped{Shapes: make([]jsonShape, 0, len(results))}
	for _, r := range results {
		id := r.poly.ID
		if id == "" {
			id = r.poly.GroupID
		}
		doc.Shapes = append(doc.Shapes, jsonShape{
			ID:    id,
			Index: r.index,
			Lines: jsonLines(r.lines),
		})
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
