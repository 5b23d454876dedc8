package chain

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"plotfill/internal/geom"
)

func TestEmptyInput(t *testing.T) {
	if chains := Lines(nil, DefaultConfig()); len(chains) != 0 {
		t.Fatalf("got %d chains for empty input", len(chains))
	}
}

func TestSingleLine(t *testing.T) {
	chains := Lines([]geom.Line{geom.Ln(0, 0, 10, 10)}, DefaultConfig())
	if len(chains) != 1 || len(chains[0]) != 2 {
		t.Fatalf("got %d chains, first has %d points; want 1 chain of 2", len(chains), len(chains[0]))
	}
}

func TestCollinearRunBecomesOneChain(t *testing.T) {
	lines := []geom.Line{
		geom.Ln(0, 0, 10, 0),
		geom.Ln(10, 0, 20, 0),
	}
	chains := Lines(lines, DefaultConfig())
	if len(chains) != 1 {
		t.Fatalf("got %d chains, want 1", len(chains))
	}
	want := Chain{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(20, 0)}
	if diff := cmp.Diff(want, chains[0]); diff != "" {
		t.Errorf("chain mismatch (-want +got):\n%s", diff)
	}
}

func TestDisconnectedLinesStaySeparate(t *testing.T) {
	lines := []geom.Line{
		geom.Ln(0, 0, 10, 10),
		geom.Ln(100, 100, 110, 110),
	}
	chains := Lines(lines, DefaultConfig())
	if len(chains) != 2 {
		t.Fatalf("got %d chains, want 2", len(chains))
	}
}

func TestToleranceControlsJoining(t *testing.T) {
	lines := []geom.Line{
		geom.Ln(0, 0, 10, 10),
		geom.Ln(10.05, 10.05, 20, 10),
	}

	if chains := Lines(lines, Config{Tolerance: 0.1}); len(chains) != 1 {
		t.Errorf("tolerance 0.1: got %d chains, want 1", len(chains))
	}
	if chains := Lines(lines, Config{Tolerance: 0.01}); len(chains) != 2 {
		t.Errorf("tolerance 0.01: got %d chains, want 2", len(chains))
	}
}

func TestZigzagRunChains(t *testing.T) {
	lines := []geom.Line{
		geom.Ln(0, 0, 10, 10),
		geom.Ln(10, 10, 20, 0),
		geom.Ln(20, 0, 30, 10),
		geom.Ln(30, 10, 40, 0),
		geom.Ln(40, 0, 50, 10),
	}
	chains := Lines(lines, DefaultConfig())
	if len(chains) != 1 {
		t.Fatalf("got %d chains, want 1", len(chains))
	}
	if len(chains[0]) != 6 {
		t.Errorf("chain has %d points, want 6", len(chains[0]))
	}
}

func TestOutOfOrderInput(t *testing.T) {
	lines := []geom.Line{
		geom.Ln(20, 0, 30, 10),
		geom.Ln(0, 0, 10, 10),
		geom.Ln(10, 10, 20, 0),
	}
	chains := Lines(lines, DefaultConfig())
	if len(chains) != 1 {
		t.Fatalf("got %d chains, want 1", len(chains))
	}
	if len(chains[0]) != 4 {
		t.Errorf("chain has %d points, want 4", len(chains[0]))
	}
}

func TestToLinesRoundTrip(t *testing.T) {
	chains := []Chain{
		{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(20, 0)},
		{geom.Pt(5, 5), geom.Pt(6, 6)},
	}
	lines := ToLines(chains)
	want := []geom.Line{
		geom.Ln(0, 0, 10, 0),
		geom.Ln(10, 0, 20, 0),
		geom.Ln(5, 5, 6, 6),
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestStats(t *testing.T) {
	lines := []geom.Line{
		geom.Ln(0, 0, 10, 10),
		geom.Ln(10, 10, 20, 0),
		geom.Ln(100, 100, 110, 110),
	}
	chains := Lines(lines, DefaultConfig())
	stats := StatsFor(len(lines), chains)

	if stats.InputLines != 3 {
		t.Errorf("InputLines = %d, want 3", stats.InputLines)
	}
	if stats.OutputChains != 2 {
		t.Errorf("OutputChains = %d, want 2", stats.OutputChains)
	}
	if stats.MaxChainLength != 3 {
		t.Errorf("MaxChainLength = %d, want 3", stats.MaxChainLength)
	}
	if stats.ReductionRatio < 0.3 {
		t.Errorf("ReductionRatio = %v, want > 0.3", stats.ReductionRatio)
	}
}

func TestStatsEmpty(t *testing.T) {
	stats := StatsFor(0, nil)
	if stats.AvgChainLength != 0 || stats.ReductionRatio != 0 {
		t.Errorf("empty stats not zeroed: %+v", stats)
	}
}
