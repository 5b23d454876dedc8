package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"plotfill/internal/chain"
	"plotfill/internal/geom"
	"plotfill/internal/pattern"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// Sidebar list: pattern browser by default, file browser when
	// sidebarFiles is set.
	cwd          string
	l            list.Model
	sidebarFiles bool

	// Loaded document
	selPath  string
	polygons []*geom.Polygon
	bbox     geom.BBox

	// Fill parameters
	pat     pattern.Pattern
	spacing float64
	angle   float64
	seed    uint64

	// Generated preview
	fill       []geom.Line
	lineCounts []int
	chains     []chain.Chain
	stats      chain.Stats

	// last rendered map size
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showFill    bool
	showOutline bool

	// hover state
	hovering  bool
	hoverPosX float64
	hoverPosY float64

	// stats table
	showStats bool
	tbl       table.Model
}

func New() Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "plotfill ready",
		pat:         pattern.PatternLines,
		spacing:     10.0,
		angle:       45.0,
		seed:        42,
		showFill:    true,
		showOutline: true,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Patterns"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.refreshPatterns()
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POLYGON or MULTIPOLYGON). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// stats table setup (columns built per preview)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	// demo shape until a file is loaded
	m.setPolygons([]*geom.Polygon{geom.NewPolygonWithHoles(
		[]geom.Point{
			geom.Pt(100, 100), geom.Pt(900, 100), geom.Pt(900, 900), geom.Pt(100, 900),
		},
		[][]geom.Point{{
			geom.Pt(400, 400), geom.Pt(600, 400), geom.Pt(600, 600), geom.Pt(400, 600),
		}},
	)})
	return m
}

// NewWithPath preloads a file's polygons at launch.
func NewWithPath(path string) Model {
	m := New()
	m.loadPath(path)
	return m
}

// setPolygons swaps the working set, recomputes bounds and regenerates
// the preview.
func (m *Model) setPolygons(polys []*geom.Polygon) {
	m.polygons = polys
	var minX, minY, maxX, maxY float64
	first := true
	for _, p := range polys {
		b, ok := p.BoundingBox()
		if !ok {
			continue
		}
		if first {
			minX, minY, maxX, maxY = b.MinX, b.MinY, b.MaxX, b.MaxY
			first = false
			continue
		}
		if b.MinX < minX {
			minX = b.MinX
		}
		if b.MinY < minY {
			minY = b.MinY
		}
		if b.MaxX > maxX {
			maxX = b.MaxX
		}
		if b.MaxY > maxY {
			maxY = b.MaxY
		}
	}
	m.bbox = geom.BBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
	m.regen()
}

// regen rebuilds the fill preview for the current pattern and
// parameters.
func (m *Model) regen() {
	m.fill = m.fill[:0]
	m.lineCounts = make([]int, len(m.polygons))
	for i, p := range m.polygons {
		lines := m.pat.Generate(p, m.spacing, m.angle, m.seed+uint64(i))
		m.lineCounts[i] = len(lines)
		m.fill = append(m.fill, lines...)
	}
	m.chains = chain.Lines(m.fill, chain.DefaultConfig())
	m.stats = chain.StatsFor(len(m.fill), m.chains)
	if m.showStats {
		m.refreshStats()
	}
}

func (m Model) Init() tea.Cmd { return nil }
