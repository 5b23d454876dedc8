package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshStats rebuilds the stats table from the current polygons and
// the generated preview.
func (m *Model) refreshStats() {
	if len(m.polygons) == 0 {
		m.showStats = false
		m.status = "no polygons loaded"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "id", Width: 12},
		{Title: "group", Width: 12},
		{Title: "pattern", Width: 14},
		{Title: "verts", Width: 6},
		{Title: "holes", Width: 6},
		{Title: "lines", Width: 8},
	}
	rows := make([]table.Row, 0, len(m.polygons))
	for i, p := range m.polygons {
		pat := p.DataPattern
		if pat == "" {
			pat = m.pat.Name()
		}
		count := 0
		if i < len(m.lineCounts) {
			count = m.lineCounts[i]
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			p.ID,
			p.GroupID,
			pat,
			fmt.Sprintf("%d", len(p.Outer)),
			fmt.Sprintf("%d", len(p.Holes)),
			fmt.Sprintf("%d", count),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
