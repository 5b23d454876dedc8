package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"plotfill/internal/pattern"
	"plotfill/internal/svgio"
)

type patternItem struct {
	pat pattern.Pattern
}

func (p patternItem) Title() string       { return p.pat.Name() }
func (p patternItem) Description() string { return p.pat.Metadata().Description }
func (p patternItem) FilterValue() string { return p.pat.Name() }

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

// refreshPatterns fills the sidebar with the pattern catalog.
func (m *Model) refreshPatterns() {
	items := make([]list.Item, 0, len(pattern.All()))
	for _, p := range pattern.All() {
		items = append(items, patternItem{pat: p})
	}
	m.l.Title = "Patterns"
	m.l.SetItems(items)
	m.sidebarFiles = false
}

// refreshDir fills the sidebar with loadable files from the working
// directory.
func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".svg" || ext == ".wkt" || ext == ".geojson" || ext == ".json" {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.Title = "Files"
	m.l.SetItems(items)
	m.sidebarFiles = true
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads a supported input file into the model.
func (m *Model) loadPath(p string) {
	doc, err := svgio.LoadFile(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.setPolygons(doc.Polygons)
	holes := 0
	for _, poly := range m.polygons {
		if len(poly.Holes) > 0 {
			holes++
		}
	}
	m.status = "loaded: " + filepath.Base(p) +
		fmt.Sprintf("  polys=%d (%d with holes)  lines=%d chains=%d",
			len(m.polygons), holes, len(m.fill), len(m.chains))
}
