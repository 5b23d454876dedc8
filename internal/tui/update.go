package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"plotfill/internal/geom"
	"plotfill/internal/pattern"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2) // provisional; will be refined in View
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				w := strings.TrimSpace(m.ta.Value())
				if w == "" {
					m.status = "paste: empty"
					return m, nil
				}
				polys, err := geom.ParseWKTPolygons(w)
				if err != nil {
					m.status = "wkt error: " + err.Error()
					return m, nil
				}
				m.selPath = ""
				m.zoom = 1.0
				m.offsetX, m.offsetY = 0, 0
				m.setPolygons(polys)
				m.status = fmt.Sprintf("rendered WKT  polys=%d lines=%d chains=%d",
					len(m.polygons), len(m.fill), len(m.chains))
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.showFill = !m.showFill
			m.status = fmt.Sprintf("fill: %v", m.showFill)
		case "2":
			m.showOutline = !m.showOutline
			m.status = fmt.Sprintf("outline: %v", m.showOutline)
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				if !m.sidebarFiles {
					m.refreshPatterns()
				}
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "f":
			if !m.showSidebar {
				m.showSidebar = true
				m.l.SetSize(28-2, m.height-1-2)
			}
			if m.sidebarFiles {
				m.refreshPatterns()
			} else {
				m.refreshDir()
			}
		case "n":
			m.pat = pattern.Pattern((int(m.pat) + 1) % len(pattern.All()))
			m.regen()
			m.status = "pattern: " + m.pat.Name()
		case "N":
			m.pat = pattern.Pattern((int(m.pat) + len(pattern.All()) - 1) % len(pattern.All()))
			m.regen()
			m.status = "pattern: " + m.pat.Name()
		case "]":
			m.spacing *= 1.25
			m.regen()
			m.status = fmt.Sprintf("spacing: %.2f", m.spacing)
		case "[":
			if m.spacing/1.25 >= 0.5 {
				m.spacing /= 1.25
				m.regen()
				m.status = fmt.Sprintf("spacing: %.2f", m.spacing)
			}
		case "a":
			m.angle += 15
			if m.angle >= 360 {
				m.angle -= 360
			}
			m.regen()
			m.status = fmt.Sprintf("angle: %.0f", m.angle)
		case "A":
			m.angle -= 15
			if m.angle < 0 {
				m.angle += 360
			}
			m.regen()
			m.status = fmt.Sprintf("angle: %.0f", m.angle)
		case "r":
			m.seed++
			m.regen()
			m.status = fmt.Sprintf("seed: %d", m.seed)
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "s":
			m.showStats = !m.showStats
			if m.showStats {
				m.refreshStats()
			}
		case "enter":
			if m.showSidebar {
				switch it := m.l.SelectedItem().(type) {
				case fileItem:
					m.loadPath(it.path)
				case patternItem:
					m.pat = it.pat
					m.regen()
					m.status = "pattern: " + m.pat.Name()
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		// track hover over map area
		// compute map origin and size (must match View layout)
		sidebarWidth := 0
		if m.showSidebar {
			sidebarWidth = 28
		}
		headerHeight := 1
		footerHeight := 2
		contentHeight := m.height - headerHeight - footerHeight
		if contentHeight < 4 {
			contentHeight = 4
		}
		contentWidth := max(10, m.width)

		// Update list size with accurate content height when sidebar visible
		if m.showSidebar {
			m.l.SetSize(28-2, contentHeight-2)
		}

		mapWidth := contentWidth - sidebarWidth - 1
		if mapWidth < 10 {
			mapWidth = 10
		}
		mapHeight := contentHeight
		mapOriginX := sidebarWidth + func() int {
			if m.showSidebar {
				return 1
			}
			return 0
		}()
		mapOriginY := headerHeight
		// mouse cell within map?
		cx, cy := msg.X, msg.Y
		if cx >= mapOriginX && cx < mapOriginX+mapWidth && cy >= mapOriginY && cy < mapOriginY+mapHeight {
			if px, py, ok := m.cellToPos(cx-mapOriginX, cy-mapOriginY, mapWidth, mapHeight); ok {
				m.hovering = true
				m.hoverPosX = px
				m.hoverPosY = py
			} else {
				m.hovering = false
			}
		} else {
			m.hovering = false
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}
