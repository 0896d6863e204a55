package maptui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pasture/pkg/mapeditor"
)

func (m Model) View() string {
	snap := m.d.Snapshot()

	header := titleStyle.Render("Mapa de potreros") + "  " + m.headerStats(snap)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(m.gridView(snap)),
		" ",
		panelStyle.Render(m.sideView(snap)),
	)

	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(body + "\n")
	b.WriteString(m.statusView() + "\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) headerStats(snap mapeditor.Snapshot) string {
	parts := []string{
		accentStyle.Render("Potreros") + fmt.Sprintf(" %d", snap.Stats.Paddocks),
		accentStyle.Render("Elementos") + fmt.Sprintf(" %d", snap.Stats.TotalFeatures),
	}
	if m.loading {
		parts = append(parts, warningStyle.Render("cargando…"))
	}
	return strings.Join(parts, "  ")
}

func (m Model) gridView(snap mapeditor.Snapshot) string {
	selectedFeature := make(map[mapeditor.FeatureID]bool, len(snap.SelectedFeatures))
	for _, id := range snap.SelectedFeatures {
		selectedFeature[id] = true
	}
	names := make(map[mapeditor.PaddockID]string, len(snap.Paddocks))
	for _, p := range snap.Paddocks {
		names[p.ID] = p.Abbrev()
	}

	rows := make([]string, mapeditor.GridSize)
	for r := 0; r < mapeditor.GridSize; r++ {
		var line strings.Builder
		for c := 0; c < mapeditor.GridSize; c++ {
			o := snap.At(r, c)
			var cell string
			switch o.Kind {
			case mapeditor.FeatureOccupant:
				st := featureStyles[o.Type]
				if selectedFeature[o.Feature] {
					st = st.Inherit(selectedStyle)
				}
				cell = st.Render(o.Type.Code())
			case mapeditor.PaddockOccupant:
				st := paddockStyle
				switch {
				case snap.Drag != nil && snap.Drag.Paddock == o.Paddock:
					st = liftedStyle
				case snap.SelectedPaddock != nil && *snap.SelectedPaddock == o.Paddock:
					st = st.Inherit(selectedStyle)
				}
				cell = st.Render(markerText(names[o.Paddock]))
			default:
				cell = mutedStyle.Render("· ")
			}
			if m.fx.set && m.fx.row == r && m.fx.col == c {
				cell = pulseStyle.Render(stripped(o, names))
			}
			if r == m.row && c == m.col {
				cell = cursorStyle.Render(stripped(o, names))
			}
			line.WriteString(cell)
		}
		rows[r] = line.String()
	}
	return strings.Join(rows, "\n")
}

// markerText fits a paddock abbreviation into one two-column cell.
func markerText(abbrev string) string {
	r := []rune(abbrev)
	switch len(r) {
	case 0:
		return "P "
	case 1:
		return string(r) + " "
	}
	return string(r[:2])
}

func stripped(o mapeditor.Occupant, names map[mapeditor.PaddockID]string) string {
	switch o.Kind {
	case mapeditor.FeatureOccupant:
		return o.Type.Code()
	case mapeditor.PaddockOccupant:
		return markerText(names[o.Paddock])
	}
	return "  "
}

func (m Model) sideView(snap mapeditor.Snapshot) string {
	lines := []string{titleStyle.Render("Herramienta") + " " + toolLabel(snap.Tool), ""}

	lines = append(lines, titleStyle.Render("Elementos"))
	for i, t := range mapeditor.FeatureTypes {
		lines = append(lines, fmt.Sprintf("%d %s %-9s %d", i+1, featureStyles[t].Render(t.Code()), t.Label(), snap.Stats.Features[t]))
	}

	lines = append(lines, "", titleStyle.Render("Potreros"))
	if len(snap.Paddocks) == 0 {
		lines = append(lines, mutedStyle.Render("sin potreros"))
	}
	for _, p := range snap.Paddocks {
		prefix := "  "
		if snap.SelectedPaddock != nil && *snap.SelectedPaddock == p.ID {
			prefix = selectedStyle.Render("> ")
		}
		lines = append(lines, fmt.Sprintf("%s%s %s %s", prefix,
			paddockStyle.Render(markerText(p.Abbrev())), p.Name, mutedStyle.Render(p.Size)))
	}
	return strings.Join(lines, "\n")
}

func toolLabel(t mapeditor.Tool) string {
	if t == mapeditor.ToolSelect {
		return accentStyle.Render("selección")
	}
	ft := mapeditor.FeatureType(t)
	return featureStyles[ft].Render(ft.Code() + " " + ft.Label())
}

func (m Model) statusView() string {
	if m.confirmClear {
		return errorStyle.Render("¿Limpiar todo el mapa? Los elementos se perderán (y/n)")
	}
	if m.confirmDel {
		return errorStyle.Render(m.deletePrompt())
	}
	if m.grabbing {
		return warningStyle.Render("Moviendo potrero: use las flechas y pulse m para soltar")
	}
	if len(m.notes) == 0 {
		return mutedStyle.Render(fmt.Sprintf("fila %d, columna %d", m.row, m.col))
	}
	out := make([]string, 0, len(m.notes))
	for _, n := range m.notes {
		out = append(out, levelStyle(n.Level).Render(n.Message))
	}
	return strings.Join(out, mutedStyle.Render(" · "))
}

func (m Model) deletePrompt() string {
	snap := m.d.Snapshot()
	if snap.SelectedPaddock != nil {
		if p, ok := snap.PaddockByID(*snap.SelectedPaddock); ok {
			return fmt.Sprintf("¿Eliminar el potrero %s? También se borra del sistema (y/n)", p.Name)
		}
	}
	return fmt.Sprintf("¿Eliminar %d elemento(s) seleccionado(s)? (y/n)", len(snap.SelectedFeatures))
}
