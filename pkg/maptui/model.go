// Package maptui is a terminal front end for the paddock map editor.
package maptui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"pasture/pkg/layout/repository"
	"pasture/pkg/mapeditor"
)

// Grid placement inside the rendered view: one header line, then the map
// panel whose border and padding take one row and two columns. Each cell is
// two columns wide.
const (
	gridLeft  = 2
	gridTop   = 2
	cellWidth = 2
	maxNotes  = 3
)

var surface = mapeditor.BoxMapper{
	Left:   gridLeft,
	Top:    gridTop,
	Width:  mapeditor.GridSize * cellWidth,
	Height: mapeditor.GridSize,
}

type Options struct {
	Store   repository.Store
	Source  mapeditor.PaddockSource
	Logger  *zap.Logger
	Timeout time.Duration
	// Editor is appended to the options the model builds the dispatcher with.
	Editor []mapeditor.Option
}

// fetchedMsg delivers a paddock list fetched off the update loop.
type fetchedMsg struct {
	first  bool
	result mapeditor.FetchResult
}

// pulse records the last cell a drag moved into so the view can flash it.
type pulse struct {
	mapeditor.NopRenderer
	row, col int
	set      bool
}

func (p *pulse) Pulse(row, col int) { p.row, p.col, p.set = row, col, true }

type Model struct {
	d       *mapeditor.Dispatcher
	src     mapeditor.PaddockSource
	log     *zap.Logger
	timeout time.Duration

	keys keyMap
	help help.Model
	fx   *pulse

	row, col     int
	grabbing     bool
	mouseDrag    bool
	confirmClear bool
	confirmDel   bool
	loading      bool
	notes        []mapeditor.Notification
	width        int
}

func New(o Options) Model {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Timeout <= 0 {
		o.Timeout = 10 * time.Second
	}
	fx := &pulse{}
	opts := []mapeditor.Option{
		mapeditor.WithStore(o.Store),
		mapeditor.WithSource(o.Source),
		mapeditor.WithRenderer(fx),
		mapeditor.WithMapper(surface),
		mapeditor.WithLogger(o.Logger),
	}
	return Model{
		d:       mapeditor.NewDispatcher(append(opts, o.Editor...)...),
		src:     o.Source,
		log:     o.Logger.Named("maptui"),
		timeout: o.Timeout,
		keys:    defaultKeys(),
		help:    help.New(),
		fx:      fx,
		loading: true,
	}
}

// Snapshot exposes the current editor state.
func (m Model) Snapshot() mapeditor.Snapshot { return m.d.Snapshot() }

// Notes returns the most recent notifications, oldest first.
func (m Model) Notes() []mapeditor.Notification { return m.notes }

func (m Model) Init() tea.Cmd { return m.fetch(true) }

func (m Model) fetch(first bool) tea.Cmd {
	src, timeout := m.src, m.timeout
	return func() tea.Msg {
		if src == nil {
			return fetchedMsg{first: first, result: mapeditor.FetchResult{Err: mapeditor.ErrNetwork}}
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		recs, err := src.List(ctx)
		return fetchedMsg{first: first, result: mapeditor.FetchResult{Records: recs, Err: err}}
	}
}

func (m *Model) dispatch(cmd mapeditor.Command) mapeditor.Result {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()
	res := m.d.Dispatch(ctx, cmd)
	m.push(res.Notifications)
	return res
}

func (m *Model) push(ns []mapeditor.Notification) {
	m.notes = append(m.notes, ns...)
	if len(m.notes) > maxNotes {
		m.notes = m.notes[len(m.notes)-maxNotes:]
	}
}

func (m *Model) onFetched(msg fetchedMsg) {
	m.loading = false
	if !msg.first {
		m.dispatch(mapeditor.Command{Kind: mapeditor.CmdRefresh, Fetched: &msg.result})
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()
	res := m.d.Bootstrap(ctx, msg.result.Records)
	m.push(res.Notifications)
	if msg.result.Err != nil {
		m.log.Warn("initial paddock fetch failed", zap.Error(msg.result.Err))
		m.dispatch(mapeditor.Command{Kind: mapeditor.CmdRefresh, Fetched: &msg.result})
	}
}

// cellCenter is the surface point in the middle of a cell.
func cellCenter(row, col int) (x, y float64) {
	x, y = surface.CellOrigin(row, col)
	return x + cellWidth/2, y + 0.5
}

func onGrid(x, y int) bool {
	return x >= gridLeft && x < gridLeft+mapeditor.GridSize*cellWidth &&
		y >= gridTop && y < gridTop+mapeditor.GridSize
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case fetchedMsg:
		m.onFetched(msg)
		return m, nil
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmClear {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.confirmClear = false
			m.dispatch(mapeditor.Command{Kind: mapeditor.CmdClearMap})
		case key.Matches(msg, m.keys.Cancel):
			m.confirmClear = false
		}
		return m, nil
	}
	if m.confirmDel {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.confirmDel = false
			m.dispatch(mapeditor.Command{Kind: mapeditor.CmdDeleteSelected})
		case key.Matches(msg, m.keys.Cancel):
			m.confirmDel = false
		}
		return m, nil
	}
	m.fx.set = false

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Grab):
		m.toggleGrab()
	case m.grabbing:
		// Other keys are ignored while a paddock is lifted.
	case key.Matches(msg, m.keys.SelectTool):
		m.dispatch(mapeditor.Command{Kind: mapeditor.CmdSelectTool, Tool: mapeditor.ToolSelect})
	case key.Matches(msg, m.keys.Click):
		m.dispatch(mapeditor.Command{Kind: mapeditor.CmdClickCell, Row: m.row, Col: m.col})
	case key.Matches(msg, m.keys.AddClick):
		m.dispatch(mapeditor.Command{Kind: mapeditor.CmdClickCell, Row: m.row, Col: m.col, Additive: true})
	case key.Matches(msg, m.keys.Save):
		m.dispatch(mapeditor.Command{Kind: mapeditor.CmdSave})
	case key.Matches(msg, m.keys.Load):
		m.dispatch(mapeditor.Command{Kind: mapeditor.CmdLoad})
	case key.Matches(msg, m.keys.Refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, m.fetch(false)
	case key.Matches(msg, m.keys.Delete):
		snap := m.d.Snapshot()
		if snap.SelectedPaddock == nil && len(snap.SelectedFeatures) == 0 {
			// Nothing to confirm; the editor explains.
			m.dispatch(mapeditor.Command{Kind: mapeditor.CmdDeleteSelected})
			break
		}
		m.confirmDel = true
	case key.Matches(msg, m.keys.Clear):
		m.confirmClear = true
	default:
		for i, b := range m.keys.Tools {
			if key.Matches(msg, b) {
				m.dispatch(mapeditor.Command{Kind: mapeditor.CmdSelectTool, Tool: mapeditor.Tool(mapeditor.FeatureTypes[i])})
				break
			}
		}
	}
	return m, nil
}

func (m *Model) moveCursor(dr, dc int) {
	r, c := m.row+dr, m.col+dc
	if !mapeditor.InBounds(r, c) {
		return
	}
	m.row, m.col = r, c
	if m.grabbing {
		x, y := cellCenter(r, c)
		m.dispatch(mapeditor.Command{Kind: mapeditor.CmdDragStep, X: x, Y: y})
		// The paddock stays put when the cell is taken; keep the cursor on it.
		if d := m.d.Snapshot().Drag; d != nil {
			if p, ok := m.d.Snapshot().PaddockByID(d.Paddock); ok {
				m.row, m.col = p.Row, p.Col
			}
		}
	}
}

// toggleGrab lifts the paddock under the cursor, or drops the lifted one.
func (m *Model) toggleGrab() {
	if m.grabbing {
		m.grabbing = false
		m.dispatch(mapeditor.Command{Kind: mapeditor.CmdEndDrag})
		return
	}
	o := m.d.Snapshot().At(m.row, m.col)
	if o.Kind != mapeditor.PaddockOccupant {
		m.push([]mapeditor.Notification{{Level: mapeditor.LevelInfo, Message: "Ubique el cursor sobre un potrero para moverlo"}})
		return
	}
	x, y := cellCenter(m.row, m.col)
	m.grabbing = m.dispatch(mapeditor.Command{Kind: mapeditor.CmdStartDrag, Paddock: o.Paddock, X: x, Y: y}).OK
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := float64(msg.X), float64(msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.grabbing || !onGrid(msg.X, msg.Y) {
			return m, nil
		}
		m.fx.set = false
		m.row, m.col = surface.CellAt(x, y)
		o := m.d.Snapshot().At(m.row, m.col)
		if o.Kind == mapeditor.PaddockOccupant {
			m.mouseDrag = m.dispatch(mapeditor.Command{Kind: mapeditor.CmdStartDrag, Paddock: o.Paddock, X: x, Y: y}).OK
			return m, nil
		}
		m.dispatch(mapeditor.Command{Kind: mapeditor.CmdClickCell, Row: m.row, Col: m.col, Additive: msg.Shift || msg.Ctrl})
	case tea.MouseActionMotion:
		if !m.mouseDrag {
			return m, nil
		}
		if m.dispatch(mapeditor.Command{Kind: mapeditor.CmdDragStep, X: x, Y: y}).OK {
			m.row, m.col = surface.CellAt(x, y)
		}
	case tea.MouseActionRelease:
		if !m.mouseDrag {
			return m, nil
		}
		m.mouseDrag = false
		snap := m.d.Snapshot()
		clicked := snap.Drag != nil && snap.Drag.Moves == 0
		m.dispatch(mapeditor.Command{Kind: mapeditor.CmdEndDrag})
		if clicked {
			m.dispatch(mapeditor.Command{Kind: mapeditor.CmdSelectPaddock, Paddock: snap.Drag.Paddock})
		}
	}
	return m, nil
}
