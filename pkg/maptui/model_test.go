package maptui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pasture/pkg/layout/repositoryImp"
	"pasture/pkg/mapeditor"
)

type fakeSource struct {
	records []mapeditor.PaddockRecord
	err     error
}

func (f *fakeSource) List(context.Context) ([]mapeditor.PaddockRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]mapeditor.PaddockRecord(nil), f.records...), nil
}

func (f *fakeSource) Delete(context.Context, mapeditor.PaddockID) error { return f.err }

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

func mouse(t *testing.T, m Model, action tea.MouseAction, x, y int) Model {
	t.Helper()
	next, _ := m.Update(tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft})
	return next.(Model)
}

// started runs the initial fetch the way the program would.
func started(t *testing.T, src mapeditor.PaddockSource) Model {
	t.Helper()
	m := New(Options{Store: repositoryImp.NewMemory(), Source: src})
	msg := m.Init()()
	next, _ := m.Update(msg)
	return next.(Model)
}

func threePaddocks() []mapeditor.PaddockRecord {
	return []mapeditor.PaddockRecord{
		{ID: 1, Name: "La Loma", Hectares: 12.5},
		{ID: 2, Name: "El Bajo", Hectares: 8},
		{ID: 3, Name: "Rincón", Hectares: 4.25},
	}
}

func position(t *testing.T, m Model, id mapeditor.PaddockID) [2]int {
	t.Helper()
	p, ok := m.Snapshot().PaddockByID(id)
	require.True(t, ok, "paddock %d on map", id)
	return [2]int{p.Row, p.Col}
}

func TestInitialFetchPlacesPaddocks(t *testing.T) {
	m := started(t, &fakeSource{records: threePaddocks()})

	assert.False(t, m.loading)
	assert.Len(t, m.Snapshot().Paddocks, 3)
	assert.Equal(t, [2]int{2, 2}, position(t, m, 1))
	assert.Equal(t, [2]int{2, 5}, position(t, m, 2))
	assert.Contains(t, m.View(), "Mapa de potreros")
	assert.Contains(t, m.View(), "La Loma")
}

func TestInitialFetchWithoutBackendWarns(t *testing.T) {
	m := started(t, nil)
	assert.Empty(t, m.Snapshot().Paddocks)
	assert.Contains(t, m.Notes(), mapeditor.Notification{Level: mapeditor.LevelWarning, Message: "Error al actualizar la lista"})
}

func TestToolKeysPlaceFeatures(t *testing.T) {
	m := started(t, &fakeSource{records: threePaddocks()})

	m = press(t, m, "2", "enter")
	assert.Equal(t, mapeditor.Fence, m.Snapshot().At(0, 0).Type)
	assert.Contains(t, m.Notes(), mapeditor.Notification{Level: mapeditor.LevelSuccess, Message: "Cerca agregado al mapa"})

	m = press(t, m, "enter")
	assert.Equal(t, mapeditor.Notification{Level: mapeditor.LevelWarning, Message: "Esta posición ya está ocupada"}, m.Notes()[len(m.Notes())-1])

	m = press(t, m, "s", "tab")
	assert.Equal(t, mapeditor.ToolSelect, m.Snapshot().Tool)
	assert.Len(t, m.Snapshot().SelectedFeatures, 1)

	m = press(t, m, "d", "y")
	assert.Zero(t, m.Snapshot().Stats.TotalFeatures)
}

func TestKeyboardMovesPaddock(t *testing.T) {
	m := started(t, &fakeSource{records: threePaddocks()})

	m = press(t, m, "down", "down", "right", "right", "m")
	require.True(t, m.grabbing)
	require.NotNil(t, m.Snapshot().Drag)

	m = press(t, m, "down", "right")
	assert.Equal(t, [2]int{3, 3}, position(t, m, 1))

	// Paddock 2 sits at (2,5); the lifted one cannot land there.
	m = press(t, m, "up", "right", "right")
	assert.Equal(t, [2]int{2, 4}, position(t, m, 1))
	assert.Equal(t, [2]int{2, 4}, [2]int{m.row, m.col})

	m = press(t, m, "m")
	assert.False(t, m.grabbing)
	assert.Nil(t, m.Snapshot().Drag)
}

func TestGrabOnEmptyCellExplains(t *testing.T) {
	m := started(t, &fakeSource{records: threePaddocks()})
	m = press(t, m, "m")
	assert.False(t, m.grabbing)
	assert.Equal(t, mapeditor.LevelInfo, m.Notes()[len(m.Notes())-1].Level)
}

func TestMouseDragAndClick(t *testing.T) {
	m := started(t, &fakeSource{records: threePaddocks()})

	// Paddock 2 at (2,5) is drawn at column 2+5*2, line 2+2.
	m = mouse(t, m, tea.MouseActionPress, 12, 4)
	require.True(t, m.mouseDrag)
	m = mouse(t, m, tea.MouseActionMotion, 13, 10)
	m = mouse(t, m, tea.MouseActionRelease, 13, 10)
	assert.Equal(t, [2]int{8, 5}, position(t, m, 2))
	assert.Nil(t, m.Snapshot().SelectedPaddock, "a drag is not a click")

	m = mouse(t, m, tea.MouseActionPress, 12, 10)
	m = mouse(t, m, tea.MouseActionRelease, 12, 10)
	require.NotNil(t, m.Snapshot().SelectedPaddock)
	assert.Equal(t, mapeditor.PaddockID(2), *m.Snapshot().SelectedPaddock)

	m = mouse(t, m, tea.MouseActionPress, 0, 0)
	assert.Equal(t, [2]int{8, 5}, [2]int{m.row, m.col}, "presses off the grid are ignored")
}

func TestRefreshFailureKeepsMap(t *testing.T) {
	src := &fakeSource{records: threePaddocks()}
	m := started(t, src)

	src.err = errors.New("connection refused")
	next, cmd := m.Update(keyMsg("r"))
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.loading)

	next, _ = m.Update(cmd())
	m = next.(Model)
	assert.False(t, m.loading)
	assert.Len(t, m.Snapshot().Paddocks, 3)
	assert.Equal(t, mapeditor.Notification{Level: mapeditor.LevelWarning, Message: "Error al actualizar la lista"}, m.Notes()[len(m.Notes())-1])
}

func TestClearAsksFirst(t *testing.T) {
	m := started(t, &fakeSource{records: threePaddocks()})
	m = press(t, m, "5", "enter", "X")
	assert.Contains(t, m.View(), "¿Limpiar todo el mapa?")

	m = press(t, m, "n")
	assert.Equal(t, 1, m.Snapshot().Stats.TotalFeatures)

	m = press(t, m, "X", "y")
	assert.Zero(t, m.Snapshot().Stats.TotalFeatures)
	assert.Len(t, m.Snapshot().Paddocks, 3)
}

func TestDeleteAsksFirst(t *testing.T) {
	m := started(t, &fakeSource{records: threePaddocks()})
	m = press(t, m, "s", "down", "down", "right", "right", "enter")
	require.NotNil(t, m.Snapshot().SelectedPaddock)

	m = press(t, m, "d")
	assert.Contains(t, m.View(), "¿Eliminar el potrero La Loma?")
	assert.Len(t, m.Snapshot().Paddocks, 3)

	m = press(t, m, "n")
	assert.Len(t, m.Snapshot().Paddocks, 3)
	assert.NotContains(t, m.View(), "¿Eliminar")

	m = press(t, m, "d", "y")
	assert.Len(t, m.Snapshot().Paddocks, 2)
	_, ok := m.Snapshot().PaddockByID(1)
	assert.False(t, ok)
}

func TestDeleteWithoutSelectionWarns(t *testing.T) {
	m := started(t, &fakeSource{records: threePaddocks()})
	m = press(t, m, "d")
	assert.False(t, m.confirmDel)
	assert.Equal(t, mapeditor.LevelWarning, m.Notes()[len(m.Notes())-1].Level)
}

func TestSaveAndLoadKeys(t *testing.T) {
	m := started(t, &fakeSource{records: threePaddocks()})
	m = press(t, m, "1", "enter", "w")
	assert.Equal(t, "Mapa guardado correctamente", m.Notes()[len(m.Notes())-1].Message)

	m = press(t, m, "X", "y", "o")
	assert.Equal(t, 1, m.Snapshot().Stats.Features[mapeditor.WaterTrough])
}

func TestNotesAreCapped(t *testing.T) {
	m := started(t, &fakeSource{records: threePaddocks()})
	m = press(t, m, "1", "enter", "enter", "enter", "enter", "enter")
	assert.Len(t, m.Notes(), maxNotes)
}
