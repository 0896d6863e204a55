package mapeditor

import "go.uber.org/zap"

// DragSession is an in-progress pointer drag of one paddock marker.
type DragSession struct {
	Paddock PaddockID `json:"paddock"`
	OffsetX float64   `json:"offset_x"`
	OffsetY float64   `json:"offset_y"`
	Moves   int       `json:"moves"`
}

// Dragging returns the active session, if any.
func (e *Editor) Dragging() (DragSession, bool) {
	if e.drag == nil {
		return DragSession{}, false
	}
	return *e.drag, true
}

// StartDrag begins dragging paddock id with the pointer at (x, y). Only one
// drag runs at a time; a second start is ignored.
func (e *Editor) StartDrag(id PaddockID, x, y float64) bool {
	if e.drag != nil {
		e.log.Debug("drag already active, ignoring start",
			zap.Stringer("active", e.drag.Paddock), zap.Stringer("requested", id))
		return false
	}
	p, ok := e.byID[id]
	if !ok {
		return false
	}
	ox, oy := e.mapper.CellOrigin(p.Row, p.Col)
	e.drag = &DragSession{Paddock: id, OffsetX: x - ox, OffsetY: y - oy}
	e.renderer.MarkerChanged(id, draggedMarker)
	return true
}

// DragTo moves the dragged paddock to the cell under (x, y) when that cell
// is free. Occupied cells are skipped silently and the drag continues.
func (e *Editor) DragTo(x, y float64) bool {
	if e.drag == nil {
		return false
	}
	p, ok := e.byID[e.drag.Paddock]
	if !ok {
		e.drag = nil
		return false
	}
	row, col := e.mapper.CellAt(x, y)
	if row == p.Row && col == p.Col {
		return false
	}
	if e.grid.IsOccupied(row, col, &p.ID) {
		return false
	}
	e.movePaddock(p, row, col)
	e.drag.Moves++
	e.renderer.Pulse(row, col)
	return true
}

// EndDrag finishes the session. The highlight stays when the dragged paddock
// is the selected one.
func (e *Editor) EndDrag() bool {
	if e.drag == nil {
		return false
	}
	id := e.drag.Paddock
	e.drag = nil
	p, ok := e.byID[id]
	if !ok {
		return true
	}
	style := normalMarker
	if e.selPaddock != nil && *e.selPaddock == id {
		style = selectedMarker
	}
	e.renderer.MarkerChanged(id, style)
	e.log.Debug("drag ended", zap.Stringer("id", id), zap.Int("row", p.Row), zap.Int("col", p.Col))
	return true
}
