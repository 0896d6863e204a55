package mapeditor

import (
	"fmt"

	"go.uber.org/zap"
)

// PlaceFeature puts a new feature of type t on (row, col). The grid is left
// unchanged on any error.
func (e *Editor) PlaceFeature(t FeatureType, row, col int) (FeatureID, error) {
	f, err := e.placeFeature(Feature{Type: t, Row: row, Col: col})
	if err != nil {
		return "", err
	}
	e.notify(LevelSuccess, fmt.Sprintf("%s agregado al mapa", t.Label()))
	return f.ID, nil
}

func (e *Editor) placeFeature(f Feature) (Feature, error) {
	if !f.Type.Valid() {
		return Feature{}, fmt.Errorf("%w: %q", ErrInvalidType, f.Type)
	}
	if !InBounds(f.Row, f.Col) {
		return Feature{}, fmt.Errorf("%w: [%d, %d]", ErrCellOutOfRange, f.Row, f.Col)
	}
	if e.grid.IsOccupied(f.Row, f.Col, nil) {
		return Feature{}, fmt.Errorf("%w: [%d, %d]", ErrCellOccupied, f.Row, f.Col)
	}
	if f.ID == "" {
		f.ID = e.newID()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = e.now()
	}
	e.features[f.Type] = append(e.features[f.Type], f)
	e.setCell(f.Row, f.Col, Occupant{Kind: FeatureOccupant, Feature: f.ID, Type: f.Type})
	e.log.Debug("feature placed",
		zap.String("type", string(f.Type)), zap.Int("row", f.Row), zap.Int("col", f.Col))
	return f, nil
}

// PlacePaddock puts a paddock marker on (row, col), falling back to the
// nearest free cell when the target is taken. It reports whether the paddock
// ended up on the grid.
func (e *Editor) PlacePaddock(id PaddockID, name, size string, row, col int) bool {
	_, _, err := e.placePaddock(Paddock{ID: id, Name: name, Size: size, Row: row, Col: col})
	if err != nil {
		e.log.Warn("paddock not placed", zap.Stringer("id", id), zap.String("name", name), zap.Error(err))
		return false
	}
	return true
}

func (e *Editor) placePaddock(p Paddock) (int, int, error) {
	if !InBounds(p.Row, p.Col) {
		return 0, 0, fmt.Errorf("%w: [%d, %d]", ErrCellOutOfRange, p.Row, p.Col)
	}
	if _, ok := e.byID[p.ID]; ok {
		return 0, 0, fmt.Errorf("%w: %s", ErrDuplicatePaddock, p.ID)
	}
	if e.grid.IsOccupied(p.Row, p.Col, nil) {
		r, c, err := e.FindNearbyEmptyCell(p.Row, p.Col, DefaultSearchRadius)
		if err != nil {
			return 0, 0, err
		}
		e.log.Debug("paddock target occupied, using nearby cell",
			zap.Stringer("id", p.ID), zap.Int("row", r), zap.Int("col", c))
		p.Row, p.Col = r, c
	}
	stored := p
	e.paddocks = append(e.paddocks, &stored)
	e.byID[p.ID] = &stored
	e.setCell(p.Row, p.Col, Occupant{Kind: PaddockOccupant, Paddock: p.ID})
	e.renderer.MarkerChanged(p.ID, normalMarker)
	return p.Row, p.Col, nil
}

// movePaddock relocates an existing paddock. The target must already be
// known to be free.
func (e *Editor) movePaddock(p *Paddock, row, col int) {
	e.clearCell(p.Row, p.Col)
	p.Row, p.Col = row, col
	e.setCell(row, col, Occupant{Kind: PaddockOccupant, Paddock: p.ID})
}

func (e *Editor) removePaddock(id PaddockID) {
	p, ok := e.byID[id]
	if !ok {
		return
	}
	e.clearCell(p.Row, p.Col)
	delete(e.byID, id)
	for i, q := range e.paddocks {
		if q.ID == id {
			e.paddocks = append(e.paddocks[:i], e.paddocks[i+1:]...)
			break
		}
	}
	if e.selPaddock != nil && *e.selPaddock == id {
		e.selPaddock = nil
	}
	if e.drag != nil && e.drag.Paddock == id {
		e.drag = nil
	}
}

// clearPaddocks removes every paddock marker; features stay.
func (e *Editor) clearPaddocks() {
	for _, p := range e.paddocks {
		e.clearCell(p.Row, p.Col)
	}
	e.paddocks = nil
	e.byID = map[PaddockID]*Paddock{}
	e.selPaddock = nil
	e.drag = nil
}

// clearFeatures removes every feature; paddocks stay.
func (e *Editor) clearFeatures() {
	for _, list := range e.features {
		for _, f := range list {
			e.clearCell(f.Row, f.Col)
		}
	}
	e.features = map[FeatureType][]Feature{}
	e.selFeatures = map[FeatureID]bool{}
}

func (e *Editor) removeFeature(id FeatureID) bool {
	for t, list := range e.features {
		for i, f := range list {
			if f.ID != id {
				continue
			}
			e.clearCell(f.Row, f.Col)
			e.features[t] = append(list[:i], list[i+1:]...)
			delete(e.selFeatures, id)
			return true
		}
	}
	return false
}

// ClearMap removes all features. Paddock markers are a separate collection
// and are not touched.
func (e *Editor) ClearMap() {
	e.clearFeatures()
	e.log.Info("map cleared")
	e.notify(LevelInfo, "Mapa limpiado")
}

// ClickCell applies the active tool to a cell. With the select tool a click
// on a feature toggles its selection, on a paddock selects it and on an
// empty cell drops the selection. additive keeps other selected features.
func (e *Editor) ClickCell(row, col int, additive bool) (FeatureID, error) {
	if !InBounds(row, col) {
		return "", fmt.Errorf("%w: [%d, %d]", ErrCellOutOfRange, row, col)
	}
	if e.tool != ToolSelect {
		return e.PlaceFeature(FeatureType(e.tool), row, col)
	}
	o := e.grid.At(row, col)
	switch o.Kind {
	case FeatureOccupant:
		e.toggleFeature(o.Feature, additive)
	case PaddockOccupant:
		return "", e.SelectPaddock(o.Paddock)
	default:
		e.ClearSelection()
	}
	return "", nil
}
