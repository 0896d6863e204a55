package mapeditor

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

func (e *Editor) toggleFeature(id FeatureID, additive bool) {
	if e.selFeatures[id] {
		delete(e.selFeatures, id)
		return
	}
	if !additive {
		e.selFeatures = map[FeatureID]bool{}
	}
	e.selFeatures[id] = true
}

// SelectPaddock highlights a paddock, replacing any previous paddock
// selection.
func (e *Editor) SelectPaddock(id PaddockID) error {
	p, ok := e.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPaddock, id)
	}
	if e.selPaddock != nil && *e.selPaddock != id {
		e.renderer.MarkerChanged(*e.selPaddock, normalMarker)
	}
	sel := p.ID
	e.selPaddock = &sel
	e.renderer.MarkerChanged(id, selectedMarker)
	e.log.Debug("paddock selected", zap.Stringer("id", id), zap.String("name", p.Name))
	return nil
}

// ClearSelection drops the paddock and feature selection without feedback.
func (e *Editor) ClearSelection() {
	if e.selPaddock != nil {
		e.renderer.MarkerChanged(*e.selPaddock, normalMarker)
	}
	e.selPaddock = nil
	e.selFeatures = map[FeatureID]bool{}
}

func (e *Editor) SelectedPaddock() (PaddockID, bool) {
	if e.selPaddock == nil {
		return 0, false
	}
	return *e.selPaddock, true
}

// SelectedFeatures returns the selected feature ids in sorted order.
func (e *Editor) SelectedFeatures() []FeatureID {
	out := make([]FeatureID, 0, len(e.selFeatures))
	for id := range e.selFeatures {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DeleteSelected removes the selected paddock through the backend, or else
// the selected features. It returns how many items were removed.
func (e *Editor) DeleteSelected(ctx context.Context) (int, error) {
	if e.selPaddock != nil {
		id := *e.selPaddock
		if e.source == nil {
			return 0, fmt.Errorf("%w: no paddock backend configured", ErrNetwork)
		}
		if err := e.source.Delete(ctx, id); err != nil {
			return 0, fmt.Errorf("%w: delete paddock %s: %v", ErrNetwork, id, err)
		}
		e.removePaddock(id)
		e.log.Info("paddock deleted", zap.Stringer("id", id))
		e.notify(LevelSuccess, "Potrero eliminado exitosamente")
		return 1, nil
	}
	if len(e.selFeatures) == 0 {
		return 0, ErrNothingSelected
	}
	n := 0
	for _, id := range e.SelectedFeatures() {
		if e.removeFeature(id) {
			n++
		}
	}
	e.selFeatures = map[FeatureID]bool{}
	e.notify(LevelSuccess, "Elementos eliminados del mapa")
	return n, nil
}
