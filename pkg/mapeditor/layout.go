package mapeditor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"pasture/pkg/layout/repository"
)

type SavedFeature struct {
	Row int       `json:"row"`
	Col int       `json:"col"`
	ID  FeatureID `json:"id"`
}

// Layout is the persisted snapshot of feature and paddock positions.
type Layout struct {
	Elements  map[string][]SavedFeature `json:"elements"`
	Potreros  []Paddock                 `json:"potreros"`
	Timestamp string                    `json:"timestamp"`
}

// Count returns the number of saved features of type t.
func (l Layout) Count(t FeatureType) int { return len(l.Elements[t.Collection()]) }

func EncodeLayout(l Layout) ([]byte, error) { return json.Marshal(l) }

func DecodeLayout(b []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(b, &l); err != nil {
		return Layout{}, fmt.Errorf("decode layout: %w", err)
	}
	return l, nil
}

// Layout captures the current state. Every feature collection is present,
// empty ones included.
func (e *Editor) Layout() Layout {
	l := Layout{
		Elements:  make(map[string][]SavedFeature, len(FeatureTypes)),
		Potreros:  e.Paddocks(),
		Timestamp: e.now().UTC().Format(time.RFC3339Nano),
	}
	for _, t := range FeatureTypes {
		list := make([]SavedFeature, 0, len(e.features[t]))
		for _, f := range e.features[t] {
			list = append(list, SavedFeature{Row: f.Row, Col: f.Col, ID: f.ID})
		}
		l.Elements[t.Collection()] = list
	}
	return l
}

// SaveLayout writes the current layout under the fixed key.
func (e *Editor) SaveLayout(ctx context.Context) error {
	if e.store == nil {
		return fmt.Errorf("%w: no layout store configured", ErrStorage)
	}
	blob, err := EncodeLayout(e.Layout())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := e.store.Set(ctx, e.layoutKey, blob); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	e.log.Info("layout saved", zap.String("key", e.layoutKey), zap.Int("bytes", len(blob)))
	e.notify(LevelSuccess, "Mapa guardado correctamente")
	return nil
}

// LoadLayout restores the saved layout over the current paddock placement.
// It reports false when nothing was saved. A blob that fails to decode
// leaves the editor untouched.
func (e *Editor) LoadLayout(ctx context.Context) (bool, error) {
	if e.store == nil {
		return false, fmt.Errorf("%w: no layout store configured", ErrStorage)
	}
	blob, err := e.store.Get(ctx, e.layoutKey)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	l, err := DecodeLayout(blob)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	e.ApplyLayout(l)
	e.notify(LevelInfo, "Mapa cargado correctamente")
	return true, nil
}

// ApplyLayout replaces all features with the saved ones and moves known
// paddocks to their saved cells when free. Features that no longer fit and
// paddocks that are unknown or blocked keep out of the way.
//
// Saved cells may only become free once other paddocks have moved, so the
// paddock overlay repeats until a pass moves nothing, and features that hit
// an occupied cell get one more try after it.
func (e *Editor) ApplyLayout(l Layout) {
	e.clearFeatures()

	seen := map[FeatureID]bool{}
	var blocked []Feature
	for _, t := range FeatureTypes {
		for _, sf := range l.Elements[t.Collection()] {
			f := Feature{ID: sf.ID, Type: t, Row: sf.Row, Col: sf.Col}
			if seen[f.ID] {
				f.ID = ""
			}
			placed, err := e.placeFeature(f)
			if errors.Is(err, ErrCellOccupied) {
				if f.ID != "" {
					seen[f.ID] = true
				}
				blocked = append(blocked, f)
				continue
			}
			if err != nil {
				e.log.Info("saved feature dropped", zap.String("type", string(t)), zap.Error(err))
				continue
			}
			seen[placed.ID] = true
		}
	}
	for _, key := range unknownCollections(l.Elements) {
		e.log.Info("unknown feature collection skipped", zap.String("collection", key))
	}

	pending := l.Potreros
	for len(pending) > 0 {
		var next []Paddock
		for _, sp := range pending {
			p, ok := e.byID[sp.ID]
			if !ok || !InBounds(sp.Row, sp.Col) {
				continue
			}
			if p.Row == sp.Row && p.Col == sp.Col {
				continue
			}
			if e.grid.IsOccupied(sp.Row, sp.Col, &p.ID) {
				next = append(next, sp)
				continue
			}
			e.movePaddock(p, sp.Row, sp.Col)
		}
		if len(next) == len(pending) {
			for _, sp := range next {
				e.log.Debug("saved paddock cell taken",
					zap.Stringer("id", sp.ID), zap.Int("row", sp.Row), zap.Int("col", sp.Col))
			}
			break
		}
		pending = next
	}

	for _, f := range blocked {
		if _, err := e.placeFeature(f); err != nil {
			e.log.Info("saved feature dropped", zap.String("type", string(f.Type)), zap.Error(err))
		}
	}
}

func unknownCollections(elements map[string][]SavedFeature) []string {
	var out []string
	for k := range elements {
		if _, ok := FeatureTypeFromCollection(k); !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Bootstrap places the backend paddock list at default positions and then
// overlays the saved layout. The order matters: saved positions only apply
// to paddocks already on the grid.
func (e *Editor) Bootstrap(ctx context.Context, records []PaddockRecord) error {
	e.ApplyPaddockList(records)
	_, err := e.LoadLayout(ctx)
	return err
}
