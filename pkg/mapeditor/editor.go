// Package mapeditor implements the paddock map editor: a fixed 20×20 grid of
// paddocks and decorative features with tool placement, drag relocation,
// nearest free cell search and a persisted layout.
//
// An Editor is not safe for concurrent use. Dispatcher serialises commands
// for callers that share one editor across goroutines.
package mapeditor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pasture/pkg/layout/repository"
)

// LayoutKey is the fixed storage key of the saved layout.
const LayoutKey = "potrerosMapLayout"

// PaddockSource is the backend that owns paddock existence.
type PaddockSource interface {
	List(ctx context.Context) ([]PaddockRecord, error)
	Delete(ctx context.Context, id PaddockID) error
}

type Tool string

const ToolSelect Tool = "select"

func ParseTool(s string) (Tool, error) {
	if Tool(s) == ToolSelect || FeatureType(s).Valid() {
		return Tool(s), nil
	}
	return "", ErrInvalidTool
}

type Editor struct {
	grid     Grid
	paddocks []*Paddock
	byID     map[PaddockID]*Paddock
	features map[FeatureType][]Feature

	tool        Tool
	selPaddock  *PaddockID
	selFeatures map[FeatureID]bool
	drag        *DragSession

	mapper   CoordinateMapper
	store    repository.Store
	source   PaddockSource
	notifier Notifier
	renderer Renderer
	log      *zap.Logger

	layoutKey string
	now       func() time.Time
	newID     func() FeatureID
}

type Option func(*Editor)

func WithStore(s repository.Store) Option       { return func(e *Editor) { e.store = s } }
func WithSource(s PaddockSource) Option         { return func(e *Editor) { e.source = s } }
func WithNotifier(n Notifier) Option            { return func(e *Editor) { e.notifier = n } }
func WithRenderer(r Renderer) Option            { return func(e *Editor) { e.renderer = r } }
func WithMapper(m CoordinateMapper) Option      { return func(e *Editor) { e.mapper = m } }
func WithLayoutKey(k string) Option             { return func(e *Editor) { e.layoutKey = k } }
func WithClock(now func() time.Time) Option     { return func(e *Editor) { e.now = now } }
func WithIDGenerator(f func() FeatureID) Option { return func(e *Editor) { e.newID = f } }

func WithLogger(l *zap.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

func New(opts ...Option) *Editor {
	e := &Editor{
		byID:        map[PaddockID]*Paddock{},
		features:    map[FeatureType][]Feature{},
		selFeatures: map[FeatureID]bool{},
		tool:        ToolSelect,
		mapper:      DefaultSurface,
		notifier:    NotifierFunc(func(Notification) {}),
		renderer:    NopRenderer{},
		log:         zap.NewNop(),
		layoutKey:   LayoutKey,
		now:         time.Now,
		newID:       func() FeatureID { return FeatureID(uuid.NewString()) },
	}
	for _, o := range opts {
		o(e)
	}
	e.log = e.log.Named("mapeditor")
	return e
}

func (e *Editor) notify(level Level, msg string) {
	e.notifier.Notify(Notification{Level: level, Message: msg})
}

func (e *Editor) setCell(row, col int, o Occupant) {
	e.grid.set(row, col, o)
	e.renderer.CellChanged(Index(row, col), o)
}

func (e *Editor) clearCell(row, col int) {
	e.grid.clear(row, col)
	e.renderer.CellChanged(Index(row, col), Occupant{})
}

// IsOccupied is the occupancy query for in-range cells.
func (e *Editor) IsOccupied(row, col int, excluding *PaddockID) bool {
	return e.grid.IsOccupied(row, col, excluding)
}

func (e *Editor) Tool() Tool { return e.tool }

// SelectTool activates a palette tool. Switching tools keeps the current
// selection.
func (e *Editor) SelectTool(t Tool) error {
	if _, err := ParseTool(string(t)); err != nil {
		return err
	}
	e.tool = t
	e.log.Debug("tool selected", zap.String("tool", string(t)))
	return nil
}

// SetMapper replaces the surface geometry used by drag steps, e.g. after the
// map container was resized.
func (e *Editor) SetMapper(m CoordinateMapper) {
	if m != nil {
		e.mapper = m
	}
}

func (e *Editor) Paddock(id PaddockID) (Paddock, bool) {
	p, ok := e.byID[id]
	if !ok {
		return Paddock{}, false
	}
	return *p, true
}

// Paddocks returns the paddocks in placement order.
func (e *Editor) Paddocks() []Paddock {
	out := make([]Paddock, 0, len(e.paddocks))
	for _, p := range e.paddocks {
		out = append(out, *p)
	}
	return out
}

// Features returns the features of one type in placement order.
func (e *Editor) Features(t FeatureType) []Feature {
	return append([]Feature(nil), e.features[t]...)
}

func (e *Editor) FeatureAt(row, col int) (Feature, bool) {
	o := e.grid.At(row, col)
	if o.Kind != FeatureOccupant {
		return Feature{}, false
	}
	for _, f := range e.features[o.Type] {
		if f.ID == o.Feature {
			return f, true
		}
	}
	return Feature{}, false
}
