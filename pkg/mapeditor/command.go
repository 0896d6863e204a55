package mapeditor

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type CommandKind string

const (
	CmdPlaceFeature   CommandKind = "place_feature"
	CmdPlacePaddock   CommandKind = "place_paddock"
	CmdStartDrag      CommandKind = "start_drag"
	CmdDragStep       CommandKind = "drag_step"
	CmdEndDrag        CommandKind = "end_drag"
	CmdSave           CommandKind = "save"
	CmdLoad           CommandKind = "load"
	CmdRefresh        CommandKind = "refresh"
	CmdSelectTool     CommandKind = "select_tool"
	CmdClickCell      CommandKind = "click_cell"
	CmdSelectPaddock  CommandKind = "select_paddock"
	CmdClearMap       CommandKind = "clear_map"
	CmdDeleteSelected CommandKind = "delete_selected"
	CmdSetSurface     CommandKind = "set_surface"
)

// FetchResult carries a paddock list fetched outside the dispatcher, so a
// Refresh command can apply it without blocking on the network.
type FetchResult struct {
	Records []PaddockRecord
	Err     error
}

// Command is one user action. Only the fields relevant to Kind are read.
type Command struct {
	Kind     CommandKind `json:"kind"`
	Tool     Tool        `json:"tool,omitempty"`
	Type     FeatureType `json:"type,omitempty"`
	Row      int         `json:"row"`
	Col      int         `json:"col"`
	Additive bool        `json:"additive,omitempty"`
	Paddock  PaddockID   `json:"paddock,omitempty"`
	Name     string      `json:"name,omitempty"`
	Size     string      `json:"size,omitempty"`
	X        float64     `json:"x"`
	Y        float64     `json:"y"`
	Surface  *BoxMapper  `json:"surface,omitempty"`

	Fetched *FetchResult `json:"-"`
}

// Result is what a command produced. OK is false when the command failed or
// had no effect.
type Result struct {
	OK            bool           `json:"ok"`
	Feature       FeatureID      `json:"feature,omitempty"`
	Count         int            `json:"count,omitempty"`
	Notifications []Notification `json:"notifications"`
}

// Dispatcher runs commands against one editor, one at a time, converting
// errors into notifications.
type Dispatcher struct {
	mu  sync.Mutex
	ed  *Editor
	rec *recorder
	log *zap.Logger
}

// NewDispatcher wraps an editor built from opts. The notifier given through
// opts still receives every notification.
func NewDispatcher(opts ...Option) *Dispatcher {
	ed := New(opts...)
	rec := &recorder{next: ed.notifier}
	ed.notifier = rec
	return &Dispatcher{ed: ed, rec: rec, log: ed.log.Named("dispatch")}
}

func (d *Dispatcher) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ed.Snapshot()
}

func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) Result {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.rec.drain()
	res, err := d.run(ctx, cmd)
	if err != nil {
		res.OK = false
		d.log.Debug("command failed", zap.String("kind", string(cmd.Kind)), zap.Error(err))
		d.ed.notifier.Notify(Notification{Level: levelFor(err), Message: messageFor(err)})
	}
	res.Notifications = d.rec.drain()
	if res.Notifications == nil {
		res.Notifications = []Notification{}
	}
	return res
}

func (d *Dispatcher) run(ctx context.Context, cmd Command) (Result, error) {
	e := d.ed
	switch cmd.Kind {
	case CmdPlaceFeature:
		id, err := e.PlaceFeature(cmd.Type, cmd.Row, cmd.Col)
		return Result{OK: err == nil, Feature: id}, err
	case CmdPlacePaddock:
		_, _, err := e.placePaddock(Paddock{ID: cmd.Paddock, Name: cmd.Name, Size: cmd.Size, Row: cmd.Row, Col: cmd.Col})
		return Result{OK: err == nil}, err
	case CmdStartDrag:
		if cmd.Surface != nil {
			e.SetMapper(*cmd.Surface)
		}
		return Result{OK: e.StartDrag(cmd.Paddock, cmd.X, cmd.Y)}, nil
	case CmdDragStep:
		return Result{OK: e.DragTo(cmd.X, cmd.Y)}, nil
	case CmdEndDrag:
		return Result{OK: e.EndDrag()}, nil
	case CmdSave:
		err := e.SaveLayout(ctx)
		return Result{OK: err == nil}, err
	case CmdLoad:
		ok, err := e.LoadLayout(ctx)
		return Result{OK: ok}, err
	case CmdRefresh:
		var (
			n   int
			err error
		)
		if cmd.Fetched != nil {
			n, err = e.FinishRefresh(cmd.Fetched.Records, cmd.Fetched.Err)
		} else {
			n, err = e.RefreshFromServer(ctx)
		}
		return Result{OK: err == nil, Count: n}, err
	case CmdSelectTool:
		err := e.SelectTool(cmd.Tool)
		return Result{OK: err == nil}, err
	case CmdClickCell:
		id, err := e.ClickCell(cmd.Row, cmd.Col, cmd.Additive)
		return Result{OK: err == nil, Feature: id}, err
	case CmdSelectPaddock:
		err := e.SelectPaddock(cmd.Paddock)
		return Result{OK: err == nil}, err
	case CmdClearMap:
		e.ClearMap()
		return Result{OK: true}, nil
	case CmdDeleteSelected:
		n, err := e.DeleteSelected(ctx)
		return Result{OK: err == nil, Count: n}, err
	case CmdSetSurface:
		if cmd.Surface == nil {
			return Result{}, nil
		}
		e.SetMapper(*cmd.Surface)
		return Result{OK: true}, nil
	default:
		return Result{}, fmt.Errorf("unknown command %q", cmd.Kind)
	}
}

// Bootstrap performs the first-load sequence: default paddock placement,
// then the saved layout overlay.
func (d *Dispatcher) Bootstrap(ctx context.Context, records []PaddockRecord) Result {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.rec.drain()
	res := Result{OK: true, Count: len(records)}
	if err := d.ed.Bootstrap(ctx, records); err != nil {
		res.OK = false
		d.ed.notifier.Notify(Notification{Level: levelFor(err), Message: messageFor(err)})
	}
	res.Notifications = d.rec.drain()
	if res.Notifications == nil {
		res.Notifications = []Notification{}
	}
	return res
}
