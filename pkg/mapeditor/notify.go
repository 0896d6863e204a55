package mapeditor

import (
	"go.uber.org/zap"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelDanger  Level = "danger"
)

type Notification struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Notifier surfaces transient user-facing messages.
type Notifier interface {
	Notify(n Notification)
}

type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// LogNotifier writes notifications to a zap logger.
type LogNotifier struct{ log *zap.Logger }

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogNotifier{log: log.Named("notify")}
}

func (l *LogNotifier) Notify(n Notification) {
	fields := []zap.Field{zap.String("level", string(n.Level)), zap.String("message", n.Message)}
	switch n.Level {
	case LevelDanger:
		l.log.Error("notification", fields...)
	case LevelWarning:
		l.log.Warn("notification", fields...)
	default:
		l.log.Info("notification", fields...)
	}
}

// recorder buffers notifications for the command in flight and forwards
// them downstream.
type recorder struct {
	next    Notifier
	pending []Notification
}

func (r *recorder) Notify(n Notification) {
	r.pending = append(r.pending, n)
	if r.next != nil {
		r.next.Notify(n)
	}
}

func (r *recorder) drain() []Notification {
	out := r.pending
	r.pending = nil
	return out
}

// MarkerStyle is the visual state of a paddock marker.
type MarkerStyle struct {
	Elevated    bool    `json:"elevated"`
	Highlighted bool    `json:"highlighted"`
	Opacity     float64 `json:"opacity"`
}

var (
	normalMarker   = MarkerStyle{Opacity: 1}
	selectedMarker = MarkerStyle{Opacity: 1, Highlighted: true}
	draggedMarker  = MarkerStyle{Elevated: true, Highlighted: true, Opacity: 0.8}
)

// Renderer receives visual updates. Surfaces that redraw from Snapshot can
// use NopRenderer.
type Renderer interface {
	CellChanged(index int, o Occupant)
	MarkerChanged(id PaddockID, style MarkerStyle)
	Pulse(row, col int)
}

type NopRenderer struct{}

func (NopRenderer) CellChanged(int, Occupant)           {}
func (NopRenderer) MarkerChanged(PaddockID, MarkerStyle) {}
func (NopRenderer) Pulse(int, int)                       {}
