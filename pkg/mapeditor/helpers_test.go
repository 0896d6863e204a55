package mapeditor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pasture/pkg/layout/repository"
	"pasture/pkg/layout/repositoryImp"
)

type fakeSource struct {
	records []PaddockRecord
	err     error
	deleted []PaddockID
}

func (f *fakeSource) List(context.Context) ([]PaddockRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]PaddockRecord(nil), f.records...), nil
}

func (f *fakeSource) Delete(_ context.Context, id PaddockID) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk unavailable")
}

func (failingStore) Set(context.Context, string, []byte) error {
	return errors.New("quota exceeded")
}

type recordingRenderer struct {
	pulses  [][2]int
	markers map[PaddockID]MarkerStyle
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{markers: map[PaddockID]MarkerStyle{}}
}

func (r *recordingRenderer) CellChanged(int, Occupant) {}

func (r *recordingRenderer) MarkerChanged(id PaddockID, s MarkerStyle) { r.markers[id] = s }

func (r *recordingRenderer) Pulse(row, col int) { r.pulses = append(r.pulses, [2]int{row, col}) }

func threePaddocks() []PaddockRecord {
	return []PaddockRecord{
		{ID: 1, Name: "La Loma", Hectares: 12.5},
		{ID: 2, Name: "El Bajo", Hectares: 8},
		{ID: 3, Name: "Rincón", Hectares: 4.25},
	}
}

func sequentialIDs() func() FeatureID {
	n := 0
	return func() FeatureID {
		n++
		return FeatureID(fmt.Sprintf("f%03d", n))
	}
}

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestEditor(opts ...Option) *Editor {
	base := []Option{
		WithStore(repositoryImp.NewMemory()),
		WithIDGenerator(sequentialIDs()),
		WithClock(func() time.Time { return fixedNow }),
	}
	return New(append(base, opts...)...)
}

// cellCenter returns the pixel center of a cell on DefaultSurface.
func cellCenter(row, col int) (x, y float64) {
	return float64(col)*20 + 10, float64(row)*20 + 10
}

var _ repository.Store = failingStore{}
