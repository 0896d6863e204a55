package mapeditor

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const (
	packPadding = 2
	packSpacing = 3
	packMaxCell = GridSize - 3
)

// DefaultPosition packs paddocks row-major with a margin and fixed spacing,
// clamped so markers stay clear of the far edges.
func DefaultPosition(index int) (row, col int) {
	maxCols := (GridSize - packPadding*2) / packSpacing
	row = packPadding + (index/maxCols)*packSpacing
	col = packPadding + (index%maxCols)*packSpacing
	return min(row, packMaxCell), min(col, packMaxCell)
}

// ApplyPaddockList replaces every paddock marker with the given list at
// default positions. It returns how many were placed.
func (e *Editor) ApplyPaddockList(records []PaddockRecord) int {
	e.clearPaddocks()
	placed := 0
	for i, r := range records {
		row, col := DefaultPosition(i)
		if e.PlacePaddock(r.ID, r.Name, r.SizeLabel(), row, col) {
			placed++
		}
	}
	e.log.Info("paddocks placed", zap.Int("placed", placed), zap.Int("listed", len(records)))
	return placed
}

// RefreshFromServer fetches the paddock list and re-places all paddocks. On
// failure the grid is left as it was.
func (e *Editor) RefreshFromServer(ctx context.Context) (int, error) {
	if e.source == nil {
		return 0, fmt.Errorf("%w: no paddock backend configured", ErrNetwork)
	}
	records, err := e.source.List(ctx)
	return e.FinishRefresh(records, err)
}

// FinishRefresh applies the outcome of a paddock list fetch that ran
// elsewhere.
func (e *Editor) FinishRefresh(records []PaddockRecord, fetchErr error) (int, error) {
	if fetchErr != nil {
		return 0, fmt.Errorf("%w: %v", ErrNetwork, fetchErr)
	}
	n := e.ApplyPaddockList(records)
	e.notify(LevelInfo, "Lista de potreros actualizada")
	return n, nil
}
