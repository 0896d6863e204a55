// Package export renders a map snapshot as an Excel workbook.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"pasture/pkg/mapeditor"
)

const (
	MapSheet     = "Mapa"
	SummarySheet = "Resumen"
)

// CellName returns the spreadsheet address of a grid cell. The grid starts
// at B2 so row and column headers fit.
func CellName(row, col int) string {
	name, _ := excelize.CoordinatesToCellName(col+2, row+2)
	return name
}

// WriteWorkbook writes one sheet with the grid as drawn and one with counts.
func WriteWorkbook(w io.Writer, s mapeditor.Snapshot) error {
	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName("Sheet1", MapSheet); err != nil {
		return err
	}
	if err := writeGrid(x, s); err != nil {
		return fmt.Errorf("sheet %s: %w", MapSheet, err)
	}
	if _, err := x.NewSheet(SummarySheet); err != nil {
		return err
	}
	if err := writeSummary(x, s); err != nil {
		return fmt.Errorf("sheet %s: %w", SummarySheet, err)
	}
	_, err := x.WriteTo(w)
	return err
}

func writeGrid(x *excelize.File, s mapeditor.Snapshot) error {
	paddockStyle, err := x.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2E7D32"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	featureStyle, err := x.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E3F2FD"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	if err := x.SetColWidth(MapSheet, "A", "U", 5); err != nil {
		return err
	}

	for i := 0; i < mapeditor.GridSize; i++ {
		if err := x.SetCellValue(MapSheet, CellName(-1, i), i); err != nil {
			return err
		}
		if err := x.SetCellValue(MapSheet, CellName(i, -1), i); err != nil {
			return err
		}
	}
	for idx, o := range s.Cells {
		if o.IsEmpty() {
			continue
		}
		row, col := mapeditor.Position(idx)
		cell := CellName(row, col)
		var (
			text  string
			style int
		)
		switch o.Kind {
		case mapeditor.PaddockOccupant:
			p, _ := s.PaddockByID(o.Paddock)
			text, style = p.Abbrev(), paddockStyle
		case mapeditor.FeatureOccupant:
			text, style = o.Type.Code(), featureStyle
		}
		if err := x.SetCellStr(MapSheet, cell, text); err != nil {
			return err
		}
		if err := x.SetCellStyle(MapSheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(x *excelize.File, s mapeditor.Snapshot) error {
	rows := [][]any{{"Elemento", "Cantidad"}}
	for _, t := range mapeditor.FeatureTypes {
		rows = append(rows, []any{t.Label(), s.Stats.Features[t]})
	}
	rows = append(rows,
		[]any{"Total elementos", s.Stats.TotalFeatures},
		[]any{"Potreros", s.Stats.Paddocks},
		[]any{},
		[]any{"Potrero", "Tamaño", "Fila", "Columna"},
	)
	for _, p := range s.Paddocks {
		rows = append(rows, []any{p.Name, p.Size, p.Row, p.Col})
	}
	for i, r := range rows {
		if len(r) == 0 {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := x.SetSheetRow(SummarySheet, cell, &r); err != nil {
			return err
		}
	}
	return x.SetColWidth(SummarySheet, "A", "A", 18)
}
