package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pasture/pkg/mapeditor"
)

var showFormat string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved map",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()
		snap, err := loadSnapshot(ctx)
		if err != nil {
			return err
		}
		return writeSnapshot(cmd.OutOrStdout(), snap, showFormat)
	},
}

type placedFeature struct {
	ID  string `json:"id" yaml:"id"`
	Row int    `json:"row" yaml:"row"`
	Col int    `json:"col" yaml:"col"`
}

type placedPaddock struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Size string `json:"size" yaml:"size"`
	Row  int    `json:"row" yaml:"row"`
	Col  int    `json:"col" yaml:"col"`
}

// mapSummary is the owner's map without the per-cell grid.
type mapSummary struct {
	Owner    string                     `json:"owner" yaml:"owner"`
	Total    int                        `json:"total_features" yaml:"total_features"`
	Features map[string][]placedFeature `json:"features" yaml:"features"`
	Paddocks []placedPaddock            `json:"paddocks" yaml:"paddocks"`
}

func summarize(snap mapeditor.Snapshot) mapSummary {
	s := mapSummary{
		Owner:    owner,
		Total:    snap.Stats.TotalFeatures,
		Features: make(map[string][]placedFeature, len(mapeditor.FeatureTypes)),
		Paddocks: make([]placedPaddock, 0, len(snap.Paddocks)),
	}
	for _, t := range mapeditor.FeatureTypes {
		fs := make([]placedFeature, 0, len(snap.Features[t]))
		for _, f := range snap.Features[t] {
			fs = append(fs, placedFeature{ID: string(f.ID), Row: f.Row, Col: f.Col})
		}
		s.Features[t.Collection()] = fs
	}
	for _, p := range snap.Paddocks {
		s.Paddocks = append(s.Paddocks, placedPaddock{ID: int64(p.ID), Name: p.Name, Size: p.Size, Row: p.Row, Col: p.Col})
	}
	sort.Slice(s.Paddocks, func(i, j int) bool { return s.Paddocks[i].ID < s.Paddocks[j].ID })
	return s
}

func writeSnapshot(w io.Writer, snap mapeditor.Snapshot, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summarize(snap))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(summarize(snap)); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		_, err := io.WriteString(w, plainGrid(snap))
		return err
	}
	return fmt.Errorf("unknown format %q (text, json, yaml)", format)
}

// plainGrid draws the map with two columns per cell, row and column
// numbers on the edges, followed by a legend.
func plainGrid(snap mapeditor.Snapshot) string {
	names := make(map[mapeditor.PaddockID]string, len(snap.Paddocks))
	for _, p := range snap.Paddocks {
		names[p.ID] = p.Abbrev()
	}

	var b strings.Builder
	b.WriteString("   ")
	for c := 0; c < mapeditor.GridSize; c++ {
		fmt.Fprintf(&b, "%-2d", c%10)
	}
	b.WriteString("\n")
	for r := 0; r < mapeditor.GridSize; r++ {
		fmt.Fprintf(&b, "%2d ", r)
		for c := 0; c < mapeditor.GridSize; c++ {
			o := snap.At(r, c)
			switch o.Kind {
			case mapeditor.FeatureOccupant:
				b.WriteString(o.Type.Code())
			case mapeditor.PaddockOccupant:
				ab := []rune(names[o.Paddock] + "  ")
				b.WriteString(string(ab[:2]))
			default:
				b.WriteString(". ")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, t := range mapeditor.FeatureTypes {
		fmt.Fprintf(&b, "%s %-9s %d\n", t.Code(), t.Label(), snap.Stats.Features[t])
	}
	fmt.Fprintf(&b, "Total elementos: %d\n", snap.Stats.TotalFeatures)
	if len(snap.Paddocks) > 0 {
		b.WriteString("\nPotreros:\n")
		for _, p := range summarize(snap).Paddocks {
			fmt.Fprintf(&b, "  %-3s %-20s %-10s [%d, %d]\n", names[mapeditor.PaddockID(p.ID)], p.Name, p.Size, p.Row, p.Col)
		}
	}
	return b.String()
}
