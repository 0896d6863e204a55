package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pasture/pkg/mapeditor"
	"pasture/pkg/paddock/client"
)

var (
	paddocksFormat   string
	paddocksFromPage bool
)

var paddocksCmd = &cobra.Command{
	Use:   "paddocks",
	Short: "List the paddocks the backend knows about",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		src, err := paddockSource()
		if err != nil {
			return err
		}
		if src == nil {
			return errors.New("no paddock backend (set BACKEND_URL, --backend or --local)")
		}

		var records []mapeditor.PaddockRecord
		if c, ok := src.(*client.Client); ok && paddocksFromPage {
			records, err = c.Sidebar(ctx)
		} else {
			records, err = src.List(ctx)
		}
		if err != nil {
			return err
		}
		return writePaddocks(cmd.OutOrStdout(), records, paddocksFormat)
	},
}

func writePaddocks(w io.Writer, records []mapeditor.PaddockRecord, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "yaml":
		type row struct {
			ID       int64   `yaml:"id"`
			Name     string  `yaml:"nombre"`
			Hectares float64 `yaml:"hectareas"`
		}
		rows := make([]row, 0, len(records))
		for _, r := range records {
			rows = append(rows, row{ID: int64(r.ID), Name: r.Name, Hectares: r.Hectares})
		}
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNOMBRE\tSUPERFICIE")
		for _, r := range records {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.ID, r.Name, r.SizeLabel())
		}
		fmt.Fprintf(tw, "\t%d potreros\t\n", len(records))
		return tw.Flush()
	}
	return fmt.Errorf("unknown format %q (text, json, yaml)", format)
}
