package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pasture/pkg/export"
)

var exportPath string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the map to an Excel workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()
		snap, err := loadSnapshot(ctx)
		if err != nil {
			return err
		}

		f, err := os.Create(exportPath)
		if err != nil {
			return err
		}
		if err := export.WriteWorkbook(f, snap); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		logger.Info("map exported", zap.String("path", exportPath), zap.Int("features", snap.Stats.TotalFeatures))
		fmt.Fprintf(cmd.OutOrStdout(), "Mapa exportado a %s\n", exportPath)
		return nil
	},
}
