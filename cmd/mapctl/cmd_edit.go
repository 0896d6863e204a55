package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pasture/pkg/maptui"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the interactive map editor",
	Long: `Opens the full-screen editor. Pick a tool with 1-6, place with enter,
select with s, move paddocks with m or by dragging them with the mouse and
save with w. Press ? for every key.`,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	src, err := paddockSource()
	if err != nil {
		return err
	}
	m := maptui.New(maptui.Options{
		Store:   store,
		Source:  src,
		Logger:  logger,
		Timeout: cfg.BackendTimeout,
	})
	logger.Info("editor started")
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
