package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/amalg/go-bombs/internal/config"
	"github.com/amalg/go-bombs/internal/terrain"
	"github.com/amalg/go-bombs/internal/ui"
)

var playCmd = &cobra.Command{
	Use:   "play [terrain-file]",
	Short: "Open a terrain in the interactive sandbox",
	Long: `Open a terrain file in the interactive sandbox. Without a file,
a blank terrain sized from the config is used.

Controls:
  Arrows/hjkl  - Move cursor
  Space/click  - Detonate at cell
  b / w / e    - Place bomb / place wall / erase
  c            - Clear flames
  s            - Save terrain
  q            - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		if flagConfig != "" {
			return err
		}
		log.Warn("ignoring broken config, using defaults", "err", err)
	}

	var t *terrain.Terrain
	savePath := "terrain.txt"
	if len(args) == 1 {
		savePath = args[0]
		if t, err = terrain.Load(args[0]); err != nil {
			return err
		}
	} else {
		t = terrain.New(cfg.Terrain.Width, cfg.Terrain.Height)
	}

	model := ui.NewModel(t, savePath, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
