package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/turbo-rush/internal/audio"
	"github.com/vovakirdan/turbo-rush/internal/config"
	"github.com/vovakirdan/turbo-rush/internal/core"
	"github.com/vovakirdan/turbo-rush/internal/games/roadrush"
	"github.com/vovakirdan/turbo-rush/internal/platform/tui"
)

func runGame(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source)

	if flagMute {
		cfg.Audio.Enabled = false
	}

	// Board is the lane plus the score line
	if err := checkTerminal(cfg.Lane.Width, cfg.Lane.Height+1); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	notifier := audio.New(cfg.Audio, logger)
	if err := notifier.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
	}
	defer notifier.Close()
	game := roadrush.New(cfg, notifier)

	rc := core.RuntimeConfig{
		TickInterval: cfg.TickInterval(),
		Seed:         flagSeed,
	}
	state, err := tui.Run(game, rc, tui.Options{
		HoldWindow: cfg.HoldWindow(),
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if state.GameOver() {
		fmt.Printf("Game Over! Final Score: %d\n", state.Score)
		return
	}
	fmt.Printf("Final Score: %d\n", state.Score)
}

// checkTerminal rejects non-interactive output and terminals too small
// for the board plus its help line.
func checkTerminal(boardW, boardH int) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("turborush needs an interactive terminal")
	}

	needW, needH := boardW, boardH+1 // Help line
	if w, h, err := term.GetSize(fd); err == nil && (w < needW || h < needH) {
		return fmt.Errorf("terminal too small: need %dx%d, have %dx%d", needW, needH, w, h)
	}
	return nil
}
