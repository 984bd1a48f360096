package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amalg/go-tetris/internal/game"
	"github.com/amalg/go-tetris/internal/session"
	"github.com/amalg/go-tetris/internal/ui"
)

func main() {
	defaults := game.DefaultConfig()

	rows := flag.Int("rows", defaults.Rows, "Visible field rows")
	cols := flag.Int("cols", defaults.Columns, "Field columns")
	queue := flag.Int("queue", defaults.QueueLength, "Piece queue length (at least 2)")
	preview := flag.Int("preview", defaults.PreviewSlots, "Upcoming pieces shown")
	fall := flag.Duration("fall", defaults.FallInterval, "Initial fall interval")
	tick := flag.Int("tick", defaults.TickRate, "Loop ticks per second")
	linesPerLevel := flag.Int("lines-per-level", defaults.LinesPerLevel, "Cleared lines per difficulty increase (0 disables)")
	maxLevel := flag.Int("max-level", defaults.MaxLevel, "Maximum difficulty increases per game")
	seed := flag.Uint64("seed", 0, "Piece queue seed (0 picks a random seed)")
	logFile := flag.String("log", "", "Log file path (default: discard logs)")
	flag.Parse()

	config := defaults
	config.Rows = *rows
	config.Columns = *cols
	config.QueueLength = *queue
	config.PreviewSlots = *preview
	config.FallInterval = *fall
	config.TickRate = *tick
	config.LinesPerLevel = *linesPerLevel
	config.MaxLevel = *maxLevel

	// Redirect log output before the session starts. Anything written to
	// stderr corrupts Bubbletea's terminal rendering.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewPCG(*seed, *seed))
	}

	s, err := session.New(config, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The model installs the session callback, so build it before Run.
	model := ui.NewModel(s, ui.DefaultTheme())
	go s.Run(ctx)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
