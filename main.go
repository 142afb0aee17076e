package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/takaishi/rgnav/config"
	"github.com/takaishi/rgnav/preview"
	"github.com/takaishi/rgnav/results"
	"github.com/takaishi/rgnav/tui"
)

func main() {
	// Parse flags and locate the preview formatter
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Please install bat: https://github.com/sharkdp/bat\n")
		os.Exit(1)
	}

	// Drain the whole match stream before the UI starts
	store, err := results.FromStdin()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// stdin carries the match stream, so keyboard input comes from the
	// controlling terminal instead
	tty, err := os.Open("/dev/tty")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open terminal: %v\n", err)
		os.Exit(1)
	}
	defer tty.Close()

	// Create and start TUI with Bubble Tea
	model := tui.New(store, preview.NewBuilder(cfg.Formatter))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithInput(tty))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
