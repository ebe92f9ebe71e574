package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/laneboard/internal/board"
	"github.com/jask/laneboard/internal/config"
	"github.com/jask/laneboard/internal/logging"
	"github.com/jask/laneboard/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := config.EnsureFile(cfg); err != nil {
		log.Printf("warn: write default config: %v", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// the one store instance for the process; every view holds this reference
	store := board.NewStore()

	p := tea.NewProgram(tui.New(cfg, store, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
