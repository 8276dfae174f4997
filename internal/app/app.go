package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/calebmor/varmenu/internal/catalog"
	"github.com/calebmor/varmenu/internal/logging/events"
	"github.com/calebmor/varmenu/internal/token"
	"github.com/calebmor/varmenu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	CatalogPath       string
	IncludeParents    bool
	TokenOpen         string
	TokenClose        string
	InitialText       string
	Width             int
	Height            int
	ShowFooter        bool
	Verbose           bool
	CommitFocusBuffer bool
	WatchInterval     time.Duration
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	events.Catalog.Loaded(cfg.CatalogPath, len(catalog.Flatten(cat, cfg.IncludeParents)))

	var watcher *catalog.Watcher
	if cfg.WatchInterval > 0 {
		watcher = catalog.NewWatcher(cfg.CatalogPath, cfg.WatchInterval)
		defer watcher.Stop()
	}

	model, err := ui.NewModel(cat, watcher, ui.Options{
		InitialText:       cfg.InitialText,
		Token:             token.Wrap{Open: cfg.TokenOpen, Close: cfg.TokenClose},
		IncludeParents:    cfg.IncludeParents,
		Width:             cfg.Width,
		Height:            cfg.Height,
		ShowFooter:        cfg.ShowFooter,
		Verbose:           cfg.Verbose,
		CommitFocusBuffer: cfg.CommitFocusBuffer,
	})
	if err != nil {
		return fmt.Errorf("initialise ui: %w", err)
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	events.App.Exit(err)
	return err
}
