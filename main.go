package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"bookgrid/internal/config"
	"bookgrid/internal/eventbus"
	"bookgrid/internal/logger"
	"bookgrid/internal/openlibrary"
	"bookgrid/internal/search"
	"bookgrid/internal/ui"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to config file (default: user config dir)")
	flag.Parse()

	// Set up logging; the TUI owns stdout so logs go to a file
	closeLog := logger.Setup("bookgrid.log")
	defer closeLog()

	// Load configuration
	var configSvc config.ConfigService
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	} else {
		configSvc = config.NewConfigService()
	}
	cfg, err := configSvc.Load()
	if err != nil {
		logrus.Warnf("error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()
	bus.Publish(eventbus.ConfigLoadedEvent{Path: configSvc.Path()})

	// Initialize services
	client := openlibrary.NewClient(cfg.API.BaseURL, cfg.API.CoversBaseURL, cfg.API.SiteBaseURL)
	coordinator := search.NewCoordinator(bus, client)
	defer coordinator.Close()

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, configSvc, coordinator, client)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			logrus.Warn("event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventSearchStarted, forward)
	bus.Subscribe(eventbus.EventSearchCompleted, forward)
	bus.Subscribe(eventbus.EventSearchFailed, forward)
	bus.Subscribe(eventbus.EventSearchCleared, forward)
	bus.Subscribe(eventbus.EventError, forward)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	close(eventChan)
}
