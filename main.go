package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvzen/projpick/internal/config"
	"github.com/vvzen/projpick/internal/eventbus"
	"github.com/vvzen/projpick/internal/source"
	"github.com/vvzen/projpick/internal/ui"
)

func main() {
	// Parse command line arguments
	var baseDir string
	var configPath string
	flag.StringVar(&baseDir, "dir", "", "Directory whose subdirectories become candidates")
	flag.StringVar(&baseDir, "d", "", "Directory whose subdirectories become candidates (shorthand)")
	flag.StringVar(&configPath, "config", "", "Path to a config file")
	flag.Parse()

	// If no directory specified, check for remaining args
	if baseDir == "" && flag.NArg() > 0 {
		baseDir = flag.Arg(0)
	}

	// Set up logging. The TUI owns the terminal, so diagnostics go to a
	// file instead of stderr.
	logFile, err := os.OpenFile("projpick.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Log picker lifecycle events as they happen
	subscribeLogging(bus)

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg := loadOrCreateConfig(configSvc, configPath)

	// Command line overrides config
	if baseDir != "" {
		absDir, err := filepath.Abs(baseDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving path: %v\n", err)
			os.Exit(1)
		}
		cfg.BaseDir = absDir
	}

	// Pick the candidate source: a directory listing when a base dir is
	// set, the configured static list otherwise
	var src source.Source
	if cfg.BaseDir != "" {
		src = source.NewDirectory(cfg.BaseDir)
	} else {
		src = source.NewStatic(cfg.Candidates)
	}

	// Create UI model
	log.Printf("Creating UI model...")
	uiModel, err := ui.NewModel(cfg, src, bus)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading candidates: %v\n", err)
		os.Exit(1)
	}

	// Run the UI
	log.Printf("Starting UI...")
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Autosave config if enabled
	if cfg.UISettings.AutosaveOnExit {
		if err := saveConfig(configSvc, cfg, configPath); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	}

	// Hand the final query to the calling process on stdout, the way a
	// shell expects from a picker
	if m, ok := finalModel.(*ui.Model); ok {
		fmt.Println(m.FinalQuery())
	}
}

// subscribeLogging wires diagnostic log lines to picker events
func subscribeLogging(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventPickStarted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PickStartedEvent); ok {
			log.Printf("Pick started with %d candidates", event.CandidateCount)
		}
	})
	bus.Subscribe(eventbus.EventFilterApplied, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FilterAppliedEvent); ok {
			log.Printf("Filter %q matched %d candidates", event.Query, event.MatchCount)
		}
	})
	bus.Subscribe(eventbus.EventSourceError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SourceErrorEvent); ok {
			log.Printf("Source error: %s: %v", event.Message, event.Err)
		}
	})
	bus.Subscribe(eventbus.EventPickFinished, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PickFinishedEvent); ok {
			log.Printf("Pick finished with query %q", event.Query)
		}
	})
}

// loadOrCreateConfig loads the config file or creates a default one
func loadOrCreateConfig(configSvc config.ConfigService, path string) *config.Config {
	if path != "" {
		if cfg, err := configSvc.LoadFromPath(path); err == nil {
			log.Printf("Loaded config from %s", path)
			return cfg
		} else {
			log.Printf("Could not load config from %s: %v", path, err)
		}
		return config.DefaultConfig()
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}

// saveConfig writes the config back to where it was loaded from
func saveConfig(configSvc config.ConfigService, cfg *config.Config, path string) error {
	if path != "" {
		return configSvc.SaveToPath(cfg, path)
	}
	return configSvc.Save(cfg)
}
