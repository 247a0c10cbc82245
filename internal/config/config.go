package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/vvzen/projpick/internal/eventbus"
)

// Matcher names accepted in the config file
const (
	MatcherSubstring = "substring"
	MatcherFuzzy     = "fuzzy"
)

// Refetch policies for the candidate source
const (
	RefetchAlways           = "always"
	RefetchOnEmptyQueryOnly = "on_empty_query_only"
)

// Config represents the application configuration
type Config struct {
	Version       int        `toml:"version"`
	BaseDir       string     `toml:"base_dir"`       // directory source root; empty means static list
	Candidates    []string   `toml:"candidates"`     // static candidate list
	Matcher       string     `toml:"matcher"`        // "substring" or "fuzzy"
	RefetchPolicy string     `toml:"refetch_policy"` // "always" or "on_empty_query_only"
	UISettings    UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowIndices    bool `toml:"show_indices"`
	AutosaveOnExit bool `toml:"autosave_on_exit"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	projpickDir := filepath.Join(configDir, "projpick")
	os.MkdirAll(projpickDir, 0755)

	return &configService{
		filePath: filepath.Join(projpickDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		cfg := DefaultConfig()

		if cs.bus != nil {
			cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
		}

		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	normalize(&cfg)

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// normalize fills in zero values with usable defaults
func normalize(cfg *Config) {
	if cfg.Matcher == "" {
		cfg.Matcher = MatcherSubstring
	}
	if cfg.RefetchPolicy == "" {
		cfg.RefetchPolicy = RefetchAlways
	}
	if len(cfg.Candidates) == 0 && cfg.BaseDir == "" {
		cfg.Candidates = DefaultCandidates()
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:       1,
		Candidates:    DefaultCandidates(),
		Matcher:       MatcherSubstring,
		RefetchPolicy: RefetchAlways,
		UISettings: UISettings{
			ShowIndices:    true,
			AutosaveOnExit: true,
		},
	}
}

// DefaultCandidates returns the built-in project list used when no
// base directory or candidate list is configured
func DefaultCandidates() []string {
	return []string{
		"some_very_long_project_name",
		"some_other_long_project_name",
		"project_001",
		"project_002",
		"man_vs_bee",
		"pipeline_testing_2022_2",
		"asset_library_2024",
		"asset_library_2023",
		"rt_sandbox_2024",
		"rnd_sandbox_2024",
	}
}
