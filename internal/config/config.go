package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"bookgrid/internal/domain"
)

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	API     APISettings    `toml:"api"`
	Search  SearchSettings `toml:"search"`
	UI      UISettings     `toml:"ui"`
}

// APISettings holds endpoint overrides, mainly for tests and mirrors.
type APISettings struct {
	BaseURL       string `toml:"base_url"`
	CoversBaseURL string `toml:"covers_base_url"`
	SiteBaseURL   string `toml:"site_base_url"`
}

// SearchSettings are the defaults applied at startup.
type SearchSettings struct {
	DefaultField    string `toml:"default_field"`
	DefaultPageSize int    `toml:"default_page_size"`
	DefaultLanguage string `toml:"default_language"`
	QuiescenceMs    int    `toml:"quiescence_ms"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AutosaveOnExit bool `toml:"autosave_on_exit"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	Path() string
}

type configService struct {
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	bookgridDir := filepath.Join(configDir, "bookgrid")
	_ = os.MkdirAll(bookgridDir, 0o755)

	return &configService{
		filePath: filepath.Join(bookgridDir, "config.toml"),
	}
}

// NewConfigServiceAt creates a config service bound to a specific file.
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(cs.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Normalize()
	return &cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	dir := filepath.Dir(cs.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cs.filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Normalize fills in missing values and clamps invalid ones to defaults.
func (c *Config) Normalize() {
	def := DefaultConfig()

	if c.API.BaseURL == "" {
		c.API.BaseURL = def.API.BaseURL
	}
	if c.API.CoversBaseURL == "" {
		c.API.CoversBaseURL = def.API.CoversBaseURL
	}
	if c.API.SiteBaseURL == "" {
		c.API.SiteBaseURL = def.API.SiteBaseURL
	}

	switch domain.SearchField(c.Search.DefaultField) {
	case domain.FieldTitle, domain.FieldAuthor, domain.FieldISBN, domain.FieldSubject:
	default:
		c.Search.DefaultField = def.Search.DefaultField
	}

	validSize := false
	for _, size := range domain.PageSizes {
		if c.Search.DefaultPageSize == size {
			validSize = true
			break
		}
	}
	if !validSize {
		c.Search.DefaultPageSize = def.Search.DefaultPageSize
	}

	if c.Search.QuiescenceMs <= 0 {
		c.Search.QuiescenceMs = def.Search.QuiescenceMs
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL:       "https://openlibrary.org/search.json",
			CoversBaseURL: "https://covers.openlibrary.org",
			SiteBaseURL:   "https://openlibrary.org",
		},
		Search: SearchSettings{
			DefaultField:    string(domain.FieldTitle),
			DefaultPageSize: 12,
			QuiescenceMs:    400,
		},
		UI: UISettings{
			AutosaveOnExit: true,
		},
	}
}
