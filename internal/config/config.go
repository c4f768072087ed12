package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

// DefaultThreshold is the lowest fuzzy score an item may have and still be
// listed. Every match scores at least 1, so the default drops only non-matches.
const DefaultThreshold = 1

// ReservedKeys are the fixed bindings that keys.edit and keys.quit may not take
var ReservedKeys = []string{"enter", "up", "down", "esc", "backspace", "ctrl+c", "ctrl+h"}

// Config represents the application configuration
type Config struct {
	BaseDir    string   `toml:"base_dir"`
	Marker     string   `toml:"marker"`    // directory that marks a repository
	MaxDepth   int      `toml:"max_depth"` // how deep below base_dir to look
	SkipDirs   []string `toml:"skip_dirs"`
	ResultFile string   `toml:"result_file"` // where the chosen path is written
	Threshold  int      `toml:"threshold"`
	LogFile    string   `toml:"log_file"`
	LogLevel   string   `toml:"log_level"`
	Keys       Keys     `toml:"keys"`
}

// Keys holds the rebindable navigation-mode keys
type Keys struct {
	Edit string `toml:"edit"`
	Quit string `toml:"quit"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted at the user config directory
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service reading from an explicit path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// DefaultPath returns $XDG_CONFIG_HOME/gitjump/config.toml or its platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "gitjump", "config.toml")
}

// Path returns the file this service loads from
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when no file exists
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFromPath loads configuration from a specific path. Fields missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	cfg.SkipDirs = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.fillDefaults()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
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

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}

	return &Config{
		BaseDir:    homeDir,
		Marker:     ".git",
		MaxDepth:   5,
		SkipDirs:   []string{"node_modules", "vendor", "target", "build", "dist", "__pycache__", "venv"},
		ResultFile: filepath.Join(cacheDir, "gitjump", "dir_path.txt"),
		Threshold:  DefaultThreshold,
		LogFile:    filepath.Join(cacheDir, "gitjump", "gitjump.log"),
		LogLevel:   "info",
		Keys: Keys{
			Edit: "i",
			Quit: "q",
		},
	}
}

// fillDefaults restores defaults for fields a config file left empty
func (c *Config) fillDefaults() {
	d := DefaultConfig()
	if c.BaseDir == "" {
		c.BaseDir = d.BaseDir
	}
	if c.Marker == "" {
		c.Marker = d.Marker
	}
	if c.SkipDirs == nil {
		c.SkipDirs = d.SkipDirs
	}
	if c.ResultFile == "" {
		c.ResultFile = d.ResultFile
	}
	if c.LogFile == "" {
		c.LogFile = d.LogFile
	}
	if c.Keys.Edit == "" {
		c.Keys.Edit = d.Keys.Edit
	}
	if c.Keys.Quit == "" {
		c.Keys.Quit = d.Keys.Quit
	}
}

// Validate reports configuration values the picker cannot work with
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.Keys.Edit == c.Keys.Quit {
		return fmt.Errorf("keys.edit and keys.quit must differ, both are %q", c.Keys.Edit)
	}
	for field, k := range map[string]string{"keys.edit": c.Keys.Edit, "keys.quit": c.Keys.Quit} {
		if slices.Contains(ReservedKeys, k) {
			return fmt.Errorf("%s cannot be %q, it is already bound", field, k)
		}
	}
	return nil
}
