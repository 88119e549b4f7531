package config

import (
	"os"
	"path/filepath"

	serr "filedrop/internal/errors"

	"github.com/adrg/xdg"
	"github.com/gobwas/glob"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Picker backends.
const (
	PickerNative  = "native"
	PickerBuiltin = "builtin"
)

// relPath is the config file location below the XDG config home.
var relPath = filepath.Join("filedrop", "config.yaml")

// Config represents the application configuration structure.
type Config struct {
	Window struct {
		Width  float32 `yaml:"width"`  // Initial window width
		Height float32 `yaml:"height"` // Initial window height
	} `yaml:"window"`
	Picker struct {
		Backend string `yaml:"backend"` // native or builtin
	} `yaml:"picker"`
	Completion struct {
		Exclude []string `yaml:"exclude"` // Glob patterns for entry names never offered
	} `yaml:"completion"`
	Viewer struct {
		Monospace bool `yaml:"monospace"` // Render contents in a fixed-width font
		Wrap      bool `yaml:"wrap"`      // Wrap long lines instead of scrolling
	} `yaml:"viewer"`
	Log struct {
		Level string `yaml:"level"` // logrus level name
		JSON  bool   `yaml:"json"`  // One JSON object per line
	} `yaml:"log"`
}

// DefaultPath returns $XDG_CONFIG_HOME/filedrop/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, relPath)
}

// LoadConfig loads configuration from the XDG config directories.
// A missing file yields the defaults.
func LoadConfig() (*Config, error) {
	path, err := xdg.SearchConfigFile(relPath)
	if err != nil {
		return defaultConfig(), nil
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, serr.FromFS(err, "error reading config file", path)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, serr.NewConfigError("error parsing config file", path, serr.InvalidConfig, err)
	}

	if tempCfg.Window.Width > 0 {
		cfg.Window.Width = tempCfg.Window.Width
	}
	if tempCfg.Window.Height > 0 {
		cfg.Window.Height = tempCfg.Window.Height
	}
	if tempCfg.Picker.Backend != "" {
		cfg.Picker.Backend = tempCfg.Picker.Backend
	}
	if len(tempCfg.Completion.Exclude) > 0 {
		cfg.Completion.Exclude = tempCfg.Completion.Exclude
	}
	if tempCfg.Log.Level != "" {
		cfg.Log.Level = tempCfg.Log.Level
	}
	cfg.Log.JSON = tempCfg.Log.JSON

	// Booleans default to true, so only an explicit key may turn them off.
	var raw struct {
		Viewer map[string]bool `yaml:"viewer"`
	}
	if err := yaml.Unmarshal(data, &raw); err == nil {
		if v, ok := raw.Viewer["monospace"]; ok {
			cfg.Viewer.Monospace = v
		}
		if v, ok := raw.Viewer["wrap"]; ok {
			cfg.Viewer.Wrap = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Window.Width = 640
	cfg.Window.Height = 480
	cfg.Picker.Backend = PickerNative
	cfg.Completion.Exclude = []string{}
	cfg.Viewer.Monospace = true
	cfg.Viewer.Wrap = false
	cfg.Log.Level = "warn"
	cfg.Log.JSON = false

	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return serr.NewConfigError("nil config", "", serr.InvalidConfig, nil)
	}

	if c.Window.Width <= 0 {
		return serr.NewConfigError("window width must be positive", "window.width", serr.InvalidConfig, nil)
	}
	if c.Window.Height <= 0 {
		return serr.NewConfigError("window height must be positive", "window.height", serr.InvalidConfig, nil)
	}

	switch c.Picker.Backend {
	case PickerNative, PickerBuiltin:
	default:
		return serr.NewConfigError("unknown picker backend "+c.Picker.Backend, "picker.backend", serr.InvalidConfig, nil)
	}

	for _, pattern := range c.Completion.Exclude {
		if pattern == "" {
			return serr.NewConfigError("empty exclude pattern", "completion.exclude", serr.InvalidConfig, nil)
		}
		if _, err := glob.Compile(pattern); err != nil {
			return serr.NewConfigError("bad exclude pattern "+pattern, "completion.exclude", serr.InvalidConfig, err)
		}
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return serr.NewConfigError("unknown log level", "log.level", serr.InvalidConfig, err)
	}

	return nil
}
