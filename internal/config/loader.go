package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configDir  = ".config/ocean"
	configFile = "config.json"
	yamlFile   = "config.yaml"
)

// Environment overrides, applied after the file.
const (
	EnvAPIURL     = "OCEAN_API_URL"
	EnvAPITimeout = "OCEAN_API_TIMEOUT"
	EnvDBPath     = "OCEAN_DB_PATH"
	EnvDBDriver   = "OCEAN_DB_DRIVER"
	EnvAddr       = "OCEAN_ADDR"
)

// rawConfig is the unmarshaling intermediary. Pointers tell unset keys
// apart from zero values.
type rawConfig struct {
	Remote rawRemoteConfig `json:"remote" yaml:"remote"`
	Local  rawLocalConfig  `json:"local" yaml:"local"`
	Server ServerConfig    `json:"server" yaml:"server"`
	Keymap KeymapConfig    `json:"keymap" yaml:"keymap"`
	UI     rawUIConfig     `json:"ui" yaml:"ui"`
}

type rawRemoteConfig struct {
	URL     *string `json:"url" yaml:"url"`
	Timeout string  `json:"timeout" yaml:"timeout"`
}

type rawLocalConfig struct {
	Driver string `json:"driver" yaml:"driver"`
	Path   string `json:"path" yaml:"path"`
	Mirror *bool  `json:"mirror" yaml:"mirror"`
}

type rawUIConfig struct {
	ShowFooter *bool  `json:"showFooter" yaml:"showFooter"`
	Theme      string `json:"theme" yaml:"theme"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/ocean/config.json, or config.yaml
// next to it when only that exists.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = ConfigPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			var raw rawConfig
			if err := unmarshal(path, data, &raw); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
			mergeConfig(cfg, &raw)
		case os.IsNotExist(err):
			// defaults
		default:
			return nil, err
		}
	}

	ApplyEnv(cfg)
	cfg.Local.Path = ExpandPath(cfg.Local.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func unmarshal(path string, data []byte, v any) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, v)
	}
	return json.Unmarshal(data, v)
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	// Remote
	if raw.Remote.URL != nil {
		cfg.Remote.URL = strings.TrimSpace(*raw.Remote.URL)
	}
	if raw.Remote.Timeout != "" {
		if d, err := time.ParseDuration(raw.Remote.Timeout); err == nil {
			cfg.Remote.Timeout = d
		} else {
			slog.Warn("config: ignoring invalid remote.timeout", "value", raw.Remote.Timeout, "error", err)
		}
	}

	// Local
	if raw.Local.Driver != "" {
		cfg.Local.Driver = raw.Local.Driver
	}
	if raw.Local.Path != "" {
		cfg.Local.Path = raw.Local.Path
	}
	if raw.Local.Mirror != nil {
		cfg.Local.Mirror = *raw.Local.Mirror
	}

	// Server
	if raw.Server.Addr != "" {
		cfg.Server.Addr = raw.Server.Addr
	}

	// Keymap
	for k, v := range raw.Keymap.Overrides {
		cfg.Keymap.Overrides[k] = v
	}

	// UI
	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}
	if raw.UI.Theme != "" {
		cfg.UI.Theme = raw.UI.Theme
	}
}

// LoadEnvFiles loads .env style files into the process environment.
// Missing files are skipped and variables already set are kept.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("config: load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg from OCEAN_* variables. An explicitly empty
// OCEAN_API_URL disables the remote store.
func ApplyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvAPIURL); ok {
		cfg.Remote.URL = strings.TrimSpace(v)
	}
	if v := os.Getenv(EnvAPITimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Remote.Timeout = d
		}
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.Local.Path = v
	}
	if v := os.Getenv(EnvDBDriver); v != "" {
		cfg.Local.Driver = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Server.Addr = v
	}
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// testConfigPath overrides ConfigPath in tests.
var testConfigPath string

// SetTestConfigPath points ConfigPath at path. Tests only.
func SetTestConfigPath(path string) { testConfigPath = path }

// ResetTestConfigPath restores the default ConfigPath.
func ResetTestConfigPath() { testConfigPath = "" }

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	if testConfigPath != "" {
		return testConfigPath
	}
	return defaultConfigPath()
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	dir := filepath.Join(home, configDir)
	jsonPath := filepath.Join(dir, configFile)
	if _, err := os.Stat(jsonPath); err != nil {
		yamlPath := filepath.Join(dir, yamlFile)
		if _, err := os.Stat(yamlPath); err == nil {
			return yamlPath
		}
	}
	return jsonPath
}

// ConfigDir returns the directory holding config, state and logs.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir)
}
