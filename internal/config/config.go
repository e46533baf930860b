package config

import (
	"fmt"
	"time"
)

// Local store drivers.
const (
	DriverCGO  = "sqlite3"
	DriverPure = "sqlite"
)

// Config is the root configuration structure.
type Config struct {
	Remote RemoteConfig `json:"remote" yaml:"remote"`
	Local  LocalConfig  `json:"local" yaml:"local"`
	Server ServerConfig `json:"server" yaml:"server"`
	Keymap KeymapConfig `json:"keymap" yaml:"keymap"`
	UI     UIConfig     `json:"ui" yaml:"ui"`
}

// RemoteConfig points at the remote note service.
type RemoteConfig struct {
	URL     string        `json:"url" yaml:"url"`         // "" disables the remote store
	Timeout time.Duration `json:"timeout" yaml:"timeout"` // 0 = no timeout
}

// LocalConfig configures the offline store.
type LocalConfig struct {
	Driver string `json:"driver" yaml:"driver"` // "sqlite3" (cgo) or "sqlite" (pure Go)
	Path   string `json:"path" yaml:"path"`
	// Mirror copies every successful remote listing into the local store.
	// Notes created while offline are lost on the next mirror.
	Mirror bool `json:"mirror" yaml:"mirror"`
}

// ServerConfig configures `ocean serve`.
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// KeymapConfig holds key binding overrides.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides" yaml:"overrides"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowFooter bool   `json:"showFooter" yaml:"showFooter"`
	Theme      string `json:"theme" yaml:"theme"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Remote: RemoteConfig{
			URL: "http://127.0.0.1:3001/api",
		},
		Local: LocalConfig{
			Driver: DriverCGO,
			Path:   "~/.config/ocean/notes.db",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:3001",
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
		UI: UIConfig{
			ShowFooter: true,
			Theme:      "ocean",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Remote.Timeout < 0 {
		c.Remote.Timeout = 0
	}
	switch c.Local.Driver {
	case DriverCGO, DriverPure:
	case "":
		c.Local.Driver = DriverCGO
	default:
		return fmt.Errorf("config: unknown local driver %q", c.Local.Driver)
	}
	if c.Local.Path == "" {
		return fmt.Errorf("config: local.path is empty")
	}
	if c.UI.Theme == "" {
		c.UI.Theme = "ocean"
	}
	return nil
}
