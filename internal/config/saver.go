package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// saveConfig is the marshaling intermediary that uses string durations.
type saveConfig struct {
	Remote saveRemoteConfig `json:"remote" yaml:"remote"`
	Local  LocalConfig      `json:"local" yaml:"local"`
	Server ServerConfig     `json:"server" yaml:"server"`
	Keymap KeymapConfig     `json:"keymap" yaml:"keymap"`
	UI     UIConfig         `json:"ui" yaml:"ui"`
}

type saveRemoteConfig struct {
	URL     string `json:"url" yaml:"url"`
	Timeout string `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// toSaveConfig converts Config to the serializable format.
func toSaveConfig(cfg *Config) saveConfig {
	sc := saveConfig{
		Remote: saveRemoteConfig{URL: cfg.Remote.URL},
		Local:  cfg.Local,
		Server: cfg.Server,
		Keymap: cfg.Keymap,
		UI:     cfg.UI,
	}
	if cfg.Remote.Timeout > 0 {
		sc.Remote.Timeout = cfg.Remote.Timeout.String()
	}
	return sc
}

// Save writes the config to ConfigPath.
func Save(cfg *Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes the config to path, in YAML or JSON by extension.
// Top-level keys the config does not manage are preserved.
func SaveTo(path string, cfg *Config) error {
	if path == "" {
		return fmt.Errorf("config: no config path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var data []byte
	var err error
	if isYAML(path) {
		data, err = mergeYAML(path, toSaveConfig(cfg))
	} else {
		data, err = mergeJSON(path, toSaveConfig(cfg))
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func mergeJSON(path string, sc saveConfig) ([]byte, error) {
	doc := map[string]json.RawMessage{}
	if existing, err := os.ReadFile(path); err == nil {
		// An unreadable file is replaced rather than blocking the save.
		_ = json.Unmarshal(existing, &doc)
	}

	managed, err := json.Marshal(sc)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(managed, &fields); err != nil {
		return nil, err
	}
	for k, v := range fields {
		doc[k] = v
	}
	return json.MarshalIndent(doc, "", "  ")
}

func mergeYAML(path string, sc saveConfig) ([]byte, error) {
	doc := map[string]any{}
	if existing, err := os.ReadFile(path); err == nil {
		_ = yaml.Unmarshal(existing, &doc)
		if doc == nil {
			doc = map[string]any{}
		}
	}

	managed, err := yaml.Marshal(sc)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := yaml.Unmarshal(managed, &fields); err != nil {
		return nil, err
	}
	for k, v := range fields {
		doc[k] = v
	}
	return yaml.Marshal(doc)
}
