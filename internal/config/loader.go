package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the config directories.
const FileName = "pandas.yaml"

// LoadPandas loads the panda board configuration.
// Search order: customPath -> ~/.pandapop/configs/pandas.yaml ->
// ./configs/pandas.yaml -> embedded default.
// Only a bad customPath is an error; unreadable fallbacks are skipped.
func LoadPandas(customPath string) (PandasConfig, error) {
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if cfg, err := readFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultPandasConfig()
	if err := yaml.Unmarshal(defaultPandasYAML, &cfg); err != nil {
		return DefaultPandasConfig(), nil
	}
	return cfg, nil
}

// readFile decodes path over the built-in defaults, so a partial file only
// overrides the keys it sets.
func readFile(path string) (PandasConfig, error) {
	cfg := DefaultPandasConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with PANDAPOP_* environment variables.
// Unset variables leave the loaded values in place.
func ApplyEnv(cfg *PandasConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Resolve reads the file and environment and records the difficulty preset
// without applying it. A non-empty preset argument wins over the file and
// environment. Marshalling the result gives a file that Load turns back into
// the same game settings.
func Resolve(customPath, preset string) (PandasConfig, error) {
	cfg, err := LoadPandas(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if preset == "" {
		preset = string(cfg.Difficulty.Preset)
	}
	p, err := ParsePreset(preset)
	if err != nil {
		return cfg, err
	}
	cfg.Difficulty.Preset = p
	return cfg, nil
}

// Load runs the whole pipeline: file, environment, then the difficulty
// preset applied on top. The result is what a game runs with.
func Load(customPath, preset string) (PandasConfig, error) {
	cfg, err := Resolve(customPath, preset)
	if err != nil {
		return cfg, err
	}
	ApplyPandasPreset(&cfg, cfg.Difficulty.Preset)
	return cfg, cfg.Validate()
}

// Marshal renders cfg as YAML in the same layout as the default file.
func Marshal(cfg PandasConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pandapop", "configs", filename)
}
