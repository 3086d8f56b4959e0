package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "escape.yaml"

// LoadEscape loads the escape game configuration.
// Search order: customPath -> ~/.escape/configs/escape.yaml -> ./configs/escape.yaml -> embedded default.
// Values missing from a file keep their defaults. The result is validated.
func LoadEscape(customPath string) (EscapeConfig, error) {
	cfg, source, err := load(customPath)
	if err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", source, err)
	}

	log.Debug("loaded config", "source", source)
	return cfg, nil
}

// load resolves the config source without validating it.
func load(customPath string) (EscapeConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultEscapeConfig(), customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, userCfgPath, nil
			}
			log.Warn("ignoring unparsable config", "path", userCfgPath)
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", FileName)
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, localPath, nil
		}
		log.Warn("ignoring unparsable config", "path", localPath)
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultEscapeYAML)
	if err != nil {
		return DefaultEscapeConfig(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// Parse decodes YAML on top of the default configuration.
func Parse(data []byte) (EscapeConfig, error) {
	cfg := DefaultEscapeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultEscapeConfig(), err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg EscapeConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".escape", "configs", filename)
}
