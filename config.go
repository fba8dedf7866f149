package woflang

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the settings the wof command reads from its YAML config
// file. Zero values fall back to the defaults from DefaultConfig.
type Config struct {
	// PluginDirs are scanned non-recursively for dynamic modules at
	// startup.
	PluginDirs []string `yaml:"plugin_dirs"`
	// StrictPlugins aborts a directory scan on the first module that fails
	// to load. The default skips bad modules and keeps scanning.
	StrictPlugins bool `yaml:"strict_plugins"`
	// Prompt is the REPL prompt.
	Prompt string `yaml:"prompt"`
	// HistoryFile stores REPL input history.
	HistoryFile string `yaml:"history_file"`
	// Preload lists scripts run before the REPL or any script arguments.
	Preload []string `yaml:"preload"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Prompt:      "wof> ",
		HistoryFile: ".wof_history",
	}
}

// LoadConfig reads a YAML config file. A missing file is not an error and
// yields the defaults; a file that exists but cannot be parsed is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %v", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %v", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultConfig().Prompt
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = DefaultConfig().HistoryFile
	}
	return cfg, nil
}
