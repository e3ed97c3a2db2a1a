package cli

import (
	"fmt"
	"os"

	"coursekit/internal/config"
)

// resolveConfigPath picks the flag path, then COURSEKIT_CONFIG, then
// searches upward from the CWD. An empty result means defaults apply.
func resolveConfigPath(configPath string) (string, error) {
	return config.Resolve(configPath, os.Getenv(config.EnvConfigPath), "")
}

// loadConfig resolves and loads the config, applying environment overrides.
func loadConfig(configPath string) (config.Config, string, error) {
	resolved, err := resolveConfigPath(configPath)
	if err != nil {
		return config.Config{}, "", err
	}
	cfg, err := config.LoadOrDefault(resolved)
	if err != nil {
		return config.Config{}, "", err
	}
	config.ApplyEnv(&cfg, os.Getenv)
	if err := config.Validate(&cfg); err != nil {
		return config.Config{}, "", fmt.Errorf("environment overrides: %w", err)
	}
	return cfg, resolved, nil
}
