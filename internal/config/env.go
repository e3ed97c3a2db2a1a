package config

import "strings"

// Environment variables read by the CLI.
const (
	EnvConfigPath = "COURSEKIT_CONFIG"
	EnvLogLevel   = "COURSEKIT_LOG_LEVEL"
	EnvLogFormat  = "COURSEKIT_LOG_FORMAT"
)

// ApplyEnv overrides logging settings from the environment.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if getenv == nil {
		return
	}
	if level := strings.TrimSpace(getenv(EnvLogLevel)); level != "" {
		cfg.Log.Level = strings.ToLower(level)
	}
	if format := strings.TrimSpace(getenv(EnvLogFormat)); format != "" {
		cfg.Log.Format = strings.ToLower(format)
	}
}
