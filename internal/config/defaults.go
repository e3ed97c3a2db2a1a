package config

import (
	"strings"

	"coursekit/internal/bank"
)

// Default values applied when the config leaves a field empty.
const (
	DefaultUnmatched           = string(bank.UnmatchedError)
	DefaultLogLevel            = "info"
	DefaultLogFormat           = "console"
	DefaultHeadingDelimiter    = ". "
	DefaultHeadingShift        = 1
	DefaultTopLevel            = 2
	DefaultDuplicateIDs        = "error"
	DefaultHeaderColor         = "#ffffff"
	DefaultHeaderBackground    = "#4b4945"
	DefaultSubheaderColor      = "#000000"
	DefaultSubheaderBackground = "#a391b1"
	DefaultOutputSuffix        = "_prettified.txt"
)

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Version:   1,
		Unmatched: DefaultUnmatched,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Page: PageConfig{
			HeadingDelimiter:    DefaultHeadingDelimiter,
			HeadingShift:        DefaultHeadingShift,
			TopLevel:            DefaultTopLevel,
			StripTags:           []string{"span"},
			DuplicateIDs:        DefaultDuplicateIDs,
			HeaderColor:         DefaultHeaderColor,
			HeaderBackground:    DefaultHeaderBackground,
			SubheaderColor:      DefaultSubheaderColor,
			SubheaderBackground: DefaultSubheaderBackground,
			OutputSuffix:        DefaultOutputSuffix,
		},
	}
}

// Normalize trims values, lowercases enumerations and fills empty fields.
func Normalize(cfg *Config) {
	cfg.OutputDir = strings.TrimSpace(cfg.OutputDir)
	cfg.Unmatched = lowerOr(cfg.Unmatched, DefaultUnmatched)
	cfg.Log.Level = lowerOr(cfg.Log.Level, DefaultLogLevel)
	cfg.Log.Format = lowerOr(cfg.Log.Format, DefaultLogFormat)

	page := &cfg.Page
	if page.HeadingDelimiter == "" {
		page.HeadingDelimiter = DefaultHeadingDelimiter
	}
	if page.TopLevel == 0 {
		page.TopLevel = DefaultTopLevel
	}
	page.DuplicateIDs = lowerOr(page.DuplicateIDs, DefaultDuplicateIDs)
	page.HeaderColor = trimOr(page.HeaderColor, DefaultHeaderColor)
	page.HeaderBackground = trimOr(page.HeaderBackground, DefaultHeaderBackground)
	page.SubheaderColor = trimOr(page.SubheaderColor, DefaultSubheaderColor)
	page.SubheaderBackground = trimOr(page.SubheaderBackground, DefaultSubheaderBackground)
	page.OutputSuffix = trimOr(page.OutputSuffix, DefaultOutputSuffix)
	for i, tag := range page.StripTags {
		page.StripTags[i] = strings.ToLower(strings.TrimSpace(tag))
	}

	for i := range cfg.Banks {
		cfg.Banks[i].Normalize()
	}
}

// Registry returns the built-in bank types overlaid with configured ones.
// A configured bank replaces a built-in bank of the same name.
func (c Config) Registry() (*bank.Registry, error) {
	rules := bank.DefaultRules()
	for _, custom := range c.Banks {
		replaced := false
		for i := range rules {
			if strings.EqualFold(rules[i].Name, custom.Name) {
				rules[i] = custom
				replaced = true
				break
			}
		}
		if !replaced {
			rules = append(rules, custom)
		}
	}
	return bank.NewRegistry(rules)
}

func lowerOr(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}

func trimOr(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}
