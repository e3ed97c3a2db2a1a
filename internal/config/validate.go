package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"coursekit/internal/bank"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

// add records a new validation issue.
func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

// result returns a ValidationError when issues are present.
func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

var tagNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

// Validate checks a normalized config for correctness.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	if _, err := bank.ParseUnmatchedPolicy(cfg.Unmatched); err != nil {
		collector.add("unmatched", err.Error())
	}

	validateLog(cfg.Log, collector.add)
	validatePage(cfg.Page, collector.add)
	validateBanks(cfg.Banks, collector.add)

	return collector.result()
}

func validateLog(log LogConfig, add func(field, message string)) {
	switch log.Level {
	case "debug", "info", "warn", "error":
	default:
		add("log.level", fmt.Sprintf("unsupported level %q (expected debug|info|warn|error)", log.Level))
	}
	switch log.Format {
	case "console", "json":
	default:
		add("log.format", fmt.Sprintf("unsupported format %q (expected console|json)", log.Format))
	}
}

func validatePage(page PageConfig, add func(field, message string)) {
	if page.HeadingDelimiter == "" {
		add("page.heading_delimiter", "is required")
	}
	if page.HeadingShift < 0 || page.HeadingShift > 7 {
		add("page.heading_shift", "must be between 0 and 7")
	}
	if page.TopLevel < 1 || page.TopLevel > 9 {
		add("page.top_level", "must be between 1 and 9")
	}
	switch page.DuplicateIDs {
	case "error", "suffix":
	default:
		add("page.duplicate_ids", fmt.Sprintf("unsupported policy %q (expected error|suffix)", page.DuplicateIDs))
	}
	for i, tag := range page.StripTags {
		if !tagNamePattern.MatchString(tag) {
			add(fmt.Sprintf("page.strip_tags[%d]", i), fmt.Sprintf("invalid tag name %q", tag))
		}
	}
	if strings.ContainsAny(page.OutputSuffix, `/\`) {
		add("page.output_suffix", "must not contain path separators")
	}
	if ext := filepath.Ext(page.OutputSuffix); ext != "" && ext == page.OutputSuffix {
		add("page.output_suffix", fmt.Sprintf("%q is a bare extension and can overwrite the input; add a name part such as _prettified%s", ext, ext))
	}
}

func validateBanks(rules []bank.Rule, add func(field, message string)) {
	names := map[string]struct{}{}
	for i, rule := range rules {
		prefix := fmt.Sprintf("banks[%d]", i)
		rule.Check(prefix, add)
		key := strings.ToLower(rule.Name)
		if key == "" {
			continue
		}
		if _, exists := names[key]; exists {
			add("banks.name", fmt.Sprintf("duplicate name %q", rule.Name))
			continue
		}
		names[key] = struct{}{}
	}
}
