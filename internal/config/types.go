package config

import "coursekit/internal/bank"

// Config is the root of .coursekit/config.yml.
type Config struct {
	Version   int         `yaml:"version"`
	OutputDir string      `yaml:"output_dir"`
	Unmatched string      `yaml:"unmatched"`
	Log       LogConfig   `yaml:"log"`
	Page      PageConfig  `yaml:"page"`
	Banks     []bank.Rule `yaml:"banks,omitempty"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PageConfig struct {
	HeadingDelimiter    string   `yaml:"heading_delimiter"`
	HeadingShift        int      `yaml:"heading_shift"`
	TopLevel            int      `yaml:"top_level"`
	StripTags           []string `yaml:"strip_tags"`
	DuplicateIDs        string   `yaml:"duplicate_ids"`
	HeaderColor         string   `yaml:"header_color"`
	HeaderBackground    string   `yaml:"header_background"`
	SubheaderColor      string   `yaml:"subheader_color"`
	SubheaderBackground string   `yaml:"subheader_background"`
	OutputSuffix        string   `yaml:"output_suffix"`
}
