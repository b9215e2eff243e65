package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"
)

// yamlDoc mirrors the subset of [Config]'s option surface that a --config
// file may supply. Pointer and nil-slice fields distinguish "absent from
// the document" from "set to the zero value".
type yamlDoc struct {
	Claim              *string  `yaml:"claim"`
	Languages          []string `yaml:"languages"`
	LanguageExactMatch *bool    `yaml:"language_exact_match"`
	Type               *string  `yaml:"type"`
	Format             *string  `yaml:"format"`
	OutputFormat       *string  `yaml:"output_format"`
	Output             *string  `yaml:"output"`
	Compress           *string  `yaml:"compress"`
	Subject            []string `yaml:"subject"`
	Property           []string `yaml:"property"`
	Keep               []string `yaml:"keep"`
	Omit               []string `yaml:"omit"`
	Threads            *int     `yaml:"threads"`
	BatchSize          *int     `yaml:"batch_size"`
	SkipLines          *int     `yaml:"skip_lines"`
	MaxLines           *int     `yaml:"max_lines"`
	Progress           *bool    `yaml:"progress"`
}

// LoadFile reads the YAML document at path and merges it into c: a field
// present in the document is applied only if the corresponding CLI flag
// was not explicitly set on flags, so flags always win on conflict (spec
// section 6's --config supplement).
func LoadFile(path string, c *Config, flags *pflag.FlagSet) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var doc yamlDoc

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	merge(c, flags, doc)

	return nil
}

func merge(c *Config, flags *pflag.FlagSet, doc yamlDoc) {
	changed := func(name string) bool {
		return flags.Changed(name)
	}

	if doc.Claim != nil && !changed(c.Flags.Claim) {
		c.Claim = *doc.Claim
	}

	if doc.Languages != nil && !changed(c.Flags.Languages) {
		c.Languages = doc.Languages
	}

	if doc.LanguageExactMatch != nil && !changed(c.Flags.LanguageExactMatch) {
		c.LanguageExactMatch = *doc.LanguageExactMatch
	}

	if doc.Type != nil && !changed(c.Flags.Type) {
		c.Type = *doc.Type
	}

	if doc.Format != nil && !changed(c.Flags.Format) {
		c.Format = *doc.Format
	}

	if doc.OutputFormat != nil && !changed(c.Flags.OutputFormat) {
		c.OutputFormat = *doc.OutputFormat
	}

	if doc.Output != nil && !changed(c.Flags.Output) {
		c.Output = *doc.Output
	}

	if doc.Compress != nil && !changed(c.Flags.Compress) {
		c.Compress = *doc.Compress
	}

	if doc.Subject != nil && !changed(c.Flags.Subject) {
		c.Subject = doc.Subject
	}

	if doc.Property != nil && !changed(c.Flags.Property) {
		c.Property = doc.Property
	}

	if doc.Keep != nil && !changed(c.Flags.Keep) {
		c.Keep = doc.Keep
	}

	if doc.Omit != nil && !changed(c.Flags.Omit) {
		c.Omit = doc.Omit
	}

	if doc.Threads != nil && !changed(c.Flags.Threads) {
		c.Threads = *doc.Threads
	}

	if doc.BatchSize != nil && !changed(c.Flags.BatchSize) {
		c.BatchSize = *doc.BatchSize
	}

	if doc.SkipLines != nil && !changed(c.Flags.SkipLines) {
		c.SkipLines = *doc.SkipLines
	}

	if doc.MaxLines != nil && !changed(c.Flags.MaxLines) {
		c.MaxLines = *doc.MaxLines
	}

	if doc.Progress != nil && !changed(c.Progress.Flags.Enabled) {
		c.Progress.Enabled = *doc.Progress
	}
}
