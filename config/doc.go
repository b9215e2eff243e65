// Package config aggregates the CLI-flag-configurable options from spec
// section 6 into one [Config], composed the same way the teacher composes
// sub-configs: a Flags struct names the pflag flags, RegisterFlags binds
// them, and RegisterCompletions wires shell completions. [Config.Validate]
// compiles the raw flag values into the filter primitives and I/O choices
// the rest of the program consumes, raising a ConfigError (spec section 7)
// before the pipeline starts.
package config
