package progress

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for progress configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Enabled  string
	Interval string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds progress reporting configuration for CLI applications.
// A zero-value Config has reporting disabled.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewWatcher] to create a [Watcher] that
// samples a [Counters] and reports on it.
type Config struct {
	Flags Flags

	// Enabled turns on periodic stderr reporting.
	Enabled bool
	// Interval between reports.
	Interval time.Duration
}

// NewConfig creates a new [Config] with default flag names and reporting
// disabled. Use [Config.RegisterFlags] to add CLI flags, or set fields
// directly.
func NewConfig() *Config {
	f := Flags{
		Enabled:  "progress",
		Interval: "progress-interval",
	}

	return f.NewConfig()
}

// RegisterFlags adds progress flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&c.Enabled, c.Flags.Enabled, false,
		"report progress to stderr while processing")
	flags.DurationVar(&c.Interval, c.Flags.Interval, 5*time.Second,
		"interval between progress reports")
}

// RegisterCompletions registers shell completions for progress flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	err := cmd.RegisterFlagCompletionFunc(c.Flags.Interval, noFileComp)
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Interval, err)
	}

	return nil
}

// NewWatcher creates a [Watcher] for counters, using this [Config]'s interval.
// NewWatcher returns nil if progress reporting is disabled.
func (c *Config) NewWatcher(counters *Counters, report func(Snapshot)) *Watcher {
	if !c.Enabled {
		return nil
	}

	interval := c.Interval
	if interval <= 0 {
		interval = 5 * time.Second
	}

	return &Watcher{
		counters: counters,
		interval: interval,
		report:   report,
	}
}
