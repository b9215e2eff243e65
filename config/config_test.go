package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdstream/wdstream/claimexpr"
	"github.com/wdstream/wdstream/config"
	"github.com/wdstream/wdstream/ioformat"
)

func newFlagSet(t *testing.T, cfg *config.Config) *pflag.FlagSet {
	t.Helper()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	return flags
}

func TestParseOutputFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		want        config.OutputFormat
		expectError bool
	}{
		"empty defaults to same": {input: "", want: config.OutputSame},
		"same":                   {input: "same", want: config.OutputSame},
		"ntriples":               {input: "ntriples", want: config.OutputNTriples},
		"json":                   {input: "json", want: config.OutputJSON},
		"unknown":                {input: "yaml", expectError: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := config.ParseOutputFormat(tc.input)
			if tc.expectError {
				require.ErrorIs(t, err, config.ErrUnknownOutputFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConfig_Validate_CompilesFilterConfigs(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	flags := newFlagSet(t, cfg)
	require.NoError(t, flags.Parse([]string{
		"--claim=P31:Q5",
		"--languages=en,de",
		"--type=item",
		"--subject=Q1,Q2",
		"--property=P31",
		"--threads=4",
	}))

	compiled, err := cfg.Validate()
	require.NoError(t, err)

	assert.True(t, compiled.RDFFilter.Subject.Contains("Q1"))
	assert.False(t, compiled.RDFFilter.Subject.Contains("Q9"))
	assert.True(t, compiled.RDFFilter.Property.Contains("P31"))
	assert.Equal(t, 4, compiled.Workers)
	assert.Equal(t, config.OutputSame, compiled.OutputFormat)
	assert.NotNil(t, compiled.RDFFilter.Claim)
	assert.NotNil(t, compiled.JSONFilter.Claim)
}

func TestConfig_Validate_WorkersOverridesThreads(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	flags := newFlagSet(t, cfg)
	require.NoError(t, flags.Parse([]string{"--threads=4", "--workers=8"}))

	compiled, err := cfg.Validate()
	require.NoError(t, err)
	assert.Equal(t, 8, compiled.Workers)
}

func TestConfig_Validate_Errors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		args []string
		err  error
	}{
		"bad claim syntax": {
			args: []string{"--claim=P31:"},
			err:  claimexpr.ErrClaimSyntax,
		},
		"unknown type": {
			args: []string{"--type=nonsense"},
		},
		"unknown format": {
			args: []string{"--format=xml"},
			err:  config.ErrUnknownFormat,
		},
		"unknown output format": {
			args: []string{"--output-format=xml"},
			err:  config.ErrUnknownOutputFormat,
		},
		"unknown compression": {
			args: []string{"--compress=zstd"},
			err:  ioformat.ErrUnsupportedCompression,
		},
		"keep and omit conflict": {
			args: []string{"--keep=id", "--omit=claims"},
		},
		"unknown keep attribute": {
			args: []string{"--keep=bogus"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			flags := newFlagSet(t, cfg)
			require.NoError(t, flags.Parse(tc.args))

			_, err := cfg.Validate()
			require.Error(t, err)

			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			}
		})
	}
}

func TestConfig_Validate_KeepWithoutIDForcesWarning(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	flags := newFlagSet(t, cfg)
	require.NoError(t, flags.Parse([]string{"--keep=labels"}))

	compiled, err := cfg.Validate()
	require.NoError(t, err)
	assert.True(t, compiled.IDForcedWarning)
}

func TestLoadFile_FlagsWinOverYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "wdstream.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
claim: "P31:Q5"
languages: ["en", "de"]
threads: 4
type: item
`), 0o600))

	cfg := config.NewConfig()
	flags := newFlagSet(t, cfg)
	require.NoError(t, flags.Parse([]string{"--threads=16"}))

	require.NoError(t, config.LoadFile(path, cfg, flags))

	assert.Equal(t, "P31:Q5", cfg.Claim)
	assert.Equal(t, []string{"en", "de"}, cfg.Languages)
	assert.Equal(t, "item", cfg.Type)
	assert.Equal(t, 16, cfg.Threads, "explicit --threads flag must win over the YAML value")
}

func TestLoadFile_MissingFile(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	flags := newFlagSet(t, cfg)
	require.NoError(t, flags.Parse(nil))

	err := config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), cfg, flags)
	require.Error(t, err)
}
