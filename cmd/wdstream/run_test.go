package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdstream/wdstream/config"
	"github.com/wdstream/wdstream/stringtest"
)

func runWithArgs(t *testing.T, flagArgs []string, posArgs []string) {
	t.Helper()

	cfg := config.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)
	require.NoError(t, flags.Parse(flagArgs))

	require.NoError(t, run(flags, cfg, posArgs))
}

// TestRun_ClaimFilterRDFToRDF covers S1: a claim filter over an N-Triples
// stream writing N-Triples output.
func TestRun_ClaimFilterRDFToRDF(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "dump.nt")
	output := filepath.Join(dir, "out.nt")

	require.NoError(t, os.WriteFile(input, []byte(stringtest.Input(`
		<http://www.wikidata.org/entity/Q1> <http://www.wikidata.org/prop/direct/P31> <http://www.wikidata.org/entity/Q5> .
		<http://www.wikidata.org/entity/Q2> <http://www.wikidata.org/prop/direct/P31> <http://www.wikidata.org/entity/Q6256> .
		<http://www.wikidata.org/entity/Q3> <http://www.wikidata.org/prop/direct/P31> <http://www.wikidata.org/entity/Q5> .
		<http://www.wikidata.org/entity/Q3> <http://www.wikidata.org/prop/direct/P576> <http://www.wikidata.org/entity/Q100> .
	`)), 0o600))

	runWithArgs(t, []string{
		"--claim=P31:Q5&~P576",
		"--output=" + output,
	}, []string{input})

	out, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t,
		`<http://www.wikidata.org/entity/Q1> <http://www.wikidata.org/prop/direct/P31> <http://www.wikidata.org/entity/Q5> .`+"\n",
		string(out))
}

// TestRun_RDFToJSONConversion covers S6: an RDF entity with a label and an
// entity-valued claim converts to one NDJSON line.
func TestRun_RDFToJSONConversion(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "dump.nt")
	output := filepath.Join(dir, "out.ndjson")

	require.NoError(t, os.WriteFile(input, []byte(stringtest.Input(`
		<http://www.wikidata.org/entity/Q183> <http://www.w3.org/2000/01/rdf-schema#label> "Germany"@en .
		<http://www.wikidata.org/entity/Q183> <http://www.wikidata.org/prop/direct/P31> <http://www.wikidata.org/entity/Q6256> .
	`)), 0o600))

	runWithArgs(t, []string{
		"--output-format=json",
		"--output=" + output,
	}, []string{input})

	out, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"Germany"`)
	assert.Contains(t, string(out), `"en"`)
	assert.Contains(t, string(out), `"Q6256"`)
}

// TestRun_StatsOnlySuppressesOutput confirms --stats-only runs the pipeline
// without writing entity bytes to the output file.
func TestRun_StatsOnlySuppressesOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "dump.nt")
	output := filepath.Join(dir, "out.nt")

	require.NoError(t, os.WriteFile(input, []byte(stringtest.Input(`
		<http://www.wikidata.org/entity/Q1> <http://www.wikidata.org/prop/direct/P31> <http://www.wikidata.org/entity/Q5> .
	`)), 0o600))

	runWithArgs(t, []string{
		"--stats-only",
		"--output=" + output,
	}, []string{input})

	out, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Empty(t, out)
}

// TestRun_UnknownClaimSyntaxIsConfigError confirms a malformed claim
// expression is reported before any pipeline work happens.
func TestRun_UnknownClaimSyntaxIsConfigError(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)
	require.NoError(t, flags.Parse([]string{"--claim=P31:", "--output=" + filepath.Join(t.TempDir(), "out.nt")}))

	err := run(flags, cfg, []string{filepath.Join(t.TempDir(), "missing.nt")})
	require.Error(t, err)
}
