// Package main provides the CLI entry point for wdstream, a streaming
// filter and format converter for Wikidata N-Triples and NDJSON dumps.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wdstream/wdstream/config"
	"github.com/wdstream/wdstream/version"
)

func main() {
	cfg := config.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "wdstream [flags] [input]",
		Short: "Filter and convert Wikidata N-Triples/NDJSON dump streams",
		Long: `wdstream applies claim, language, type, subject, and property filters to a
Wikidata dump in a single streaming pass, optionally converting between
N-Triples and NDJSON, without loading the dump into memory.

Input is read from the given path, or from stdin when omitted or "-".`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Flags(), cfg, args)
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())

	if err := cfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	rootCmd.AddCommand(newVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "version",
		Short:         "Print build and version information",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Printf("wdstream %s (revision %s, go %s, %s/%s)\n",
				orUnknown(version.Version), version.Revision, version.GoVersion, version.GoOS, version.GoArch)

			if version.Branch != "" || version.BuildDate != "" || version.BuildUser != "" {
				fmt.Printf("  branch=%s built=%s by=%s\n",
					orUnknown(version.Branch), orUnknown(version.BuildDate), orUnknown(version.BuildUser))
			}

			return nil
		},
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "dev"
	}

	return s
}
