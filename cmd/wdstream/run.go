package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/wdstream/wdstream/config"
	"github.com/wdstream/wdstream/ioformat"
	"github.com/wdstream/wdstream/jsonent"
	"github.com/wdstream/wdstream/pipeline"
	"github.com/wdstream/wdstream/progress"
	"github.com/wdstream/wdstream/rdfent"
)

func run(flags *pflag.FlagSet, cfg *config.Config, args []string) error {
	if cfg.ConfigFile != "" {
		if err := config.LoadFile(cfg.ConfigFile, cfg, flags); err != nil {
			return err
		}
	}

	compiled, err := cfg.Validate()
	if err != nil {
		return err
	}

	handler, err := cfg.Log.NewHandler(os.Stderr)
	if err != nil {
		return err
	}

	logger := slog.New(handler)

	if compiled.IDForcedWarning {
		logger.Warn(`--keep did not name "id"; it is force-retained`)
	}

	if err := cfg.Profiler.Start(); err != nil {
		return err
	}

	defer func() {
		if stopErr := cfg.Profiler.Stop(); stopErr != nil {
			logger.Error("stopping profiler", "error", stopErr)
		}
	}()

	inputPath := ""
	if len(args) > 0 {
		inputPath = args[0]
	}

	decompressed, closeInput, err := openInput(inputPath)
	if err != nil {
		return err
	}

	defer closeInput()

	format, reader, err := detectFormat(decompressed, inputPath, compiled.InputFormat)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	skipped := pipeline.SkipLines(reader, compiled.SkipLines)

	out, err := openOutput(cfg.Output, compiled.OutputCompression)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := out.Close(); closeErr != nil {
			logger.Error("closing output", "error", closeErr)
		}
	}()

	var dest io.Writer = out
	if cfg.StatsOnly {
		dest = io.Discard
	}

	counters := progress.NewCounters()
	watcher := cfg.Progress.NewWatcher(counters, func(s progress.Snapshot) {
		logger.Info("progress",
			"lines_read", s.LinesRead,
			"entities_seen", s.EntitiesSeen,
			"entities_matched", s.EntitiesMatched,
			"bytes_written", s.BytesWritten,
		)
	})

	stopWatcher := watcher.Start()
	defer stopWatcher()

	pipelineCfg := pipeline.Config{
		Workers:   compiled.Workers,
		BatchSize: compiled.BatchSize,
		MaxLines:  compiled.MaxLines,
	}

	ctx := context.Background()

	switch format {
	case ioformat.FormatRDF:
		err = runRDF(ctx, skipped, dest, compiled, pipelineCfg, counters)
	case ioformat.FormatJSON:
		err = runJSON(ctx, skipped, dest, compiled, pipelineCfg, counters)
	default:
		err = fmt.Errorf("%w: unresolved input format", ErrReadInput)
	}

	if err != nil {
		return err
	}

	if cfg.StatsOnly {
		snap := counters.Snapshot()
		fmt.Fprintf(os.Stderr, "lines_read=%d entities_seen=%d entities_matched=%d bytes_written=%d\n",
			snap.LinesRead, snap.EntitiesSeen, snap.EntitiesMatched, snap.BytesWritten)
	}

	return nil
}

// runRDF drives the pipeline over N-Triples input, filtering each entity
// and serializing it as N-Triples lines or, when output_format=json,
// converting it to a JSON entity first.
func runRDF(
	ctx context.Context,
	r io.Reader,
	w io.Writer,
	compiled config.Compiled,
	pcfg pipeline.Config,
	counters *progress.Counters,
) error {
	src := rdfent.NewReader(r)

	process := func(ent *rdfent.Entity) ([]byte, bool, error) {
		if !ent.Filter(compiled.RDFFilter) {
			return nil, false, nil
		}

		if compiled.OutputFormat == config.OutputJSON {
			jsonEnt, ok := ent.ToJSON()
			if !ok {
				return nil, false, nil
			}

			data, err := jsonEnt.Serialize()
			if err != nil {
				return nil, false, err
			}

			return data, true, nil
		}

		lines := ent.Lines()
		if len(lines) == 0 {
			return nil, false, nil
		}

		return []byte(strings.Join(lines, "\n")), true, nil
	}

	return pipeline.Run(ctx, src, process, w, pcfg, counters)
}

// runJSON drives the pipeline over NDJSON input, filtering each entity and
// serializing it as a JSON line or, when output_format=ntriples, converting
// it to N-Triples lines first.
func runJSON(
	ctx context.Context,
	r io.Reader,
	w io.Writer,
	compiled config.Compiled,
	pcfg pipeline.Config,
	counters *progress.Counters,
) error {
	src := jsonent.NewReader(r)

	process := func(ent jsonent.Entity) ([]byte, bool, error) {
		if !ent.Filter(compiled.JSONFilter) {
			return nil, false, nil
		}

		if compiled.OutputFormat == config.OutputNTriples {
			lines := ent.ToRDFLines()
			if len(lines) == 0 {
				return nil, false, nil
			}

			return []byte(strings.Join(lines, "\n")), true, nil
		}

		data, err := ent.Serialize()
		if err != nil {
			return nil, false, err
		}

		return data, true, nil
	}

	return pipeline.Run(ctx, src, process, w, pcfg, counters)
}
