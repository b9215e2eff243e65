// Package progress tracks pipeline throughput and reports it to the user.
//
// It holds the atomic counters updated by the parallel pipeline (lines read,
// entities seen/matched, bytes written) and a [Watcher] that samples them at
// a fixed cadence and logs one line per tick. Use [Config.RegisterFlags] to
// add CLI flags and [Config.RegisterCompletions] to wire up shell completions.
//
// Typical usage creates a [Config], registers flags, then creates a
// [Counters] to pass into the pipeline and a [Watcher] to report on it:
//
//	cfg := progress.NewConfig()
//	cfg.RegisterFlags(rootCmd.Flags())
//
//	counters := progress.NewCounters()
//	watcher := cfg.NewWatcher(counters, func(s progress.Snapshot) {
//	    logger.Info("progress", "lines", s.LinesRead, "entities", s.EntitiesSeen)
//	})
//	stop := watcher.Start()
//	defer stop()
package progress
