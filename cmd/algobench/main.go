// Command algobench times the algokit sorting algorithms over seeded
// random input and verifies their output through the umbrella library's
// public surface.
//
// Input sizes, seed and algorithm selection come from an optional config
// file (YAML or TOML) with ALGOBENCH_* environment overrides:
//
//	algobench -config algobench.yaml
//	ALGOBENCH_SEED=7 algobench
//
// With -watch, the suite reruns whenever the config file changes.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML or TOML config file")
	watch := flag.Bool("watch", false, "rerun the suite when the config file changes")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))

	if err := runSuite(logger, *configPath); err != nil {
		logger.Error("Benchmark suite failed", "error", err)
		os.Exit(1)
	}

	if *watch && *configPath != "" {
		if err := watchAndRerun(logger, *configPath); err != nil {
			logger.Error("Watch mode failed", "error", err)
			os.Exit(1)
		}
	}
}

func runSuite(logger *slog.Logger, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	return newRunner(cfg, logger).run()
}

// watchAndRerun blocks until interrupted, rerunning the suite on every
// change to the config file. A failed rerun is logged, not fatal; the
// next edit gets another chance.
func watchAndRerun(logger *slog.Logger, configPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(configPath); err != nil {
		return err
	}
	logger.Info("Watching config for changes", "path", configPath)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down watch mode")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Info("Config changed, rerunning suite", "path", event.Name)
			if err := runSuite(logger, configPath); err != nil {
				logger.Error("Rerun failed", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", "error", err)
		}
	}
}
