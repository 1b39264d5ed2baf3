// Command digraph-editor serves a graph editing session over HTTP.
//
// Usage:
//
//	digraph-editor [-config digraph.yaml] [-watch]
//
// The initial graph is the snapshot file from the configuration, else a generated
// graph of sample_size nodes, else the bundled sample graph.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/digraph/builder"
	"github.com/katalvlaran/digraph/config"
	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/editor"
	"github.com/katalvlaran/digraph/logging"
	"github.com/katalvlaran/digraph/metrics"
	"github.com/katalvlaran/digraph/server"
	"github.com/katalvlaran/digraph/snapshot"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "digraph-editor:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	watch := flag.Bool("watch", false, "reload the log level when the configuration file changes")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logger, level, err := logging.New(logging.Options{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: cfg.Log.Development,
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	initial, source, err := initialGraph(cfg)
	if err != nil {
		return err
	}
	logger.Info("initial graph loaded",
		zap.String("source", source),
		zap.Int("nodes", initial.NodeCount()),
		zap.Int("edges", initial.EdgeCount()),
	)

	collector := metrics.NewCollector()
	collector.SetGraph(initial)
	store := editor.NewGraphStore(initial, cfg.StoreOptions(logger, collector)...)
	srv := server.New(store, logger,
		server.WithMetrics(collector),
		server.WithAllowedOrigins(cfg.Server.AllowedOrigins...),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	if *watch && *configPath != "" {
		w, err := config.NewWatcher(*configPath, cfg, logger)
		if err != nil {
			return err
		}
		w.OnChange(func(c config.Config) {
			if l, err := logging.ParseLevel(c.Log.Level); err == nil {
				level.SetLevel(l)
			}
		})
		g.Go(func() error { return w.Run(ctx) })
	}
	g.Go(func() error {
		return srv.ListenAndServe(ctx, cfg.Server.Addr, server.Timeouts{
			Read:     cfg.Server.ReadTimeout,
			Write:    cfg.Server.WriteTimeout,
			Shutdown: cfg.Server.ShutdownTimeout,
		})
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("stopped")

	return nil
}

// initialGraph picks the snapshot source named by cfg and reports which one it used.
func initialGraph(cfg config.Config) (core.Graph, string, error) {
	switch {
	case cfg.Graph.Snapshot != "":
		g, err := snapshot.LoadFile(cfg.Graph.Snapshot)
		return g, cfg.Graph.Snapshot, err
	case cfg.Graph.SampleSize > 0:
		g, err := builder.Generate(cfg.Graph.SampleSize, cfg.BuilderOptions()...)
		return g, "generated", err
	default:
		g, err := builder.Sample()
		return g, "sample", err
	}
}
