package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeusync/vecmath/internal/injector"
	"github.com/zeusync/vecmath/internal/observability/log"
	"github.com/zeusync/vecmath/internal/scenario"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg := scenario.DefaultConfig()

	fs := flag.NewFlagSet("vecmath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "usage: vecmath [flags] scenario.yaml|scenario.json...")
		fs.PrintDefaults()
	}
	levelName := fs.String("level", "warn", "log level: debug, info, warn, error")
	encoding := fs.String("log-encoding", "console", "log encoding: console or json")
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "decimals for magnitudes when a file sets none")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "files evaluated concurrently")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	level, err := log.ParseLevel(*levelName)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	logOpts := log.Options{Encoding: *encoding}
	if err = logOpts.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if err = cfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	evaluator, err := injector.InitializeEvaluator(level, logOpts, cfg)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	logger := evaluator.Logger()

	files := make([]*scenario.File, 0, fs.NArg())
	for _, path := range fs.Args() {
		f, err := scenario.LoadFile(path)
		if err != nil {
			logger.Error("failed to load scenario", log.String("path", path), log.Error(err))
			return 1
		}
		files = append(files, f)
	}

	reports, err := evaluator.RunAll(ctx, files)
	if err != nil {
		logger.Error("evaluation failed", log.Error(err))
		return 1
	}

	failed := 0
	for _, report := range reports {
		_, _ = fmt.Fprintf(stdout, "# %s (checksum %016x)\n", report.Name, report.Checksum)
		for _, res := range report.Results {
			_, _ = fmt.Fprintln(stdout, res.String())
		}
		failed += report.Failed()
	}
	if failed > 0 {
		logger.Warn("some steps produced no result", log.Int("failed", failed))
	}
	return 0
}
