package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Barritosaurus/cpu-scheduler/config"
	schedlog "github.com/Barritosaurus/cpu-scheduler/internal/log"
	"github.com/Barritosaurus/cpu-scheduler/internal/process"
	"github.com/Barritosaurus/cpu-scheduler/internal/render"
	"github.com/Barritosaurus/cpu-scheduler/internal/schedulers"
	"github.com/Barritosaurus/cpu-scheduler/pkg/client"
)

func main() {
	cfg := config.GetSchedulerConfig()
	logger := schedlog.BuildLogger(cfg.LogLevel)

	if err := run(context.Background(), os.Stdout, logger, cfg, os.Args...); err != nil {
		log.Fatal(err)
	}
}

var ErrInvalidArgs = errors.New("invalid args")

// run loads the process file named by args[1] and prints a report for every
// policy named in args[2:], or for the configured policies when none are given.
func run(ctx context.Context, w io.Writer, logger *slog.Logger, cfg *config.SchedulerConfig, args ...string) error {
	f, closeFile, err := openProcessingFile(args...)
	if err != nil {
		return err
	}
	defer closeFile()

	processes, err := loadProcesses(f, logger)
	if err != nil {
		return err
	}

	var policies []schedulers.Policy
	if len(args) > 2 {
		policies = make([]schedulers.Policy, 0, len(args)-2)
		for _, a := range args[2:] {
			p, err := schedulers.ParsePolicy(a)
			if err != nil {
				return err
			}
			policies = append(policies, p)
		}
	}

	reports, err := schedule(ctx, logger, cfg, processes, policies)
	if err != nil {
		return err
	}
	for _, r := range reports {
		render.Report(w, r, cfg.Precision)
	}
	return nil
}

// schedule runs policies locally or against cfg.RemoteURL. A nil policies
// slice selects the configured set: cfg.Policies locally, the daemon's own set
// remotely.
func schedule(ctx context.Context, logger *slog.Logger, cfg *config.SchedulerConfig, processes []process.Process, policies []schedulers.Policy) ([]schedulers.Report, error) {
	if cfg.RemoteURL == "" {
		if policies == nil {
			policies = cfg.Policies
		}
		return schedulers.NewDispatcher(logger).RunAll(processes, policies, cfg.RoundRobinTimeQuantum)
	}

	logger.Info("using remote scheduler", slog.String("url", cfg.RemoteURL))
	c := client.New(cfg.RemoteURL, nil)
	if policies == nil {
		resps, err := c.ScheduleAll(ctx, processes, cfg.RoundRobinTimeQuantum)
		if err != nil {
			return nil, err
		}
		reports := make([]schedulers.Report, len(resps))
		for i := range resps {
			reports[i] = resps[i].Report()
		}
		return reports, nil
	}

	reports := make([]schedulers.Report, 0, len(policies))
	for _, p := range policies {
		resp, err := c.Schedule(ctx, p, processes, cfg.RoundRobinTimeQuantum)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		reports = append(reports, resp.Report())
	}
	return reports, nil
}

func openProcessingFile(args ...string) (*os.File, func(), error) {
	if len(args) < 2 {
		return nil, nil, fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}
	f, err := os.Open(args[1])
	if err != nil {
		return nil, nil, fmt.Errorf("%v: error opening scheduling file", err)
	}
	closeFn := func() {
		if err := f.Close(); err != nil {
			log.Fatalf("%v: error closing scheduling file", err)
		}
	}

	return f, closeFn, nil
}

// loadProcesses picks the CSV reader for .csv files and the triples format
// otherwise.
func loadProcesses(f *os.File, logger *slog.Logger) ([]process.Process, error) {
	if strings.EqualFold(filepath.Ext(f.Name()), ".csv") {
		return process.LoadCSV(f)
	}

	in, err := process.Load(f)
	if err != nil {
		return nil, err
	}
	if in.Truncated {
		logger.Warn("process data count is not a multiple of 3, using complete triples only",
			slog.String("file", f.Name()))
	}
	logger.Info("processes loaded",
		slog.String("header", in.Header),
		slog.Int("count", len(in.Processes)),
		slog.Int64("context_switch", in.ContextSwitch),
	)
	return in.Processes, nil
}
