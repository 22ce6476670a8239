package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/urfave/cli"

	"github.com/katalvlaran/cvrp/config"
	"github.com/katalvlaran/cvrp/instance"
	"github.com/katalvlaran/cvrp/metrics"
	"github.com/katalvlaran/cvrp/refine"
	"github.com/katalvlaran/cvrp/report"
	"github.com/katalvlaran/cvrp/route"
	"github.com/katalvlaran/cvrp/search"
)

var errInfeasible = errors.New("cvrp: infeasible solution")

func solveFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{Name: "config, c", Usage: "YAML configuration file"},
		cli.Float64Flag{Name: "width", Usage: "sector width in degrees, (0, 360]"},
		cli.StringFlag{Name: "strategy", Usage: "graph strategy: proximity, mst or mst-restart"},
		cli.IntFlag{Name: "degree", Usage: "proximity graph degree bound D"},
		cli.Float64Flag{Name: "wedge", Usage: "proximity wedge half-angle θ in degrees, 0 disables"},
		cli.IntFlag{Name: "trials", Usage: "trials per graph (rho)"},
		cli.IntFlag{Name: "restarts", Usage: "graphs per partition for mst-restart (lambda)"},
		cli.Uint64Flag{Name: "seed", Usage: "random seed; 0 selects the default seed 1, so --seed 0 and --seed 1 give the same run"},
		cli.IntFlag{Name: "parallelism, p", Usage: "goroutine budget, 0 = GOMAXPROCS"},
		cli.BoolFlag{Name: "no-refine", Usage: "skip 2-opt and relocate refinement"},
		cli.BoolFlag{Name: "routes", Usage: "print the routes of every instance"},
		cli.StringFlag{Name: "ledger", Usage: "record run summaries in this SQLite file"},
		cli.StringFlag{Name: "metrics-file", Usage: "write Prometheus metrics to this file on exit"},
		cli.BoolFlag{Name: "verbose, v", Usage: "debug logging"},
	}
}

// loadConfig reads --config and applies flag overrides.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return cfg, err
	}
	if c.IsSet("width") {
		cfg.SectorWidth = c.Float64("width")
	}
	if c.IsSet("strategy") {
		cfg.Strategy = c.String("strategy")
	}
	if c.IsSet("degree") {
		cfg.MaxDegree = c.Int("degree")
	}
	if c.IsSet("wedge") {
		cfg.Wedge = c.Float64("wedge")
	}
	if c.IsSet("trials") {
		cfg.Trials = c.Int("trials")
	}
	if c.IsSet("restarts") {
		cfg.Restarts = c.Int("restarts")
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Uint64("seed")
	}
	if c.IsSet("parallelism") {
		cfg.Parallelism = c.Int("parallelism")
	}
	if c.Bool("no-refine") {
		cfg.Refine.Enabled = false
	}
	return cfg, cfg.Validate()
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func solveAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.NewExitError("solve: at least one instance file is required", 2)
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log := newLogger(c.Bool("verbose"))
	m := metrics.New()
	if path := c.String("metrics-file"); path != "" {
		defer func() {
			if err := m.WriteTextfile(path); err != nil {
				log.Error("write metrics", slog.String("path", path), slog.Any("err", err))
			}
		}()
	}

	var ledger *report.Ledger
	if path := c.String("ledger"); path != "" {
		if ledger, err = report.OpenLedger(path); err != nil {
			return err
		}
		defer ledger.Close()
	}

	sys := report.CollectSystem()
	var summaries []report.Summary
	for _, file := range c.Args() {
		s, sol, err := solveFile(ctx, file, cfg, log, m)
		if err != nil {
			if errors.Is(err, errInfeasible) {
				m.RecordSolution(metrics.StatusInvalid)
			} else {
				m.RecordSolution(metrics.StatusFailed)
			}
			return fmt.Errorf("%s: %w", file, err)
		}
		m.RecordSolution(metrics.StatusValid)
		s.System = sys
		summaries = append(summaries, s)

		if c.Bool("routes") {
			fmt.Fprintf(c.App.Writer, "# %s\n", s.Instance)
			if err := report.WriteRoutes(c.App.Writer, sol); err != nil {
				return err
			}
		}
		if ledger != nil {
			if err := ledger.Record(ctx, s); err != nil {
				return err
			}
		}
	}

	return report.WriteTable(c.App.Writer, summaries...)
}

// solveFile runs load → search → refine → verify for one instance.
func solveFile(ctx context.Context, file string, cfg config.Config, log *slog.Logger, obs search.Observer) (report.Summary, route.Solution, error) {
	started := time.Now()

	inst, err := instance.Load(file, cfg.InstanceOptions()...)
	if err != nil {
		return report.Summary{}, route.Solution{}, err
	}

	opts, err := cfg.SearchOptions()
	if err != nil {
		return report.Summary{}, route.Solution{}, err
	}
	opts.Logger = log.With(slog.String("file", filepath.Base(file)))
	opts.Observer = obs

	res, err := search.Solve(ctx, inst, opts)
	if err != nil {
		return report.Summary{}, route.Solution{}, err
	}

	final := res.Solution.Routes
	if cfg.Refine.Enabled {
		var st refine.Stats
		if final, st, err = refine.Improve(inst, final, cfg.RefineOptions()); err != nil {
			return report.Summary{}, route.Solution{}, err
		}
		opts.Logger.Info("refined",
			slog.Int("passes", st.Passes),
			slog.Int("relocated", st.Relocated),
			slog.Float64("before", st.Before),
			slog.Float64("after", st.After),
		)
	}

	if err := route.Verify(inst, final, inst.Capacity()); err != nil {
		return report.Summary{}, route.Solution{}, fmt.Errorf("%w: %w", errInfeasible, err)
	}

	s := report.NewSummary(filepath.Base(file), inst, opts.Builder.Name(), res, final, true, started)
	return s, route.Solution{Routes: final, Cost: s.FinalCost}, nil
}

func historyAction(c *cli.Context) error {
	l, err := report.OpenLedger(c.String("ledger"))
	if err != nil {
		return err
	}
	defer l.Close()

	runs, err := l.Recent(context.Background(), c.Int("limit"))
	if err != nil {
		return err
	}
	return report.WriteTable(c.App.Writer, runs...)
}
