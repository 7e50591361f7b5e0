package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/TheBitDrifter/table"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/codewriter-packages/queries"
)

type runOptions struct {
	Verbose  bool
	Entities int
	Ticks    int
	Lifetime int
	Delta    time.Duration
	Config   string
	Profile  string
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "querysim",
		Short:         "Run compiled queries over a synthetic world",
		SilenceErrors: true,
	}
	cmd.AddCommand(newRunCommand())
	return cmd
}

func newRunCommand() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate movement and expiry for a number of ticks",
		Long: `Creates moving entities, frozen entities and short-lived entities, registers
a movement system and a lifetime system, and runs the scheduler for the requested
number of ticks.

Example:
  querysim run --entities 100000 --ticks 600 --profile cpu
  querysim run --config scheduler.yaml -v`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.Flags().IntVar(&opts.Entities, "entities", 10000, "number of moving entities")
	cmd.Flags().IntVar(&opts.Ticks, "ticks", 60, "number of ticks to run")
	cmd.Flags().IntVar(&opts.Lifetime, "lifetime", 30, "ticks before a short-lived entity expires")
	cmd.Flags().DurationVar(&opts.Delta, "delta", time.Second/60, "simulated time per tick")
	cmd.Flags().StringVar(&opts.Config, "config", "", "scheduler YAML config")
	cmd.Flags().StringVar(&opts.Profile, "profile", "", "write a profile (cpu|mem)")

	return cmd
}

func run(cmd *cobra.Command, opts *runOptions) error {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	queries.Config.SetLogger(logger)

	switch opts.Profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		return fmt.Errorf("invalid profile %q: must be cpu or mem", opts.Profile)
	}

	storage := queries.Factory.NewStorage(table.Factory.NewSchema())
	w, err := populate(storage, opts)
	if err != nil {
		return err
	}

	scheduler := queries.Factory.NewScheduler(storage)
	if opts.Config != "" {
		cfg, err := queries.LoadSchedulerConfigFile(opts.Config)
		if err != nil {
			return err
		}
		if err := scheduler.ApplyConfig(cfg); err != nil {
			return err
		}
	}
	movement := &movementSystem{}
	lifetime := &lifetimeSystem{storage: storage}
	if err := scheduler.Add("movement", movement); err != nil {
		return err
	}
	if err := scheduler.Add("lifetime", lifetime); err != nil {
		return err
	}
	if err := scheduler.Configure(); err != nil {
		return err
	}

	start := time.Now()
	visited := 0
	for tick := 0; tick < opts.Ticks; tick++ {
		if err := scheduler.Update(cmd.Context(), opts.Delta); err != nil {
			return err
		}
		if qs, ok := scheduler.System("movement"); ok && qs.Query() != nil {
			visited += qs.Query().Visited()
		}
	}
	elapsed := time.Since(start)
	if lifetime.failed != nil {
		return lifetime.failed
	}

	logger.Info("simulation finished",
		"ticks", opts.Ticks,
		"elapsed", elapsed,
		"visited", visited,
		"expired", lifetime.expired,
		"created", w.created,
	)
	fmt.Fprintf(cmd.OutOrStdout(), "ticks=%d visited=%d expired=%d elapsed=%s\n",
		opts.Ticks, visited, lifetime.expired, elapsed)
	return nil
}
