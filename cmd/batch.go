package cmd

import (
	"bufio"
	"fmt"
	"os"

	"txd-manager/core/config"
	"txd-manager/core/joblist"
	"txd-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// batchFlags are the switches every batch command carries.
type batchFlags struct {
	jobs       string
	noPause    bool
	strictExit bool
}

// register adds the batch flags to cmd. Commands without a job-list
// file pass an empty defaultJobs and get no --jobs flag.
func (f *batchFlags) register(cmd *cobra.Command, defaultJobs, what string) {
	if defaultJobs != "" {
		cmd.Flags().StringVar(&f.jobs, "jobs", defaultJobs, "Job list file ("+what+")")
	}
	cmd.Flags().BoolVar(&f.noPause, "no-pause", false, "Exit without waiting for Enter")
	cmd.Flags().BoolVar(&f.strictExit, "strict-exit", false, "Exit non-zero when any job failed")
}

// batchEnv bundles what a batch run needs: the loaded config and a
// logger carrying the run id.
type batchEnv struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newBatchEnv() (*batchEnv, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &batchEnv{cfg: cfg, logger: logger.WithRunID(l)}, nil
}

// finish ends a batch run the way the original tools did: report the
// totals, print Done., wait for Enter, and exit zero no matter what
// went wrong along the way. Strict mode instead turns any failure into
// exit code 1.
func (e *batchEnv) finish(flags batchFlags, stats joblist.Stats, err error) {
	if err != nil {
		e.logger.Error("Run aborted", zap.Error(err))
	} else {
		e.logger.Info("Run finished",
			zap.Int("jobs", stats.Jobs),
			zap.Int("failed", stats.Failed),
			zap.Int("bad_lines", stats.BadLines),
		)
	}
	_ = e.logger.Sync()

	fmt.Println("Done.")
	if e.cfg.Batch.PauseOnExit && !flags.noPause {
		fmt.Print("Press Enter to exit...")
		_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	}

	if (flags.strictExit || e.cfg.Batch.StrictExit) &&
		(err != nil || stats.Failed > 0 || stats.BadLines > 0) {
		os.Exit(1)
	}
	os.Exit(0)
}
