package cmd

import (
	"fmt"
	"os"

	"txd-manager/core/joblist"
	"txd-manager/feature/texture"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var mergeFlags batchFlags

// mergeCmd merges texture dictionaries, deduplicating entries by name.
var mergeCmd = &cobra.Command{
	Use:   "merge [DEST [BASE] OVERLAY]",
	Short: "Merge texture dictionaries with name deduplication",
	Long: `Merge texture dictionary containers. On a name collision the base
dictionary wins; overlay entries with new names are appended in order.

Without arguments, runs the job list (one "<dest> <source>" pair per
line, merging <source> into <dest> in place). With paths, runs one
merge directly.

Examples:
  # Run every job in txd-merge.txt
  merge

  # Merge extra.txd into city.txd, rewriting city.txd
  merge city.txd extra.txd

  # Merge base and overlay into a third file
  merge out.txd base.txd overlay.txd`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 || len(args) > 3 {
			return fmt.Errorf("expects no paths (job-list mode), DEST OVERLAY, or DEST BASE OVERLAY")
		}
		return nil
	},
	Run: runMerge,
}

func init() {
	mergeFlags.register(mergeCmd, "txd-merge.txt", "dest source per line")
	RootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) {
	env, err := newBatchEnv()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	svc := texture.NewService(env.logger)

	var stats joblist.Stats
	var runErr error
	switch len(args) {
	case 2:
		stats = runSingleJob(env.logger, func() error {
			return svc.MergeInto(args[0], args[1])
		})
	case 3:
		stats = runSingleJob(env.logger, func() error {
			return svc.MergeFiles(args[0], args[1], args[2])
		})
	default:
		runner := joblist.NewRunner(env.logger, 2, func(fields []string) error {
			return svc.MergeInto(fields[0], fields[1])
		})
		stats, runErr = runner.RunFile(mergeFlags.jobs)
	}

	env.finish(mergeFlags, stats, runErr)
}

// runSingleJob wraps one direct-path invocation in job-run accounting
// so direct and job-list runs finish identically.
func runSingleJob(l *zap.Logger, job func() error) joblist.Stats {
	stats := joblist.Stats{Jobs: 1}
	if err := job(); err != nil {
		stats.Failed++
		l.Error("Job failed", zap.Error(err))
	}
	return stats
}
