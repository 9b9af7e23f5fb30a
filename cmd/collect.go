package cmd

import (
	"fmt"
	"os"

	"txd-manager/core/joblist"
	"txd-manager/feature/collision"

	"github.com/spf13/cobra"
)

var collectFlags batchFlags

// collectCmd concatenates collision files into archives.
var collectCmd = &cobra.Command{
	Use:   "collect [OUTFILE FOLDER]",
	Short: "Collect collision files into archives",
	Long: `Collect collision archives. Each job concatenates every .col file
directly under a folder into one output archive, in lexical order.

Without arguments, runs the job list (one "<outfile> <folder>" pair
per line). With paths, runs one collection directly.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("expects no paths (job-list mode) or OUTFILE FOLDER")
		}
		return nil
	},
	Run: runCollect,
}

func init() {
	collectFlags.register(collectCmd, "col-merge.txt", "outfile folder per line")
	RootCmd.AddCommand(collectCmd)
}

func runCollect(cmd *cobra.Command, args []string) {
	env, err := newBatchEnv()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	svc := collision.NewService(env.logger)

	var stats joblist.Stats
	var runErr error
	if len(args) == 2 {
		stats = runSingleJob(env.logger, func() error {
			return svc.Collect(args[0], args[1])
		})
	} else {
		runner := joblist.NewRunner(env.logger, 2, func(fields []string) error {
			return svc.Collect(fields[0], fields[1])
		})
		stats, runErr = runner.RunFile(collectFlags.jobs)
	}

	env.finish(collectFlags, stats, runErr)
}
