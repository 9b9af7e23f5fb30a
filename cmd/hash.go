package cmd

import (
	"fmt"
	"os"

	"txd-manager/feature/names"

	"github.com/spf13/cobra"
)

var (
	hashFlags batchFlags
	hashNames string
	hashOut   string
)

// hashCmd renders the resource-name hash table.
var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Hash resource names into a lookup table",
	Long: `Hash resource names. Reads one name per line from the name list and
writes one "HEX name" row per name to the output table. A malformed
line produces a "# ERROR" placeholder row so the table keeps one row
per input line.`,
	Args: cobra.NoArgs,
	Run:  runHash,
}

func init() {
	hashCmd.Flags().StringVar(&hashNames, "names", "names.txt", "Name list file (one name per line)")
	hashCmd.Flags().StringVar(&hashOut, "out", "hashes.txt", "Output hash table file")
	hashFlags.register(hashCmd, "", "")
	RootCmd.AddCommand(hashCmd)
}

func runHash(cmd *cobra.Command, args []string) {
	env, err := newBatchEnv()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	svc := names.NewService(env.logger)
	stats, runErr := svc.HashFile(hashNames, hashOut)

	env.finish(hashFlags, stats, runErr)
}
