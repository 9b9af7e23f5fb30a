package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"txd-manager/core/config"
	"txd-manager/core/logger"
	"txd-manager/core/storage"
	"txd-manager/feature/publish"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for publish command
	publishDir    string
	publishPrefix string
	publishPrune  bool
	publishDryRun bool
	publishYes    bool
)

// publishCmd mirrors a local directory of containers into the bucket.
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish built containers to object storage",
	Long: `Publish built containers (*.txd, *.col) from a local directory to the
configured bucket. Builds a plan by comparing content hashes against
remote ETags, then uploads new or changed files. Remote objects with
no local counterpart are only deleted with --prune.

Examples:
  # Plan only (dry-run)
  publish --dir dist --prefix v1 --dry-run

  # Upload new and changed containers (with interactive confirmation)
  publish --dir dist --prefix v1

  # Full mirror including deletes, non-interactive
  publish --dir dist --prefix v1 --prune --yes`,
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().StringVar(&publishDir, "dir", ".", "Local directory holding built containers")
	publishCmd.Flags().StringVar(&publishPrefix, "prefix", "", "Key prefix inside the bucket")
	publishCmd.Flags().BoolVar(&publishPrune, "prune", false, "Delete remote objects with no local counterpart")
	publishCmd.Flags().BoolVar(&publishDryRun, "dry-run", false, "Force dry-run (no mutations even with --yes)")
	publishCmd.Flags().BoolVar(&publishYes, "yes", false, "Auto-confirm mutations (non-interactive)")
	RootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l)

	// Connect to storage
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", cfg.Storage.Bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", cfg.Storage.Bucket)
	}

	svc := publish.NewService(client, cfg.Storage.Bucket, l)

	opts := publish.Options{
		Prune:     publishPrune,
		DryRun:    publishDryRun,
		Confirmed: false, // Will be set after confirmation prompt
	}

	// Step 1: Plan (always runs)
	l.Info("Planning publish...",
		zap.String("dir", publishDir),
		zap.String("bucket", cfg.Storage.Bucket),
		zap.String("prefix", publishPrefix),
	)
	plan, err := svc.BuildPlan(ctx, publishDir, publishPrefix, opts)
	if err != nil {
		return fmt.Errorf("failed to plan publish: %w", err)
	}

	// Step 2: Print report
	printPublishReport(l, plan)

	if len(plan.Actions) == 0 {
		l.Info("Bucket is up to date. Nothing to do.")
		return nil
	}

	// Step 3: Apply (if confirmed)
	if publishDryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	if !confirmPublishActions(plan) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}
	opts.Confirmed = true

	l.Info("Applying actions...")
	executed, err := svc.Apply(ctx, plan, opts)
	if err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}

	l.Info("Successfully executed actions", zap.Int("count", executed))
	return nil
}

// printPublishReport prints a formatted publish report using logger.
func printPublishReport(l *zap.Logger, plan *publish.Plan) {
	s := plan.Summary

	l.Info("Publish report",
		zap.Int("local_files", s.LocalFiles),
		zap.Int("remote_objects", s.RemoteObjects),
		zap.Int("uploads", s.Uploads),
		zap.Int("prunes", s.Prunes),
		zap.Int("up_to_date", s.UpToDate),
	)

	if len(plan.Actions) > 0 {
		// Show sample of actions (max 5 for logger)
		maxShow := 5
		if len(plan.Actions) < maxShow {
			maxShow = len(plan.Actions)
		}
		for i := 0; i < maxShow; i++ {
			action := plan.Actions[i]
			l.Info("Sample action",
				zap.String("type", string(action.Type)),
				zap.String("key", action.Key),
				zap.String("reason", action.Reason),
			)
		}
		if len(plan.Actions) > maxShow {
			l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
		}
	}
}

// confirmPublishActions prompts the user for confirmation or uses --yes flag.
func confirmPublishActions(plan *publish.Plan) bool {
	if publishYes {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	prompt := fmt.Sprintf("\nApply %d upload(s)", plan.Summary.Uploads)
	if plan.Summary.Prunes > 0 {
		prompt += fmt.Sprintf(" and %d delete(s)", plan.Summary.Prunes)
	}
	fmt.Print(prompt + "? Type 'yes' to confirm: ")

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
