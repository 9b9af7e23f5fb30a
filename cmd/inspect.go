package cmd

import (
	"fmt"

	"txd-manager/core/config"
	"txd-manager/core/logger"
	"txd-manager/feature/texture"

	"github.com/spf13/cobra"
)

// inspectCmd prints the entry tables of texture dictionaries.
var inspectCmd = &cobra.Command{
	Use:   "inspect FILE...",
	Short: "Print the entry table of texture dictionaries",
	Long:  `Loads each texture dictionary and prints its version stamp, device id, and per-entry name, payload size, and version.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInspect,
}

func init() {
	RootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	svc := texture.NewService(l)
	for _, path := range args {
		d, err := svc.LoadFile(path)
		if err != nil {
			return err
		}

		// Pretty Console Output
		fmt.Printf("\n--- %s ---\n", path)
		fmt.Printf("Version:   0x%08X\n", d.Version)
		fmt.Printf("Device:    %d\n", d.DeviceID)
		fmt.Printf("Entries:   %d\n", d.Count())
		fmt.Println("-----------------------------")
		for i, e := range d.Entries {
			fmt.Printf("%4d  %-32s %10d  0x%08X\n", i, e.Name, len(e.Raw), e.Version)
		}
	}
	return nil
}
