package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/propdrift/cmd/propdrift/commands"
	"github.com/teranos/propdrift/logger"
)

var rootCmd = &cobra.Command{
	Use:   "propdrift",
	Short: "propdrift - Detect unforwarded construct properties",
	Long: `propdrift - Property drift detection for wrapper constructs.

Hand-written wrapper constructs forward configuration to the generated
low-level resource they instantiate. When the generated schema gains a
property the wrapper never passes through, user configuration is silently
dropped. propdrift parses the TypeScript sources, compares each wrapper's
call site against the generated *Props interface, and reports the
properties that never arrive.

Available commands:
  scan    - Run a one-shot drift scan over a source tree
  watch   - Re-scan automatically when sources change
  version - Show version information

Examples:
  propdrift scan packages/                 # Scan a source tree
  propdrift scan -o drift.json             # Persist the JSON report
  propdrift watch packages/                # Re-scan on change
  propdrift scan --fail-on-drift           # CI gate`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.InitializeWithVerbosity(jsonLogs, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit machine-readable JSON logs")

	rootCmd.AddCommand(commands.ScanCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
