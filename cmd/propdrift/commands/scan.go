package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/propdrift/config"
	"github.com/teranos/propdrift/errors"
	"github.com/teranos/propdrift/report"
	"github.com/teranos/propdrift/scan"
)

// ScanCmd runs a one-shot drift scan
var ScanCmd = &cobra.Command{
	Use:   "scan [root]",
	Short: "Detect unforwarded construct properties",
	Long: `Scan a source tree for wrapper constructs that silently drop
configuration properties.

The scan extracts declared property schemas from generated *Props
interfaces (*.generated.ts), extracts implemented schemas from
new Cfn*(scope, "Resource", {...}) call sites in handwritten sources,
and reports declared properties the call sites never forward.

The root defaults to scan.root from propdrift.toml, or the current
directory. Each first-level directory under the root is treated as a
module; constructs are matched within their module only.

Examples:
  propdrift scan                          # Scan the configured root
  propdrift scan packages/                # Scan a specific tree
  propdrift scan -o drift.json            # Persist the JSON report
  propdrift scan --fail-on-drift          # Exit 1 when drift is found`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := ""
		if len(args) == 1 {
			root = args[0]
		}
		return runScan(cmd, root)
	},
}

var (
	scanOutput      string
	scanSuffix      string
	scanFailOnDrift bool
)

func init() {
	ScanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "JSON report path (overrides scan.output)")
	ScanCmd.Flags().StringVar(&scanSuffix, "suffix", "", "Generated-file suffix (default: .generated.ts)")
	ScanCmd.Flags().BoolVar(&scanFailOnDrift, "fail-on-drift", false, "Exit with status 1 when drift is found")
}

// scanOptions resolves flag > config > default for one scan invocation.
func scanOptions(root string) (scan.Options, bool, error) {
	cfg, err := config.Load()
	if err != nil {
		return scan.Options{}, false, errors.Wrap(err, "failed to load configuration")
	}

	opts := scan.Options{
		Root:           cfg.Scan.Root,
		DeclaredSuffix: cfg.Scan.DeclaredSuffix,
		Output:         cfg.Scan.Output,
	}
	if root != "" {
		opts.Root = root
	}
	if scanOutput != "" {
		opts.Output = scanOutput
	}
	if scanSuffix != "" {
		opts.DeclaredSuffix = scanSuffix
	}
	return opts, scanFailOnDrift || cfg.Scan.FailOnDrift, nil
}

func runScan(cmd *cobra.Command, root string) error {
	opts, failOnDrift, err := scanOptions(root)
	if err != nil {
		return err
	}
	opts.Progress = report.NewCLIProgress()

	result, err := scan.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	report.PrintSummary(result.Records, result.Stats)

	if failOnDrift && len(result.Records) > 0 {
		return errors.Newf("%d construct(s) with unforwarded properties", len(result.Records))
	}
	return nil
}
