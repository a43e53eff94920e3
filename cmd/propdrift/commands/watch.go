package commands

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/teranos/propdrift/config"
	"github.com/teranos/propdrift/errors"
	"github.com/teranos/propdrift/logger"
	"github.com/teranos/propdrift/report"
	"github.com/teranos/propdrift/scan"
)

// WatchCmd re-scans on source changes
var WatchCmd = &cobra.Command{
	Use:   "watch [root]",
	Short: "Re-scan for drift whenever sources change",
	Long: `Run an initial drift scan, then watch the source tree and re-scan
whenever a TypeScript file changes. Changes are debounced so a burst of
writes (editor save, code generation) triggers a single re-scan.

Runs until interrupted.

Examples:
  propdrift watch packages/
  propdrift watch -o drift.json    # Rewrite the report after each scan`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := ""
		if len(args) == 1 {
			root = args[0]
		}
		return runWatch(root)
	},
}

func init() {
	WatchCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "JSON report path (overrides scan.output)")
	WatchCmd.Flags().StringVar(&scanSuffix, "suffix", "", "Generated-file suffix (default: .generated.ts)")
}

func runWatch(root string) error {
	opts, _, err := scanOptions(root)
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initial scan before entering the watch loop.
	result, err := scan.Run(ctx, opts)
	if err != nil {
		return err
	}
	report.PrintSummary(result.Records, result.Stats)

	watcher, err := scan.NewWatcher(opts)
	if err != nil {
		return errors.Wrap(err, "failed to start source watcher")
	}
	defer watcher.Stop()
	watcher.SetDebounce(time.Duration(cfg.Watch.DebounceMs) * time.Millisecond)
	watcher.OnRescan(func(r *scan.Result) {
		report.PrintSummary(r.Records, r.Stats)
	})

	watcher.Start(ctx)
	logger.Infow("watching for source changes", "root", opts.Root)

	<-ctx.Done()
	logger.Info("watch stopped")
	return nil
}
