// Package report persists drift results and renders the terminal summary.
package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/teranos/propdrift/errors"
	"github.com/teranos/propdrift/schema"
)

// Write serializes the records as an indented JSON array. An empty result
// still writes a document ([]) so consumers can distinguish "no drift" from
// "no scan". Parent directories are created as needed.
func Write(path string, records []schema.MissingPropertyRecord) error {
	if records == nil {
		records = []schema.MissingPropertyRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal drift records")
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "failed to create report directory %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write report to %s", path)
	}
	return nil
}

// Stats summarizes one scan for the terminal report.
type Stats struct {
	DeclaredFiles         int
	ImplementedFiles      int
	SkippedFiles          int
	DeclaredConstructs    int
	ImplementedConstructs int
}

// PrintSummary renders the scan outcome with pterm: a counters line plus a
// table of constructs with missing properties, if any.
func PrintSummary(records []schema.MissingPropertyRecord, stats Stats) {
	pterm.DefaultSection.Println("Drift scan")

	pterm.Info.Printfln("scanned %d generated + %d handwritten files (%d skipped), %d declared / %d implemented constructs",
		stats.DeclaredFiles, stats.ImplementedFiles, stats.SkippedFiles,
		stats.DeclaredConstructs, stats.ImplementedConstructs)

	if len(records) == 0 {
		pterm.Success.Println("no missing properties detected")
		return
	}

	rows := pterm.TableData{{"Module", "Construct", "Missing", "Properties"}}
	for _, r := range records {
		rows = append(rows, []string{
			r.Module,
			r.Name,
			strconv.Itoa(len(r.MissingProps)),
			previewPaths(r.MissingProps),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		pterm.Error.Printfln("failed to render summary table: %v", err)
	}
	pterm.Warning.Printfln("%d construct(s) with unforwarded properties", len(records))
}

// previewPaths keeps table rows readable for constructs with long miss lists.
func previewPaths(paths []string) string {
	const maxShown = 4
	if len(paths) <= maxShown {
		return strings.Join(paths, ", ")
	}
	shown := strings.Join(paths[:maxShown], ", ")
	return shown + ", … +" + strconv.Itoa(len(paths)-maxShown)
}
