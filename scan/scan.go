// Package scan orchestrates a drift scan: it discovers TypeScript sources
// under a root, extracts declared and implemented schemas file by file, and
// diffs them. Files are processed sequentially and independently; a file
// that fails to parse is logged and skipped without touching results
// already collected.
package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/teranos/propdrift/drift"
	"github.com/teranos/propdrift/errors"
	"github.com/teranos/propdrift/extract"
	"github.com/teranos/propdrift/logger"
	"github.com/teranos/propdrift/report"
	"github.com/teranos/propdrift/schema"
	"github.com/teranos/propdrift/tsast"
)

// Options configures one scan.
type Options struct {
	// Root is the directory holding the per-module source trees.
	Root string

	// DeclaredSuffix marks generated declaration files (.generated.ts).
	DeclaredSuffix string

	// Output is the JSON report path; empty disables persistence.
	Output string

	// Progress receives phase notifications; nil disables them.
	Progress Progress
}

// Progress receives phase notifications during a scan.
type Progress interface {
	// Phase announces the start of a scan phase covering fileCount files.
	Phase(name string, fileCount int)

	// Done marks the scan finished.
	Done()
}

type nopProgress struct{}

func (nopProgress) Phase(string, int) {}
func (nopProgress) Done()             {}

// DefaultDeclaredSuffix is the generated-file naming convention.
const DefaultDeclaredSuffix = ".generated.ts"

// Result is the outcome of one scan.
type Result struct {
	Records []schema.MissingPropertyRecord
	Stats   report.Stats
}

// Run executes a full scan. A missing root is fatal; per-file parse
// failures are not.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.DeclaredSuffix == "" {
		opts.DeclaredSuffix = DefaultDeclaredSuffix
	}

	info, err := os.Stat(opts.Root)
	if err != nil || !info.IsDir() {
		return nil, errors.WithHint(
			errors.NewMissingInputError("source root %s does not exist", opts.Root),
			"pass the directory that contains the per-module source trees")
	}

	declaredFiles, implementedFiles, err := discoverSources(opts.Root, opts.DeclaredSuffix)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk source root %s", opts.Root)
	}
	logger.Logger.Infow("discovered sources",
		"root", opts.Root,
		"declared_files", len(declaredFiles),
		"implemented_files", len(implementedFiles))

	progress := opts.Progress
	if progress == nil {
		progress = nopProgress{}
	}

	result := &Result{}

	progress.Phase("extracting declared schemas", len(declaredFiles))
	var declared []schema.ConstructSchema
	for _, path := range declaredFiles {
		tree, ok := parseFile(ctx, path, result)
		if !ok {
			continue
		}
		module := ModuleFromPath(opts.Root, path)
		index := extract.BuildTypeIndex(tree)
		declared = append(declared, extract.ExtractDeclared(tree, index, module)...)
		tree.Close()
		result.Stats.DeclaredFiles++
	}

	progress.Phase("extracting implemented schemas", len(implementedFiles))
	var implemented []schema.ConstructSchema
	for _, path := range implementedFiles {
		tree, ok := parseFile(ctx, path, result)
		if !ok {
			continue
		}
		implemented = append(implemented, extract.ExtractImplemented(tree, ModuleFromPath(opts.Root, path))...)
		tree.Close()
		result.Stats.ImplementedFiles++
	}

	progress.Phase("diffing schemas", 0)
	result.Stats.DeclaredConstructs = len(declared)
	result.Stats.ImplementedConstructs = len(implemented)
	result.Records = drift.Diff(declared, implemented)

	logger.Logger.Infow("scan complete",
		"declared_constructs", len(declared),
		"implemented_constructs", len(implemented),
		"records", len(result.Records))

	if opts.Output != "" {
		if err := report.Write(opts.Output, result.Records); err != nil {
			return nil, err
		}
	}
	progress.Done()
	return result, nil
}

// parseFile reads and parses one source file. Failures are recovered
// locally: the file is skipped and accounted in the stats.
func parseFile(ctx context.Context, path string, result *Result) (*tsast.Tree, bool) {
	src, err := os.ReadFile(path)
	if err != nil {
		logger.Logger.Warnw("skipping unreadable file", "file", path, "error", err)
		result.Stats.SkippedFiles++
		return nil, false
	}
	tree, err := tsast.Parse(ctx, src, path)
	if err != nil {
		logger.Logger.Warnw("skipping unparsable file", "file", path, "error", err)
		result.Stats.SkippedFiles++
		return nil, false
	}
	return tree, true
}

// discoverSources splits the TypeScript files under root into generated
// declaration files and handwritten sources. Declaration files (.d.ts),
// tests, and node_modules are never scanned.
func discoverSources(root, declaredSuffix string) (declared, implemented []string, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if d.Name() == "node_modules" || strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		switch {
		case strings.HasSuffix(name, declaredSuffix):
			declared = append(declared, path)
		case strings.HasSuffix(name, ".d.ts"),
			strings.HasSuffix(name, ".test.ts"),
			strings.HasSuffix(name, ".test.tsx"):
			// Not construct sources.
		case strings.HasSuffix(name, ".ts"), strings.HasSuffix(name, ".tsx"):
			implemented = append(implemented, path)
		}
		return nil
	})
	return declared, implemented, err
}

// ModuleFromPath derives the logical module name from the first path
// segment below the scan root (aws-cloudfront/lib/distribution.ts →
// aws-cloudfront). Files directly under the root fall back to the root's
// own directory name.
func ModuleFromPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.Base(filepath.Dir(path))
	}
	rel = filepath.ToSlash(rel)
	if idx := strings.IndexByte(rel, '/'); idx > 0 {
		return rel[:idx]
	}
	return filepath.Base(root)
}
