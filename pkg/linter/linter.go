package linter

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/siyuan-infoblox/import-group-ordering/pkg/config"
	"github.com/siyuan-infoblox/import-group-ordering/pkg/errors"
	"github.com/siyuan-infoblox/import-group-ordering/pkg/ordering"
	"github.com/siyuan-infoblox/import-group-ordering/pkg/report"
	"github.com/siyuan-infoblox/import-group-ordering/pkg/scanner"
	"github.com/siyuan-infoblox/import-group-ordering/pkg/utils"
)

type LinterConfig struct {
	ConfigPath string           // config file used for every file, overrides lookup
	Overrides  config.Overrides // checks forced on or off
	Jobs       int              // files linted in parallel, GOMAXPROCS when <= 0
	Report     report.Options   // output format of the violations
	Out        io.Writer        // violations are written here
	Log        io.Writer        // progress and error messages are written here
}

// Linter checks the import ordering of source files
type Linter struct {
	config   LinterConfig
	resolver *config.Resolver
}

// New creates a Linter
func New(cfg LinterConfig) (*Linter, error) {
	resolver, err := config.NewResolver(cfg.ConfigPath, cfg.Overrides)
	if err != nil {
		return nil, err
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Log == nil {
		cfg.Log = os.Stderr
	}
	return &Linter{config: cfg, resolver: resolver}, nil
}

func (l *Linter) getJobs() int {
	if l.config.Jobs <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return l.config.Jobs
}

func (l *Linter) logf(format string, args ...any) {
	fmt.Fprintf(l.config.Log, format+"\n", args...)
}

// LintSource checks the imports of src, which was read from path
func (l *Linter) LintSource(path string, src []byte) (report.FileResult, error) {
	result := report.FileResult{Path: path, Source: src}

	cfg, err := l.resolver.ForFile(path)
	if err != nil {
		return result, err
	}
	if !cfg.Enabled {
		return result, nil
	}

	decls, err := scanner.Scan(src)
	if err != nil {
		return result, fmt.Errorf("%s: %w", errors.ErrMsgFailedToScanFile, err)
	}
	result.Violations = ordering.ValidateSequence(decls, cfg.Options)
	return result, nil
}

// LintFile reads and checks a single file
func (l *Linter) LintFile(path string) (report.FileResult, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return report.FileResult{Path: path}, fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}
	return l.LintSource(path, src)
}

// FileError is a file that could not be linted
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf(errors.InfoMsgErrorProcessing, e.Path, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// LintFiles checks files in parallel. Results keep the order of paths; files that
// failed are returned separately and do not stop the others.
func (l *Linter) LintFiles(ctx context.Context, paths []string) ([]report.FileResult, []FileError, error) {
	results := make([]report.FileResult, len(paths))
	failed := make([]error, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(l.getJobs(), len(paths))))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			// indices are unique per goroutine, no locking needed
			results[i], failed[i] = l.LintFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var fileErrors []FileError
	linted := results[:0]
	for i, res := range results {
		if failed[i] != nil {
			fileErrors = append(fileErrors, FileError{Path: paths[i], Err: failed[i]})
			continue
		}
		linted = append(linted, res)
	}
	return linted, fileErrors, nil
}

// collectFiles expands directories into the source files they contain
func (l *Linter) collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		isDir, err := utils.IsDirectory(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
		}
		if !isDir {
			files = append(files, path)
			continue
		}

		found, err := utils.FindSourceFiles(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindSourceFiles, err)
		}
		if len(found) == 0 {
			l.logf(errors.InfoMsgNoSourceFilesFound, path)
			continue
		}
		l.logf(errors.InfoMsgFoundSourceFiles, len(found), path)
		files = append(files, found...)
	}
	return files, nil
}

// ProcessPaths lints files and directories, writes the report and a summary.
// It fails when a file could not be linted or any violation was found.
func (l *Linter) ProcessPaths(ctx context.Context, paths ...string) error {
	files, err := l.collectFiles(paths)
	if err != nil {
		return err
	}
	if l.config.ConfigPath != "" {
		l.logf(errors.InfoMsgUsingConfig, l.config.ConfigPath)
	}

	results, fileErrors, err := l.LintFiles(ctx, files)
	if err != nil {
		return err
	}

	if err := report.Write(l.config.Out, results, l.config.Report); err != nil {
		return err
	}
	for _, fe := range fileErrors {
		l.logf("%s", fe.Error())
	}

	violations := report.Count(results)
	summary := fmt.Sprintf(errors.InfoMsgLintedCount, len(results), violations)
	if len(fileErrors) > 0 {
		summary += fmt.Sprintf(errors.InfoMsgErrorCount, len(fileErrors))
	}
	l.logf("%s", summary)

	if len(fileErrors) > 0 {
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, len(fileErrors))
	}
	if violations > 0 {
		return errors.ErrViolationsFound
	}
	return nil
}
