// Package reader converts test framework result files into test results.
package reader

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"tcm/internal/domain"
	"tcm/internal/ui"
)

// Reader reads test results from a single result file
type Reader interface {
	Read(ctx context.Context, path string) ([]domain.TestResult, error)
}

// Formats lists the supported result file formats
var Formats = []string{"junit", "gotest", "json"}

// New returns the Reader for a result file format.
// log receives diagnostics such as skipped input lines and may be nil.
func New(format string, log *ui.Logger) (Reader, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "junit", "xunit", "surefire":
		return NewJUnitReader(), nil
	case "gotest", "go-test-json":
		return NewGoTestReader().WithLogger(log), nil
	case "json":
		return NewJSONReader(), nil
	}
	return nil, fmt.Errorf("unsupported result format %q (supported: %s)", format, strings.Join(Formats, ", "))
}

// Extensions returns the file extensions scanned for when only a result directory is given
func Extensions(format string) []string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "gotest", "go-test-json":
		return []string{".json", ".jsonl", ".ndjson"}
	case "json":
		return []string{".json"}
	}
	return []string{".xml"}
}

// ReadAll reads every file concurrently and returns the results in path order.
// Paths containing glob metacharacters are expanded; a glob matching nothing is an error.
func ReadAll(ctx context.Context, r Reader, paths []string) ([]domain.TestResult, error) {
	files, err := expand(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no test result files given")
	}

	perFile := make([][]domain.TestResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			results, err := r.Read(ctx, file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			perFile[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []domain.TestResult
	for _, results := range perFile {
		all = append(all, results...)
	}
	return all, nil
}

func expand(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		if !strings.ContainsAny(p, "*?[") {
			files = append(files, p)
			continue
		}
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("invalid glob %s: %w", p, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %s", p)
		}
		files = append(files, matches...)
	}
	return files, nil
}

// splitLines splits captured output into lines, dropping carriage returns and trailing blank lines
func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func seconds(secs float64) time.Duration {
	return time.Duration(math.Round(secs * float64(time.Second)))
}
