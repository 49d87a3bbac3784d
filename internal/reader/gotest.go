package reader

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"tcm/internal/domain"
	"tcm/internal/ui"
)

// goTestEvent is one line of go test -json output
type goTestEvent struct {
	Time    time.Time `json:"Time"`
	Action  string    `json:"Action"`
	Package string    `json:"Package"`
	Test    string    `json:"Test"`
	Elapsed float64   `json:"Elapsed"`
	Output  string    `json:"Output"`
}

// GoTestReader reads go test -json NDJSON streams
type GoTestReader struct {
	log *ui.Logger
}

// NewGoTestReader creates a new GoTestReader
func NewGoTestReader() *GoTestReader {
	return &GoTestReader{}
}

// WithLogger sets the logger that reports skipped malformed lines
func (gr *GoTestReader) WithLogger(log *ui.Logger) *GoTestReader {
	gr.log = log
	return gr
}

// Read parses a go test -json file
func (gr *GoTestReader) Read(ctx context.Context, path string) ([]domain.TestResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	results, malformed, err := gr.Parse(ctx, f)
	if err != nil {
		return nil, err
	}
	if malformed > 0 && gr.log != nil {
		gr.log.Debugf("%s: skipped %d malformed line(s)", path, malformed)
	}
	return results, nil
}

// Parse parses go test -json events line by line.
// Returns the results in start order and the number of malformed lines skipped.
// A test that never reported pass, fail or skip is treated as failed.
func (gr *GoTestReader) Parse(ctx context.Context, r io.Reader) ([]domain.TestResult, int, error) {
	scanner := bufio.NewScanner(r)
	// Allow large lines for verbose test output
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	type entry struct {
		result   domain.TestResult
		finished bool
	}
	var (
		order     []string
		entries   = make(map[string]*entry)
		malformed int
	)
	get := func(ev goTestEvent) *entry {
		key := ev.Package + "\x00" + ev.Test
		e, ok := entries[key]
		if !ok {
			e = &entry{result: domain.TestResult{Name: ev.Test, ClassName: ev.Package}}
			entries[key] = e
			order = append(order, key)
		}
		return e
	}

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, malformed, err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var ev goTestEvent
		if err := json.Unmarshal(line, &ev); err != nil {
			malformed++
			continue
		}
		if ev.Test == "" {
			continue
		}
		e := get(ev)
		switch ev.Action {
		case "output":
			e.result.ConsoleOutput = append(e.result.ConsoleOutput, strings.TrimRight(ev.Output, "\r\n"))
		case "pass", "fail", "skip":
			status, _ := domain.ParseStatus(ev.Action)
			e.result.Status = status
			e.result.Duration = seconds(ev.Elapsed)
			e.finished = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, malformed, fmt.Errorf("scanning test output: %w", err)
	}

	results := make([]domain.TestResult, 0, len(order))
	for _, key := range order {
		e := entries[key]
		if !e.finished {
			e.result.Status = domain.StatusFailed
		}
		results = append(results, e.result)
	}
	return results, malformed, nil
}
