package reader

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"tcm/internal/domain"
	"tcm/internal/matcher"
)

type junitSuites struct {
	Suites []junitSuite `xml:"testsuite"`
}

type junitSuite struct {
	Name      string       `xml:"name,attr"`
	Suites    []junitSuite `xml:"testsuite"`
	Cases     []junitCase  `xml:"testcase"`
	SystemOut string       `xml:"system-out"`
}

type junitCase struct {
	Name        string          `xml:"name,attr"`
	DisplayName string          `xml:"displayname,attr"`
	ClassName   string          `xml:"classname,attr"`
	Time        string          `xml:"time,attr"`
	Failure     *junitMessage   `xml:"failure"`
	Error       *junitMessage   `xml:"error"`
	Skipped     *junitMessage   `xml:"skipped"`
	Properties  []junitProperty `xml:"properties>property"`
	SystemOut   string          `xml:"system-out"`
}

type junitMessage struct {
	Message string `xml:"message,attr"`
}

type junitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// JUnitReader reads JUnit/Surefire style XML reports
type JUnitReader struct{}

// NewJUnitReader creates a new JUnitReader
func NewJUnitReader() *JUnitReader {
	return &JUnitReader{}
}

// Read parses a report whose root is either <testsuites> or a single <testsuite>
func (jr *JUnitReader) Read(ctx context.Context, path string) ([]domain.TestResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return jr.Parse(f)
}

// Parse parses a JUnit XML document
func (jr *JUnitReader) Parse(r io.Reader) ([]domain.TestResult, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("no testsuite element found")
		}
		if err != nil {
			return nil, fmt.Errorf("parse junit xml: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "testsuites":
			var suites junitSuites
			if err := dec.DecodeElement(&suites, &start); err != nil {
				return nil, fmt.Errorf("parse junit xml: %w", err)
			}
			var results []domain.TestResult
			for _, s := range suites.Suites {
				results = append(results, s.results()...)
			}
			return results, nil
		case "testsuite":
			var suite junitSuite
			if err := dec.DecodeElement(&suite, &start); err != nil {
				return nil, fmt.Errorf("parse junit xml: %w", err)
			}
			return suite.results(), nil
		default:
			return nil, fmt.Errorf("unexpected root element <%s>", start.Name.Local)
		}
	}
}

func (s junitSuite) results() []domain.TestResult {
	var results []domain.TestResult
	for _, c := range s.Cases {
		results = append(results, c.result())
	}
	// suite level output can only be attributed when the suite ran a single test
	if len(results) == 1 {
		results[0].ConsoleOutput = append(results[0].ConsoleOutput, splitLines(s.SystemOut)...)
	}
	for _, nested := range s.Suites {
		results = append(results, nested.results()...)
	}
	return results
}

func (c junitCase) result() domain.TestResult {
	status := domain.StatusPassed
	switch {
	case c.Failure != nil || c.Error != nil:
		status = domain.StatusFailed
	case c.Skipped != nil:
		status = domain.StatusSkipped
	}

	// reported properties come first so console markers emitted by the test override them
	var output []string
	for _, p := range c.Properties {
		output = append(output, matcher.FormatProperty(p.Name, p.Value))
	}
	output = append(output, splitLines(c.SystemOut)...)

	var duration time.Duration
	if secs, err := strconv.ParseFloat(strings.TrimSpace(c.Time), 64); err == nil {
		duration = seconds(secs)
	}

	return domain.TestResult{
		Name:          strings.TrimSuffix(c.Name, "()"),
		DisplayName:   c.DisplayName,
		ClassName:     c.ClassName,
		Status:        status,
		ConsoleOutput: output,
		Duration:      duration,
	}
}
