package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Status is the outcome of an executed test
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// ParseStatus converts a framework outcome string to a Status
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "passed", "pass", "success", "ok":
		return StatusPassed, nil
	case "failed", "fail", "failure", "error", "errored":
		return StatusFailed, nil
	case "skipped", "skip", "disabled", "ignored", "notexecuted":
		return StatusSkipped, nil
	}
	return "", fmt.Errorf("unknown test status %q", s)
}

// TestResult represents a single executed test as reported by the test framework
type TestResult struct {
	Name          string        `json:"name"`                   // Test method name
	DisplayName   string        `json:"display_name,omitempty"` // Framework display name, if any
	ClassName     string        `json:"class_name,omitempty"`
	Status        Status        `json:"status"`
	ConsoleOutput []string      `json:"console_output,omitempty"` // Captured output lines in emission order
	Duration      time.Duration `json:"duration,omitempty"`
}

// TestCase is an external test case record a result can be linked to
type TestCase struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Key returns the identifier reported for the case: its ID, or its name when no ID is set
func (tc TestCase) Key() string {
	if tc.ID != "" {
		return tc.ID
	}
	return tc.Name
}

// UnmarshalJSON accepts the id as either a JSON string or a JSON number
func (tc *TestCase) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID   json.RawMessage `json:"id"`
		Name string          `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*tc = TestCase{Name: raw.Name}
	id := bytes.TrimSpace(raw.ID)
	switch {
	case len(id) == 0 || string(id) == "null":
	case id[0] == '"':
		return json.Unmarshal(id, &tc.ID)
	default:
		var n json.Number
		if err := json.Unmarshal(id, &n); err != nil {
			return fmt.Errorf("test case %q: id must be a string or a number", raw.Name)
		}
		tc.ID = n.String()
	}
	return nil
}
