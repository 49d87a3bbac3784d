package domain

// MatchResult associates a test result with an external test case identifier.
// CaseID is empty when no test case matched.
type MatchResult struct {
	TestResult TestResult
	CaseID     string
}

// Matched reports whether a test case identifier was found
func (m MatchResult) Matched() bool {
	return m.CaseID != ""
}

// MatchRecord is the persisted form of a MatchResult
type MatchRecord struct {
	TestName      string   `json:"test_name"`
	DisplayName   string   `json:"display_name,omitempty"`
	ClassName     string   `json:"class_name,omitempty"`
	Status        Status   `json:"status"`
	CaseID        string   `json:"case_id,omitempty"`
	Matched       bool     `json:"matched"`
	ConsoleOutput []string `json:"console_output,omitempty"`
}

// NewMatchRecord flattens a MatchResult for storage
func NewMatchRecord(m MatchResult) MatchRecord {
	return MatchRecord{
		TestName:      m.TestResult.Name,
		DisplayName:   m.TestResult.DisplayName,
		ClassName:     m.TestResult.ClassName,
		Status:        m.TestResult.Status,
		CaseID:        m.CaseID,
		Matched:       m.Matched(),
		ConsoleOutput: m.TestResult.ConsoleOutput,
	}
}

// MatchReportMeta contains metadata about a matching run
type MatchReportMeta struct {
	RunID           string  `json:"run_id"`
	Strategy        string  `json:"strategy"`
	TotalResults    int     `json:"total_results"`
	Matched         int     `json:"matched"`
	Unmatched       int     `json:"unmatched"`
	Passed          int     `json:"passed"`
	Failed          int     `json:"failed"`
	Skipped         int     `json:"skipped"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Workers         int     `json:"workers"`
	Timestamp       string  `json:"timestamp"`
}

// MatchReport is the complete output structure of a matching run
type MatchReport struct {
	Meta    MatchReportMeta `json:"meta"`
	Details []MatchRecord   `json:"details"`
}

// Unmatched returns the records that did not resolve to a test case
func (r *MatchReport) Unmatched() []MatchRecord {
	var out []MatchRecord
	for _, d := range r.Details {
		if !d.Matched {
			out = append(out, d)
		}
	}
	return out
}
