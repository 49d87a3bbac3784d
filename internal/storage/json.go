package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"tcm/internal/domain"
)

// BuildReport summarizes a matching run into a report ready to be saved.
func BuildReport(strategy string, matches []domain.MatchResult, duration time.Duration, workers int) *domain.MatchReport {
	meta := domain.MatchReportMeta{
		RunID:           uuid.NewString(),
		Strategy:        strategy,
		TotalResults:    len(matches),
		Duration:        duration.String(),
		DurationSeconds: duration.Seconds(),
		Workers:         workers,
		Timestamp:       time.Now().Format(time.RFC3339),
	}

	details := make([]domain.MatchRecord, 0, len(matches))
	for _, m := range matches {
		if m.Matched() {
			meta.Matched++
		} else {
			meta.Unmatched++
		}
		switch m.TestResult.Status {
		case domain.StatusPassed:
			meta.Passed++
		case domain.StatusFailed:
			meta.Failed++
		case domain.StatusSkipped:
			meta.Skipped++
		}
		details = append(details, domain.NewMatchRecord(m))
	}

	return &domain.MatchReport{Meta: meta, Details: details}
}

// Save writes the report to the configured JSON output file.
func (s *JSONStorage) Save(report *domain.MatchReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Load reads the last report from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.MatchReport, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report file: %w", err)
	}
	var report domain.MatchReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &report, nil
}
