package reader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"tcm/internal/domain"
)

// JSONReader reads a JSON array of test results
type JSONReader struct{}

// NewJSONReader creates a new JSONReader
func NewJSONReader() *JSONReader {
	return &JSONReader{}
}

// Read parses a JSON result file
func (jr *JSONReader) Read(ctx context.Context, path string) ([]domain.TestResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return jr.Parse(f)
}

// Parse decodes the results and normalizes their status values
func (jr *JSONReader) Parse(r io.Reader) ([]domain.TestResult, error) {
	var results []domain.TestResult
	if err := json.NewDecoder(r).Decode(&results); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	for i := range results {
		status, err := domain.ParseStatus(string(results[i].Status))
		if err != nil {
			return nil, fmt.Errorf("result %d (%s): %w", i, results[i].Name, err)
		}
		results[i].Status = status
	}
	return results, nil
}
