package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"tcm/internal/domain"
)

// FileCatalog reads test cases from a YAML or JSON file.
// The file holds a list of {id, name} entries, optionally under a "cases" key.
type FileCatalog struct {
	path string
}

// NewFileCatalog creates a new FileCatalog
func NewFileCatalog(path string) *FileCatalog {
	return &FileCatalog{path: path}
}

type caseList struct {
	Cases []domain.TestCase `json:"cases" yaml:"cases"`
}

// Load reads and validates the catalog file
func (fc *FileCatalog) Load(ctx context.Context) ([]domain.TestCase, error) {
	data, err := os.ReadFile(fc.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var cases []domain.TestCase
	if strings.EqualFold(filepath.Ext(fc.path), ".json") {
		cases, err = decodeJSON(data)
	} else {
		cases, err = decodeYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", fc.path, err)
	}

	for i, tc := range cases {
		if strings.TrimSpace(tc.Name) == "" {
			return nil, fmt.Errorf("catalog %s: entry %d has no name", fc.path, i+1)
		}
	}
	return cases, nil
}

func decodeJSON(data []byte) ([]domain.TestCase, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var cases []domain.TestCase
		err := json.Unmarshal(trimmed, &cases)
		return cases, err
	}
	var list caseList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return list.Cases, nil
}

func decodeYAML(data []byte) ([]domain.TestCase, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}
	if node.Content[0].Kind == yaml.SequenceNode {
		var cases []domain.TestCase
		err := node.Decode(&cases)
		return cases, err
	}
	var list caseList
	err := node.Decode(&list)
	return list.Cases, err
}
