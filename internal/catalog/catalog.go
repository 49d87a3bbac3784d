// Package catalog loads the known test cases used by name matching.
package catalog

import (
	"context"

	"tcm/internal/domain"
)

// Catalog supplies the known test cases in their precedence order
type Catalog interface {
	Load(ctx context.Context) ([]domain.TestCase, error)
}

// Static is a Catalog backed by an in-memory list
type Static []domain.TestCase

// Load returns the list unchanged
func (s Static) Load(ctx context.Context) ([]domain.TestCase, error) {
	return s, nil
}
