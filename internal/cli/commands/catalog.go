package commands

import (
	"context"
	"fmt"

	"tcm/internal/catalog"
	"tcm/internal/config"
	"tcm/internal/domain"
	"tcm/internal/matcher"
)

// errNoCatalog is returned when the name strategy has nothing to compare against
var errNoCatalog = &matcher.ConfigurationError{
	Field: "catalog",
	Msg:   "the name strategy needs known test cases (--catalog or --catalog-table)",
}

// newCatalog picks the configured test case source, nil when none is configured
func newCatalog(cfg *config.Config) catalog.Catalog {
	switch {
	case cfg.CatalogFile != "":
		return catalog.NewFileCatalog(cfg.CatalogFile)
	case cfg.CatalogTable != "":
		return catalog.NewMySQLCatalog(cfg.GetDatabaseDSN(), cfg.CatalogTable)
	}
	return nil
}

// buildMatcher validates the match configuration and loads known cases when the strategy needs them
func buildMatcher(ctx context.Context, cfg *config.Config) (*matcher.Matcher, []domain.TestCase, error) {
	mc, err := cfg.MatchConfig()
	if err != nil {
		return nil, nil, err
	}

	var cases []domain.TestCase
	if mc.Strategy == matcher.StrategyName {
		src := newCatalog(cfg)
		if src == nil {
			return nil, nil, errNoCatalog
		}
		if cases, err = src.Load(ctx); err != nil {
			return nil, nil, fmt.Errorf("load test cases: %w", err)
		}
	}

	m, err := matcher.New(mc, cases)
	if err != nil {
		return nil, nil, err
	}
	return m, cases, nil
}
