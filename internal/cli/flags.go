package cli

import "tcm/internal/config"

// Flags holds command-line flags
type Flags struct {
	ConfigFile       string
	Strategy         string
	TestCaseRegex    string
	TestCaseProperty string
	ResultFormat     string
	ResultFiles      []string
	ResultDirectory  string
	StatusFilter     []string
	NameFilter       string
	CatalogFile      string
	CatalogTable     string
	Processors       int
	FailOnFailing    bool
	FailOnSkipped    bool
	FailOnUnmatched  bool
	Verbose          bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigFile:       f.ConfigFile,
		Strategy:         f.Strategy,
		TestCaseRegex:    f.TestCaseRegex,
		TestCaseProperty: f.TestCaseProperty,
		ResultFormat:     f.ResultFormat,
		ResultFiles:      f.ResultFiles,
		ResultDirectory:  f.ResultDirectory,
		StatusFilter:     f.StatusFilter,
		NameFilter:       f.NameFilter,
		CatalogFile:      f.CatalogFile,
		CatalogTable:     f.CatalogTable,
		Processors:       f.Processors,
		FailOnFailing:    f.FailOnFailing,
		FailOnSkipped:    f.FailOnSkipped,
		FailOnUnmatched:  f.FailOnUnmatched,
		Verbose:          f.Verbose,
	}
}
