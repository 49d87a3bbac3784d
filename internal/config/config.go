package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"tcm/internal/matcher"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string `yaml:"project_path"`

	// Matching settings
	Strategy         string `yaml:"strategy"`
	TestCaseRegex    string `yaml:"test_case_regex"`
	TestCaseProperty string `yaml:"test_case_property"`

	// Input settings
	ResultFormat    string   `yaml:"result_format"`
	ResultFiles     []string `yaml:"result_files"`
	ResultDirectory string   `yaml:"result_directory"`
	StatusFilter    []string `yaml:"status_filter"`
	NameFilter      string   `yaml:"name_filter"`

	// Directories skipped when scanning ResultDirectory
	PathsToIgnore []string `yaml:"paths_to_ignore"`

	// Known test cases for the name strategy
	CatalogFile  string `yaml:"catalog_file"`
	CatalogTable string `yaml:"catalog_table"`

	// Output settings
	OutputJSONFile string `yaml:"output_json_file"`
	OutputJSONDir  string `yaml:"output_json_dir"`

	// Execution settings
	Processors      int  `yaml:"processors"`
	FailOnFailing   bool `yaml:"fail_on_failing"`
	FailOnSkipped   bool `yaml:"fail_on_skipped"`
	FailOnUnmatched bool `yaml:"fail_on_unmatched"`

	// Command flags
	Flags Flags `yaml:"-"`
}

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

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:      DefaultProjectPath,
		Strategy:         DefaultStrategy,
		TestCaseRegex:    DefaultTestCaseRegex,
		TestCaseProperty: DefaultTestCaseProperty,
		ResultFormat:     DefaultResultFormat,
		OutputJSONFile:   DefaultOutputJSONFile,
		OutputJSONDir:    DefaultOutputJSONDir,
		Processors:       DefaultProcessors,
		Flags:            Flags{Processors: DefaultProcessors},
	}
	// Copy default paths to ignore
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config from defaults, the config file, the environment and flags, in that order
func Load(flags Flags) (*Config, error) {
	cfg := New()

	path := flags.ConfigFile
	if path == "" {
		path = filepath.Join(cfg.ProjectPath, DefaultConfigFile)
	}
	if err := cfg.LoadFile(path); err != nil {
		// the default config file is optional, an explicit one is not
		if flags.ConfigFile != "" || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(filepath.Join(cfg.ProjectPath, ".env"))
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	cfg.ApplyFlags(flags)
	return cfg, nil
}

// LoadFile overlays settings from a YAML file
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays TCM_* environment variables
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("TCM_STRATEGY"); v != "" {
		c.Strategy = v
	}
	if v := os.Getenv("TCM_TEST_CASE_REGEX"); v != "" {
		c.TestCaseRegex = v
	}
	if v := os.Getenv("TCM_TEST_CASE_PROPERTY"); v != "" {
		c.TestCaseProperty = v
	}
	if v := os.Getenv("TCM_RESULT_FORMAT"); v != "" {
		c.ResultFormat = v
	}
	if v := os.Getenv("TCM_CATALOG_FILE"); v != "" {
		c.CatalogFile = v
	}
	if v := os.Getenv("TCM_CATALOG_TABLE"); v != "" {
		c.CatalogTable = v
	}
	if v := os.Getenv("TCM_PROCESSORS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TCM_PROCESSORS: %w", err)
		}
		c.Processors = n
	}
	return nil
}

// ApplyFlags overlays non-zero command-line flags
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags

	if flags.Strategy != "" {
		c.Strategy = flags.Strategy
	}
	if flags.TestCaseRegex != "" {
		c.TestCaseRegex = flags.TestCaseRegex
	}
	if flags.TestCaseProperty != "" {
		c.TestCaseProperty = flags.TestCaseProperty
	}
	if flags.ResultFormat != "" {
		c.ResultFormat = flags.ResultFormat
	}
	if len(flags.ResultFiles) > 0 {
		c.ResultFiles = flags.ResultFiles
	}
	if flags.ResultDirectory != "" {
		c.ResultDirectory = flags.ResultDirectory
	}
	if len(flags.StatusFilter) > 0 {
		c.StatusFilter = flags.StatusFilter
	}
	if flags.NameFilter != "" {
		c.NameFilter = flags.NameFilter
	}
	if flags.CatalogFile != "" {
		c.CatalogFile = flags.CatalogFile
	}
	if flags.CatalogTable != "" {
		c.CatalogTable = flags.CatalogTable
	}
	if flags.Processors > 0 {
		c.Processors = flags.Processors
	}
	c.FailOnFailing = c.FailOnFailing || flags.FailOnFailing
	c.FailOnSkipped = c.FailOnSkipped || flags.FailOnSkipped
	c.FailOnUnmatched = c.FailOnUnmatched || flags.FailOnUnmatched
}

// MatchConfig returns the matcher configuration for this run.
// Only the setting used by the selected strategy is passed on.
func (c *Config) MatchConfig() (matcher.Config, error) {
	strategy, err := matcher.ParseStrategy(c.Strategy)
	if err != nil {
		return matcher.Config{}, err
	}
	mc := matcher.Config{Strategy: strategy}
	switch strategy {
	case matcher.StrategyRegex:
		mc.RegexPattern = c.TestCaseRegex
	case matcher.StrategyProperty:
		mc.PropertyKey = c.TestCaseProperty
	}
	return mc, nil
}

// GetResultFiles returns the result file paths, joined to ResultDirectory when relative
func (c *Config) GetResultFiles() []string {
	files := make([]string, 0, len(c.ResultFiles))
	for _, f := range c.ResultFiles {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if c.ResultDirectory != "" && !filepath.IsAbs(f) {
			f = filepath.Join(c.ResultDirectory, f)
		}
		files = append(files, f)
	}
	return files
}

// GetOutputPath returns the full path to the output JSON file.
// Resolves to an absolute path so match and view always use the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetDatabaseDSN returns the MySQL DSN for the case catalog
func (c *Config) GetDatabaseDSN() string {
	if dsn := os.Getenv("TCM_DB_DSN"); dsn != "" {
		return dsn
	}
	host := envOr("TCM_DB_HOST", "127.0.0.1")
	port := envOr("TCM_DB_PORT", "3306")
	user := envOr("TCM_DB_USERNAME", "root")
	password := os.Getenv("TCM_DB_PASSWORD")
	name := envOr("TCM_DB_DATABASE", "testcases")
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", user, password, host, port, name)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
