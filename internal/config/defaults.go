package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "match-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultProcessors is the default number of matching workers
	DefaultProcessors = 4
	// DefaultStrategy is the default match strategy
	DefaultStrategy = "regex"
	// DefaultTestCaseRegex captures the first number in a test name
	DefaultTestCaseRegex = `(\d+)`
	// DefaultTestCaseProperty is the console property carrying the case id
	DefaultTestCaseProperty = "TestCase"
	// DefaultResultFormat is the default test result file format
	DefaultResultFormat = "junit"
	// DefaultConfigFile is looked up in the project path when no config file is given
	DefaultConfigFile = ".tcm.yaml"
)

// DefaultPathsToIgnore are the directories skipped when scanning for result files
var DefaultPathsToIgnore = []string{
	"node_modules",
	"vendor",
	"src",
}
