package matcher

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcm/internal/domain"
)

var knownCases = []domain.TestCase{
	{ID: "4870", Name: "jUnit Match Test Case By Exact Name"},
	{ID: "4871", Name: "JUnit Match Test Case by Display Name"},
	{ID: "4872", Name: "match_testCaseByDisplayNameInsteadOfMethodName"},
}

func TestMatch_Regex(t *testing.T) {
	cfg := Config{Strategy: StrategyRegex, RegexPattern: `testCase(\d+)`}
	m, err := New(cfg, nil)
	require.NoError(t, err)

	tests := []struct {
		name     string
		testName string
		expected string
	}{
		{name: "passing test", testName: "jUnit_passingTest_testCase4867", expected: "4867"},
		{name: "failing test", testName: "jUnit_failingTest_testCase4868", expected: "4868"},
		{name: "no case id in name", testName: "jUnit_Match_Test_Case_By_Exact_Name", expected: ""},
		{name: "empty name", testName: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := m.Match(domain.TestResult{Name: tt.testName, Status: domain.StatusPassed})
			assert.Equal(t, tt.expected, res.CaseID)
			assert.Equal(t, tt.expected != "", res.Matched())
			assert.Equal(t, tt.testName, res.TestResult.Name)
		})
	}
}

func TestMatch_RegexUsesFirstGroup(t *testing.T) {
	res, err := Match(Config{Strategy: StrategyRegex, RegexPattern: `TC(\d+)_(\w+)`}, nil,
		domain.TestResult{Name: "TC12_login"})
	require.NoError(t, err)
	assert.Equal(t, "12", res.CaseID)
}

func TestMatch_Name(t *testing.T) {
	m, err := New(Config{Strategy: StrategyName}, knownCases)
	require.NoError(t, err)

	tests := []struct {
		name     string
		result   domain.TestResult
		expected string
	}{
		{
			name:     "exact name",
			result:   domain.TestResult{Name: "jUnit_Match_Test_Case_By_Exact_Name"},
			expected: "4870",
		},
		{
			name:     "case insensitive name",
			result:   domain.TestResult{Name: "JUNIT_match_TEST_case_BY_exact_NAME"},
			expected: "4870",
		},
		{
			name: "display name takes precedence over method name",
			result: domain.TestResult{
				Name:        "match_testCaseByDisplayNameInsteadOfMethodName",
				DisplayName: "JUnit Match Test Case by Display Name",
			},
			expected: "4871",
		},
		{
			name: "default display name falls back to method name",
			result: domain.TestResult{
				Name:        "match_testCaseByDisplayNameInsteadOfMethodName",
				DisplayName: "match_testCaseByDisplayNameInsteadOfMethodName()",
			},
			expected: "4872",
		},
		{
			name: "unknown display name falls back to method name",
			result: domain.TestResult{
				Name:        "jUnit_Match_Test_Case_By_Exact_Name",
				DisplayName: "Something else entirely",
			},
			expected: "4870",
		},
		{
			name:     "partial name does not match",
			result:   domain.TestResult{Name: "jUnit_Match_TEST_case_By_Exact_Name_cAsE_iNsenSITive"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.Match(tt.result).CaseID)
		})
	}
}

func TestMatch_NameCaseInsensitiveVariantsResolveToSameCase(t *testing.T) {
	m, err := New(Config{Strategy: StrategyName}, []domain.TestCase{
		{ID: "4873", Name: "jUnit Match Test Case By Exact Name cAsE iNsenSITive"},
	})
	require.NoError(t, err)

	a := m.Match(domain.TestResult{Name: "jUnit_Match_TEST_case_By_Exact_Name_cAsE_iNsenSITive"})
	b := m.Match(domain.TestResult{Name: "JUNIT_MATCH_TEST_CASE_BY_EXACT_NAME_CASE_INSENSITIVE"})
	assert.Equal(t, "4873", a.CaseID)
	assert.Equal(t, a.CaseID, b.CaseID)
}

func TestMatch_NameFirstKnownCaseWins(t *testing.T) {
	m, err := New(Config{Strategy: StrategyName}, []domain.TestCase{
		{ID: "1", Name: "Login Works"},
		{ID: "2", Name: "login_works"},
		{Name: "Logout Works"},
	})
	require.NoError(t, err)

	assert.Equal(t, "1", m.Match(domain.TestResult{Name: "LOGIN-WORKS"}).CaseID)
	// cases without an id resolve to their name
	assert.Equal(t, "Logout Works", m.Match(domain.TestResult{Name: "logout_works"}).CaseID)
}

func TestMatch_NameWithoutCatalog(t *testing.T) {
	m, err := New(Config{Strategy: StrategyName}, nil)
	require.NoError(t, err)
	assert.False(t, m.Match(domain.TestResult{Name: "anything"}).Matched())
}

func TestMatch_Property(t *testing.T) {
	m, err := New(Config{Strategy: StrategyProperty, PropertyKey: "TestCaseId"}, nil)
	require.NoError(t, err)

	tests := []struct {
		name     string
		output   []string
		expected string
	}{
		{name: "single marker", output: []string{"[[PROPERTY|TestCaseId=4876]]"}, expected: "4876"},
		{
			name:     "last marker wins",
			output:   []string{"[[PROPERTY|TestCaseId=1]]", "noise", "[[PROPERTY|TestCaseId=2]]"},
			expected: "2",
		},
		{name: "other key ignored", output: []string{"[[PROPERTY|Config=linux]]"}, expected: ""},
		{name: "marker embedded in a line", output: []string{"INFO [[PROPERTY|TestCaseId=77]] done"}, expected: "77"},
		{name: "no output", output: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := m.Match(domain.TestResult{Name: "jUnit_associateTestCaseUsingTestProperty", ConsoleOutput: tt.output})
			assert.Equal(t, tt.expected, res.CaseID)
		})
	}
}

func TestNew_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		field string
	}{
		{name: "invalid regex", cfg: Config{Strategy: StrategyRegex, RegexPattern: `testCase(\d+`}, field: "regex"},
		{name: "missing regex", cfg: Config{Strategy: StrategyRegex}, field: "regex"},
		{name: "regex without group", cfg: Config{Strategy: StrategyRegex, RegexPattern: `testCase\d+`}, field: "regex"},
		{name: "missing property key", cfg: Config{Strategy: StrategyProperty}, field: "property"},
		{name: "reserved property key", cfg: Config{Strategy: StrategyProperty, PropertyKey: "a=b"}, field: "property"},
		{name: "no strategy", cfg: Config{}, field: "strategy"},
		{name: "unknown strategy", cfg: Config{Strategy: "fuzzy"}, field: "strategy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg, nil)
			require.Error(t, err)
			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestMatch_InvalidConfigFailsBeforeMatching(t *testing.T) {
	_, err := Match(Config{Strategy: StrategyRegex, RegexPattern: "("}, nil, domain.TestResult{Name: "x"})
	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestMatch_Idempotent(t *testing.T) {
	cfg := Config{Strategy: StrategyProperty, PropertyKey: "TestCaseId"}
	result := domain.TestResult{Name: "t", ConsoleOutput: []string{"[[PROPERTY|TestCaseId=4876]]"}}

	first, err := Match(cfg, nil, result)
	require.NoError(t, err)
	second, err := Match(cfg, nil, result)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMatcher_ConcurrentUse(t *testing.T) {
	m, err := New(Config{Strategy: StrategyName}, knownCases)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				res := m.Match(domain.TestResult{Name: "jUnit_Match_Test_Case_By_Exact_Name"})
				assert.Equal(t, "4870", res.CaseID)
			}
		}()
	}
	wg.Wait()
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy(" Regex ")
	require.NoError(t, err)
	assert.Equal(t, StrategyRegex, s)

	_, err = ParseStrategy("auto")
	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}
