package storage

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcm/internal/config"
	"tcm/internal/domain"
)

func TestBuildReport(t *testing.T) {
	matches := []domain.MatchResult{
		{TestResult: domain.TestResult{Name: "a", Status: domain.StatusPassed}, CaseID: "1"},
		{TestResult: domain.TestResult{Name: "b", Status: domain.StatusFailed}},
		{TestResult: domain.TestResult{Name: "c", Status: domain.StatusSkipped}, CaseID: "3"},
	}

	report := BuildReport("regex", matches, 1500*time.Millisecond, 4)

	assert.NotEmpty(t, report.Meta.RunID)
	assert.Equal(t, "regex", report.Meta.Strategy)
	assert.Equal(t, 3, report.Meta.TotalResults)
	assert.Equal(t, 2, report.Meta.Matched)
	assert.Equal(t, 1, report.Meta.Unmatched)
	assert.Equal(t, 1, report.Meta.Passed)
	assert.Equal(t, 1, report.Meta.Failed)
	assert.Equal(t, 1, report.Meta.Skipped)
	assert.Equal(t, 1.5, report.Meta.DurationSeconds)
	require.Len(t, report.Details, 3)
	assert.Equal(t, "b", report.Unmatched()[0].TestName)
}

func TestJSONStorage_SaveLoad(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	st := NewJSONStorage(cfg)

	report := BuildReport("property", []domain.MatchResult{
		{
			TestResult: domain.TestResult{
				Name:          "jUnit_associateTestCaseUsingTestProperty",
				Status:        domain.StatusPassed,
				ConsoleOutput: []string{"[[PROPERTY|TestCaseId=4876]]"},
			},
			CaseID: "4876",
		},
	}, time.Second, 1)

	require.NoError(t, st.Save(report))

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, report, loaded)
}

func TestJSONStorage_LoadErrors(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	st := NewJSONStorage(cfg)

	_, err := st.Load()
	assert.Error(t, err)

	require.NoError(t, os.MkdirAll(cfg.ProjectPath+"/"+cfg.OutputJSONDir, 0755))
	require.NoError(t, os.WriteFile(cfg.GetOutputPath(), []byte("{"), 0644))
	_, err = st.Load()
	assert.Error(t, err)
}
