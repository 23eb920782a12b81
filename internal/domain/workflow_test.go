package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "solvestats.dev/pkg/solvestats/internal/model"
)

type captureUI struct {
	diags  []m.Diagnostic
	report m.Report
}

func (c *captureUI) DisplayDiagnostics(diags []m.Diagnostic) error {
	c.diags = diags
	return nil
}

func (c *captureUI) DisplayReport(report m.Report) error {
	c.report = report
	return nil
}

func TestWorkflow_Analyze(t *testing.T) {
	results := &fakeResults{byDir: map[m.Path][]m.ResultRecord{
		"run-a": {
			solvedRecord("two-fer", "python"),
			solvedRecord("etl", "python"),
		},
		"run-b": {
			solvedRecord("two-fer", "python"),
			failedRecord("etl", "python"),
		},
	}}
	ui := &captureUI{}

	workflow := NewWorkflow(&fakeLeaderboard{}, results, ui)
	err := workflow.Analyze(context.Background(), AnalyzeArgs{Dirs: []m.Path{"run-a", "run-b"}})
	require.NoError(t, err)

	assert.Equal(t, 2, ui.report.Summary.TotalExercises)
	assert.Equal(t, 2, ui.report.Summary.TotalEntries)
	assert.Equal(t, 1, ui.report.Summary.SolvedByAll)
	assert.Equal(t, 1, ui.report.Summary.SolvedBySome)
	assert.Zero(t, ui.report.Summary.SolvedByNone)
}

func TestWorkflow_Analyze_TopNLimitsUniverse(t *testing.T) {
	// The weaker entry has a unique exercise; with topn=1 it must vanish
	// from the universe entirely.
	results := &fakeResults{byDir: map[m.Path][]m.ResultRecord{
		"run-strong": {solvedRecord("two-fer", "python")},
		"run-weak": {
			failedRecord("two-fer", "python"),
			solvedRecord("etl", "go"),
		},
	}}
	ui := &captureUI{}

	leaderboard := &fakeLeaderboard{entries: []m.Entry{
		{Dir: "run-strong", Label: "strong", PassRate: 0.9},
		{Dir: "run-weak", Label: "weak", PassRate: 0.5},
	}}

	workflow := NewWorkflow(leaderboard, results, ui)
	err := workflow.Analyze(context.Background(), AnalyzeArgs{TopN: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, ui.report.Summary.TotalEntries)
	assert.Equal(t, 1, ui.report.Summary.TotalExercises)
	_, hasEtl := ui.report.Index[m.ExerciseKey{Language: "go", Testcase: "etl"}]
	assert.False(t, hasEtl)
}

func TestWorkflow_Analyze_MissingDirectoryReported(t *testing.T) {
	results := &fakeResults{byDir: map[m.Path][]m.ResultRecord{
		"run-a": {solvedRecord("two-fer", "python")},
	}}
	ui := &captureUI{}

	workflow := NewWorkflow(&fakeLeaderboard{}, results, ui)
	err := workflow.Analyze(context.Background(), AnalyzeArgs{Dirs: []m.Path{"run-a", "run-gone"}})
	require.NoError(t, err)

	require.Len(t, ui.diags, 1)
	assert.Contains(t, ui.diags[0].Message, "run-gone")
	assert.Equal(t, 1, ui.report.Summary.TotalEntries)
}

func TestWorkflow_Analyze_LeaderboardErrorPropagates(t *testing.T) {
	leaderboard := &fakeLeaderboard{err: assert.AnError}
	workflow := NewWorkflow(leaderboard, &fakeResults{}, &captureUI{})

	err := workflow.Analyze(context.Background(), AnalyzeArgs{})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestWorkflow_Analyze_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	workflow := NewWorkflow(&fakeLeaderboard{}, &fakeResults{}, &captureUI{})
	err := workflow.Analyze(ctx, AnalyzeArgs{})
	require.ErrorIs(t, err, context.Canceled)
}
