package controllers

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"load-profiler/internal/logger"
	"load-profiler/internal/models"
)

type fakeSelector struct {
	path  string
	err   error
	calls int
}

func (f *fakeSelector) SelectCSV() (string, error) {
	f.calls++
	return f.path, f.err
}

type fakeProcessor struct {
	paths  []string
	result *models.AnalysisResult
	stats  models.ResultStats
}

func (f *fakeProcessor) ProcessFile(_ context.Context, path string) *models.AnalysisResult {
	f.paths = append(f.paths, path)
	return f.result
}

func (f *fakeProcessor) GetProcessingStats() models.ResultStats {
	return f.stats
}

type warning struct{ title, message string }

type fakeView struct {
	handler   func()
	warnings  []warning
	statuses  []string
	summaries []models.Summary
	busy      []bool
	stats     []models.ResultStats
}

func (v *fakeView) SetSelectFileHandler(h func()) { v.handler = h }
func (v *fakeView) ShowWarning(title, message string) {
	v.warnings = append(v.warnings, warning{title, message})
}
func (v *fakeView) UpdateStatus(s string)            { v.statuses = append(v.statuses, s) }
func (v *fakeView) UpdateStats(s models.ResultStats) { v.stats = append(v.stats, s) }
func (v *fakeView) ShowSummary(s models.Summary)     { v.summaries = append(v.summaries, s) }
func (v *fakeView) SetBusy(b bool)                   { v.busy = append(v.busy, b) }

func setup(sel *fakeSelector, proc *fakeProcessor) (*MainController, *fakeView) {
	mc := NewMainController(context.Background(), sel, proc, logger.Nop())
	view := &fakeView{}
	mc.SetMainView(view)
	return mc, view
}

func TestSetMainViewWiresButton(t *testing.T) {
	sel := &fakeSelector{}
	_, view := setup(sel, &fakeProcessor{})
	require.NotNil(t, view.handler)

	view.handler()
	assert.Equal(t, 1, sel.calls)
}

func TestCancelShowsOneWarningAndSkipsProcessing(t *testing.T) {
	proc := &fakeProcessor{}
	mc, view := setup(&fakeSelector{path: ""}, proc)

	mc.SelectFile()

	require.Len(t, view.warnings, 1)
	assert.Equal(t, warning{NoFileTitle, NoFileMessage}, view.warnings[0])
	assert.Empty(t, proc.paths)
	assert.Empty(t, view.statuses)
}

func TestDialogErrorBehavesLikeCancel(t *testing.T) {
	proc := &fakeProcessor{}
	mc, view := setup(&fakeSelector{path: "/ignored.csv", err: errors.New("no display")}, proc)

	mc.SelectFile()

	assert.Len(t, view.warnings, 1)
	assert.Empty(t, proc.paths)
}

func TestSelectionProcessesExactPathOnce(t *testing.T) {
	paths := []string{
		"/data/reads.csv",
		filepath.Join("relative dir", "x.CSV"),
		"/does/not/exist.csv",
		"not even a csv",
	}
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			proc := &fakeProcessor{}
			mc, view := setup(&fakeSelector{path: p}, proc)

			mc.SelectFile()

			assert.Equal(t, []string{p}, proc.paths)
			assert.Empty(t, view.warnings)
		})
	}
}

func TestFailedProcessingShowsNoErrorUI(t *testing.T) {
	proc := &fakeProcessor{stats: models.ResultStats{TotalFailed: 1}}
	mc, view := setup(&fakeSelector{path: "/missing.csv"}, proc)

	mc.SelectFile()

	assert.Empty(t, view.warnings)
	assert.Empty(t, view.summaries)
	assert.Equal(t, []string{"Processing missing.csv…", StatusFailed}, view.statuses)
	assert.Equal(t, []bool{true, false}, view.busy)
	assert.Equal(t, []models.ResultStats{{TotalFailed: 1}}, view.stats)
}

func TestSuccessfulProcessingShowsSummary(t *testing.T) {
	summary := models.Summary{NumDays: 3, PeakLoad: 12}
	proc := &fakeProcessor{result: &models.AnalysisResult{Summary: summary}}
	mc, view := setup(&fakeSelector{path: "/data/feeder.csv"}, proc)

	mc.SelectFile()

	assert.Equal(t, []models.Summary{summary}, view.summaries)
	assert.Equal(t, "Done: feeder.csv", view.statuses[len(view.statuses)-1])
	assert.Empty(t, view.warnings)
}

func TestSelectFileWithoutView(t *testing.T) {
	sel := &fakeSelector{path: "/a.csv"}
	mc := NewMainController(context.Background(), sel, &fakeProcessor{}, logger.Nop())

	assert.NotPanics(t, mc.SelectFile)
	assert.Zero(t, sel.calls)
}

func TestShutdownCancelsContext(t *testing.T) {
	mc := NewMainController(context.Background(), &fakeSelector{}, &fakeProcessor{}, logger.Nop())
	mc.Shutdown()
	assert.Error(t, mc.ctx.Err())
}

func TestParentCancelStopsProcessing(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	mc := NewMainController(parent, &fakeSelector{}, &fakeProcessor{}, logger.Nop())

	cancel()
	assert.Error(t, mc.ctx.Err())
}
