package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"load-profiler/internal/loadprofile"
)

func TestRepositoryEvictsOldest(t *testing.T) {
	repo := NewResultRepository()
	assert.Nil(t, repo.Latest())

	for i := 0; i < 12; i++ {
		repo.Add(AnalysisResult{SourcePath: fmt.Sprintf("f%d.csv", i), ProcessTime: time.Second})
	}

	history := repo.History()
	require.Len(t, history, 10)
	assert.Equal(t, "f2.csv", history[0].SourcePath)
	assert.Equal(t, "f11.csv", repo.Latest().SourcePath)

	stats := repo.Stats()
	assert.Equal(t, 12, stats.TotalProcessed)
	assert.Equal(t, 10, stats.HistorySize)
	assert.Equal(t, time.Second, stats.AverageTime)
}

func TestRepositoryFailuresAndClear(t *testing.T) {
	repo := NewResultRepository()
	repo.RecordFailure()
	repo.Add(AnalysisResult{SourcePath: "a.csv"})
	repo.Shutdown()

	stats := repo.Stats()
	assert.Equal(t, 1, stats.TotalFailed)
	assert.Equal(t, 1, stats.TotalProcessed)
	assert.Zero(t, stats.HistorySize)
	assert.Nil(t, repo.Latest())
}

func TestLatestReturnsCopy(t *testing.T) {
	repo := NewResultRepository()
	repo.Add(AnalysisResult{SourcePath: "a.csv"})

	latest := repo.Latest()
	latest.SourcePath = "changed"
	assert.Equal(t, "a.csv", repo.Latest().SourcePath)
}

func TestNewSummary(t *testing.T) {
	peak := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	s := NewSummary(&loadprofile.Analysis{
		NumDays: 2,
		Meters:  3,
		Average: 1.5,
		Peak:    loadprofile.Interval{Start: peak, TotalKW: 9},
		Factors: loadprofile.Factors{Diversity: 2, Load: 0.5, Coincidence: 0.5, Demand: 0.4},
	})
	assert.Equal(t, 2, s.NumDays)
	assert.Equal(t, 3, s.NumMeters)
	assert.Equal(t, 9.0, s.PeakLoad)
	assert.Equal(t, peak, s.PeakTime)
	assert.Equal(t, 0.4, s.Factors.Demand)
}
