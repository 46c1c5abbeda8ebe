package models

import (
	"sync"
	"time"

	"load-profiler/internal/loadprofile"
)

// Summary is the user-facing digest of one load-profile analysis
type Summary struct {
	NumDays                int
	NumMeters              int
	AverageLoad            float64
	PeakLoad               float64
	PeakTime               time.Time
	Factors                loadprofile.Factors
	ScaleFactor            float64
	EstimatedConnectedLoad float64
}

// NewSummary extracts the summary fields from an analysis
func NewSummary(a *loadprofile.Analysis) Summary {
	return Summary{
		NumDays:                a.NumDays,
		NumMeters:              a.Meters,
		AverageLoad:            a.Average,
		PeakLoad:               a.Peak.TotalKW,
		PeakTime:               a.Peak.Start,
		Factors:                a.Factors,
		ScaleFactor:            a.ScaleFactor,
		EstimatedConnectedLoad: a.EstimatedConnectedLoad,
	}
}

// AnalysisResult contains the output of processing one selected file
type AnalysisResult struct {
	SourcePath  string
	Summary     Summary
	Outputs     []string
	Rows        int
	Dropped     int
	ProcessTime time.Duration
	CompletedAt time.Time
}

// ResultRepository keeps a bounded history of completed analyses
type ResultRepository struct {
	mu             sync.RWMutex
	history        []AnalysisResult
	maxHistorySize int
	totalProcessed int
	totalFailed    int
	totalTime      time.Duration
}

// NewResultRepository creates a repository holding at most 10 results
func NewResultRepository() *ResultRepository {
	return &ResultRepository{
		history:        make([]AnalysisResult, 0),
		maxHistorySize: 10,
	}
}

// Add records a successful result, evicting the oldest when full
func (r *ResultRepository) Add(result AnalysisResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.history = append(r.history, result)
	if len(r.history) > r.maxHistorySize {
		r.history = r.history[1:]
	}
	r.totalProcessed++
	r.totalTime += result.ProcessTime
}

// RecordFailure counts a processing attempt that produced no result
func (r *ResultRepository) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.totalFailed++
}

// Latest returns the most recent result, or nil
func (r *ResultRepository) Latest() *AnalysisResult {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.history) == 0 {
		return nil
	}
	latest := r.history[len(r.history)-1]
	return &latest
}

// History returns a copy of the stored results, oldest first
func (r *ResultRepository) History() []AnalysisResult {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := make([]AnalysisResult, len(r.history))
	copy(history, r.history)
	return history
}

// Stats returns counters over the repository lifetime
func (r *ResultRepository) Stats() ResultStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := ResultStats{
		TotalProcessed: r.totalProcessed,
		TotalFailed:    r.totalFailed,
		HistorySize:    len(r.history),
	}
	if r.totalProcessed > 0 {
		stats.AverageTime = r.totalTime / time.Duration(r.totalProcessed)
	}
	return stats
}

// ResultStats contains statistics about processed files
type ResultStats struct {
	TotalProcessed int
	TotalFailed    int
	HistorySize    int
	AverageTime    time.Duration
}

// Clear drops the history but keeps the counters
func (r *ResultRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = make([]AnalysisResult, 0)
}

// Shutdown releases stored results
func (r *ResultRepository) Shutdown() {
	r.Clear()
}
