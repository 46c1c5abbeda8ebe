package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"load-profiler/internal/loadprofile"
	"load-profiler/internal/logger"
	"load-profiler/internal/models"
)

const component = "ProcessingService"

// ProcessingSettings configures each analysis run
type ProcessingSettings struct {
	Options      loadprofile.Options
	WriteOutputs bool
}

// ProcessingService runs the load-profile analysis for a selected file.
// Failures never propagate to the caller; they are logged and swallowed.
type ProcessingService struct {
	logger     logger.Logger
	repository *models.ResultRepository
	settings   ProcessingSettings
	analyze    func(path string, opts loadprofile.Options) (*loadprofile.Analysis, error)
	processing atomic.Bool
}

// NewProcessingService creates a new processing service
func NewProcessingService(log logger.Logger, repo *models.ResultRepository, settings ProcessingSettings) *ProcessingService {
	return &ProcessingService{
		logger:     log,
		repository: repo,
		settings:   settings,
		analyze:    loadprofile.AnalyzeFile,
	}
}

// ProcessFile analyses the CSV at path and writes the result files. It
// returns nil when anything goes wrong, including a panic inside the analysis.
func (ps *ProcessingService) ProcessFile(ctx context.Context, path string) (result *models.AnalysisResult) {
	ps.logger.Info(component, "Processing file", map[string]interface{}{"path": path})

	ps.processing.Store(true)
	defer ps.processing.Store(false)

	defer func() {
		if r := recover(); r != nil {
			ps.fail(path, fmt.Errorf("panic during processing: %v", r))
			result = nil
		}
	}()

	result, err := ps.process(ctx, path)
	if err != nil {
		ps.fail(path, err)
		return nil
	}
	return result
}

func (ps *ProcessingService) process(ctx context.Context, path string) (*models.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	analysis, err := ps.analyze(path, ps.settings.Options)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var outputs []string
	if ps.settings.WriteOutputs {
		written, err := loadprofile.WriteOutputs(path, analysis)
		if err != nil {
			return nil, err
		}
		outputs = written.Files()
		for _, f := range outputs {
			ps.logger.Debug(component, "Output saved", map[string]interface{}{"path": f})
		}
	}

	result := models.AnalysisResult{
		SourcePath:  path,
		Summary:     models.NewSummary(analysis),
		Outputs:     outputs,
		Rows:        analysis.Rows,
		Dropped:     analysis.Dropped,
		ProcessTime: time.Since(start),
		CompletedAt: time.Now(),
	}
	ps.repository.Add(result)

	ps.logger.Info(component, "Processing completed", map[string]interface{}{
		"path":        path,
		"rows":        result.Rows,
		"dropped":     result.Dropped,
		"intervals":   len(analysis.Profile),
		"peak_kw":     analysis.Peak.TotalKW,
		"duration_ms": result.ProcessTime.Milliseconds(),
	})

	return &result, nil
}

func (ps *ProcessingService) fail(path string, err error) {
	ps.repository.RecordFailure()
	ps.logger.Error(component, err, map[string]interface{}{"path": path})
}

// IsProcessing reports whether an analysis is currently running
func (ps *ProcessingService) IsProcessing() bool {
	return ps.processing.Load()
}

// GetProcessingStats returns counters from the result repository
func (ps *ProcessingService) GetProcessingStats() models.ResultStats {
	return ps.repository.Stats()
}

// Shutdown releases stored results
func (ps *ProcessingService) Shutdown() {
	ps.repository.Shutdown()
}
