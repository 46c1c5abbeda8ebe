package controllers

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"load-profiler/internal/logger"
	"load-profiler/internal/models"
	"load-profiler/internal/picker"
)

const (
	component = "MainController"

	NoFileTitle   = "No File Selected"
	NoFileMessage = "Please select a valid CSV file."

	StatusFailed = "Processing failed, see log"
)

// View is the part of the main window the controller drives
type View interface {
	SetSelectFileHandler(handler func())
	ShowWarning(title, message string)
	UpdateStatus(status string)
	UpdateStats(stats models.ResultStats)
	ShowSummary(summary models.Summary)
	SetBusy(busy bool)
}

// Processor analyses a selected file. It must never surface errors.
type Processor interface {
	ProcessFile(ctx context.Context, path string) *models.AnalysisResult
	GetProcessingStats() models.ResultStats
}

// MainController runs the select-then-process flow behind the main button
type MainController struct {
	selector  picker.FileSelector
	processor Processor
	logger    logger.Logger

	mu       sync.RWMutex
	mainView View
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewMainController creates a new main controller. Processing stops when
// parent is cancelled or the controller is shut down.
func NewMainController(parent context.Context, selector picker.FileSelector, processor Processor, log logger.Logger) *MainController {
	ctx, cancel := context.WithCancel(parent)
	return &MainController{
		selector:  selector,
		processor: processor,
		logger:    log,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view View) {
	mc.mu.Lock()
	mc.mainView = view
	mc.mu.Unlock()

	view.SetSelectFileHandler(mc.SelectFile)
}

func (mc *MainController) view() View {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.mainView
}

// SelectFile opens the file dialog and either warns about an empty
// selection or hands the chosen path to the processor. It blocks the
// calling UI callback until both steps are finished.
func (mc *MainController) SelectFile() {
	view := mc.view()
	if view == nil {
		mc.logger.Warning(component, "select requested without a view", nil)
		return
	}

	path, err := mc.selector.SelectCSV()
	if err != nil {
		mc.logger.Error(component, err, nil)
		path = ""
	}

	if path == "" {
		mc.logger.Debug(component, "file selection cancelled", nil)
		view.ShowWarning(NoFileTitle, NoFileMessage)
		return
	}

	mc.logger.Info(component, "Selected file", map[string]interface{}{"path": path})
	mc.processSelected(view, path)
}

func (mc *MainController) processSelected(view View, path string) {
	name := filepath.Base(path)

	view.SetBusy(true)
	view.UpdateStatus(fmt.Sprintf("Processing %s…", name))

	result := mc.processor.ProcessFile(mc.ctx, path)

	view.SetBusy(false)
	view.UpdateStats(mc.processor.GetProcessingStats())
	if result == nil {
		view.UpdateStatus(StatusFailed)
		return
	}

	view.ShowSummary(result.Summary)
	view.UpdateStatus(fmt.Sprintf("Done: %s", name))
}

// Shutdown cancels any processing still referencing the controller context
func (mc *MainController) Shutdown() {
	mc.cancel()
}
