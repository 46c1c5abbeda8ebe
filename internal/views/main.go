package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"load-profiler/internal/models"
	"load-profiler/internal/report"
	"load-profiler/internal/views/components"
)

const (
	WindowTitle  = "CSV Processor"
	WindowWidth  = 420
	WindowHeight = 320
)

// MainView is the single fixed-size application window
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	selectPanel   *components.SelectPanel
	summaryPanel  *components.SummaryPanel
	statusBar     *components.StatusBar

	selectFileHandler func()
}

// NewMainView builds the window content and fixes the window size
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	window.SetTitle(WindowTitle)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.SetFixedSize(true)

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents() {
	mv.selectPanel = components.NewSelectPanel()
	mv.summaryPanel = components.NewSummaryPanel()
	mv.statusBar = components.NewStatusBar()
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		mv.selectPanel.GetContainer(),
		container.NewVBox(widget.NewSeparator(), mv.statusBar.GetContainer()),
		nil,
		nil,
		container.NewVScroll(mv.summaryPanel.GetContainer()),
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.selectPanel.SetSelectHandler(func() {
		if mv.selectFileHandler != nil {
			mv.selectFileHandler()
		}
	})
}

// SetSelectFileHandler sets the handler for the select button
func (mv *MainView) SetSelectFileHandler(handler func()) {
	mv.selectFileHandler = handler
}

// ShowWarning displays a modal warning with a single OK button
func (mv *MainView) ShowWarning(title, message string) {
	content := container.NewHBox(
		widget.NewIcon(theme.WarningIcon()),
		widget.NewLabel(message),
	)
	dialog.NewCustom(title, "OK", content, mv.window).Show()
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// UpdateStats updates the processed/failed counters
func (mv *MainView) UpdateStats(stats models.ResultStats) {
	mv.statusBar.SetStats(stats.TotalProcessed, stats.TotalFailed)
}

// ShowSummary fills the summary panel
func (mv *MainView) ShowSummary(summary models.Summary) {
	mv.summaryPanel.SetRows(report.Rows(summary))
}

// SetBusy toggles the select button while processing runs
func (mv *MainView) SetBusy(busy bool) {
	mv.selectPanel.SetBusy(busy)
}

// ViewState represents the current state of the view
type ViewState struct {
	StatusMessage string
	Stats         string
	SummaryRows   [][2]string
	Busy          bool
}

// GetViewState returns the current view state
func (mv *MainView) GetViewState() ViewState {
	return ViewState{
		StatusMessage: mv.statusBar.GetStatus(),
		Stats:         mv.statusBar.GetStats(),
		SummaryRows:   mv.summaryPanel.Rows(),
		Busy:          mv.selectPanel.Button().Disabled(),
	}
}

// ResetView resets the view to initial state
func (mv *MainView) ResetView() {
	mv.summaryPanel.Reset()
	mv.statusBar.Reset()
	mv.selectPanel.SetBusy(false)
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// SelectButton returns the select button
func (mv *MainView) SelectButton() *widget.Button {
	return mv.selectPanel.Button()
}

// Show displays the view
func (mv *MainView) Show() {
	mv.window.Show()
}

// Close closes the view
func (mv *MainView) Close() {
	mv.window.Close()
}
