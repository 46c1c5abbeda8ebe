package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const readyStatus = "Ready"

// StatusBar displays application status and run counters
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	statsLabel  *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

// createComponents initializes status bar components
func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel(readyStatus)
	sb.statusLabel.Truncation = fyne.TextTruncateEllipsis
	sb.statsLabel = widget.NewLabel("Processed: 0")
}

// buildLayout constructs the status bar layout
func (sb *StatusBar) buildLayout() {
	sb.container = container.NewBorder(nil, nil, nil, sb.statsLabel, sb.statusLabel)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetStats updates the processed/failed counters
func (sb *StatusBar) SetStats(processed, failed int) {
	if failed > 0 {
		sb.statsLabel.SetText(fmt.Sprintf("Processed: %d | Failed: %d", processed, failed))
		return
	}
	sb.statsLabel.SetText(fmt.Sprintf("Processed: %d", processed))
}

// GetStats returns the counter text
func (sb *StatusBar) GetStats() string {
	return sb.statsLabel.Text
}

// Reset resets the status bar to initial state
func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText(readyStatus)
	sb.statsLabel.SetText("Processed: 0")
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
