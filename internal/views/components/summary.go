package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const EmptySummaryText = "No results yet"

// SummaryPanel shows the figures of the last successful analysis
type SummaryPanel struct {
	container   *fyne.Container
	placeholder *widget.Label
	grid        *fyne.Container
	rows        [][2]string
}

// NewSummaryPanel creates an empty summary panel
func NewSummaryPanel() *SummaryPanel {
	sp := &SummaryPanel{
		placeholder: widget.NewLabel(EmptySummaryText),
		grid:        container.New(layout.NewFormLayout()),
	}
	sp.placeholder.Alignment = fyne.TextAlignCenter
	sp.grid.Hide()
	sp.container = container.NewStack(sp.placeholder, sp.grid)
	return sp
}

// SetRows replaces the displayed label/value pairs
func (sp *SummaryPanel) SetRows(rows [][2]string) {
	sp.rows = rows

	objects := make([]fyne.CanvasObject, 0, len(rows)*2)
	for _, r := range rows {
		label := widget.NewLabel(r[0])
		label.TextStyle = fyne.TextStyle{Bold: true}
		objects = append(objects, label, widget.NewLabel(r[1]))
	}
	sp.grid.Objects = objects
	sp.grid.Refresh()

	if len(rows) == 0 {
		sp.grid.Hide()
		sp.placeholder.Show()
		return
	}
	sp.placeholder.Hide()
	sp.grid.Show()
}

// Rows returns the pairs currently shown
func (sp *SummaryPanel) Rows() [][2]string {
	return sp.rows
}

// Reset clears the panel
func (sp *SummaryPanel) Reset() {
	sp.SetRows(nil)
}

// GetContainer returns the panel container
func (sp *SummaryPanel) GetContainer() *fyne.Container {
	return sp.container
}
