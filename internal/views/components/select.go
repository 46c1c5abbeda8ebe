package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const SelectButtonLabel = "Select CSV File"

// SelectPanel holds the single action button of the main window
type SelectPanel struct {
	container     *fyne.Container
	selectButton  *widget.Button
	selectHandler func()
}

// NewSelectPanel creates the button panel
func NewSelectPanel() *SelectPanel {
	sp := &SelectPanel{}
	sp.selectButton = widget.NewButton(SelectButtonLabel, func() {
		if sp.selectHandler != nil {
			sp.selectHandler()
		}
	})
	sp.selectButton.Importance = widget.HighImportance
	sp.container = container.NewPadded(sp.selectButton)
	return sp
}

// SetSelectHandler sets the button click handler
func (sp *SelectPanel) SetSelectHandler(handler func()) {
	sp.selectHandler = handler
}

// SetBusy disables the button while a file is being processed
func (sp *SelectPanel) SetBusy(busy bool) {
	if busy {
		sp.selectButton.Disable()
	} else {
		sp.selectButton.Enable()
	}
}

// Button exposes the underlying widget
func (sp *SelectPanel) Button() *widget.Button {
	return sp.selectButton
}

// GetContainer returns the panel container
func (sp *SelectPanel) GetContainer() *fyne.Container {
	return sp.container
}
