// Package picker presents the platform's native "open file" dialog.
package picker

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
)

// FileSelector asks the user for one CSV file. An empty path with a nil
// error means the user cancelled.
type FileSelector interface {
	SelectCSV() (string, error)
}

// NativeSelector uses the OS file chooser. The call blocks until the dialog
// is dismissed.
type NativeSelector struct {
	Title     string
	Directory string

	selectFile func(options ...zenity.Option) (string, error)
}

// NewNativeSelector creates a selector titled "Open CSV File".
func NewNativeSelector() *NativeSelector {
	return &NativeSelector{
		Title:      "Open CSV File",
		selectFile: zenity.SelectFile,
	}
}

// CSVFilter restricts the dialog to comma separated files.
func CSVFilter() zenity.FileFilter {
	return zenity.FileFilter{Name: "CSV Files", Patterns: []string{"*.csv"}, CaseFold: true}
}

func (s *NativeSelector) options() []zenity.Option {
	opts := []zenity.Option{
		zenity.Title(s.Title),
		CSVFilter(),
	}
	if s.Directory != "" {
		opts = append(opts, zenity.Filename(s.Directory))
	}
	return opts
}

// SelectCSV opens the dialog and returns the chosen path.
func (s *NativeSelector) SelectCSV() (string, error) {
	path, err := s.selectFile(s.options()...)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("file dialog failed: %w", err)
	}
	return path, nil
}
