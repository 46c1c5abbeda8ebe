// Package report renders an analysis summary for terminals and machines.
package report

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/charmbracelet/lipgloss"

	"load-profiler/internal/models"
)

const (
	DefaultWidth = 120
	labelWidth   = 30
	valueWidth   = 20
	timeLayout   = "2006-01-02 15:04:05"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder(), true, false).
			Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Width(labelWidth)
	valueStyle = lipgloss.NewStyle().Width(valueWidth).Align(lipgloss.Right)
	noteStyle  = lipgloss.NewStyle().PaddingLeft(1).Faint(true)
)

type row struct {
	label string
	value string
	note  string
}

// Rows lists label/value pairs in display order. The GUI summary panel and
// the text box share it.
func Rows(s models.Summary) [][2]string {
	rows := summaryRows(s)
	out := make([][2]string, len(rows))
	for i, r := range rows {
		out[i] = [2]string{r.label, r.value}
	}
	return out
}

func summaryRows(s models.Summary) []row {
	rows := []row{
		{"Number of Days:", fmt.Sprintf("%d", s.NumDays), ""},
		{"Number of Meters:", fmt.Sprintf("%d", s.NumMeters), ""},
		{"Average Load:", fmt.Sprintf("%.2f kW", s.AverageLoad), ""},
		{"Peak Load:", fmt.Sprintf("%.2f kW", s.PeakLoad), "on " + s.PeakTime.Format(timeLayout)},
		{"Diversity Factor:", fmt.Sprintf("%.2f", s.Factors.Diversity), "sum(individual_maximum_demands) / peak_load"},
		{"Load Factor:", fmt.Sprintf("%.2f", s.Factors.Load), "average_load / peak_load"},
		{"Coincidence Factor:", fmt.Sprintf("%.2f", s.Factors.Coincidence), "peak_load / sum(individual_maximum_demands)"},
		{"Demand Factor:", fmt.Sprintf("%.2f", s.Factors.Demand), "peak_load / total_connected_load"},
	}
	if s.ScaleFactor > 0 {
		rows = append(rows, row{
			"Est. Connected Load:",
			fmt.Sprintf("%.2f kW", s.EstimatedConnectedLoad),
			fmt.Sprintf("peak_load * %g", s.ScaleFactor),
		})
	}
	return rows
}

// RenderText draws the summary as a framed box of the given width.
func RenderText(s models.Summary, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	lines := []string{titleStyle.Width(width - 2).Render("Summary of Results")}
	for _, r := range summaryRows(s) {
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(r.label),
			valueStyle.Render(r.value),
			noteStyle.Render(r.note),
		)
		lines = append(lines, line)
	}

	return boxStyle.Width(width).Render(strings.Join(lines, "\n"))
}

type jsonSummary struct {
	NumDays                int     `json:"num_days"`
	NumMeters              int     `json:"num_meters"`
	AverageLoad            float64 `json:"average_load"`
	PeakLoad               float64 `json:"peak_load"`
	PeakDatetime           string  `json:"peak_datetime"`
	DiversityFactor        float64 `json:"diversity_factor"`
	LoadFactor             float64 `json:"load_factor"`
	CoincidenceFactor      float64 `json:"coincidence_factor"`
	DemandFactor           float64 `json:"demand_factor"`
	EstimatedConnectedLoad float64 `json:"estimated_connected_load,omitempty"`
	ScaleFactor            float64 `json:"scale_factor,omitempty"`
}

// RenderJSON encodes the summary with snake_case keys.
func RenderJSON(s models.Summary) ([]byte, error) {
	out, err := sonic.ConfigStd.Marshal(jsonSummary{
		NumDays:                s.NumDays,
		NumMeters:              s.NumMeters,
		AverageLoad:            s.AverageLoad,
		PeakLoad:               s.PeakLoad,
		PeakDatetime:           s.PeakTime.Format(timeLayout),
		DiversityFactor:        s.Factors.Diversity,
		LoadFactor:             s.Factors.Load,
		CoincidenceFactor:      s.Factors.Coincidence,
		DemandFactor:           s.Factors.Demand,
		EstimatedConnectedLoad: s.EstimatedConnectedLoad,
		ScaleFactor:            s.ScaleFactor,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode summary: %w", err)
	}
	return out, nil
}
