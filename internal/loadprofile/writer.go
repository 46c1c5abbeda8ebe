package loadprofile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const outputTimeLayout = "2006-01-02 15:04:05"

// Outputs names the three files written for one input.
type Outputs struct {
	Profile string
	Peak    string
	Factors string
}

// OutputPaths derives result file names from the input path: "<base>_out.csv",
// "<base>_peak.csv" and "<base>_factors.csv".
func OutputPaths(input string) Outputs {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return Outputs{
		Profile: base + "_out.csv",
		Peak:    base + "_peak.csv",
		Factors: base + "_factors.csv",
	}
}

// Files lists the output paths in write order.
func (o Outputs) Files() []string {
	return []string{o.Profile, o.Peak, o.Factors}
}

// WriteOutputs writes the profile, peak and factor files next to input.
// Files already written are removed again if a later one fails.
func WriteOutputs(input string, a *Analysis) (Outputs, error) {
	out := OutputPaths(input)

	writers := []struct {
		path string
		rows [][]string
	}{
		{out.Profile, profileRows(a)},
		{out.Peak, peakRows(a)},
		{out.Factors, factorRows(a)},
	}

	for i, w := range writers {
		if err := writeCSV(w.path, w.rows); err != nil {
			for _, done := range writers[:i] {
				os.Remove(done.path)
			}
			return Outputs{}, err
		}
	}
	return out, nil
}

func profileRows(a *Analysis) [][]string {
	rows := make([][]string, 0, len(a.Profile)+1)
	rows = append(rows, []string{"datetime", "total_kw"})
	for _, iv := range a.Profile {
		rows = append(rows, []string{iv.Start.Format(outputTimeLayout), formatFloat(iv.TotalKW)})
	}
	return rows
}

func peakRows(a *Analysis) [][]string {
	return [][]string{
		{"datetime", "peak_total_kw"},
		{a.Peak.Start.Format(outputTimeLayout), formatFloat(a.Peak.TotalKW)},
	}
}

func factorRows(a *Analysis) [][]string {
	return [][]string{
		{"factor", "value"},
		{"diversity_factor", formatFloat(a.Factors.Diversity)},
		{"load_factor", formatFloat(a.Factors.Load)},
		{"coincidence_factor", formatFloat(a.Factors.Coincidence)},
		{"demand_factor", formatFloat(a.Factors.Demand)},
	}
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
