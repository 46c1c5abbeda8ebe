package loadprofile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// Reading is a single valid row from the input file.
type Reading struct {
	Time  time.Time
	KW    float64
	Meter string
}

var requiredColumns = []string{"date", "time", "kw"}

// dateTimeLayouts are tried in order against "date time".
var dateTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
}

type columnIndex struct {
	date, time, kw int
	meter          int
}

// ReadReadings parses a CSV stream with a header row. Rows whose datetime or
// kw value cannot be parsed, or whose kw is NaN or infinite, are skipped and
// counted in dropped.
func ReadReadings(r io.Reader) (readings []Reading, dropped int, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, fmt.Errorf("%w: file is empty", ErrMissingColumns)
		}
		return nil, 0, fmt.Errorf("failed to read header: %w", err)
	}

	cols, err := indexColumns(header)
	if err != nil {
		return nil, 0, err
	}
	width := max(cols.date, cols.time, cols.kw) + 1

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				dropped++
				continue
			}
			return nil, dropped, fmt.Errorf("failed to read record: %w", err)
		}
		if len(record) < width {
			dropped++
			continue
		}

		ts, ok := parseDateTime(record[cols.date], record[cols.time])
		if !ok {
			dropped++
			continue
		}
		kw, err := strconv.ParseFloat(strings.TrimSpace(record[cols.kw]), 64)
		if err != nil || math.IsNaN(kw) || math.IsInf(kw, 0) {
			dropped++
			continue
		}

		reading := Reading{Time: ts, KW: kw}
		if cols.meter >= 0 && cols.meter < len(record) {
			reading.Meter = strings.TrimSpace(record[cols.meter])
		}
		readings = append(readings, reading)
	}

	return readings, dropped, nil
}

func indexColumns(header []string) (columnIndex, error) {
	cols := columnIndex{date: -1, time: -1, kw: -1, meter: -1}
	for i, name := range header {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case "date":
			cols.date = i
		case "time":
			cols.time = i
		case "kw":
			cols.kw = i
		case "meter":
			cols.meter = i
		}
	}
	if cols.date < 0 || cols.time < 0 || cols.kw < 0 {
		return cols, fmt.Errorf("%w: input file must contain the following columns: %s",
			ErrMissingColumns, strings.Join(requiredColumns, ", "))
	}
	return cols, nil
}

func parseDateTime(date, clock string) (time.Time, bool) {
	value := strings.TrimSpace(date) + " " + strings.TrimSpace(clock)
	for _, layout := range dateTimeLayouts {
		if ts, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
