// Package loadprofile turns interval meter readings into a load profile: kW
// summed per fixed interval, the peak interval, and the diversity, load,
// coincidence and demand factors derived from them.
package loadprofile

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"
)

const DefaultInterval = 15 * time.Minute

// MaxIntervals bounds the resampled profile length. About 119 years of
// 15 minute buckets.
const MaxIntervals = 1 << 22

// Options control resampling and the optional connected-load estimate.
type Options struct {
	Interval time.Duration
	// ScaleFactor estimates total connected load as peak * ScaleFactor.
	// Zero disables the estimate; any other value must lie in [1.0, 2.0].
	ScaleFactor float64
}

func (o Options) withDefaults() Options {
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	return o
}

func (o Options) validate() error {
	if o.ScaleFactor != 0 && (o.ScaleFactor < 1.0 || o.ScaleFactor > 2.0) {
		return fmt.Errorf("%w: got %g", ErrScaleFactor, o.ScaleFactor)
	}
	return nil
}

// Interval is one resampled bucket.
type Interval struct {
	Start   time.Time
	TotalKW float64
}

type Factors struct {
	Diversity   float64
	Load        float64
	Coincidence float64
	Demand      float64
}

// Analysis is the full outcome of one run over a file.
type Analysis struct {
	Profile  []Interval
	Peak     Interval
	Average  float64
	NumDays  int
	Meters   int
	Factors  Factors
	Rows     int
	Dropped  int
	Interval time.Duration

	// DailyMaxima holds the maximum single reading of each calendar date.
	DailyMaxima            map[string]float64
	TotalConnectedLoad     float64
	ScaleFactor            float64
	EstimatedConnectedLoad float64
}

// AnalyzeFile opens path and runs Analyze over it.
func AnalyzeFile(path string, opts Options) (*Analysis, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	analysis, err := Analyze(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return analysis, nil
}

// Analyze reads CSV readings from r and computes the load profile.
func Analyze(r io.Reader, opts Options) (*Analysis, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	readings, dropped, err := ReadReadings(r)
	if err != nil {
		return nil, err
	}

	analysis, err := Compute(readings, opts)
	if err != nil {
		return nil, err
	}
	analysis.Dropped = dropped
	return analysis, nil
}

// Compute derives the profile and factors from already parsed readings.
func Compute(readings []Reading, opts Options) (*Analysis, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if len(readings) == 0 {
		return nil, ErrEmptyProfile
	}
	start, end := bucketRange(readings, opts.Interval)
	if n := bucketOffset(start, end, opts.Interval); n >= MaxIntervals {
		return nil, fmt.Errorf("%w: %s to %s at %s", ErrSpanTooLarge,
			start.Format(time.DateOnly), end.Format(time.DateOnly), opts.Interval)
	}

	profile := Resample(readings, opts.Interval)
	peak := PeakInterval(profile)
	if peak.TotalKW == 0 {
		return nil, ErrZeroPeak
	}

	var sum float64
	for _, iv := range profile {
		sum += iv.TotalKW
	}
	average := sum / float64(len(profile))

	first, last := readings[0].Time, readings[0].Time
	meters := make(map[string]struct{})
	daily := make(map[string]float64)
	for _, rd := range readings {
		if rd.Time.Before(first) {
			first = rd.Time
		}
		if rd.Time.After(last) {
			last = rd.Time
		}
		meters[rd.Meter] = struct{}{}

		day := rd.Time.Format(time.DateOnly)
		if current, ok := daily[day]; !ok || rd.KW > current {
			daily[day] = rd.KW
		}
	}

	var individualMaxima float64
	for _, v := range daily {
		individualMaxima += v
	}
	// Individual maxima double as the connected load.
	totalConnected := individualMaxima

	analysis := &Analysis{
		Profile:  profile,
		Peak:     peak,
		Average:  average,
		NumDays:  int(last.Sub(first)/(24*time.Hour)) + 1,
		Meters:   len(meters),
		Rows:     len(readings),
		Interval: opts.Interval,
		Factors: Factors{
			Diversity:   individualMaxima / peak.TotalKW,
			Load:        average / peak.TotalKW,
			Coincidence: peak.TotalKW / individualMaxima,
			Demand:      peak.TotalKW / totalConnected,
		},
		DailyMaxima:        daily,
		TotalConnectedLoad: totalConnected,
	}

	if opts.ScaleFactor != 0 {
		analysis.ScaleFactor = opts.ScaleFactor
		analysis.EstimatedConnectedLoad = peak.TotalKW * opts.ScaleFactor
	}

	return analysis, nil
}

// Resample sums kW per interval. Buckets run contiguously from the earliest
// to the latest reading; buckets without readings hold zero. The span is not
// bounded here, Compute rejects spans of MaxIntervals or more.
func Resample(readings []Reading, interval time.Duration) []Interval {
	if len(readings) == 0 {
		return nil
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	start, end := bucketRange(readings, interval)
	profile := make([]Interval, bucketOffset(start, end, interval)+1)
	bucket := start
	for i := range profile {
		profile[i].Start = bucket
		bucket = bucket.Add(interval)
	}
	for _, rd := range readings {
		profile[bucketOffset(start, rd.Time.Truncate(interval), interval)].TotalKW += rd.KW
	}
	return profile
}

// bucketRange returns the first and last bucket start covering readings.
func bucketRange(readings []Reading, interval time.Duration) (start, end time.Time) {
	start = readings[0].Time.Truncate(interval)
	end = start
	for _, rd := range readings {
		bucket := rd.Time.Truncate(interval)
		if bucket.Before(start) {
			start = bucket
		}
		if bucket.After(end) {
			end = bucket
		}
	}
	return start, end
}

// bucketOffset counts the intervals between two bucket starts. It works in
// Unix seconds so spans beyond the time.Duration range stay exact, and
// saturates at math.MaxInt64 when a sub-second interval cannot represent it.
func bucketOffset(start, bucket time.Time, interval time.Duration) int64 {
	secs := bucket.Unix() - start.Unix()
	if interval%time.Second == 0 {
		return secs / int64(interval/time.Second)
	}
	if secs >= math.MaxInt64/int64(time.Second) {
		return math.MaxInt64
	}
	nanos := secs*int64(time.Second) + int64(bucket.Nanosecond()-start.Nanosecond())
	return nanos / int64(interval)
}

// PeakInterval returns the first interval holding the maximum total.
func PeakInterval(profile []Interval) Interval {
	if len(profile) == 0 {
		return Interval{}
	}
	peak := profile[0]
	for _, iv := range profile[1:] {
		if iv.TotalKW > peak.TotalKW {
			peak = iv
		}
	}
	return peak
}
