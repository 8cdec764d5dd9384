package health

import (
	"github.com/guptarohit/asciigraph"
	"github.com/samber/lo"
)

// Metric identifies a plottable series in the log.
type Metric int

const (
	MetricWeight Metric = iota + 1
	MetricBMI
	MetricHeartRate
	MetricBloodPressure
)

// Series extracts the values for one metric in date order, skipping
// entries where the field was not recorded.
func Series(entries []*Entry, metric Metric) []float64 {
	switch metric {
	case MetricWeight:
		return collect(entries, func(e *Entry) *float64 { return e.WeightKg })
	case MetricBMI:
		return collect(entries, func(e *Entry) *float64 { return e.BMI })
	case MetricHeartRate:
		return lo.FilterMap(entries, func(e *Entry, _ int) (float64, bool) {
			if e.HeartRateBPM == nil {
				return 0, false
			}
			return float64(*e.HeartRateBPM), true
		})
	default:
		return nil
	}
}

// BPSeries extracts the paired systolic and diastolic series, keeping only
// entries where both readings are present.
func BPSeries(entries []*Entry) (systolic, diastolic []float64) {
	for _, e := range entries {
		if e.BPSystolic == nil || e.BPDiastolic == nil {
			continue
		}
		systolic = append(systolic, float64(*e.BPSystolic))
		diastolic = append(diastolic, float64(*e.BPDiastolic))
	}
	return systolic, diastolic
}

func collect(entries []*Entry, pick func(*Entry) *float64) []float64 {
	return lo.FilterMap(entries, func(e *Entry, _ int) (float64, bool) {
		v := pick(e)
		if v == nil {
			return 0, false
		}
		return *v, true
	})
}

// PlotSeries renders one series as a terminal line chart.
func PlotSeries(values []float64, caption string) string {
	return asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption(caption))
}

// PlotBP renders the systolic and diastolic series on one chart.
func PlotBP(systolic, diastolic []float64) string {
	return asciigraph.PlotMany([][]float64{systolic, diastolic},
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
		asciigraph.Caption("Blood Pressure over time (systolic=red, diastolic=blue)"))
}
