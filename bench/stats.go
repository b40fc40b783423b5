package bench

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Method names one of the timed lookups.
type Method string

const (
	MethodOctree     Method = "octree"
	MethodLinear     Method = "linear"
	MethodSortLinear Method = "sort+linear"
)

// Methods lists the timed lookups in report order.
var Methods = []Method{MethodOctree, MethodLinear, MethodSortLinear}

// Stat summarises per-run mean latencies of one method, in microseconds.
type Stat struct {
	Mean   float64
	StdDev float64
	P99    float64
}

const (
	// histogram range in nanoseconds: 1ns .. 1min, 3 significant figures
	histMin     = 1
	histMax     = int64(time.Minute)
	histSigFigs = 3
)

// latencies accumulates per-run mean latencies of one method.
type latencies struct {
	h *hdrhistogram.Histogram
}

func newLatencies() *latencies {
	return &latencies{h: hdrhistogram.New(histMin, histMax, histSigFigs)}
}

// record adds one run's mean latency. Values are clamped to the histogram range.
func (l *latencies) record(d time.Duration) {
	v := int64(d)
	if v < histMin {
		v = histMin
	}
	if v > histMax {
		v = histMax
	}
	// RecordValue only fails for out-of-range values, excluded by the clamp.
	_ = l.h.RecordValue(v)
}

func (l *latencies) stat() Stat {
	if l.h.TotalCount() == 0 {
		return Stat{}
	}

	return Stat{
		Mean:   l.h.Mean() / float64(time.Microsecond),
		StdDev: l.h.StdDev() / float64(time.Microsecond),
		P99:    l.quantile(99),
	}
}

// quantile returns the q-quantile (0..100) in microseconds.
func (l *latencies) quantile(q float64) float64 {
	return float64(l.h.ValueAtQuantile(q)) / float64(time.Microsecond)
}
