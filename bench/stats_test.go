package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestLatencies_ClampsOutOfRange verifies that durations outside the
// histogram range are recorded at the nearest bound instead of dropped.
func TestLatencies_ClampsOutOfRange(t *testing.T) {
	l := newLatencies()
	l.record(0)
	l.record(-time.Second)
	l.record(2 * time.Minute)
	l.record(3 * time.Microsecond)

	assert.EqualValues(t, 4, l.h.TotalCount())
	assert.InDelta(t, float64(time.Minute/time.Microsecond), l.quantile(100), float64(time.Minute/time.Microsecond)*0.001)
	assert.Less(t, l.quantile(25), 0.01, "non-positive durations land on the lower bound")
}
