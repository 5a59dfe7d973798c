package desrng

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSampleTime(t *testing.T) {
	t1 := SampleTime()
	t1a := time.Now()
	time.Sleep(300 * time.Millisecond)
	t2 := SampleTime()
	t2a := time.Now()

	diff := time.Duration(DiffTimeStamps(t1, t2))
	diffa := t2a.Sub(t1a)
	assert.InDelta(t, float64(diffa), float64(diff), float64(5*time.Millisecond), "values diverge too much: %v vs. %v", diff, diffa)
	assert.Negative(t, DiffTimeStamps(t2, t1), "reversed timestamps must give a negative difference")
}

func TestElapsed(t *testing.T) {
	start := SampleTime()
	time.Sleep(50 * time.Millisecond)
	e := Elapsed(start)
	assert.GreaterOrEqual(t, e, 45*time.Millisecond)
	assert.Less(t, e, 5*time.Second)
}
