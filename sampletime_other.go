//go:build !windows

package desrng

import "time"

// TimeStamp is a point in time taken with SampleTime. Only differences between two
// TimeStamps of the same process are meaningful.
type TimeStamp = time.Time

// SampleTime returns the current time with the best precision the runtime system offers.
func SampleTime() TimeStamp {
	return time.Now()
}

// DiffTimeStamps returns t_later - t_earlier in nanoseconds (negative if t_later is earlier).
func DiffTimeStamps(t_earlier, t_later TimeStamp) int64 {
	return t_later.Sub(t_earlier).Nanoseconds()
}
