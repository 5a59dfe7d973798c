package desrng

import "time"

// Elapsed returns the time that passed since start was taken with SampleTime.
// Used to report how long an analysis ran.
func Elapsed(start TimeStamp) time.Duration {
	return time.Duration(DiffTimeStamps(start, SampleTime()))
}
