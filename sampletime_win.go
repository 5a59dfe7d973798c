//go:build windows

package desrng

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// TimeStamp is a raw QueryPerformanceCounter value. Only differences between two
// TimeStamps of the same process are meaningful.
type TimeStamp = int64

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	procFreq    = modkernel32.NewProc("QueryPerformanceFrequency")
	procCounter = modkernel32.NewProc("QueryPerformanceCounter")

	qpcFrequency = getFrequency()
)

// getFrequency returns the counter frequency in ticks per second.
func getFrequency() int64 {
	var freq int64
	r1, _, err := procFreq.Call(uintptr(unsafe.Pointer(&freq)))
	if r1 == 0 {
		panic(fmt.Sprintf("QueryPerformanceFrequency failed: %v", err))
	}
	return freq
}

// SampleTime returns the current value of the performance counter (100ns resolution).
func SampleTime() TimeStamp {
	var qpc int64
	procCounter.Call(uintptr(unsafe.Pointer(&qpc)))
	return qpc
}

// DiffTimeStamps returns t_later - t_earlier in nanoseconds (negative if t_later is earlier).
// Seconds and remainder are converted separately so long analyses do not overflow.
func DiffTimeStamps(t_earlier, t_later TimeStamp) int64 {
	ticks := t_later - t_earlier
	secs := ticks / qpcFrequency
	rest := ticks % qpcFrequency
	return secs*1_000_000_000 + rest*1_000_000_000/qpcFrequency
}
