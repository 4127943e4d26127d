package profiling

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Per-frame phase timer. Only the frame loop's thread records into it.

var (
	frameTotals = make(map[string]time.Duration)
	frameOrder  []string
)

// Track returns a stop function that adds the elapsed time to name.
// Usage: defer profiling.Track("frame.render")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		Add(name, time.Since(start))
	}
}

// Add records d against name for the current frame.
func Add(name string, d time.Duration) {
	if _, ok := frameTotals[name]; !ok {
		frameOrder = append(frameOrder, name)
	}
	frameTotals[name] += d
}

// ResetFrame clears the current totals. Call at the start of each frame.
func ResetFrame() {
	clear(frameTotals)
	frameOrder = frameOrder[:0]
}

// Snapshot returns a copy of the current totals.
func Snapshot() map[string]time.Duration {
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

// TopN formats the n slowest phases of the current frame, slowest first.
// Example: "frame.present:6.1ms, frame.render:0.4ms"
func TopN(n int) string {
	names := make([]string, len(frameOrder))
	copy(names, frameOrder)
	sort.SliceStable(names, func(i, j int) bool { return frameTotals[names[i]] > frameTotals[names[j]] })
	if n > len(names) {
		n = len(names)
	}
	parts := make([]string, 0, n)
	for _, name := range names[:n] {
		ms := float64(frameTotals[name].Microseconds()) / 1000.0
		parts = append(parts, name+":"+strconv.FormatFloat(ms, 'f', 1, 64)+"ms")
	}
	return strings.Join(parts, ", ")
}
