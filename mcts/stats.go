package mcts

import "github.com/chewxy/math32"

// RunningStats keeps an incremental mean and deviation of a sequence of
// values. Each worker State owns its own instances; nothing here is shared
// across goroutines.
type RunningStats struct {
	count Float
	mean  Float
	m2    Float
}

// Add records v.
func (r *RunningStats) Add(v Float) {
	r.count++
	d := v - r.mean
	r.mean += d / r.count
	r.m2 += d * (v - r.mean)
}

// Count returns the number of recorded values.
func (r *RunningStats) Count() Float { return r.count }

// Mean returns the running mean, 0 before the first Add.
func (r *RunningStats) Mean() Float { return r.mean }

// Deviation returns the running standard deviation, 0 before the first Add.
func (r *RunningStats) Deviation() Float {
	if r.count == 0 {
		return 0
	}
	return math32.Sqrt(r.m2 / r.count)
}

// Clear resets the statistics.
func (r *RunningStats) Clear() { *r = RunningStats{} }
