package runner

import (
	"math"
	"slices"
	"time"
)

type LatencyStats struct {
	Min         time.Duration         `json:"min"`
	Max         time.Duration         `json:"max"`
	Mean        time.Duration         `json:"mean"`
	Stddev      time.Duration         `json:"stddev"`
	Percentiles map[int]time.Duration `json:"percentiles"`
	Samples     int                   `json:"samples"`
	raw         []time.Duration
}

var trackedPercentiles = []int{50, 90, 99}

func ComputeLatencyStats(samples []time.Duration) LatencyStats {
	stats := LatencyStats{Percentiles: make(map[int]time.Duration, len(trackedPercentiles))}
	if len(samples) == 0 {
		return stats
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	stats.Min = sorted[0]
	stats.Max = sorted[len(sorted)-1]
	stats.Samples = len(sorted)
	stats.raw = sorted

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	stats.Mean = total / time.Duration(len(sorted))

	if len(sorted) > 1 {
		mean := float64(stats.Mean)
		var sq float64
		for _, d := range sorted {
			diff := float64(d) - mean
			sq += diff * diff
		}
		stats.Stddev = time.Duration(math.Sqrt(sq / float64(len(sorted)-1)))
	}

	for _, p := range trackedPercentiles {
		stats.Percentiles[p] = percentile(sorted, p)
	}
	return stats
}

// percentile interpolates linearly between the closest ranks of a sorted slice.
func percentile(sorted []time.Duration, p int) time.Duration {
	switch len(sorted) {
	case 0:
		return 0
	case 1:
		return sorted[0]
	}

	rank := float64(p) / 100 * float64(len(sorted)-1)
	lo := int(rank)
	if lo+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	w := rank - float64(lo)
	return time.Duration(float64(sorted[lo])*(1-w) + float64(sorted[lo+1])*w)
}

// MergeLatencyStats recomputes statistics over the samples of every input.
func MergeLatencyStats(stats ...LatencyStats) LatencyStats {
	var all []time.Duration
	for _, s := range stats {
		all = append(all, s.raw...)
	}
	return ComputeLatencyStats(all)
}

func (s LatencyStats) P50() time.Duration { return s.Percentiles[50] }
func (s LatencyStats) P90() time.Duration { return s.Percentiles[90] }
func (s LatencyStats) P99() time.Duration { return s.Percentiles[99] }

func (s LatencyStats) IsZero() bool {
	return s.Samples == 0
}
