// Package stats tracks solver activity for the stats endpoint.
package stats

import (
	"sort"
	"sync"
	"time"

	"github.com/reroreo1/computer-v1/internal/solver"
)

type sample struct {
	timestamp  time.Time
	durationUs int64
}

// Snapshot is a point-in-time aggregate of solver activity.
type Snapshot struct {
	Solved    int64            `json:"solved"`
	Malformed int64            `json:"malformed"`
	ByKind    map[string]int64 `json:"by_kind"`

	Count int     `json:"count"`
	MinUs int64   `json:"min_us"`
	MaxUs int64   `json:"max_us"`
	AvgUs float64 `json:"avg_us"`
	P50Us float64 `json:"p50_us"`
	P95Us float64 `json:"p95_us"`
	P99Us float64 `json:"p99_us"`
}

// SolveStats tracks outcome counts since startup and solve latencies
// within a rolling window.
type SolveStats struct {
	mu        sync.Mutex
	solved    int64
	malformed int64
	byKind    map[solver.Kind]int64
	samples   []sample
	maxAge    time.Duration
}

func New(maxAge time.Duration) *SolveStats {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &SolveStats{
		byKind:  make(map[solver.Kind]int64),
		samples: make([]sample, 0, 256),
		maxAge:  maxAge,
	}
}

// RecordSolve records one completed solve and its duration.
func (s *SolveStats) RecordSolve(kind solver.Kind, d time.Duration) {
	us := d.Microseconds()
	if us < 0 {
		us = 0
	}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.solved++
	s.byKind[kind]++
	s.pruneLocked(now)
	s.samples = append(s.samples, sample{timestamp: now, durationUs: us})
}

// RecordMalformed records one input rejected by the parser.
func (s *SolveStats) RecordMalformed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.malformed++
}

func (s *SolveStats) Snapshot() Snapshot {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)

	snap := Snapshot{
		Solved:    s.solved,
		Malformed: s.malformed,
		ByKind:    make(map[string]int64, len(s.byKind)),
	}
	for kind, n := range s.byKind {
		snap.ByKind[string(kind)] = n
	}

	if len(s.samples) == 0 {
		return snap
	}

	values := make([]int64, 0, len(s.samples))
	var sum int64
	for _, sm := range s.samples {
		values = append(values, sm.durationUs)
		sum += sm.durationUs
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	snap.Count = len(values)
	snap.MinUs = values[0]
	snap.MaxUs = values[len(values)-1]
	snap.AvgUs = float64(sum) / float64(len(values))
	snap.P50Us = percentile(values, 50)
	snap.P95Us = percentile(values, 95)
	snap.P99Us = percentile(values, 99)
	return snap
}

func (s *SolveStats) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.maxAge)
	writeIdx := 0
	for _, sm := range s.samples {
		if !sm.timestamp.Before(cutoff) {
			s.samples[writeIdx] = sm
			writeIdx++
		}
	}
	s.samples = s.samples[:writeIdx]
}

func percentile(sortedValues []int64, pct float64) float64 {
	if len(sortedValues) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sortedValues[0])
	}
	if pct >= 100 {
		return float64(sortedValues[len(sortedValues)-1])
	}

	index := (float64(len(sortedValues)-1) * pct) / 100.0
	lower := int(index)
	upper := lower + 1
	if upper >= len(sortedValues) {
		return float64(sortedValues[lower])
	}
	weight := index - float64(lower)
	lo := float64(sortedValues[lower])
	hi := float64(sortedValues[upper])
	return lo + ((hi - lo) * weight)
}
