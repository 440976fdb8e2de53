// sim/metrics.go
package sim

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ProcessResult is the computed outcome for one process under one policy.
type ProcessResult struct {
	Process        `yaml:",inline"`
	CompletionTime int64 `json:"completion_time" yaml:"completion_time"`
	TurnaroundTime int64 `json:"turnaround_time" yaml:"turnaround_time"` // CompletionTime - ArrivalTime
	WaitingTime    int64 `json:"waiting_time" yaml:"waiting_time"`       // TurnaroundTime - BurstTime
	ResponseTime   int64 `json:"response_time" yaml:"response_time"`     // first dispatch - ArrivalTime
}

// Distribution captures a statistical summary of a per-process metric.
type Distribution struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"stddev" yaml:"stddev"`
	Min    float64 `json:"min" yaml:"min"`
	P50    float64 `json:"p50" yaml:"p50"`
	P90    float64 `json:"p90" yaml:"p90"`
	P99    float64 `json:"p99" yaml:"p99"`
	Max    float64 `json:"max" yaml:"max"`
	Count  int     `json:"count" yaml:"count"`
}

// NewDistribution computes a Distribution from raw values.
// Returns zero-value Distribution for empty input.
func NewDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	d := Distribution{
		Mean:  stat.Mean(sorted, nil),
		Min:   sorted[0],
		P50:   percentile(sorted, 50),
		P90:   percentile(sorted, 90),
		P99:   percentile(sorted, 99),
		Max:   sorted[len(sorted)-1],
		Count: len(sorted),
	}
	// Sample stddev is undefined for a single value.
	if len(sorted) > 1 {
		d.StdDev = stat.StdDev(sorted, nil)
	}
	return d
}

// percentile computes the p-th percentile using linear interpolation.
// Input must be sorted.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100.0 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// Metrics holds run-level aggregates for one policy run.
type Metrics struct {
	AverageWaitingTime    float64 `json:"average_waiting_time" yaml:"average_waiting_time"`
	AverageTurnaroundTime float64 `json:"average_turnaround_time" yaml:"average_turnaround_time"`
	AverageResponseTime   float64 `json:"average_response_time" yaml:"average_response_time"`
	// Throughput is processes completed per tick, measured against the latest
	// completion time rather than the completion of the highest ID.
	Throughput      float64 `json:"throughput" yaml:"throughput"`
	Makespan        int64   `json:"makespan" yaml:"makespan"`
	BusyTime        int64   `json:"busy_time" yaml:"busy_time"`
	IdleTime        int64   `json:"idle_time" yaml:"idle_time"`
	CPUUtilization  float64 `json:"cpu_utilization" yaml:"cpu_utilization"`
	ContextSwitches int     `json:"context_switches" yaml:"context_switches"`

	WaitingTime    Distribution `json:"waiting_time" yaml:"waiting_time"`
	TurnaroundTime Distribution `json:"turnaround_time" yaml:"turnaround_time"`
}

// NewMetrics aggregates per-process results and the CPU timeline of one run.
// results must be non-empty.
func NewMetrics(results []ProcessResult, timeline []Slice) Metrics {
	n := len(results)
	waits := make([]float64, n)
	turnarounds := make([]float64, n)
	var responseSum float64
	var makespan int64
	for i, r := range results {
		waits[i] = float64(r.WaitingTime)
		turnarounds[i] = float64(r.TurnaroundTime)
		responseSum += float64(r.ResponseTime)
		makespan = max(makespan, r.CompletionTime)
	}

	m := Metrics{
		WaitingTime:         NewDistribution(waits),
		TurnaroundTime:      NewDistribution(turnarounds),
		AverageResponseTime: responseSum / float64(n),
		Makespan:            makespan,
	}
	m.AverageWaitingTime = m.WaitingTime.Mean
	m.AverageTurnaroundTime = m.TurnaroundTime.Mean

	for i, s := range timeline {
		m.BusyTime += s.Duration()
		if i > 0 && timeline[i-1].PID != s.PID {
			m.ContextSwitches++
		}
	}
	m.IdleTime = makespan - m.BusyTime
	if makespan > 0 {
		m.Throughput = float64(n) / float64(makespan)
		m.CPUUtilization = float64(m.BusyTime) / float64(makespan)
	}
	return m
}
