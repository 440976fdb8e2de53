// sim/simulator.go
package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// Result is the outcome of running one policy over a workload.
type Result struct {
	Policy    string          `json:"policy" yaml:"policy"`
	Title     string          `json:"title" yaml:"title"`
	Processes []ProcessResult `json:"processes" yaml:"processes"` // ordered by ID
	Timeline  []Slice         `json:"timeline" yaml:"timeline"`
	Metrics   Metrics         `json:"metrics" yaml:"metrics"`
}

// Report is the full comparison of several policies over one workload.
type Report struct {
	Workload       Workload       `json:"workload" yaml:"workload"`
	Recommendation Recommendation `json:"recommendation" yaml:"recommendation"`
	Results        []*Result      `json:"results" yaml:"results"`
}

// Simulate runs p over a private clone of w. w is never modified.
// w must be non-empty.
func Simulate(p Policy, w Workload) *Result {
	states := w.Clone()
	timeline := p.Schedule(states)

	processes := make([]ProcessResult, len(states))
	for i := range states {
		ps := &states[i]
		if !ps.Completed {
			panic(fmt.Sprintf("%s left process %d unfinished", p.Name(), ps.ID))
		}
		processes[i] = ProcessResult{
			Process:        ps.Process,
			CompletionTime: ps.CompletionTime,
			TurnaroundTime: ps.TurnaroundTime,
			WaitingTime:    ps.WaitingTime,
			ResponseTime:   ps.StartTime - ps.ArrivalTime,
		}
	}
	sort.Slice(processes, func(i, j int) bool { return processes[i].ID < processes[j].ID })

	res := &Result{
		Policy:    p.Name(),
		Title:     p.Title(),
		Processes: processes,
		Timeline:  timeline,
		Metrics:   NewMetrics(processes, timeline),
	}
	logrus.Infof("%s: %d processes, makespan=%d, avg wait=%.2f, avg turnaround=%.2f",
		res.Policy, len(processes), res.Metrics.Makespan, res.Metrics.AverageWaitingTime, res.Metrics.AverageTurnaroundTime)
	return res
}

// Compare validates w, computes the workload recommendation, and runs each
// named policy on its own clone of w, in order.
func Compare(w Workload, policies []string, quantum int64) (*Report, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	for _, name := range policies {
		if !IsValidPolicy(name) {
			return nil, fmt.Errorf("unknown policy %q", name)
		}
	}

	report := &Report{
		Workload:       w,
		Recommendation: Advise(w),
		Results:        make([]*Result, 0, len(policies)),
	}
	logrus.Infof("Recommended policy for %d processes: %s", len(w), report.Recommendation.Policy)
	for _, name := range policies {
		report.Results = append(report.Results, Simulate(NewPolicy(name, quantum), w))
	}
	return report, nil
}
