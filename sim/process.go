// Defines the Process descriptor and the per-run ProcessState that scheduling
// policies mutate while simulating a workload.

package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidWorkload is wrapped by every workload validation failure.
var ErrInvalidWorkload = errors.New("invalid workload")

// Process is the immutable description of one process in a workload.
type Process struct {
	ID          int   `json:"id" yaml:"id"`                     // 1..N, assigned in input order
	ArrivalTime int64 `json:"arrival_time" yaml:"arrival_time"` // tick at which the process becomes eligible
	BurstTime   int64 `json:"burst_time" yaml:"burst_time"`     // total CPU ticks required (> 0)
	Priority    int   `json:"priority" yaml:"priority"`         // lower value = higher priority
}

func (p Process) String() string {
	return fmt.Sprintf("Process: (ID: %d, ArrivalTime: %d, BurstTime: %d, Priority: %d)", p.ID, p.ArrivalTime, p.BurstTime, p.Priority)
}

// ProcessSpec is the input triple supplied by a collaborator before IDs are assigned.
type ProcessSpec struct {
	ArrivalTime int64 `json:"arrival" yaml:"arrival_time"`
	BurstTime   int64 `json:"burst" yaml:"burst_time"`
	Priority    int   `json:"priority" yaml:"priority"`
}

// Workload is the ordered, read-only set of processes shared by every policy run.
type Workload []Process

// NewWorkload assigns IDs 1..N to specs in supply order.
func NewWorkload(specs []ProcessSpec) Workload {
	w := make(Workload, len(specs))
	for i, s := range specs {
		w[i] = Process{ID: i + 1, ArrivalTime: s.ArrivalTime, BurstTime: s.BurstTime, Priority: s.Priority}
	}
	return w
}

// Validate checks that the workload is non-empty, that every process has a
// non-negative arrival and a positive burst, and that IDs are a permutation of 1..N.
func (w Workload) Validate() error {
	if len(w) == 0 {
		return fmt.Errorf("%w: no processes", ErrInvalidWorkload)
	}
	seen := make([]bool, len(w)+1)
	for i, p := range w {
		if p.ID < 1 || p.ID > len(w) {
			return fmt.Errorf("%w: process %d: id %d outside 1..%d", ErrInvalidWorkload, i, p.ID, len(w))
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate process id %d", ErrInvalidWorkload, p.ID)
		}
		seen[p.ID] = true
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %d: arrival time must be non-negative, got %d", ErrInvalidWorkload, p.ID, p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: process %d: burst time must be positive, got %d", ErrInvalidWorkload, p.ID, p.BurstTime)
		}
	}
	return nil
}

// TotalBurst returns the sum of all burst times.
func (w Workload) TotalBurst() int64 {
	var total int64
	for _, p := range w {
		total += p.BurstTime
	}
	return total
}

// Clone returns a fresh runtime state per process, in workload order.
// Every policy run must start from its own clone.
func (w Workload) Clone() []ProcessState {
	states := make([]ProcessState, len(w))
	for i, p := range w {
		states[i] = ProcessState{
			Process:       p,
			RemainingTime: p.BurstTime,
			StartTime:     unset,
		}
	}
	return states
}

const unset int64 = -1

// ProcessState is the mutable working copy of a Process during a single policy run.
// Timing fields are written once, when the process is first dispatched
// (StartTime) or finishes (the rest).
type ProcessState struct {
	Process

	RemainingTime  int64 // ticks still to run; only round-robin slices decrement it
	StartTime      int64 // first dispatch tick, -1 until dispatched
	CompletionTime int64
	TurnaroundTime int64
	WaitingTime    int64
	Completed      bool
}

// eligible reports whether the process has arrived by clock and still needs the CPU.
func (ps *ProcessState) eligible(clock int64) bool {
	return !ps.Completed && ps.ArrivalTime <= clock
}

func (ps *ProcessState) dispatch(clock int64) {
	if ps.StartTime == unset {
		ps.StartTime = clock
	}
}

// complete records the finishing tick and derives turnaround and waiting time.
func (ps *ProcessState) complete(at int64) {
	if ps.Completed {
		panic(fmt.Sprintf("process %d completed twice (at %d and %d)", ps.ID, ps.CompletionTime, at))
	}
	ps.Completed = true
	ps.CompletionTime = at
	ps.TurnaroundTime = at - ps.ArrivalTime
	ps.WaitingTime = ps.TurnaroundTime - ps.BurstTime
}

// runToCompletion executes the whole burst starting at clock.
func (ps *ProcessState) runToCompletion(clock int64) Slice {
	ps.dispatch(clock)
	stop := clock + ps.BurstTime
	ps.complete(stop)
	return Slice{PID: ps.ID, Start: clock, Stop: stop}
}

// runSlice executes at most quantum ticks starting at clock, finishing the
// process when its remaining time is used up.
func (ps *ProcessState) runSlice(clock, quantum int64) Slice {
	ps.dispatch(clock)
	d := min(ps.RemainingTime, quantum)
	if d < 0 {
		d = 0
	}
	ps.RemainingTime -= d
	stop := clock + d
	if ps.RemainingTime <= 0 {
		ps.RemainingTime = 0
		ps.complete(stop)
	}
	return Slice{PID: ps.ID, Start: clock, Stop: stop}
}

// Slice is one contiguous stretch of CPU time given to a process.
type Slice struct {
	PID   int   `json:"pid" yaml:"pid"`
	Start int64 `json:"start" yaml:"start"`
	Stop  int64 `json:"stop" yaml:"stop"`
}

// Duration returns the number of ticks in the slice.
func (s Slice) Duration() int64 {
	return s.Stop - s.Start
}

// nextArrival returns the earliest arrival after clock among unfinished
// processes. Falls back to clock+1 so an idle loop always makes progress.
func nextArrival(states []ProcessState, clock int64) int64 {
	next := unset
	for i := range states {
		ps := &states[i]
		if ps.Completed || ps.ArrivalTime <= clock {
			continue
		}
		if next == unset || ps.ArrivalTime < next {
			next = ps.ArrivalTime
		}
	}
	if next == unset {
		return clock + 1
	}
	return next
}
