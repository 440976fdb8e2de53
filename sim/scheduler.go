package sim

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Policy names accepted by NewPolicy.
const (
	PolicyFCFS           = "fcfs"
	PolicySJF            = "sjf"
	PolicyRoundRobin     = "rr"
	PolicyRoundRobinFIFO = "rr-queue"
	PolicyPriority       = "priority"
)

// DefaultTimeQuantum is the round-robin time slice in ticks.
const DefaultTimeQuantum int64 = 4

// DefaultPolicies is the comparison set run when none is requested explicitly.
var DefaultPolicies = []string{PolicyFCFS, PolicySJF, PolicyRoundRobin, PolicyPriority}

// ValidPolicies is the set of recognized policy names.
var ValidPolicies = map[string]bool{
	PolicyFCFS:           true,
	PolicySJF:            true,
	PolicyRoundRobin:     true,
	PolicyRoundRobinFIFO: true,
	PolicyPriority:       true,
}

// IsValidPolicy reports whether name is a recognized policy.
func IsValidPolicy(name string) bool {
	return ValidPolicies[name]
}

// ValidPolicyNames returns the recognized policy names in sorted order.
func ValidPolicyNames() []string {
	names := make([]string, 0, len(ValidPolicies))
	for name := range ValidPolicies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Policy is a CPU scheduling discipline.
// Schedule runs every process in states to completion, mutating only states,
// and returns the CPU timeline in execution order.
type Policy interface {
	Name() string
	Title() string
	Schedule(states []ProcessState) []Slice
}

// NewPolicy creates a Policy by name. quantum is used by the round-robin
// policies; a non-positive value selects DefaultTimeQuantum.
// Panics on unrecognized names.
func NewPolicy(name string, quantum int64) Policy {
	if !IsValidPolicy(name) {
		panic(fmt.Sprintf("unknown policy %q", name))
	}
	if quantum <= 0 {
		quantum = DefaultTimeQuantum
	}
	switch name {
	case PolicyFCFS:
		return &FCFSScheduler{}
	case PolicySJF:
		return &SJFScheduler{}
	case PolicyRoundRobin:
		return &RoundRobinScheduler{Quantum: quantum}
	case PolicyRoundRobinFIFO:
		return &FIFORoundRobinScheduler{Quantum: quantum}
	case PolicyPriority:
		return &PriorityScheduler{}
	default:
		panic(fmt.Sprintf("unhandled policy %q", name))
	}
}

// ParsePolicies splits a comma-separated list into policy names.
// "all" or an empty list yields DefaultPolicies.
func ParsePolicies(list string) ([]string, error) {
	list = strings.TrimSpace(list)
	if list == "" || list == "all" {
		return append([]string(nil), DefaultPolicies...), nil
	}
	var names []string
	for _, name := range strings.Split(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if !IsValidPolicy(name) {
			return nil, fmt.Errorf("unknown policy %q; valid: %s", name, strings.Join(ValidPolicyNames(), ", "))
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no policies in %q", list)
	}
	return names, nil
}

// FCFSScheduler runs processes in arrival order, ties broken by lower ID.
type FCFSScheduler struct{}

func (f *FCFSScheduler) Name() string  { return PolicyFCFS }
func (f *FCFSScheduler) Title() string { return "FCFS (First Come First Serve)" }

func (f *FCFSScheduler) Schedule(states []ProcessState) []Slice {
	order := make([]*ProcessState, len(states))
	for i := range states {
		order[i] = &states[i]
	}
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].ArrivalTime != order[j].ArrivalTime {
			return order[i].ArrivalTime < order[j].ArrivalTime
		}
		return order[i].ID < order[j].ID
	})

	var clock int64
	timeline := make([]Slice, 0, len(states))
	for _, ps := range order {
		if clock < ps.ArrivalTime {
			logrus.Debugf("[tick %07d] cpu idle until %d", clock, ps.ArrivalTime)
			clock = ps.ArrivalTime
		}
		s := ps.runToCompletion(clock)
		logrus.Debugf("[tick %07d] fcfs dispatch pid=%d, done at %d", clock, ps.ID, s.Stop)
		timeline = append(timeline, s)
		clock = s.Stop
	}
	return timeline
}

// SJFScheduler picks the arrived process with the smallest burst time,
// then earliest arrival, then lowest ID. Non-preemptive.
// Warning: SJF can starve long processes under a steady stream of short ones.
type SJFScheduler struct{}

func (s *SJFScheduler) Name() string  { return PolicySJF }
func (s *SJFScheduler) Title() string { return "SJF (Shortest Job First)" }

func (s *SJFScheduler) Schedule(states []ProcessState) []Slice {
	return runNonPreemptive(PolicySJF, states, func(a, b *ProcessState) bool {
		if a.BurstTime != b.BurstTime {
			return a.BurstTime < b.BurstTime
		}
		if a.ArrivalTime != b.ArrivalTime {
			return a.ArrivalTime < b.ArrivalTime
		}
		return a.ID < b.ID
	})
}

// PriorityScheduler picks the arrived process with the lowest priority value,
// ties broken by lowest ID. Non-preemptive.
type PriorityScheduler struct{}

func (p *PriorityScheduler) Name() string  { return PolicyPriority }
func (p *PriorityScheduler) Title() string { return "Priority Scheduling" }

func (p *PriorityScheduler) Schedule(states []ProcessState) []Slice {
	return runNonPreemptive(PolicyPriority, states, func(a, b *ProcessState) bool {
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.ID < b.ID
	})
}

// runNonPreemptive repeatedly selects the best eligible process according to
// before and runs it to completion. When nothing has arrived the clock jumps
// straight to the next arrival.
func runNonPreemptive(name string, states []ProcessState, before func(a, b *ProcessState) bool) []Slice {
	var clock int64
	timeline := make([]Slice, 0, len(states))
	for done := 0; done < len(states); {
		var pick *ProcessState
		for i := range states {
			ps := &states[i]
			if !ps.eligible(clock) {
				continue
			}
			if pick == nil || before(ps, pick) {
				pick = ps
			}
		}
		if pick == nil {
			next := nextArrival(states, clock)
			logrus.Debugf("[tick %07d] cpu idle until %d", clock, next)
			clock = next
			continue
		}
		s := pick.runToCompletion(clock)
		logrus.Debugf("[tick %07d] %s dispatch pid=%d, done at %d", clock, name, pick.ID, s.Stop)
		timeline = append(timeline, s)
		clock = s.Stop
		done++
	}
	return timeline
}
