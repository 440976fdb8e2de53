package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// RoundRobinScheduler gives each arrived process up to Quantum ticks per turn.
//
// There is no explicit ready queue: every pass scans all processes in ID order
// and the clock advances during the pass, so a process that arrives mid-pass
// runs in that same pass at its ID position rather than at the back of a
// queue. FIFORoundRobinScheduler implements the queue-based variant.
type RoundRobinScheduler struct {
	Quantum int64
}

func (r *RoundRobinScheduler) Name() string { return PolicyRoundRobin }
func (r *RoundRobinScheduler) Title() string {
	return fmt.Sprintf("Round Robin (Quantum=%d)", r.Quantum)
}

func (r *RoundRobinScheduler) Schedule(states []ProcessState) []Slice {
	var clock int64
	var timeline []Slice
	for done := 0; done < len(states); {
		ran := false
		for i := range states {
			ps := &states[i]
			if !ps.eligible(clock) {
				continue
			}
			ran = true
			s := ps.runSlice(clock, r.Quantum)
			logrus.Debugf("[tick %07d] rr dispatch pid=%d for %d, remaining %d", clock, ps.ID, s.Duration(), ps.RemainingTime)
			timeline = append(timeline, s)
			clock = s.Stop
			if ps.Completed {
				done++
			}
		}
		if !ran && done < len(states) {
			next := nextArrival(states, clock)
			logrus.Debugf("[tick %07d] cpu idle until %d", clock, next)
			clock = next
		}
	}
	return timeline
}

// FIFORoundRobinScheduler is textbook round-robin over an explicit ready queue.
// Processes join the queue in arrival order (ties by ID). After each slice,
// processes that arrived by the end of the slice are enqueued before the
// preempted process goes to the back.
type FIFORoundRobinScheduler struct {
	Quantum int64
}

func (r *FIFORoundRobinScheduler) Name() string { return PolicyRoundRobinFIFO }
func (r *FIFORoundRobinScheduler) Title() string {
	return fmt.Sprintf("Round Robin FIFO (Quantum=%d)", r.Quantum)
}

func (r *FIFORoundRobinScheduler) Schedule(states []ProcessState) []Slice {
	pending := make([]*ProcessState, len(states))
	for i := range states {
		pending[i] = &states[i]
	}
	sort.SliceStable(pending, func(i, j int) bool {
		if pending[i].ArrivalTime != pending[j].ArrivalTime {
			return pending[i].ArrivalTime < pending[j].ArrivalTime
		}
		return pending[i].ID < pending[j].ID
	})

	rq := &ReadyQueue{}
	admit := func(clock int64) {
		for len(pending) > 0 && pending[0].ArrivalTime <= clock {
			rq.Enqueue(pending[0])
			pending = pending[1:]
		}
	}

	var clock int64
	var timeline []Slice
	admit(clock)
	for done := 0; done < len(states); {
		ps := rq.Dequeue()
		if ps == nil {
			logrus.Debugf("[tick %07d] cpu idle until %d", clock, pending[0].ArrivalTime)
			clock = pending[0].ArrivalTime
			admit(clock)
			continue
		}
		s := ps.runSlice(clock, r.Quantum)
		clock = s.Stop
		timeline = append(timeline, s)
		admit(clock)
		if ps.Completed {
			done++
		} else {
			rq.Enqueue(ps)
		}
		logrus.Debugf("[tick %07d] rr-queue ran pid=%d for %d, ready %s", clock, ps.ID, s.Duration(), rq)
	}
	return timeline
}
