// Implements the ReadyQueue used by the FIFO round-robin policy.
// Processes are enqueued on arrival and re-enqueued after preemption.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue is a FIFO queue of processes waiting for the CPU.
type ReadyQueue struct {
	queue []*ProcessState
}

// Enqueue adds a process to the back of the queue.
func (rq *ReadyQueue) Enqueue(ps *ProcessState) {
	if ps == nil {
		panic("Enqueue: process must not be nil")
	}
	rq.queue = append(rq.queue, ps)
}

// Dequeue removes the process at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *ProcessState {
	if len(rq.queue) == 0 {
		return nil
	}
	ps := rq.queue[0]
	rq.queue = rq.queue[1:]
	return ps
}

// Len returns the number of queued processes.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, ps := range rq.queue {
		sb.WriteString(fmt.Sprintf("P%d", ps.ID))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
