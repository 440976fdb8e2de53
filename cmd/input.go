package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/inference-sim/process-sim/sim"
)

// ErrInvalidProcessCount is returned when the requested number of processes is out of range.
var ErrInvalidProcessCount = errors.New("invalid number of processes")

// promptReader reads whitespace-separated integers, writing a prompt before each.
type promptReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (p *promptReader) readInt(prompt string) (int64, error) {
	_, _ = fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	v, err := strconv.ParseInt(p.scanner.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("expected an integer, got %q", p.scanner.Text())
	}
	return v, nil
}

// readInteractiveWorkload prompts for a process count and one
// (arrival, burst, priority) triple per process. maxProcesses <= 0 means no upper bound.
func readInteractiveWorkload(in io.Reader, out io.Writer, maxProcesses int) (sim.Workload, error) {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	pr := &promptReader{scanner: scanner, out: out}

	bound := "1+"
	if maxProcesses > 0 {
		bound = fmt.Sprintf("1-%d", maxProcesses)
	}
	n, err := pr.readInt(fmt.Sprintf("Enter number of processes (%s): ", bound))
	if err != nil {
		return nil, fmt.Errorf("reading process count: %w", err)
	}
	if n < 1 || (maxProcesses > 0 && n > int64(maxProcesses)) {
		return nil, fmt.Errorf("%w: %d, expected %s", ErrInvalidProcessCount, n, bound)
	}

	_, _ = fmt.Fprintln(out, "\nEnter details for each process:")
	_, _ = fmt.Fprintln(out, "(Arrival Time, Burst Time, Priority)")
	specs := make([]sim.ProcessSpec, n)
	for i := range specs {
		_, _ = fmt.Fprintf(out, "\nProcess %d:\n", i+1)
		if specs[i].ArrivalTime, err = pr.readInt("  Arrival Time: "); err != nil {
			return nil, fmt.Errorf("process %d arrival time: %w", i+1, err)
		}
		if specs[i].BurstTime, err = pr.readInt("  Burst Time: "); err != nil {
			return nil, fmt.Errorf("process %d burst time: %w", i+1, err)
		}
		priority, err := pr.readInt("  Priority (1=highest): ")
		if err != nil {
			return nil, fmt.Errorf("process %d priority: %w", i+1, err)
		}
		specs[i].Priority = int(priority)
	}
	_, _ = fmt.Fprintln(out)

	w := sim.NewWorkload(specs)
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}
