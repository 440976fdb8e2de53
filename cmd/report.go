package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/process-sim/sim"
)

// Output formats accepted by --format.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var validFormats = map[string]bool{formatTable: true, formatJSON: true, formatYAML: true}

// policyLabels are the short names used in the recommendation line.
var policyLabels = map[string]string{
	sim.PolicyFCFS:           "FCFS",
	sim.PolicySJF:            "SJF",
	sim.PolicyRoundRobin:     "Round Robin",
	sim.PolicyRoundRobinFIFO: "Round Robin FIFO",
	sim.PolicyPriority:       "Priority",
}

// writeReport renders report to w in the given format.
func writeReport(w io.Writer, report *sim.Report, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case formatTable:
		outputTitle(w, "PROCESS SCHEDULING SIMULATOR")
		outputProcesses(w, report.Workload)
		outputRecommendation(w, report.Recommendation)
		outputTitle(w, "SIMULATING ALL ALGORITHMS")
		for _, res := range report.Results {
			outputResult(w, res)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("=", 35))
	_, _ = fmt.Fprintln(w, " ", title)
	_, _ = fmt.Fprintln(w, strings.Repeat("=", 35))
}

func outputProcesses(w io.Writer, wl sim.Workload) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Priority"})
	for _, p := range wl {
		table.Append([]string{
			fmt.Sprint(p.ID),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.Priority),
		})
	}
	table.Render()
	_, _ = fmt.Fprintln(w)
}

func outputRecommendation(w io.Writer, rec sim.Recommendation) {
	outputTitle(w, "WORKLOAD ANALYSIS")
	_, _ = fmt.Fprintf(w, "Average Burst Time: %.2f\n", rec.AvgBurst)
	_, _ = fmt.Fprintf(w, "Short Jobs (< %d): %d\n", sim.ShortJobBurst, rec.ShortJobs)
	_, _ = fmt.Fprintf(w, "Long Jobs (>= %d): %d\n", sim.ShortJobBurst, rec.LongJobs)
	_, _ = fmt.Fprintf(w, "\nRECOMMENDED ALGORITHM: %s - %s\n\n", policyLabels[rec.Policy], rec.Reason)
}

func outputResult(w io.Writer, res *sim.Result) {
	_, _ = fmt.Fprintf(w, "\n--- %s ---\n", res.Title)
	outputGantt(w, res.Timeline)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Priority", "Waiting", "Turnaround", "Completion", "Response"})
	for _, p := range res.Processes {
		table.Append([]string{
			fmt.Sprint(p.ID),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.CompletionTime),
			fmt.Sprint(p.ResponseTime),
		})
	}
	m := res.Metrics
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", m.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", m.AverageTurnaroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", m.Throughput),
		fmt.Sprintf("Average\n%.2f", m.AverageResponseTime),
	})
	table.Render()

	_, _ = fmt.Fprintf(w, "Average Waiting Time: %.2f\n", m.AverageWaitingTime)
	_, _ = fmt.Fprintf(w, "Average Turnaround Time: %.2f\n", m.AverageTurnaroundTime)
	_, _ = fmt.Fprintf(w, "Throughput: %.2f processes/unit time\n", m.Throughput)
	_, _ = fmt.Fprintf(w, "CPU Utilization: %.1f%% (idle %d of %d), Context Switches: %d\n",
		m.CPUUtilization*100, m.IdleTime, m.Makespan, m.ContextSwitches)
}

// outputGantt prints the timeline as a single row of process cells with their
// start ticks underneath. Idle gaps show as "-".
func outputGantt(w io.Writer, timeline []sim.Slice) {
	if len(timeline) == 0 {
		return
	}
	var cells, ticks strings.Builder
	cells.WriteString("|")
	var clock int64
	addCell := func(label string, start int64) {
		cells.WriteString(fmt.Sprintf(" %-5s|", label))
		ticks.WriteString(fmt.Sprintf("%-7d", start))
	}
	for _, s := range timeline {
		if s.Start > clock {
			addCell("-", clock)
		}
		addCell(fmt.Sprintf("P%d", s.PID), s.Start)
		clock = s.Stop
	}
	ticks.WriteString(fmt.Sprint(clock))
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprintln(w, cells.String())
	_, _ = fmt.Fprintln(w, ticks.String())
	_, _ = fmt.Fprintln(w)
}
