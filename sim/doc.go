// Package sim provides the offline CPU scheduling simulator.
//
// # Reading Guide
//
//   - process.go: Process descriptors, the Workload, and the per-run ProcessState
//   - scheduler.go: the Policy interface, NewPolicy, FCFS, SJF and Priority
//   - round_robin.go: scan-based and FIFO-queue round-robin
//   - metrics.go: per-run aggregates (averages, throughput, utilization)
//   - advisor.go: workload heuristics that recommend a policy
//   - simulator.go: Simulate and Compare, which clone the workload per run
//
// Every policy run works on its own clone of the Workload, so runs never
// observe each other's state. Time is measured in integer ticks starting at 0.
//
// Sub-packages:
//   - sim/workload/: loading workloads from CSV and YAML files
package sim
