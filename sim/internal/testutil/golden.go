// Package testutil provides shared test infrastructure for the scheduling simulator.
// It holds the golden dataset types and assertion helpers used by sim/ tests.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/inference-sim/process-sim/sim"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one workload and the expected outcome per policy.
type GoldenTestCase struct {
	Name      string                   `json:"name"`
	Quantum   int64                    `json:"quantum"`
	Processes []sim.ProcessSpec        `json:"processes"`
	Expected  map[string]GoldenMetrics `json:"expected"` // keyed by policy name
}

// GoldenMetrics represents the expected outcome of one policy run.
type GoldenMetrics struct {
	// Exact match, indexed by process ID - 1
	CompletionTimes []int64 `json:"completion_times"`

	// Derived from integer ticks, compared with a relative tolerance
	AverageWaitingTime    float64 `json:"average_waiting_time"`
	AverageTurnaroundTime float64 `json:"average_turnaround_time"`
	Throughput            float64 `json:"throughput"`
}

// Workload builds the workload described by the test case.
func (tc GoldenTestCase) Workload() sim.Workload {
	return sim.NewWorkload(tc.Processes)
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
