package workload

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/process-sim/sim"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "workload.yaml", `
processes:
  - {arrival_time: 0, burst_time: 5, priority: 2}
  - {arrival_time: 1, burst_time: 3, priority: 1}
`)

	w, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, sim.Workload{
		{ID: 1, ArrivalTime: 0, BurstTime: 5, Priority: 2},
		{ID: 2, ArrivalTime: 1, BurstTime: 3, Priority: 1},
	}, w)
}

func TestLoad_YMLExtension(t *testing.T) {
	path := writeFile(t, "workload.YML", "processes:\n  - {arrival_time: 2, burst_time: 4}\n")

	w, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, sim.Workload{{ID: 1, ArrivalTime: 2, BurstTime: 4}}, w)
}

func TestLoad_CSV(t *testing.T) {
	path := writeFile(t, "workload.csv", "arrival_time,burst_time,priority\n0,5,2\n1,3,1\n")

	w, err := Load(path)

	require.NoError(t, err)
	require.Len(t, w, 2)
	assert.Equal(t, sim.Process{ID: 2, ArrivalTime: 1, BurstTime: 3, Priority: 1}, w[1])
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "workload.json", "{}")

	_, err := Load(path)

	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestLoad_InvalidWorkload(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty process list", "processes: []\n"},
		{"zero burst", "processes:\n  - {arrival_time: 0, burst_time: 0}\n"},
		{"negative arrival", "processes:\n  - {arrival_time: -3, burst_time: 2}\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "w.yaml", tc.content)

			_, err := Load(path)

			require.Error(t, err)
			assert.True(t, errors.Is(err, sim.ErrInvalidWorkload), "got %v", err)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestLoadSpec_UnknownField_Rejected(t *testing.T) {
	// GIVEN a typo in a process field
	path := writeFile(t, "w.yaml", "processes:\n  - {arrival_time: 0, brust_time: 5}\n")

	// WHEN the spec is parsed
	_, err := LoadSpec(path)

	// THEN strict decoding reports it
	require.Error(t, err)
	assert.Contains(t, err.Error(), "brust_time")
}

func TestLoadSpec_MissingFile(t *testing.T) {
	_, err := LoadSpec(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
