// Package workload loads process workloads from files.
package workload

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/process-sim/sim"
)

// ErrUnsupportedFormat is returned for files whose extension has no loader.
var ErrUnsupportedFormat = errors.New("unsupported workload format")

// WorkloadSpec is the YAML workload file format.
//
//	processes:
//	  - {arrival_time: 0, burst_time: 5, priority: 2}
//	  - {arrival_time: 1, burst_time: 3, priority: 1}
type WorkloadSpec struct {
	Processes []sim.ProcessSpec `yaml:"processes"`
}

// Load reads a workload file, choosing the parser by extension
// (.csv, .yaml, .yml), and validates the result.
func Load(path string) (sim.Workload, error) {
	var (
		specs []sim.ProcessSpec
		err   error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		specs, err = LoadCSV(path)
	case ".yaml", ".yml":
		specs, err = LoadSpec(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}
	w := sim.NewWorkload(specs)
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// LoadSpec parses a YAML workload file. Unknown fields are rejected.
func LoadSpec(path string) ([]sim.ProcessSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	var spec WorkloadSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	return spec.Processes, nil
}
