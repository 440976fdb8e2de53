package workload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/inference-sim/process-sim/sim"
)

// csvColumns is the column order of a CSV workload row. Priority may be omitted.
var csvColumns = []string{"arrival_time", "burst_time", "priority"}

// LoadCSV reads a CSV workload file.
func LoadCSV(path string) ([]sim.ProcessSpec, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening workload csv: %w", err)
	}
	defer func() { _ = file.Close() }()
	return ReadCSV(file)
}

// ReadCSV parses rows of arrival,burst[,priority]. A first row whose leading
// cell is not a number is treated as a header. Lines starting with # are skipped.
func ReadCSV(r io.Reader) ([]sim.ProcessSpec, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var specs []sim.ProcessSpec
	for line := 1; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}
		if line == 1 && isHeader(row) {
			continue
		}
		spec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("CSV row %d: %w", line, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func isHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	_, err := strconv.ParseInt(strings.TrimSpace(row[0]), 10, 64)
	return err != nil
}

func parseRow(row []string) (sim.ProcessSpec, error) {
	if len(row) < 2 || len(row) > len(csvColumns) {
		return sim.ProcessSpec{}, fmt.Errorf("got %d columns, expected 2 or 3 (%s)", len(row), strings.Join(csvColumns, ","))
	}
	var fields [3]int64
	for i, cell := range row {
		v, err := strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
		if err != nil {
			return sim.ProcessSpec{}, fmt.Errorf("%s: %w", csvColumns[i], err)
		}
		fields[i] = v
	}
	return sim.ProcessSpec{ArrivalTime: fields[0], BurstTime: fields[1], Priority: int(fields[2])}, nil
}
