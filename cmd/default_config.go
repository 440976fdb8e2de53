package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/process-sim/sim"
)

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version   string          `yaml:"version"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Input     InputConfig     `yaml:"input"`
	Server    ServerConfig    `yaml:"server"`
}

type SchedulerConfig struct {
	TimeQuantum int64    `yaml:"time_quantum"`
	Algorithms  []string `yaml:"algorithms"`
}

type InputConfig struct {
	MaxProcesses int `yaml:"max_processes"` // 0 = unbounded
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// DefaultConfig returns the built-in defaults used when no defaults file exists.
func DefaultConfig() Config {
	return Config{
		Version: "1",
		Scheduler: SchedulerConfig{
			TimeQuantum: sim.DefaultTimeQuantum,
			Algorithms:  append([]string(nil), sim.DefaultPolicies...),
		},
		Input:  InputConfig{MaxProcesses: 50},
		Server: ServerConfig{Port: 5000},
	}
}

// loadDefaultsConfig parses defaults.yaml over the built-in defaults.
// A missing file is not an error. Uses strict field checking so typos fail loudly.
func loadDefaultsConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.Debugf("Defaults file %s not found, using built-in defaults", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading defaults file %s: %w", path, err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing defaults YAML %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges and policy names.
func (c Config) Validate() error {
	if c.Scheduler.TimeQuantum <= 0 {
		return fmt.Errorf("scheduler.time_quantum must be positive, got %d", c.Scheduler.TimeQuantum)
	}
	if len(c.Scheduler.Algorithms) == 0 {
		return fmt.Errorf("scheduler.algorithms must list at least one policy")
	}
	for _, name := range c.Scheduler.Algorithms {
		if !sim.IsValidPolicy(name) {
			return fmt.Errorf("scheduler.algorithms: unknown policy %q", name)
		}
	}
	if c.Input.MaxProcesses < 0 {
		return fmt.Errorf("input.max_processes must be non-negative, got %d", c.Input.MaxProcesses)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	return nil
}
