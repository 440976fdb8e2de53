package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/process-sim/sim"
	"github.com/inference-sim/process-sim/sim/workload"
)

var (
	// Shared flags
	logLevel     string // Log verbosity level
	defaultsPath string // Path to defaults.yaml
	timeQuantum  int64  // Round-robin time slice in ticks
	algorithms   string // Comma-separated policy names, or "all"
	maxProcesses int    // Upper bound on the number of processes (0 = unbounded)

	// run/recommend flags
	workloadPath string // CSV or YAML workload file; empty reads interactively from stdin
	outputFormat string // table, json or yaml
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "process-sim",
	Short: "Discrete-event simulator for CPU process scheduling",
}

// runCmd simulates every configured policy over the workload and prints the comparison
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate scheduling policies over a workload",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		cfg := loadConfig(cmd)
		if !validFormats[outputFormat] {
			logrus.Fatalf("Invalid output format: %s", outputFormat)
		}

		w := loadWorkload(cfg, os.Stdin, interactiveOutput())
		logrus.Infof("Starting simulation of %d processes with policies=%v, quantum=%d",
			len(w), cfg.Scheduler.Algorithms, cfg.Scheduler.TimeQuantum)

		report, err := sim.Compare(w, cfg.Scheduler.Algorithms, cfg.Scheduler.TimeQuantum)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		if err := writeReport(os.Stdout, report, outputFormat); err != nil {
			logrus.Fatalf("Writing report: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// recommendCmd prints only the workload analysis, without simulating
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend a scheduling policy from workload heuristics",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		cfg := loadConfig(cmd)
		w := loadWorkload(cfg, os.Stdin, interactiveOutput())
		outputRecommendation(os.Stdout, sim.Advise(w))
	},
}

// setupLogging applies --log to the global logrus logger.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// loadConfig reads the defaults file and applies flags the user set explicitly.
func loadConfig(cmd *cobra.Command) Config {
	cfg, err := loadDefaultsConfig(defaultsPath)
	if err != nil {
		logrus.Fatalf("Failed to load defaults: %v", err)
	}
	if cmd.Flags().Changed("quantum") {
		if timeQuantum <= 0 {
			logrus.Fatalf("--quantum must be positive, got %d", timeQuantum)
		}
		cfg.Scheduler.TimeQuantum = timeQuantum
	}
	if cmd.Flags().Changed("algorithms") {
		names, err := sim.ParsePolicies(algorithms)
		if err != nil {
			logrus.Fatalf("Invalid --algorithms: %v", err)
		}
		cfg.Scheduler.Algorithms = names
	}
	if cmd.Flags().Changed("max-processes") {
		cfg.Input.MaxProcesses = maxProcesses
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

// loadWorkload reads --workload if given, otherwise prompts on in/out.
func loadWorkload(cfg Config, in io.Reader, out io.Writer) sim.Workload {
	if workloadPath == "" {
		w, err := readInteractiveWorkload(in, out, cfg.Input.MaxProcesses)
		if err != nil {
			logrus.Fatalf("Reading processes: %v", err)
		}
		return w
	}
	w, err := workload.Load(workloadPath)
	if err != nil {
		logrus.Fatalf("Loading workload: %v", err)
	}
	if limit := cfg.Input.MaxProcesses; limit > 0 && len(w) > limit {
		logrus.Fatalf("Workload has %d processes, limit is %d", len(w), limit)
	}
	return w
}

// interactiveOutput is where prompts go: stdout for tables, stderr otherwise
// so machine-readable output stays clean.
func interactiveOutput() io.Writer {
	if outputFormat == formatTable {
		return os.Stdout
	}
	return os.Stderr
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&defaultsPath, "defaults", "defaults.yaml", "Path to defaults YAML file")
	rootCmd.PersistentFlags().Int64Var(&timeQuantum, "quantum", sim.DefaultTimeQuantum, "Round-robin time quantum in ticks")
	rootCmd.PersistentFlags().StringVar(&algorithms, "algorithms", "all", "Comma-separated policies to compare (fcfs, sjf, rr, rr-queue, priority) or all")
	rootCmd.PersistentFlags().IntVar(&maxProcesses, "max-processes", 50, "Maximum number of processes accepted (0 = unbounded)")

	for _, c := range []*cobra.Command{runCmd, recommendCmd} {
		c.Flags().StringVarP(&workloadPath, "workload", "w", "", "Workload file (.csv or .yaml); reads from stdin when empty")
	}
	runCmd.Flags().StringVar(&outputFormat, "format", formatTable, "Output format (table, json, yaml)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(recommendCmd)
}
