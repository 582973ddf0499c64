package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/quantum-sim/quantum-sim/sim"
	"github.com/quantum-sim/quantum-sim/sim/trace"
	"github.com/quantum-sim/quantum-sim/sim/viz"
)

var (
	// CLI flags for the simulation run
	seed          int64  // Seed deriving measurement randomness
	logLevel      string // Log verbosity level
	backend       string // Amplitude storage backend (dense, sparse, auto)
	circuitFile   string // YAML circuit spec path
	example       string // Built-in example circuit name
	shots         int    // Number of measurement shots
	measureQubits []int  // Qubits to measure after the run
	traceLevel    string // Replay trace level (none, gates)
	showDiagram   bool   // Print the text circuit diagram
	showHistogram bool   // Print the terminal probability histogram
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "qsim",
	Short: "Statevector simulator for small quantum circuits",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a circuit simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !trace.IsValidLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}

		// Build the circuit from a spec file or a built-in example
		var circuit *sim.Circuit
		switch {
		case circuitFile != "":
			spec, err := LoadCircuitSpec(circuitFile)
			if err != nil {
				logrus.Fatalf("Unable to read circuit spec: %v", err)
			}
			circuit, err = BuildCircuit(spec)
			if err != nil {
				logrus.Fatalf("Invalid circuit spec: %v", err)
			}
		default:
			circuit, err = BuildExample(example)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
		}

		logrus.Infof("Starting simulation with %d qubit(s), %d operation(s), backend=%s, seed=%d",
			circuit.NumQubits, len(circuit.Operations), backend, seed)

		simulator := sim.NewSimulator(circuit, seed, backend)
		if trace.Level(traceLevel) == trace.LevelGates {
			simulator.Trace = trace.NewSimulationTrace(trace.Config{Level: trace.LevelGates})
		}

		final, err := simulator.Run()
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		if showDiagram {
			fmt.Print(viz.Diagram(circuit))
		}

		fmt.Println("Final statevector:")
		for _, e := range final.NonZeroAmplitudes() {
			fmt.Printf("  |%0*b⟩ amplitude=%v\n", circuit.NumQubits, e.Index, e.Amplitude)
		}

		if showHistogram {
			fmt.Print(viz.Histogram(final))
		}

		if len(measureQubits) > 0 {
			counts, err := simulator.Sample(measureQubits, shots)
			if err != nil {
				logrus.Fatalf("Sampling failed: %v", err)
			}
			counts.Print()
		}

		if simulator.Trace.Enabled() {
			fmt.Println("=== Replay Trace ===")
			for _, r := range simulator.Trace.Gates {
				fmt.Printf("  step %03d: %-4s targets=%v norm=%.9f nonzero=%d\n",
					r.Step, r.Gate, r.Targets, r.Norm, r.NonZero)
			}
			for _, r := range simulator.Trace.Measurements {
				fmt.Printf("  measure q%d: outcome=%d prob0=%.6f\n", r.Qubit, r.Outcome, r.ProbZero)
			}
		}

		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for measurement randomness")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&backend, "backend", sim.BackendAuto, "Amplitude storage backend (dense, sparse, auto)")
	runCmd.Flags().StringVar(&circuitFile, "circuit", "", "Path to a YAML circuit spec")
	runCmd.Flags().StringVar(&example, "example", "bell", "Built-in example circuit (bell, medium, ghz)")
	runCmd.Flags().IntVar(&shots, "shots", 1024, "Number of measurement shots")
	runCmd.Flags().IntSliceVar(&measureQubits, "measure", nil, "Comma-separated qubit indices to measure")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Replay trace level (none, gates)")
	runCmd.Flags().BoolVar(&showDiagram, "diagram", false, "Print the circuit diagram")
	runCmd.Flags().BoolVar(&showHistogram, "histogram", false, "Print the probability histogram")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
