package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/hospital-sim/hospital-sim/sim"
	"github.com/hospital-sim/hospital-sim/sim/trace"
	"github.com/hospital-sim/hospital-sim/sim/workload"
)

var (
	inputFile    string // Path to the arrival input file
	scenarioFile string // Path to a YAML scenario spec
	seed         int64  // Seed for the priority generator
	logLevel     string // Log verbosity level
	quiet        bool   // Suppress per-event trace lines (summary still prints)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "hospital-sim",
	Short: "Discrete-event simulator for emergency room patient flow",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the emergency room simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		arrivals, runSeed, err := resolveArrivals(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		fmt.Println("Simulation begins...")
		runSimulation(arrivals, runSeed, quiet, os.Stdout)
	},
}

// validateCmd checks an input file without running the simulation.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an arrival input file",
	Run: func(cmd *cobra.Command, args []string) {
		if inputFile == "" {
			logrus.Fatalf("No input file provided. Use --input.")
		}
		arrivals, err := workload.LoadArrivals(inputFile)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		fmt.Printf("OK: %d arrival(s)\n", len(arrivals))
	},
}

// resolveArrivals loads arrivals from the scenario spec or the input
// file. An explicit --seed flag overrides the spec's seed.
func resolveArrivals(cmd *cobra.Command) ([]workload.Arrival, int64, error) {
	if scenarioFile != "" {
		spec, err := workload.LoadScenarioSpec(scenarioFile)
		if err != nil {
			return nil, 0, err
		}
		arrivals, err := spec.ResolveArrivals()
		if err != nil {
			return nil, 0, err
		}
		runSeed := seed
		if !cmd.Flags().Changed("seed") && spec.Seed != 0 {
			runSeed = spec.Seed
		}
		return arrivals, runSeed, nil
	}
	if inputFile == "" {
		return nil, 0, fmt.Errorf("no input provided: use --input or --scenario")
	}
	arrivals, err := workload.LoadArrivals(inputFile)
	if err != nil {
		return nil, 0, err
	}
	return arrivals, seed, nil
}

// runSimulation preloads the arrivals, runs the event loop to quiescence,
// and renders the trace and final summary to out.
func runSimulation(arrivals []workload.Arrival, runSeed int64, quiet bool, out io.Writer) {
	s := sim.NewSimulator(runSeed)
	if !quiet {
		s.Reporter = trace.NewPrinter(out)
	}
	workload.Preload(s, arrivals)
	s.Run()
	s.Summary().Render(out)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&inputFile, "input", "", "Path to the arrival input file")
	runCmd.Flags().StringVar(&scenarioFile, "scenario", "", "Path to a YAML scenario spec")
	runCmd.Flags().Int64Var(&seed, "seed", sim.DefaultSeed, "Seed for priority assignment")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress per-event trace lines")

	validateCmd.Flags().StringVar(&inputFile, "input", "", "Path to the arrival input file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
}
