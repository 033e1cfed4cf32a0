package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/qruise/pasquans-go/pasquans"
)

var jobPath string

// simulateCmd loads a job spec and dispatches it to the built-in mock provider.
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a simulation job against a named backend",
	Long:  "Load a YAML job spec, resolve its backend through the mock provider, run the simulation, and write the result to stdout. A failed simulation prints its error-keyed result and exits nonzero.",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := pasquans.LoadJobSpec(jobPath)
		if err != nil {
			logrus.Fatalf("Failed to load job spec %s: %v", jobPath, err)
		}
		req, err := spec.Request()
		if err != nil {
			logrus.Fatalf("Invalid job spec %s: %v", jobPath, err)
		}

		logrus.Infof("Dispatching job to backend %q (%d sites, %d time points)",
			req.Backend, req.LatticeSites.Len(), len(req.Timegrid.Values))

		result := pasquans.Simulate(req, pasquans.MockProvider{})
		writeResultToStdout(result)
		if result.Failed() {
			os.Exit(1)
		}
	},
}

func writeResultToStdout(result pasquans.Result) {
	data, err := yaml.Marshal(result)
	if err != nil {
		logrus.Fatalf("YAML marshal failed: %v", err)
	}
	fmt.Print(string(data))
}

func init() {
	simulateCmd.Flags().StringVar(&jobPath, "job", "", "Path to a YAML job spec")
	_ = simulateCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(simulateCmd)
}
