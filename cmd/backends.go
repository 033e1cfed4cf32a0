package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/qruise/pasquans-go/pasquans"
)

// backendsCmd lists the mock provider's backends and their metadata.
var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List available backends and their metadata",
	Run: func(cmd *cobra.Command, args []string) {
		registry, err := pasquans.NewRegistry(pasquans.MockProvider{})
		if err != nil {
			logrus.Fatalf("Failed to build backend registry: %v", err)
		}
		listing := pasquans.Result{}
		for _, name := range registry.Names() {
			backend, err := registry.Backend(name, nil)
			if err != nil {
				logrus.Fatalf("Failed to instantiate backend %q: %v", name, err)
			}
			listing[name] = backend.Information()
		}
		writeResultToStdout(listing)
	},
}

func init() {
	rootCmd.AddCommand(backendsCmd)
}
