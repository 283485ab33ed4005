package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the backend is reachable",
	RunE:  runPing,
}

func init() {
	rootCmd.AddCommand(pingCmd)
}

func runPing(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext()
	if err != nil {
		return err
	}

	health, err := app.Client.Health(cmd.Context())
	if err != nil {
		return fmt.Errorf("backend at %s is unreachable: %w", app.Config.APIBaseURL, err)
	}

	fmt.Printf("%s is %s\n", app.Config.APIBaseURL, health.Status)
	return nil
}
