package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fairctl",
	Short: "Client for the FairAI fairness-evaluation backend",
	Long: `fairctl uploads trained models to the FairAI backend, runs fairness
evaluations, and renders the returned metrics.

Authenticate once with 'fairctl login', then submit loan-approval or
facial-recognition evaluations. Every run is kept in a local history that
'fairctl serve' exposes in the browser.`,
}

// verbose enables debug logging and server tracebacks in error panels.
var verbose bool

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs and server tracebacks")
}
