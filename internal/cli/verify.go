package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check whether the stored session token is still accepted",
	RunE:  runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext()
	if err != nil {
		return err
	}

	resp, err := app.Client.Verify(cmd.Context())
	if err != nil {
		return err
	}
	if !resp.IsValid {
		return fmt.Errorf("session is no longer valid; run 'fairctl login'")
	}

	fmt.Println("Session is valid.")
	return nil
}
