package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session token",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext()
	if err != nil {
		return err
	}
	if err := app.Client.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}
