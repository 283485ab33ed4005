package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the account behind the stored session",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext()
	if err != nil {
		return err
	}

	user, err := app.Client.Me(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("%-12s %s\n", "Name:", user.Name)
	fmt.Printf("%-12s %s\n", "Email:", user.Email)
	fmt.Printf("%-12s %s\n", "ID:", user.ID)
	if user.CreatedAt != "" {
		fmt.Printf("%-12s %s\n", "Created:", user.CreatedAt)
	}
	return nil
}
