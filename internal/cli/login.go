package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session token",
	Long: `Authenticates against the FairAI backend and stores the bearer token
locally. All later commands reuse it until logout or expiry.`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email (prompted when omitted)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext()
	if err != nil {
		return err
	}

	email := loginEmail
	if email == "" {
		email, err = app.Prompt.Line("Email")
		if err != nil {
			return err
		}
	}
	password, err := app.Prompt.Password("Password")
	if err != nil {
		return err
	}

	session, err := app.Client.Login(cmd.Context(), email, password)
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s <%s>\n", session.User.Name, session.User.Email)
	return nil
}
