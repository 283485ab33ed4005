package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	signupName  string
	signupEmail string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and log in",
	RunE:  runSignup,
}

func init() {
	rootCmd.AddCommand(signupCmd)
	signupCmd.Flags().StringVarP(&signupName, "name", "n", "", "Display name (prompted when omitted)")
	signupCmd.Flags().StringVarP(&signupEmail, "email", "e", "", "Account email (prompted when omitted)")
}

func runSignup(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext()
	if err != nil {
		return err
	}

	name := signupName
	if name == "" {
		name, err = app.Prompt.Line("Name")
		if err != nil {
			return err
		}
	}
	email := signupEmail
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

	session, err := app.Client.Signup(cmd.Context(), name, email, password)
	if err != nil {
		return err
	}

	fmt.Printf("Account created. Logged in as %s <%s>\n", session.User.Name, session.User.Email)
	return nil
}
