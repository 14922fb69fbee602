package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/x88a9/edge-lab/internal/model"
)

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the API and store the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		email := cfg.Auth.Email
		if loginEmail != "" {
			email = loginEmail
		}
		if email == "" {
			return fmt.Errorf("no email configured, pass --email or set auth.email")
		}
		if cfg.Auth.Password == "" {
			return fmt.Errorf("no password configured, set auth.password via environment or secrets")
		}

		ctx, cancel := cmdContext(cmd)
		defer cancel()

		if err := client.Login(ctx, model.Credentials{Email: email, Password: cfg.Auth.Password}); err != nil {
			return err
		}

		user, err := client.Me(ctx)
		if err != nil {
			return err
		}

		log.WithField("email", user.Email).Info("Logged in")
		fmt.Printf("Logged in as %s\n", user.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		client.Logout()
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		user, err := client.Me(ctx)
		if err != nil {
			return err
		}
		return printJSON(user)
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email, overrides auth.email")
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
}
