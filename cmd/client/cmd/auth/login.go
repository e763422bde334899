package auth

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and save the bearer token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		fmt.Print("Email: ")
		var email string
		_, _ = fmt.Scanln(&email)

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		ctx, cancel := timeoutCtx(cmd)
		defer cancel()

		if err := app.Login(ctx, email, string(password)); err != nil {
			return err
		}

		color.Green("✓ logged in as %s", email)
		return nil
	},
}
