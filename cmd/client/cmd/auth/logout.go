package auth

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the saved bearer token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		if err := app.Logout(); err != nil {
			return err
		}

		color.Green("✓ logged out")
		return nil
	},
}
