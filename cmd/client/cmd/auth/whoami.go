package auth

import (
	"fmt"

	"github.com/spf13/cobra"
)

var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := timeoutCtx(cmd)
		defer cancel()

		profile, err := app.Me(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("ID:    %d\n", profile.ID)
		fmt.Printf("Email: %s\n", profile.Email)
		return nil
	},
}
