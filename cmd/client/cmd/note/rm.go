package note

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var RemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := timeoutCtx(cmd)
		defer cancel()

		if err := app.DeleteNote(ctx, id); err != nil {
			return err
		}

		color.Green("✓ note %d deleted", id)
		return nil
	},
}
