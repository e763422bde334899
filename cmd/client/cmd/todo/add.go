package todo

import (
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var AddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a todo",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := timeoutCtx(cmd)
		defer cancel()

		created, err := app.CreateTodo(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}

		color.Green("✓ added todo %d: %s", created.ID, created.Text)
		return nil
	},
}
