package todo

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"taskpad/internal/domain/todo"
)

var reopen bool

var DoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a todo as completed",
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

		completed := !reopen
		updated, err := app.UpdateTodo(ctx, id, todo.Update{Completed: &completed})
		if err != nil {
			return err
		}

		if updated.Completed {
			color.Green("✓ todo %d completed", updated.ID)
		} else {
			color.Yellow("todo %d reopened", updated.ID)
		}
		return nil
	},
}

func init() {
	DoneCmd.Flags().BoolVar(&reopen, "undo", false, "reopen the todo instead")
}
