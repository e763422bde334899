package cmd

import (
	"context"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"taskpad/cmd/client/cmd/auth"
	"taskpad/cmd/client/cmd/note"
	"taskpad/cmd/client/cmd/todo"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the server connection",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := timeoutCtx(cmd)
		defer cancel()

		if err := app.CheckConnection(ctx); err != nil {
			color.Red("✗ server unreachable: %v", err)
			return nil
		}

		color.Green("✓ server is up at %s", cfg.ServerAddress)
		if app.IsAuthenticated() {
			color.Green("✓ logged in")
		} else {
			color.Yellow("! not logged in, run: taskpad auth login")
		}
		return nil
	},
}

func timeoutCtx(cmd *cobra.Command) (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), 30*time.Second)
}

func init() {
	rootCmd.AddCommand(statusCmd)

	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.WhoamiCmd)

	rootCmd.AddCommand(todo.TodoCmd)
	todo.TodoCmd.AddCommand(todo.ListCmd)
	todo.TodoCmd.AddCommand(todo.AddCmd)
	todo.TodoCmd.AddCommand(todo.DoneCmd)
	todo.TodoCmd.AddCommand(todo.RemoveCmd)

	rootCmd.AddCommand(note.NoteCmd)
	note.NoteCmd.AddCommand(note.ListCmd)
	note.NoteCmd.AddCommand(note.AddCmd)
	note.NoteCmd.AddCommand(note.ShowCmd)
	note.NoteCmd.AddCommand(note.SearchCmd)
	note.NoteCmd.AddCommand(note.RemoveCmd)
}
