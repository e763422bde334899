package note

import (
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var addContent string

var AddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a note",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := timeoutCtx(cmd)
		defer cancel()

		created, err := app.CreateNote(ctx, strings.Join(args, " "), addContent)
		if err != nil {
			return err
		}

		color.Green("✓ added note %d: %s", created.ID, created.Title)
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVarP(&addContent, "content", "c", "", "note content")
}
