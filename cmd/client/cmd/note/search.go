package note

import (
	"strings"

	"github.com/spf13/cobra"
)

var SearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search your notes",
	Long:  `Free-text search over note titles and content, ranked by relevance.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := timeoutCtx(cmd)
		defer cancel()

		notes, err := app.SearchNotes(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}

		return printNotes(notes)
	},
}
