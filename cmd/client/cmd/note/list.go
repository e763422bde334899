package note

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"taskpad/internal/domain/note"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your notes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := timeoutCtx(cmd)
		defer cancel()

		notes, err := app.ListNotes(ctx)
		if err != nil {
			return err
		}

		return printNotes(notes)
	},
}

func printNotes(notes []note.Note) error {
	if len(notes) == 0 {
		fmt.Println("No notes found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTitle\tContent\tUpdated")
	for _, n := range notes {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			n.ID, truncate(n.Title, 30), truncate(n.Content, 50),
			n.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
