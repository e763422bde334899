package note

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var ShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a note",
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

		n, err := app.GetNote(ctx, id)
		if err != nil {
			return err
		}

		color.New(color.Bold).Println(n.Title)
		fmt.Printf("Updated: %s\n\n", n.UpdatedAt.Format("2006-01-02 15:04"))
		fmt.Println(n.Content)
		return nil
	},
}
