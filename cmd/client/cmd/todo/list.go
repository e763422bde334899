package todo

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your todos",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := timeoutCtx(cmd)
		defer cancel()

		todos, err := app.ListTodos(ctx)
		if err != nil {
			return err
		}

		if len(todos) == 0 {
			fmt.Println("No todos yet. Add one with: taskpad todo add <text>")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tStatus\tText\tUpdated")
		for _, t := range todos {
			status := color.YellowString("open")
			if t.Completed {
				status = color.GreenString("done")
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
				t.ID, status, t.Text, t.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}
