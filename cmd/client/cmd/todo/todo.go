// Package todo holds the todo commands: list, add, done, rm.
package todo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"taskpad/cmd/client/cmd/types"
	"taskpad/internal/app/client"
)

var TodoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage your todos",
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("application is not initialized")
	}
	return app, nil
}

func timeoutCtx(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), 30*time.Second)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid todo id: %q", arg)
	}
	return id, nil
}
