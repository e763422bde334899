// Package auth holds the account commands: register, login, logout, whoami.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"taskpad/cmd/client/cmd/types"
	"taskpad/internal/app/client"
)

var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage your account",
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
