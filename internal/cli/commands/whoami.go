package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/propertyhub-dev/propertyhub/internal/session"
)

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the identity behind the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami()
		},
	}
}

func runWhoami() error {
	e, err := newEnv()
	if err != nil {
		return err
	}

	e.sessions.Initialize(context.Background())

	snap := e.sessions.Snapshot()
	if snap.Status != session.StatusAuthenticated || snap.User == nil {
		return fmt.Errorf("not logged in. Run 'propertyhub login' first")
	}

	fmt.Printf("%s (%s)\n", snap.User.Name, snap.User.Email)
	for _, role := range snap.User.Roles {
		fmt.Printf("  %s\n", role)
	}
	return nil
}
