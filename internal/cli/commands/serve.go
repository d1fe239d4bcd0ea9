package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/propertyhub-dev/propertyhub/internal/cache"
	"github.com/propertyhub-dev/propertyhub/internal/refresh"
	"github.com/propertyhub-dev/propertyhub/internal/web"
)

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the local PropertyHub web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	e, err := newEnv()
	if err != nil {
		return err
	}

	store, err := cache.Open(e.cfg.Cache.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	// Hydration runs concurrently with the first requests; the route
	// guard renders the neutral loading state until it settles.
	go e.sessions.Initialize(context.Background())

	refresher := refresh.New(e.sessions, e.client, store, e.log)
	if err := refresher.Start(e.cfg.Session.RefreshSchedule); err != nil {
		return err
	}
	defer refresher.Stop()

	srv := web.New(e.cfg, e.log, e.sessions, e.client, store)
	return srv.Start()
}
