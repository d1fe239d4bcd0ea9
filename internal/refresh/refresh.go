// Package refresh runs the background revalidation job: while a session
// is authenticated it periodically re-confirms the identity behind the
// token and warms the local resource cache. A 401 during revalidation
// flows through the API client's unauthorized hook and closes the
// session; there is no retry and no token extension.
package refresh

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/propertyhub-dev/propertyhub/internal/api"
	"github.com/propertyhub-dev/propertyhub/internal/cache"
	"github.com/propertyhub-dev/propertyhub/internal/session"
)

const runTimeout = 30 * time.Second

// Cache resource keys shared with the web handlers
const (
	ResourceProperties = "properties"
	ResourceLeases     = "leases"
	ResourcePayments   = "payments"
	ResourceTenants    = "tenants"
)

// Refresher schedules periodic session revalidation and cache warming
type Refresher struct {
	cron     *cron.Cron
	sessions *session.Store
	client   *api.Client
	store    *cache.Cache
	log      zerolog.Logger
}

// New creates a refresher over the given collaborators
func New(sessions *session.Store, client *api.Client, store *cache.Cache, log zerolog.Logger) *Refresher {
	return &Refresher{
		cron:     cron.New(),
		sessions: sessions,
		client:   client,
		store:    store,
		log:      log,
	}
}

// Start begins running the job on the given cron schedule. An empty
// schedule disables the job.
func (r *Refresher) Start(schedule string) error {
	if schedule == "" {
		r.log.Info().Msg("Background revalidation disabled")
		return nil
	}
	if _, err := r.cron.AddFunc(schedule, r.run); err != nil {
		return err
	}
	r.cron.Start()
	r.log.Info().Str("schedule", schedule).Msg("Background revalidation scheduled")
	return nil
}

// Stop halts the schedule and waits for a running job to finish
func (r *Refresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

func (r *Refresher) run() {
	if !r.sessions.IsAuthenticated() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	// Re-confirm the identity. A 401 here fires the unauthorized hook,
	// which force-closes the session; any other failure is transient and
	// surfaced only in the log.
	if _, err := r.client.CurrentUser(ctx); err != nil {
		r.log.Warn().Err(err).Msg("Identity revalidation failed")
		return
	}

	r.warm(ctx, ResourceProperties, func() (any, error) { return r.client.ListProperties(ctx) })
	r.warm(ctx, ResourceLeases, func() (any, error) { return r.client.ListLeases(ctx) })
	r.warm(ctx, ResourcePayments, func() (any, error) { return r.client.ListPayments(ctx) })

	// Tenant listings are admin-scoped; skip them for tenant sessions
	if snap := r.sessions.Snapshot(); snap.User != nil && snap.User.Roles.Elevated() {
		r.warm(ctx, ResourceTenants, func() (any, error) { return r.client.ListTenants(ctx) })
	}
}

func (r *Refresher) warm(ctx context.Context, resource string, fetch func() (any, error)) {
	if ctx.Err() != nil {
		return
	}
	data, err := fetch()
	if err != nil {
		r.log.Debug().Err(err).Str("resource", resource).Msg("Cache warm fetch failed")
		return
	}
	if err := r.store.Put(resource, data); err != nil {
		r.log.Warn().Err(err).Str("resource", resource).Msg("Failed to store snapshot")
	}
}
