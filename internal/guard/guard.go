// Package guard decides, per navigation, whether to render protected
// content, redirect to the authentication screen, or redirect to the
// role-appropriate landing view. It only ever looks at session snapshots;
// handlers behind it never inspect session internals.
package guard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/propertyhub-dev/propertyhub/internal/session"
)

// Well-known navigation targets
const (
	AuthPath       = "/auth"
	AppPath        = "/app"
	TenantHomePath = "/dashboard"
	AdminHomePath  = "/admin-dashboard"
)

// loadingPage is the neutral indicator shown while the persisted token is
// still being validated. It carries no content and re-requests the page
// once the session has settled, so an in-flight rehydration never causes a
// flash-redirect to the auth screen.
const loadingPage = `<!DOCTYPE html>
<html><head><meta http-equiv="refresh" content="1"><title>PropertyHub</title></head>
<body><div class="loading" aria-busy="true"></div></body></html>`

// SnapshotFunc provides the current session snapshot
type SnapshotFunc func() session.Snapshot

// Guard gates routes on session state
type Guard struct {
	snapshot SnapshotFunc
}

// New creates a guard over the given snapshot provider
func New(snapshot SnapshotFunc) *Guard {
	return &Guard{snapshot: snapshot}
}

// Protected gates routes that require an authenticated session.
// Initializing renders the neutral loading page, Anonymous redirects to
// the auth entry point, Authenticated falls through to the handler. The
// decision is re-evaluated on every request.
func (g *Guard) Protected() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch g.snapshot().Status {
		case session.StatusInitializing:
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(loadingPage))
			c.Abort()
		case session.StatusAnonymous:
			c.Redirect(http.StatusFound, AuthPath)
			c.Abort()
		default:
			c.Next()
		}
	}
}

// PublicOnly gates routes meant for anonymous visitors (landing, auth
// forms). Initializing renders nothing to suppress a flash of public
// content, Authenticated redirects into the app, Anonymous falls through.
func (g *Guard) PublicOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch g.snapshot().Status {
		case session.StatusInitializing:
			c.Status(http.StatusNoContent)
			c.Abort()
		case session.StatusAuthenticated:
			c.Redirect(http.StatusFound, AppPath)
			c.Abort()
		default:
			c.Next()
		}
	}
}

// RoleLanding resolves the virtual app entry point to the dashboard
// matching the user's role tier. Either elevated role wins over the
// tenant default; a user with no roles lands on the tenant dashboard.
// Only reachable through Protected, so the snapshot is Authenticated.
func (g *Guard) RoleLanding() gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := g.snapshot()
		if snap.User != nil && snap.User.Roles.Elevated() {
			c.Redirect(http.StatusFound, AdminHomePath)
			return
		}
		c.Redirect(http.StatusFound, TenantHomePath)
	}
}
