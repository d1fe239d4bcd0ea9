// Package web hosts the PropertyHub front end: the marketing landing
// page, the authentication screens, and the role-gated dashboard pages.
// Every page is rendered server-side from data fetched through the API
// client, with the local snapshot cache as fallback.
package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/propertyhub-dev/propertyhub/internal/api"
	"github.com/propertyhub-dev/propertyhub/internal/cache"
	"github.com/propertyhub-dev/propertyhub/internal/config"
	"github.com/propertyhub-dev/propertyhub/internal/guard"
	"github.com/propertyhub-dev/propertyhub/internal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server represents the front-end HTTP server
type Server struct {
	router   *gin.Engine
	cfg      *config.Config
	logger   zerolog.Logger
	sessions *session.Store
	client   *api.Client
	store    *cache.Cache
	guard    *guard.Guard
}

// New creates a new front-end server instance
func New(cfg *config.Config, zlog zerolog.Logger, sessions *session.Store, client *api.Client, store *cache.Cache) *Server {
	s := &Server{
		cfg:      cfg,
		logger:   zlog,
		sessions: sessions,
		client:   client,
		store:    store,
		guard:    guard.New(sessions.Snapshot),
	}
	s.setupRouter()
	return s
}

// setupRouter configures the Gin router with routes and middleware
func (s *Server) setupRouter() {
	gin.SetMode(gin.ReleaseMode)

	s.router = gin.New()
	s.router.Use(gin.Recovery())
	s.router.Use(s.loggingMiddleware())

	if origin := s.cfg.Web.CORSOrigin; origin != "" {
		s.router.Use(cors.New(cors.Config{
			AllowOrigins:     []string{origin},
			AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	funcs := template.FuncMap{
		"subtract": func(a, b float64) float64 { return a - b },
	}
	s.router.SetHTMLTemplate(template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")))

	// Health check endpoint (always reachable)
	s.router.GET("/health", s.healthCheck)

	// Session state for page scripts
	s.router.GET("/api/session", s.getSession)

	// Public routes: only for anonymous visitors
	public := s.router.Group("/", s.guard.PublicOnly())
	{
		public.GET("/", s.landingPage)
		public.GET(guard.AuthPath, s.authPage)
	}

	// Authentication form submissions
	s.router.POST("/auth/login", s.handleLogin)
	s.router.POST("/auth/signup", s.handleSignup)
	s.router.POST("/logout", s.handleLogout)

	// Protected app routes
	app := s.router.Group("/", s.guard.Protected())
	{
		// Virtual entry point resolving to the role-appropriate dashboard
		app.GET(guard.AppPath, s.guard.RoleLanding())

		// Tenant pages
		app.GET(guard.TenantHomePath, s.tenantDashboard)
		app.GET("/properties", s.propertiesPage)
		app.GET("/maintenance", s.maintenancePage)
		app.GET("/payments", s.paymentsPage)
		app.GET("/leases", s.leasesPage)
		app.GET("/settings", s.settingsPage)

		// Landlord / admin pages
		app.GET(guard.AdminHomePath, s.adminDashboard)
		app.GET("/admin-users", s.usersPage)
		app.GET("/admin-properties", s.adminPropertiesPage)
		app.GET("/tenants", s.tenantsPage)
		app.GET("/admin-analytics", s.analyticsPage)
		app.GET("/admin-settings", s.settingsPage)
	}

	// Catch-all: back to the landing page
	s.router.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})
}

// loggingMiddleware creates a custom logging middleware using zerolog
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("HTTP request")
	}
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "online",
		"timestamp": time.Now().UTC(),
		"service":   "propertyhub-frontend",
	})
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until shutdown
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:    s.cfg.Web.ListenAddr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	s.logger.Info().Str("addr", s.cfg.Web.ListenAddr).Msg("Front end listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	s.logger.Info().Msg("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
