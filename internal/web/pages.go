package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/propertyhub-dev/propertyhub/internal/api"
	"github.com/propertyhub-dev/propertyhub/internal/cache"
	"github.com/propertyhub-dev/propertyhub/internal/guard"
	"github.com/propertyhub-dev/propertyhub/internal/mockdata"
	"github.com/propertyhub-dev/propertyhub/internal/refresh"
	"github.com/propertyhub-dev/propertyhub/internal/roles"
)

func (s *Server) landingPage(c *gin.Context) {
	c.HTML(http.StatusOK, "landing.html", gin.H{})
}

func (s *Server) authPage(c *gin.Context) {
	mode := c.Query("mode")
	if mode != "signup" {
		mode = "login"
	}
	c.HTML(http.StatusOK, "auth.html", gin.H{"Mode": mode})
}

func (s *Server) tenantDashboard(c *gin.Context) {
	user := s.sessions.Snapshot().User
	payments, staleP := s.fetchPayments(c)
	if c.IsAborted() {
		return
	}
	leases, staleL := s.fetchLeases(c)
	if c.IsAborted() {
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":        user,
		"Payments":    payments,
		"Leases":      leases,
		"Maintenance": mockdata.MaintenanceQueue(),
		"Stale":       staleP || staleL,
	})
}

func (s *Server) adminDashboard(c *gin.Context) {
	user := s.sessions.Snapshot().User
	properties, staleProps := s.fetchProperties(c, user)
	if c.IsAborted() {
		return
	}
	payments, stalePay := s.fetchPayments(c)
	if c.IsAborted() {
		return
	}
	tenants, staleTen := s.fetchTenants(c)
	if c.IsAborted() {
		return
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"User":       user,
		"Properties": properties,
		"Payments":   payments,
		"Tenants":    tenants,
		"Revenue":    mockdata.MonthlyRevenue(),
		"Occupancy":  mockdata.Occupancy(),
		"Stale":      staleProps || stalePay || staleTen,
	})
}

func (s *Server) propertiesPage(c *gin.Context) {
	user := s.sessions.Snapshot().User
	properties, stale := s.fetchProperties(c, user)
	if c.IsAborted() {
		return
	}
	c.HTML(http.StatusOK, "properties.html", gin.H{
		"User":       user,
		"Title":      "Properties",
		"Properties": properties,
		"Stale":      stale,
	})
}

func (s *Server) adminPropertiesPage(c *gin.Context) {
	user := s.sessions.Snapshot().User
	properties, stale := s.fetchProperties(c, user)
	if c.IsAborted() {
		return
	}
	c.HTML(http.StatusOK, "properties.html", gin.H{
		"User":       user,
		"Title":      "Manage Properties",
		"Properties": properties,
		"Stale":      stale,
	})
}

func (s *Server) paymentsPage(c *gin.Context) {
	user := s.sessions.Snapshot().User
	payments, stale := s.fetchPayments(c)
	if c.IsAborted() {
		return
	}
	c.HTML(http.StatusOK, "payments.html", gin.H{
		"User":     user,
		"Payments": payments,
		"Stale":    stale,
	})
}

func (s *Server) leasesPage(c *gin.Context) {
	user := s.sessions.Snapshot().User
	leases, stale := s.fetchLeases(c)
	if c.IsAborted() {
		return
	}
	c.HTML(http.StatusOK, "leases.html", gin.H{
		"User":   user,
		"Leases": leases,
		"Stale":  stale,
	})
}

func (s *Server) maintenancePage(c *gin.Context) {
	c.HTML(http.StatusOK, "maintenance.html", gin.H{
		"User":     s.sessions.Snapshot().User,
		"Requests": mockdata.MaintenanceQueue(),
	})
}

func (s *Server) usersPage(c *gin.Context) {
	user := s.sessions.Snapshot().User
	tenants, stale := s.fetchTenants(c)
	if c.IsAborted() {
		return
	}
	c.HTML(http.StatusOK, "users.html", gin.H{
		"User":    user,
		"Title":   "User Management",
		"Tenants": tenants,
		"Stale":   stale,
	})
}

func (s *Server) tenantsPage(c *gin.Context) {
	user := s.sessions.Snapshot().User
	tenants, stale := s.fetchTenants(c)
	if c.IsAborted() {
		return
	}
	c.HTML(http.StatusOK, "users.html", gin.H{
		"User":    user,
		"Title":   "Tenants",
		"Tenants": tenants,
		"Stale":   stale,
	})
}

func (s *Server) analyticsPage(c *gin.Context) {
	c.HTML(http.StatusOK, "analytics.html", gin.H{
		"User":      s.sessions.Snapshot().User,
		"Revenue":   mockdata.MonthlyRevenue(),
		"Occupancy": mockdata.Occupancy(),
	})
}

func (s *Server) settingsPage(c *gin.Context) {
	c.HTML(http.StatusOK, "settings.html", gin.H{
		"User": s.sessions.Snapshot().User,
	})
}

// redirectUnauthorized handles the forced-logout feedback path: if a
// resource fetch was rejected for authorization, the session is already
// closed (via the client hook) and the navigation is sent to the auth
// entry point.
func (s *Server) redirectUnauthorized(c *gin.Context, err error) bool {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Unauthorized() {
		c.Redirect(http.StatusFound, guard.AuthPath)
		c.Abort()
		return true
	}
	return false
}

// fetchProperties loads property listings live, falling back to the
// cached snapshot. Landlords without the admin role see only their own
// portfolio.
func (s *Server) fetchProperties(c *gin.Context, user *api.User) ([]api.Property, bool) {
	ctx := c.Request.Context()

	var properties []api.Property
	var err error
	if user != nil && user.Roles.Has(roles.Landlord) && !user.Roles.Has(roles.Admin) {
		properties, err = s.client.PropertiesByLandlord(ctx, user.ID)
	} else {
		properties, err = s.client.ListProperties(ctx)
	}
	if err == nil {
		s.storeSnapshot(refresh.ResourceProperties, properties)
		return properties, false
	}
	if s.redirectUnauthorized(c, err) {
		return nil, false
	}

	var cached []api.Property
	if _, cerr := s.store.Get(refresh.ResourceProperties, &cached); cerr == nil {
		return cached, true
	} else if !errors.Is(cerr, cache.ErrMiss) {
		s.logger.Warn().Err(cerr).Msg("Failed to read cached properties")
	}
	s.logger.Warn().Err(err).Msg("Failed to fetch properties")
	return nil, true
}

func (s *Server) fetchPayments(c *gin.Context) ([]api.Payment, bool) {
	payments, err := s.client.ListPayments(c.Request.Context())
	if err == nil {
		s.storeSnapshot(refresh.ResourcePayments, payments)
		return payments, false
	}
	if s.redirectUnauthorized(c, err) {
		return nil, false
	}

	var cached []api.Payment
	if _, cerr := s.store.Get(refresh.ResourcePayments, &cached); cerr == nil {
		return cached, true
	}
	s.logger.Warn().Err(err).Msg("Failed to fetch payments")
	return nil, true
}

func (s *Server) fetchLeases(c *gin.Context) ([]api.Lease, bool) {
	leases, err := s.client.ListLeases(c.Request.Context())
	if err == nil {
		s.storeSnapshot(refresh.ResourceLeases, leases)
		return leases, false
	}
	if s.redirectUnauthorized(c, err) {
		return nil, false
	}

	var cached []api.Lease
	if _, cerr := s.store.Get(refresh.ResourceLeases, &cached); cerr == nil {
		return cached, true
	}
	s.logger.Warn().Err(err).Msg("Failed to fetch leases")
	return nil, true
}

func (s *Server) fetchTenants(c *gin.Context) ([]api.User, bool) {
	tenants, err := s.client.ListTenants(c.Request.Context())
	if err == nil {
		s.storeSnapshot(refresh.ResourceTenants, tenants)
		return tenants, false
	}
	if s.redirectUnauthorized(c, err) {
		return nil, false
	}

	var cached []api.User
	if _, cerr := s.store.Get(refresh.ResourceTenants, &cached); cerr == nil {
		return cached, true
	}
	s.logger.Warn().Err(err).Msg("Failed to fetch tenants")
	return nil, true
}

func (s *Server) storeSnapshot(resource string, v any) {
	if err := s.store.Put(resource, v); err != nil {
		s.logger.Warn().Err(err).Str("resource", resource).Msg("Failed to store snapshot")
	}
}
