package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/propertyhub-dev/propertyhub/internal/guard"
	"github.com/propertyhub-dev/propertyhub/internal/session"
)

// getSession exposes the session snapshot to page scripts
func (s *Server) getSession(c *gin.Context) {
	snap := s.sessions.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"status":        snap.Status.String(),
		"authenticated": snap.Status == session.StatusAuthenticated,
		"user":          snap.User,
	})
}

// handleLogin processes the login form. Success lands on the virtual app
// entry point, which resolves to the role-appropriate dashboard; failure
// re-renders the form with the recorded message.
func (s *Server) handleLogin(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	if err := s.sessions.Login(c.Request.Context(), email, password); err != nil {
		snap := s.sessions.Snapshot()
		c.HTML(http.StatusOK, "auth.html", gin.H{
			"Mode":  "login",
			"Error": snap.Err,
			"Email": email,
		})
		return
	}

	c.Redirect(http.StatusFound, guard.AppPath)
}

// handleSignup processes the registration form. A new account is not
// authenticated automatically; the form switches to the login tab.
func (s *Server) handleSignup(c *gin.Context) {
	in := session.SignupInput{
		Name:            c.PostForm("name"),
		Email:           c.PostForm("email"),
		Password:        c.PostForm("password"),
		ConfirmPassword: c.PostForm("confirmPassword"),
		Role:            c.PostForm("role"),
		Phone:           c.PostForm("phone"),
		ProfileImage:    c.PostForm("profileImage"),
	}

	if err := s.sessions.Signup(c.Request.Context(), in); err != nil {
		snap := s.sessions.Snapshot()
		c.HTML(http.StatusOK, "auth.html", gin.H{
			"Mode":  "signup",
			"Error": snap.Err,
			"Email": in.Email,
			"Name":  in.Name,
		})
		return
	}

	c.HTML(http.StatusOK, "auth.html", gin.H{
		"Mode":   "login",
		"Notice": "Account created. Please sign in.",
		"Email":  in.Email,
	})
}

// handleLogout closes the session and drops the cached snapshots so a
// later operator never sees this account's data
func (s *Server) handleLogout(c *gin.Context) {
	s.sessions.Logout()
	if err := s.store.Clear(); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to clear snapshot cache")
	}
	c.Redirect(http.StatusFound, "/")
}
