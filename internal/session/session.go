// Package session owns the client-side authentication state: who is
// logged in, the persisted bearer token, and the transitions between
// anonymous and authenticated. It is the single source of truth the route
// guard and the CLI commands observe.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/propertyhub-dev/propertyhub/internal/api"
	"github.com/propertyhub-dev/propertyhub/internal/tokenstore"
)

// Status is the authentication state of the process-wide session
type Status int

const (
	// StatusInitializing means the persisted token (if any) is still
	// being validated; no render/redirect decision can be made yet
	StatusInitializing Status = iota
	// StatusAnonymous means no valid session exists
	StatusAnonymous
	// StatusAuthenticated means a token is attached and the identity
	// behind it has been confirmed by the backend
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusAnonymous:
		return "anonymous"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent view of the session state
type Snapshot struct {
	Status Status
	User   *api.User
	// Err is the displayable message from the last failed login/signup,
	// empty after logout and successful operations
	Err string
}

// AuthAPI is the slice of the API client the store drives. The store is
// the only component allowed to mutate the default bearer credential.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
	Signup(ctx context.Context, req api.SignupRequest) (*api.User, error)
	CurrentUser(ctx context.Context) (*api.User, error)
	SetToken(token string)
	ClearToken()
}

// Subscriber is notified synchronously after every committed transition
type Subscriber func(Snapshot)

// Store holds the session state and serializes its transitions
type Store struct {
	apiClient AuthAPI
	tokens    tokenstore.Store
	validate  *validator.Validate
	log       zerolog.Logger

	mu     sync.Mutex
	status Status
	user   *api.User
	errMsg string
	// epoch increments with every mutating operation; a network response
	// is applied only if the epoch is unchanged, so a login resolving
	// after a logout cannot resurrect the stale session
	epoch uint64
	subs  []Subscriber
}

// New creates a session store. Initialize must be called once before the
// status is meaningful; until then it reports StatusInitializing.
func New(apiClient AuthAPI, tokens tokenstore.Store, log zerolog.Logger) *Store {
	return &Store{
		apiClient: apiClient,
		tokens:    tokens,
		validate:  validator.New(),
		log:       log,
		status:    StatusInitializing,
	}
}

// Subscribe registers a callback invoked synchronously after every
// committed state transition
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Snapshot returns a consistent view of the current session state
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Status: s.status, User: s.user, Err: s.errMsg}
}

// IsAuthenticated reports whether a confirmed session exists
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status == StatusAuthenticated
}

// Initialize hydrates the session from the persisted token. It runs once
// at process start and never returns an error: any failure (no token,
// expired token, rejected token, transport error) simply ends in
// StatusAnonymous with the persisted state cleared.
func (s *Store) Initialize(ctx context.Context) {
	epoch := s.begin()

	token, err := s.tokens.Load()
	if err != nil {
		if !errors.Is(err, tokenstore.ErrNotFound) {
			s.log.Warn().Err(err).Msg("Failed to read persisted token")
		}
		s.commitAnonymous(epoch)
		return
	}

	if api.TokenExpired(token) {
		s.log.Info().Msg("Persisted token has expired, discarding")
		s.clearPersisted()
		s.commitAnonymous(epoch)
		return
	}

	// The credential must be attached before the identity fetch; it stays
	// attached only if the fetch confirms it.
	s.apiClient.SetToken(token)

	user, err := s.apiClient.CurrentUser(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("Persisted token rejected, clearing session")
		s.clearPersisted()
		s.commitAnonymous(epoch)
		return
	}

	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		return
	}
	s.status = StatusAuthenticated
	s.user = user
	s.errMsg = ""
	s.mu.Unlock()

	s.log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("Session restored")
	s.notify()
}

// Login authenticates with the given credentials. On success the token is
// persisted, attached as the default credential, and the status becomes
// Authenticated in a single transition. On failure the status is left
// unchanged, a displayable message is recorded, and the error is returned
// to the caller.
func (s *Store) Login(ctx context.Context, email, password string) error {
	epoch := s.begin()

	resp, err := s.apiClient.Login(ctx, email, password)
	if err != nil {
		s.recordError(epoch, messageFrom(err, "Login failed. Check credentials."))
		return mapAuthError(err)
	}

	if resp.Token == "" || resp.User == nil {
		s.recordError(epoch, "Login failed. Check credentials.")
		return ErrInvalidResponse
	}

	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		return ErrSuperseded
	}
	if err := s.tokens.Save(resp.Token); err != nil {
		s.mu.Unlock()
		s.log.Error().Err(err).Msg("Failed to persist token")
		s.recordError(epoch, "Login failed. Could not store the session token.")
		return err
	}
	s.apiClient.SetToken(resp.Token)
	s.status = StatusAuthenticated
	s.user = resp.User
	s.errMsg = ""
	s.mu.Unlock()

	s.log.Info().Str("user_id", resp.User.ID).Str("email", resp.User.Email).Msg("User logged in")
	s.notify()
	return nil
}

// Signup registers a new account. Client-side validation runs before any
// network call; the new account is not authenticated automatically.
func (s *Store) Signup(ctx context.Context, in SignupInput) error {
	if err := in.validate(s.validate); err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			s.setError(vErr.Message)
		}
		return err
	}

	epoch := s.begin()

	user, err := s.apiClient.Signup(ctx, in.payload())
	if err != nil {
		s.recordError(epoch, messageFrom(err, "Signup failed. Please try again."))
		return mapAuthError(err)
	}

	s.log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("Account created")
	return nil
}

// Logout clears the persisted token, removes the default credential, and
// resets the session to Anonymous. It is synchronous, idempotent, and
// cannot fail.
func (s *Store) Logout() {
	s.logout("user logout")
}

// ForceLogout is the 401-feedback path: a resource request was rejected
// after the session was established, so the session is closed without
// retry.
func (s *Store) ForceLogout(reason string) {
	s.logout(reason)
}

func (s *Store) logout(reason string) {
	s.mu.Lock()
	s.epoch++
	if err := s.tokens.Delete(); err != nil {
		// logout must still succeed; the in-memory session is gone either way
		s.log.Warn().Err(err).Msg("Failed to delete persisted token")
	}
	s.apiClient.ClearToken()
	s.status = StatusAnonymous
	s.user = nil
	s.errMsg = ""
	s.mu.Unlock()

	s.log.Info().Str("reason", reason).Msg("Session cleared")
	s.notify()
}

// begin starts a mutating operation and returns its epoch
func (s *Store) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	return s.epoch
}

// commitAnonymous applies the Anonymous outcome of an operation if no
// newer operation has started since
func (s *Store) commitAnonymous(epoch uint64) {
	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		return
	}
	s.status = StatusAnonymous
	s.user = nil
	s.mu.Unlock()
	s.notify()
}

// recordError stores a displayable message for the operation's failure,
// unless a newer operation has started since
func (s *Store) recordError(epoch uint64, msg string) {
	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		return
	}
	s.errMsg = msg
	s.mu.Unlock()
	s.notify()
}

// setError stores a displayable message outside of any epoch (client-side
// validation failures never issue a network call)
func (s *Store) setError(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
	s.notify()
}

// clearPersisted removes the token from storage and from the API client
func (s *Store) clearPersisted() {
	if err := s.tokens.Delete(); err != nil {
		s.log.Warn().Err(err).Msg("Failed to delete persisted token")
	}
	s.apiClient.ClearToken()
}

// notify calls every subscriber with a fresh snapshot. Called without the
// lock held so subscribers may read the store freely.
func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]Subscriber, len(s.subs))
	copy(subs, s.subs)
	snap := Snapshot{Status: s.status, User: s.user, Err: s.errMsg}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}
