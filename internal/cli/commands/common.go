package commands

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/propertyhub-dev/propertyhub/internal/api"
	"github.com/propertyhub-dev/propertyhub/internal/config"
	"github.com/propertyhub-dev/propertyhub/internal/logger"
	"github.com/propertyhub-dev/propertyhub/internal/session"
	"github.com/propertyhub-dev/propertyhub/internal/tokenstore"
)

// env bundles the collaborators every command needs: configuration, the
// API client carrying the bearer credential, and the session store
type env struct {
	cfg      *config.Config
	log      zerolog.Logger
	tokens   tokenstore.Store
	client   *api.Client
	sessions *session.Store
}

func newEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.GetLogger()

	tokens, err := newTokenStore(cfg)
	if err != nil {
		return nil, err
	}

	client := api.New(cfg.API.BaseURL)
	sessions := session.New(client, tokens, log)

	// Any 401 on an authenticated request closes the session
	client.OnUnauthorized(func() {
		sessions.ForceLogout("request rejected as unauthorized")
	})

	return &env{
		cfg:      cfg,
		log:      log,
		tokens:   tokens,
		client:   client,
		sessions: sessions,
	}, nil
}

func newTokenStore(cfg *config.Config) (tokenstore.Store, error) {
	if cfg.Session.TokenStore == "file" {
		dir, err := config.ConfigDir()
		if err != nil {
			return nil, err
		}
		return tokenstore.NewFile(filepath.Join(dir, "token")), nil
	}
	return tokenstore.NewKeyring(), nil
}
