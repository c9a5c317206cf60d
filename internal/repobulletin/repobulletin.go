// Package repobulletin wires the bulletin core to its GitHub upstream, its
// Postgres store and the registry of open edit sessions.
package repobulletin

import (
	"context"
	"fmt"
	"time"

	"repobulletin.shikanime.studio/internal/bulletin"
	"repobulletin.shikanime.studio/internal/bulletin/github"
	"repobulletin.shikanime.studio/internal/config"
	"repobulletin.shikanime.studio/internal/database"
)

// Datastore is the bulletin store as seen by the server.
type Datastore interface {
	bulletin.Store
	Ping(ctx context.Context) error
	Close() error
}

// Upstream resolves GitHub users and lists their repositories.
type Upstream interface {
	bulletin.IdentityResolver
	bulletin.CatalogSource
}

// RepoBulletin aggregates the clients and state shared by every request.
type RepoBulletin struct {
	store    Datastore
	catalog  *bulletin.Catalog
	bridge   *bulletin.Bridge
	loader   *bulletin.Loader
	sessions *Sessions
	opts     ClientSetOptions
}

// ClientSetOptions holds configuration for initializing RepoBulletin.
type ClientSetOptions struct {
	github         []github.ClientOption
	catalogTTL     time.Duration
	sessionIdleTTL time.Duration
	jwtSecret      []byte
}

// ClientSetOption applies a configuration to ClientSetOptions.
type ClientSetOption func(*ClientSetOptions)

// WithGitHubOptions forwards GitHub client options to NewForConfig.
func WithGitHubOptions(opts ...github.ClientOption) ClientSetOption {
	return func(o *ClientSetOptions) { o.github = append(o.github, opts...) }
}

// WithCatalogTTL sets how long repository listings are cached.
func WithCatalogTTL(d time.Duration) ClientSetOption {
	return func(o *ClientSetOptions) { o.catalogTTL = d }
}

// WithSessionIdleTTL sets how long an untouched edit session is kept.
func WithSessionIdleTTL(d time.Duration) ClientSetOption {
	return func(o *ClientSetOptions) { o.sessionIdleTTL = d }
}

// WithJWTSecret sets the key verifying viewer session tokens.
func WithJWTSecret(secret []byte) ClientSetOption {
	return func(o *ClientSetOptions) { o.jwtSecret = secret }
}

// NewForConfig builds the GitHub client and the Postgres store from cfg.
func NewForConfig(cfg *config.Config, opts ...ClientSetOption) (*RepoBulletin, error) {
	ghOpts := []github.ClientOption{}
	if token := cfg.GetGitHubToken(); token != "" {
		ghOpts = append(ghOpts,
			github.WithToken(token),
			github.WithLimiter(github.NewGitHubLimiter(true)),
		)
	}
	if u := cfg.GetGitHubAPIURL(); u != "" {
		ghOpts = append(ghOpts, github.WithBaseURL(u))
	}
	opts = append([]ClientSetOption{
		WithGitHubOptions(ghOpts...),
		WithCatalogTTL(cfg.GetCatalogCacheTTL()),
		WithSessionIdleTTL(cfg.GetSessionIdleTTL()),
		WithJWTSecret(cfg.GetJWTSecret()),
	}, opts...)

	var o ClientSetOptions
	for _, opt := range opts {
		opt(&o)
	}
	gh, err := github.NewClient(o.github...)
	if err != nil {
		return nil, err
	}
	db, err := database.NewForConfig(cfg)
	if err != nil {
		return nil, err
	}
	return New(db, gh, opts...), nil
}

// New constructs a RepoBulletin over store and upstream.
func New(store Datastore, upstream Upstream, opts ...ClientSetOption) *RepoBulletin {
	var o ClientSetOptions
	for _, opt := range opts {
		opt(&o)
	}
	var catalogOpts []bulletin.CatalogOption
	if o.catalogTTL > 0 {
		catalogOpts = append(catalogOpts, bulletin.WithCatalogTTL(o.catalogTTL))
	}
	catalog := bulletin.NewCatalog(upstream, catalogOpts...)
	bridge := bulletin.NewBridge(store)
	return &RepoBulletin{
		store:    store,
		catalog:  catalog,
		bridge:   bridge,
		loader:   bulletin.NewLoader(upstream, catalog, bridge),
		sessions: NewSessions(o.sessionIdleTTL),
		opts:     o,
	}
}

func (rb *RepoBulletin) Loader() *bulletin.Loader { return rb.loader }

func (rb *RepoBulletin) Catalog() *bulletin.Catalog { return rb.catalog }

func (rb *RepoBulletin) Bridge() *bulletin.Bridge { return rb.bridge }

// Sessions returns the registry of open edit sessions.
func (rb *RepoBulletin) Sessions() *Sessions { return rb.sessions }

// JWTSecret returns the key verifying viewer session tokens. It is empty when
// unset, in which case every call is anonymous.
func (rb *RepoBulletin) JWTSecret() []byte { return rb.opts.jwtSecret }

func (rb *RepoBulletin) Close() error {
	if rb.store != nil {
		return rb.store.Close()
	}
	return nil
}

// Ping verifies that all configured clients are reachable.
func (rb *RepoBulletin) Ping(ctx context.Context) error {
	if rb.store == nil {
		return fmt.Errorf("datastore not configured")
	}
	if err := rb.store.Ping(ctx); err != nil {
		return fmt.Errorf("datastore ping failed: %w", err)
	}
	return nil
}
