// Package github resolves GitHub identities and lists the public repositories
// shown on bulletins.
package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v75/github"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
	"k8s.io/utils/ptr"
	"repobulletin.shikanime.studio/internal/bulletin"
)

// NewGitHubLimiter returns a rate limiter tuned for authenticated or unauthenticated GitHub API usage.
func NewGitHubLimiter(authenticated bool) *rate.Limiter {
	var limiter *rate.Limiter
	if authenticated {
		limiter = rate.NewLimiter(rate.Every(time.Hour/5000), 10)
		slog.Info("Created authenticated GitHub rate limiter", "rate", "5000 requests/hour", "burst", 10)
	} else {
		limiter = rate.NewLimiter(rate.Every(time.Hour/60), 1)
		slog.Info("Created unauthenticated GitHub rate limiter", "rate", "60 requests/hour", "burst", 1)
	}
	return limiter
}

// Client wraps the GitHub API client with rate limiting. It implements
// bulletin.IdentityResolver and bulletin.CatalogSource.
type Client struct {
	c *github.Client
	l *rate.Limiter
}

// ClientOptions configures the GitHub client.
type ClientOptions struct {
	token   string
	limiter *rate.Limiter
	baseURL string
}

// ClientOption applies a configuration to ClientOptions.
type ClientOption func(*ClientOptions)

// WithToken sets the personal access token for authenticated requests.
func WithToken(token string) ClientOption {
	return func(o *ClientOptions) { o.token = token }
}

// WithLimiter sets the rate limiter used for API calls.
func WithLimiter(l *rate.Limiter) ClientOption {
	return func(o *ClientOptions) { o.limiter = l }
}

// WithBaseURL points the client at another API root, such as a GitHub
// Enterprise instance.
func WithBaseURL(u string) ClientOption {
	return func(o *ClientOptions) { o.baseURL = u }
}

// NewClient constructs a GitHub Client.
func NewClient(opts ...ClientOption) (*Client, error) {
	var o ClientOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.limiter == nil {
		o.limiter = NewGitHubLimiter(o.token != "")
	}
	hc := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	if o.token != "" {
		slog.Info("Using authenticated GitHub client")
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, hc)
		hc = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: o.token}))
	} else {
		slog.Warn("Using unauthenticated GitHub client (rate limited)")
	}
	c := github.NewClient(hc)
	if o.baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(o.baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub base URL: %w", err)
		}
		c.BaseURL = u
	}
	return &Client{c: c, l: o.limiter}, nil
}

// ResolveIdentity looks up a GitHub user by login.
func (c *Client) ResolveIdentity(ctx context.Context, username string) (bulletin.Identity, error) {
	tracer := otel.Tracer("repobulletin/github")
	ctx, span := tracer.Start(ctx, "Client.ResolveIdentity")
	span.SetAttributes(attribute.String("username", username))
	defer span.End()
	if err := c.l.Wait(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return bulletin.Identity{}, fmt.Errorf("rate limiter wait failed: %w", err)
	}
	user, _, err := c.c.Users.Get(ctx, username)
	if isNotFound(err) {
		slog.InfoContext(ctx, "GitHub user not found", "username", username)
		return bulletin.Identity{}, fmt.Errorf("%w: %s", bulletin.ErrNotFound, username)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return bulletin.Identity{}, fmt.Errorf("failed to get user %s: %w", username, err)
	}
	return bulletin.Identity{
		ID:        user.GetID(),
		Login:     user.GetLogin(),
		AvatarURL: user.GetAvatarURL(),
	}, nil
}

// ListRepositories returns every public repository owned by owner.
func (c *Client) ListRepositories(ctx context.Context, owner string) ([]bulletin.Repository, error) {
	tracer := otel.Tracer("repobulletin/github")
	ctx, span := tracer.Start(ctx, "Client.ListRepositories")
	span.SetAttributes(attribute.String("owner", owner))
	defer span.End()

	opts := &github.RepositoryListByUserOptions{
		Type:        "owner",
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: 100},
	}
	var out []bulletin.Repository
	for {
		if err := c.l.Wait(ctx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("rate limiter wait failed: %w", err)
		}
		repos, resp, err := c.c.Repositories.ListByUser(ctx, owner, opts)
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", bulletin.ErrNotFound, owner)
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("failed to list repositories of %s: %w", owner, err)
		}
		for _, r := range repos {
			if r.GetPrivate() {
				continue
			}
			out = append(out, repositoryFromGitHub(r))
		}
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	slog.DebugContext(ctx, "Listed GitHub repositories", "owner", owner, "repos", len(out))
	span.SetAttributes(attribute.Int("repos", len(out)))
	return out, nil
}

func repositoryFromGitHub(r *github.Repository) bulletin.Repository {
	repo := bulletin.Repository{
		ID:        r.GetID(),
		Name:      r.GetName(),
		StarCount: ptr.Deref(r.StargazersCount, 0),
		ForkCount: ptr.Deref(r.ForksCount, 0),
		URL:       r.GetHTMLURL(),
	}
	if r.Description != nil && *r.Description != "" {
		repo.Description = ptr.To(*r.Description)
	}
	if r.Language != nil && *r.Language != "" {
		repo.PrimaryLanguage = ptr.To(*r.Language)
	}
	return repo
}

func isNotFound(err error) bool {
	var ghErr *github.ErrorResponse
	return errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
}
