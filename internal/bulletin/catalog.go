package bulletin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/singleflight"
)

// CatalogSource lists the public repositories owned by a GitHub user.
type CatalogSource interface {
	ListRepositories(ctx context.Context, owner string) ([]Repository, error)
}

// RepoLookup resolves repository ids for rendering and validation.
type RepoLookup interface {
	Lookup(id int64) (Repository, bool)
}

// Listing is an immutable snapshot of one owner's repositories.
type Listing struct {
	Owner        string
	Repositories []Repository
	FetchedAt    time.Time
	index        map[int64]int
}

// NewListing indexes repos by id. Later duplicates of an id are ignored.
func NewListing(owner string, repos []Repository, fetchedAt time.Time) *Listing {
	l := &Listing{
		Owner:        owner,
		Repositories: make([]Repository, 0, len(repos)),
		FetchedAt:    fetchedAt,
		index:        make(map[int64]int, len(repos)),
	}
	for _, r := range repos {
		if _, ok := l.index[r.ID]; ok {
			continue
		}
		l.index[r.ID] = len(l.Repositories)
		l.Repositories = append(l.Repositories, r)
	}
	return l
}

func (l *Listing) Lookup(id int64) (Repository, bool) {
	if l == nil {
		return Repository{}, false
	}
	i, ok := l.index[id]
	if !ok {
		return Repository{}, false
	}
	return l.Repositories[i], true
}

func (l *Listing) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Repositories)
}

// Catalog is a read-through cache of repository listings keyed by owner login.
type Catalog struct {
	src   CatalogSource
	ttl   time.Duration
	now   func() time.Time
	mu    sync.RWMutex
	items map[string]*Listing
	group singleflight.Group
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithCatalogTTL sets how long a listing stays fresh; zero means forever.
func WithCatalogTTL(d time.Duration) CatalogOption {
	return func(c *Catalog) { c.ttl = d }
}

// WithClock overrides the time source, mostly for tests.
func WithClock(now func() time.Time) CatalogOption {
	return func(c *Catalog) { c.now = now }
}

func NewCatalog(src CatalogSource, opts ...CatalogOption) *Catalog {
	c := &Catalog{src: src, now: time.Now, items: make(map[string]*Listing)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func catalogKey(owner string) string { return strings.ToLower(owner) }

// Get returns the cached listing without fetching. ok is false when the
// listing is not yet available.
func (c *Catalog) Get(owner string) (*Listing, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	l, ok := c.items[catalogKey(owner)]
	return l, ok
}

// Fetch returns the owner's listing, fetching it from the source when it is
// missing or stale. Concurrent fetches for the same owner share one request.
func (c *Catalog) Fetch(ctx context.Context, owner string) (*Listing, error) {
	tracer := otel.Tracer("repobulletin/bulletin")
	ctx, span := tracer.Start(ctx, "Catalog.Fetch")
	span.SetAttributes(attribute.String("owner", owner))
	defer span.End()
	key := catalogKey(owner)
	if l, ok := c.Get(owner); ok {
		if c.ttl <= 0 || c.now().Sub(l.FetchedAt) < c.ttl {
			slog.DebugContext(ctx, "catalog cache fresh", "owner", owner, "repos", l.Len())
			return l, nil
		}
		slog.DebugContext(ctx, "catalog cache stale; refetching", "owner", owner, "fetched_at", l.FetchedAt, "ttl", c.ttl)
	}
	// The shared fetch outlives any single caller; each caller only stops
	// waiting on its own cancellation.
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		repos, err := c.src.ListRepositories(fetchCtx, owner)
		if err != nil {
			return nil, err
		}
		l := NewListing(owner, repos, c.now())
		c.mu.Lock()
		c.items[key] = l
		c.mu.Unlock()
		return l, nil
	})
	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		res = singleflight.Result{Err: ctx.Err()}
	}
	if res.Err != nil {
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, res.Err.Error())
		return nil, fmt.Errorf("list repositories for %s failed: %w", owner, res.Err)
	}
	v := res.Val
	l := v.(*Listing)
	slog.InfoContext(ctx, "catalog fetched", "owner", owner, "repos", l.Len())
	return l, nil
}

// Invalidate drops the cached listing for owner.
func (c *Catalog) Invalidate(owner string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, catalogKey(owner))
}
