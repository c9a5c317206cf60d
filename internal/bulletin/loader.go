package bulletin

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

// IdentityResolver resolves a GitHub login to its account. It returns
// ErrNotFound when the user does not exist upstream.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, username string) (Identity, error)
}

// Page is everything needed to display or edit one user's bulletin.
type Page struct {
	Owner   Identity
	Catalog *Listing
	// Persisted is nil when the owner never saved a bulletin.
	Persisted *Document
}

// Loader fetches the identity, the catalog and the persisted document of a user.
type Loader struct {
	identities IdentityResolver
	catalog    *Catalog
	bridge     *Bridge
}

func NewLoader(identities IdentityResolver, catalog *Catalog, bridge *Bridge) *Loader {
	return &Loader{identities: identities, catalog: catalog, bridge: bridge}
}

// Load resolves the identity and the catalog concurrently. The persisted
// document is keyed by the numeric id, so it is only requested once both
// succeeded.
func (l *Loader) Load(ctx context.Context, username string) (*Page, error) {
	tracer := otel.Tracer("repobulletin/bulletin")
	ctx, span := tracer.Start(ctx, "Loader.Load")
	span.SetAttributes(attribute.String("username", username))
	defer span.End()

	page := &Page{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		owner, err := l.identities.ResolveIdentity(gctx, username)
		if err != nil {
			return err
		}
		page.Owner = owner
		return nil
	})
	g.Go(func() error {
		listing, err := l.catalog.Fetch(gctx, username)
		if err != nil {
			return err
		}
		page.Catalog = listing
		return nil
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.WarnContext(ctx, "load bulletin page failed", "username", username, "error", err)
		return nil, err
	}

	persisted, err := l.bridge.Load(ctx, page.Owner)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.WarnContext(ctx, "load persisted bulletin failed", "username", username, "user_id", page.Owner.ID, "error", err)
		return nil, err
	}
	page.Persisted = persisted
	return page, nil
}

// Unresolved returns the repository ids referenced by doc that the listing
// cannot resolve, in document order.
func Unresolved(doc *Document, repos RepoLookup) []int64 {
	var out []int64
	for _, id := range doc.RepoIDs() {
		if _, ok := repos.Lookup(id); !ok {
			out = append(out, id)
		}
	}
	return out
}
