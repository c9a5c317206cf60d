package bulletin

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// ---- fakes ----

type fakeStore struct {
	mu      sync.Mutex
	data    map[int64][]byte
	getErr  error
	putErr  error
	gets    atomic.Int32
	puts    atomic.Int32
	block   chan struct{}
	entered chan struct{}
}

func newFakeStore() *fakeStore { return &fakeStore{data: make(map[int64][]byte)} }

func (f *fakeStore) GetBulletin(_ context.Context, userID int64) ([]byte, error) {
	f.gets.Add(1)
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.data[userID]
	if !ok {
		return nil, ErrNoBulletin
	}
	return data, nil
}

func (f *fakeStore) PutBulletin(_ context.Context, owner Identity, data []byte) error {
	f.puts.Add(1)
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	if f.putErr != nil {
		return f.putErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[owner.ID] = data
	return nil
}

func (f *fakeStore) DeleteAccount(_ context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, userID)
	return nil
}

type fakeIdentities struct {
	identity Identity
	err      error
	calls    atomic.Int32
}

func (f *fakeIdentities) ResolveIdentity(context.Context, string) (Identity, error) {
	f.calls.Add(1)
	return f.identity, f.err
}

type fakeSource struct {
	repos []Repository
	err   error
	calls atomic.Int32
}

func (f *fakeSource) ListRepositories(context.Context, string) ([]Repository, error) {
	f.calls.Add(1)
	return f.repos, f.err
}

// ---- fixtures ----

var testOwner = Identity{ID: 7, Login: "octocat", AvatarURL: "https://avatars.example/7"}

func testRepos() []Repository {
	desc := "A tiny web server"
	return []Repository{
		{ID: 1, Name: "alpha", Description: &desc, StarCount: 10, URL: "https://github.com/octocat/alpha"},
		{ID: 2, Name: "Beta", StarCount: 3, URL: "https://github.com/octocat/Beta"},
		{ID: 3, Name: "gamma-ray", URL: "https://github.com/octocat/gamma-ray"},
		{ID: 4, Name: "delta", URL: "https://github.com/octocat/delta"},
		{ID: 5, Name: "epsilon", URL: "https://github.com/octocat/epsilon"},
		{ID: 42, Name: "backend", URL: "https://github.com/octocat/backend"},
	}
}

func testListing() *Listing {
	return NewListing(testOwner.Login, testRepos(), time.Unix(0, 0))
}

func refs(repoIDs ...int64) []RepoRef {
	out := make([]RepoRef, 0, len(repoIDs))
	for _, id := range repoIDs {
		out = append(out, RepoRef{ID: NewID(), RepoID: id})
	}
	return out
}

func sectionIDs(doc *Document) []string {
	out := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		out = append(out, s.ID)
	}
	return out
}

func refIDs(s *Section) []string {
	out := make([]string, 0, len(s.Repos))
	for _, r := range s.Repos {
		out = append(out, r.ID)
	}
	return out
}

func newTestSession(t interface{ Helper() }, persisted *Document, store Store) *Session {
	t.Helper()
	page := &Page{Owner: testOwner, Catalog: testListing(), Persisted: persisted}
	return NewSession(page, NewBridge(store), nil)
}
