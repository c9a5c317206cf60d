package grpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"repobulletin.shikanime.studio/internal/auth"
	"repobulletin.shikanime.studio/internal/bulletin"
	"repobulletin.shikanime.studio/internal/repobulletin"
	bulletinv1 "repobulletin.shikanime.studio/pkgs/bulletin/v1"
	"repobulletin.shikanime.studio/pkgs/bulletin/v1/bulletinv1connect"
)

var testSecret = []byte("test-secret")

type memStore struct {
	mu     sync.Mutex
	data   map[int64][]byte
	putErr error
}

func (m *memStore) GetBulletin(_ context.Context, userID int64) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[userID]
	if !ok {
		return nil, bulletin.ErrNoBulletin
	}
	return data, nil
}

func (m *memStore) PutBulletin(_ context.Context, owner bulletin.Identity, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.data[owner.ID] = data
	return nil
}

func (m *memStore) DeleteAccount(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, userID)
	return nil
}

func (m *memStore) Ping(context.Context) error { return nil }

func (m *memStore) Close() error { return nil }

func (m *memStore) stored(t *testing.T, userID int64) *bulletin.Document {
	t.Helper()
	m.mu.Lock()
	data, ok := m.data[userID]
	m.mu.Unlock()
	require.True(t, ok, "no bulletin stored for %d", userID)
	doc, err := bulletin.DecodeDocument(data)
	require.NoError(t, err)
	return doc
}

type fakeGitHub struct {
	users map[string]bulletin.Identity
	repos map[string][]bulletin.Repository
}

func (f fakeGitHub) ResolveIdentity(_ context.Context, username string) (bulletin.Identity, error) {
	id, ok := f.users[strings.ToLower(username)]
	if !ok {
		return bulletin.Identity{}, fmt.Errorf("%w: %s", bulletin.ErrNotFound, username)
	}
	return id, nil
}

func (f fakeGitHub) ListRepositories(_ context.Context, owner string) ([]bulletin.Repository, error) {
	return f.repos[strings.ToLower(owner)], nil
}

var (
	octocat = auth.Viewer{ID: 7, Login: "octocat"}
	hubot   = auth.Viewer{ID: 8, Login: "hubot"}
)

func testGitHub() fakeGitHub {
	return fakeGitHub{
		users: map[string]bulletin.Identity{
			"octocat": {ID: octocat.ID, Login: octocat.Login},
			"hubot":   {ID: hubot.ID, Login: hubot.Login},
		},
		repos: map[string][]bulletin.Repository{
			"octocat": {
				{ID: 1, Name: "hello-world", URL: "https://github.com/octocat/hello-world"},
				{ID: 2, Name: "Spoon-Knife", URL: "https://github.com/octocat/Spoon-Knife"},
				{ID: 3, Name: "linguist", URL: "https://github.com/octocat/linguist"},
				{ID: 4, Name: "octokit", URL: "https://github.com/octocat/octokit"},
				{ID: 5, Name: "git-consortium", URL: "https://github.com/octocat/git-consortium"},
			},
			"hubot": {{ID: 42, Name: "hubot-scripts", URL: "https://github.com/hubot/hubot-scripts"}},
		},
	}
}

type testEnv struct {
	store   *memStore
	clients *repobulletin.RepoBulletin
	url     string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := &memStore{data: map[int64][]byte{}}
	clients := repobulletin.New(store, testGitHub(), repobulletin.WithJWTSecret(testSecret))
	path, handler := bulletinv1connect.NewBulletinServiceHandler(
		NewBulletinService(clients),
		connect.WithInterceptors(NewAuthInterceptor(testSecret)),
	)
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return &testEnv{store: store, clients: clients, url: srv.URL}
}

func withHeader(key, value string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			req.Header().Set(key, value)
			return next(ctx, req)
		}
	}
}

func (e *testEnv) client(t *testing.T, viewer *auth.Viewer) bulletinv1connect.BulletinServiceClient {
	t.Helper()
	var opts []connect.ClientOption
	if viewer != nil {
		token, err := auth.GenerateToken(*viewer, testSecret, time.Hour)
		require.NoError(t, err)
		opts = append(opts, connect.WithInterceptors(withHeader("Authorization", "Bearer "+token)))
	}
	return bulletinv1connect.NewBulletinServiceClient(http.DefaultClient, e.url, opts...)
}

func (e *testEnv) persist(t *testing.T, userID int64, doc *bulletin.Document) {
	t.Helper()
	data, err := json.Marshal(bulletin.ToWire(doc))
	require.NoError(t, err)
	e.store.mu.Lock()
	e.store.data[userID] = data
	e.store.mu.Unlock()
}

func refs(ids ...int64) []bulletin.RepoRef {
	out := make([]bulletin.RepoRef, 0, len(ids))
	for _, id := range ids {
		out = append(out, bulletin.RepoRef{ID: fmt.Sprintf("r%d", id), RepoID: id})
	}
	return out
}

func sectionNames(b *bulletinv1.Bulletin) []string {
	var out []string
	for _, s := range b.GetSections() {
		out = append(out, s.GetName())
	}
	return out
}

func open(t *testing.T, c bulletinv1connect.BulletinServiceClient, user string) *bulletinv1.EditState {
	t.Helper()
	resp, err := c.OpenEditSession(context.Background(), connect.NewRequest(&bulletinv1.OpenEditSessionRequest{User: user, Edit: true}))
	require.NoError(t, err)
	return resp.Msg.State
}

func TestGetBulletin(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	anon := env.client(t, nil)
	ctx := context.Background()

	resp, err := anon.GetBulletin(ctx, connect.NewRequest(&bulletinv1.GetBulletinRequest{User: "octocat"}))
	require.NoError(t, err)
	assert.Nil(t, resp.Msg.Bulletin)
	assert.Equal(t, int64(7), resp.Msg.Owner.Id)

	env.persist(t, octocat.ID, &bulletin.Document{Sections: []bulletin.Section{
		{ID: "s1", Name: "Tools", Repos: refs(2, 99, 1)},
	}})
	resp, err = anon.GetBulletin(ctx, connect.NewRequest(&bulletinv1.GetBulletinRequest{User: "OctoCat"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"Tools"}, sectionNames(resp.Msg.Bulletin))
	require.Len(t, resp.Msg.Repositories, 2)
	assert.Equal(t, "Spoon-Knife", resp.Msg.Repositories[0].Name)
	assert.Equal(t, []int64{99}, resp.Msg.Unresolved)

	_, err = anon.GetBulletin(ctx, connect.NewRequest(&bulletinv1.GetBulletinRequest{User: "ghost"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = anon.GetBulletin(ctx, connect.NewRequest(&bulletinv1.GetBulletinRequest{}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestExportBulletin(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.persist(t, octocat.ID, &bulletin.Document{Sections: []bulletin.Section{
		{ID: "s1", Name: "Tools", Repos: refs(1)},
	}})

	resp, err := env.client(t, nil).ExportBulletin(context.Background(), connect.NewRequest(&bulletinv1.ExportBulletinRequest{User: "octocat"}))
	require.NoError(t, err)
	assert.Contains(t, resp.Msg.Markdown, "# octocat's bulletin")
	assert.Contains(t, resp.Msg.Markdown, "## Tools")
	assert.Contains(t, resp.Msg.Markdown, "[hello-world](https://github.com/octocat/hello-world)")
}

func TestOpenEditSession_Permissions(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	req := func(user string, edit bool) *connect.Request[bulletinv1.OpenEditSessionRequest] {
		return connect.NewRequest(&bulletinv1.OpenEditSessionRequest{User: user, Edit: edit})
	}

	_, err := env.client(t, nil).OpenEditSession(ctx, req("octocat", true))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	_, err = env.client(t, &hubot).OpenEditSession(ctx, req("octocat", true))
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

	_, err = env.client(t, &octocat).OpenEditSession(ctx, req("octocat", false))
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

	forged := auth.Viewer{ID: 9, Login: "octocat"}
	_, err = env.client(t, &forged).OpenEditSession(ctx, req("octocat", true))
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

	resp, err := env.client(t, &octocat).OpenEditSession(ctx, req("OCTOCAT", true))
	require.NoError(t, err)
	st := resp.Msg.State
	assert.True(t, st.Editing)
	assert.Equal(t, []string{bulletin.DefaultSectionName}, sectionNames(st.Bulletin))
	assert.Len(t, st.Repositories, 5)
	assert.False(t, st.Gate.CanSave)
	assert.Equal(t, bulletin.WarningEmptySection, st.Gate.Warning)
}

func TestInvalidToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	token, err := auth.GenerateToken(octocat, []byte("other-secret"), time.Hour)
	require.NoError(t, err)
	c := bulletinv1connect.NewBulletinServiceClient(http.DefaultClient, env.url,
		connect.WithInterceptors(withHeader("Authorization", "Bearer "+token)))

	_, err = c.GetBulletin(context.Background(), connect.NewRequest(&bulletinv1.GetBulletinRequest{User: "octocat"}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}

func TestSessionCookie(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	token, err := auth.GenerateToken(octocat, testSecret, time.Hour)
	require.NoError(t, err)
	c := bulletinv1connect.NewBulletinServiceClient(http.DefaultClient, env.url,
		connect.WithInterceptors(withHeader("Cookie", auth.CookieName+"="+token)))

	open(t, c, "octocat")
}

func TestEditFlow_BuildAndSave(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	c := env.client(t, &octocat)
	ctx := context.Background()

	st := open(t, c, "octocat")
	sid := st.SessionId
	sectionID := st.Bulletin.Sections[0].Id

	rs, err := c.RenameSection(ctx, connect.NewRequest(&bulletinv1.RenameSectionRequest{SessionId: sid, SectionId: sectionID, Name: "Tools"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"Tools"}, sectionNames(rs.Msg.State.Bulletin))

	pr, err := c.OpenRepoPicker(ctx, connect.NewRequest(&bulletinv1.OpenRepoPickerRequest{SessionId: sid, SectionId: sectionID}))
	require.NoError(t, err)
	assert.False(t, pr.Msg.Picker.CanApply)
	assert.Len(t, pr.Msg.Picker.Entries, 5)

	for _, id := range []int64{3, 1} {
		_, err = c.ToggleRepo(ctx, connect.NewRequest(&bulletinv1.ToggleRepoRequest{SessionId: sid, RepoId: id}))
		require.NoError(t, err)
	}
	_, err = c.ToggleRepo(ctx, connect.NewRequest(&bulletinv1.ToggleRepoRequest{SessionId: sid, RepoId: 42}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	pr, err = c.SearchRepos(ctx, connect.NewRequest(&bulletinv1.SearchReposRequest{SessionId: sid, Query: " HELLO "}))
	require.NoError(t, err)
	require.Len(t, pr.Msg.Picker.Entries, 1)
	assert.True(t, pr.Msg.Picker.Entries[0].Checked)
	assert.Len(t, pr.Msg.Picker.Checked, 2)
	assert.True(t, pr.Msg.Picker.CanApply)

	ap, err := c.ApplyRepoPicker(ctx, connect.NewRequest(&bulletinv1.ApplyRepoPickerRequest{SessionId: sid}))
	require.NoError(t, err)
	assert.Nil(t, ap.Msg.State.Picker)
	require.Len(t, ap.Msg.State.Bulletin.Sections[0].Repos, 2)
	assert.Equal(t, int64(3), ap.Msg.State.Bulletin.Sections[0].Repos[0].RepoId)
	assert.True(t, ap.Msg.State.Gate.CanSave)

	add, err := c.AddSection(ctx, connect.NewRequest(&bulletinv1.AddSectionRequest{SessionId: sid}))
	require.NoError(t, err)
	require.Len(t, add.Msg.State.Bulletin.Sections, 2)
	assert.False(t, add.Msg.State.Gate.CanAddSection)

	_, err = c.AddSection(ctx, connect.NewRequest(&bulletinv1.AddSectionRequest{SessionId: sid}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))
	_, err = c.SaveBulletin(ctx, connect.NewRequest(&bulletinv1.SaveBulletinRequest{SessionId: sid}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	rm, err := c.RemoveSection(ctx, connect.NewRequest(&bulletinv1.RemoveSectionRequest{SessionId: sid, SectionId: add.Msg.State.Bulletin.Sections[1].Id}))
	require.NoError(t, err)
	assert.False(t, rm.Msg.ConfirmationRequired)
	assert.Len(t, rm.Msg.State.Bulletin.Sections, 1)

	sv, err := c.SaveBulletin(ctx, connect.NewRequest(&bulletinv1.SaveBulletinRequest{SessionId: sid}))
	require.NoError(t, err)
	assert.False(t, sv.Msg.State.Editing)

	doc := env.store.stored(t, octocat.ID)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "Tools", doc.Sections[0].Name)
	assert.Equal(t, []int64{3, 1}, doc.RepoIDs())

	assert.Zero(t, env.clients.Sessions().Len())
	_, err = c.AddSection(ctx, connect.NewRequest(&bulletinv1.AddSectionRequest{SessionId: sid}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestEditFlow_DragAndCancel(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.persist(t, octocat.ID, &bulletin.Document{Sections: []bulletin.Section{
		{ID: "s1", Name: "A", Repos: refs(1, 2, 3)},
		{ID: "s2", Name: "B", Repos: refs(4)},
	}})
	c := env.client(t, &octocat)
	ctx := context.Background()
	sid := open(t, c, "octocat").SessionId

	ds, err := c.DragStart(ctx, connect.NewRequest(&bulletinv1.DragStartRequest{SessionId: sid, Handle: &bulletinv1.Handle{Kind: "REPO", Id: "r1", SectionId: "s1"}}))
	require.NoError(t, err)
	require.NotNil(t, ds.Msg.State.Active)
	assert.Equal(t, "hello-world", ds.Msg.State.Active.Repository.Name)
	assert.False(t, ds.Msg.State.AnimationsEnabled)

	do, err := c.DragOver(ctx, connect.NewRequest(&bulletinv1.DragOverRequest{SessionId: sid, Target: &bulletinv1.Handle{Kind: "REPO", Id: "r3", SectionId: "s1"}}))
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2, 1, 4}, bulletin.FromWire(do.Msg.State.Bulletin).RepoIDs())

	do, err = c.DragOver(ctx, connect.NewRequest(&bulletinv1.DragOverRequest{SessionId: sid, Target: &bulletinv1.Handle{Kind: "REPO", Id: "r4", SectionId: "s2"}}))
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2, 1, 4}, bulletin.FromWire(do.Msg.State.Bulletin).RepoIDs())

	_, err = c.DragOver(ctx, connect.NewRequest(&bulletinv1.DragOverRequest{SessionId: sid}))
	require.NoError(t, err)

	de, err := c.DragEnd(ctx, connect.NewRequest(&bulletinv1.DragEndRequest{SessionId: sid}))
	require.NoError(t, err)
	assert.Nil(t, de.Msg.State.Active)
	assert.True(t, de.Msg.State.AnimationsEnabled)

	ce, err := c.CancelEdit(ctx, connect.NewRequest(&bulletinv1.CancelEditRequest{SessionId: sid}))
	require.NoError(t, err)
	assert.False(t, ce.Msg.State.Editing)
	assert.Equal(t, []int64{1, 2, 3, 4}, bulletin.FromWire(ce.Msg.State.Bulletin).RepoIDs())

	_, err = c.GetEditState(ctx, connect.NewRequest(&bulletinv1.GetEditStateRequest{SessionId: sid}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
	assert.Zero(t, env.clients.Sessions().Len())
}

func TestRemoveSection_AsksConfirmationOnce(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.persist(t, octocat.ID, &bulletin.Document{Sections: []bulletin.Section{
		{ID: "s1", Name: "A", Repos: refs(1, 2, 3, 4)},
		{ID: "s2", Name: "B", Repos: refs(1, 2, 3, 4, 5)},
		{ID: "s3", Name: "C", Repos: refs(5)},
	}})
	c := env.client(t, &octocat)
	ctx := context.Background()
	sid := open(t, c, "octocat").SessionId

	rm, err := c.RemoveSection(ctx, connect.NewRequest(&bulletinv1.RemoveSectionRequest{SessionId: sid, SectionId: "s1"}))
	require.NoError(t, err)
	assert.True(t, rm.Msg.ConfirmationRequired)
	assert.Equal(t, []string{"A", "B", "C"}, sectionNames(rm.Msg.State.Bulletin))

	rm, err = c.RemoveSection(ctx, connect.NewRequest(&bulletinv1.RemoveSectionRequest{SessionId: sid, SectionId: "s1", Confirm: true}))
	require.NoError(t, err)
	assert.False(t, rm.Msg.ConfirmationRequired)
	assert.Equal(t, []string{"B", "C"}, sectionNames(rm.Msg.State.Bulletin))

	rm, err = c.RemoveSection(ctx, connect.NewRequest(&bulletinv1.RemoveSectionRequest{SessionId: sid, SectionId: "s2"}))
	require.NoError(t, err)
	assert.False(t, rm.Msg.ConfirmationRequired)
	assert.Equal(t, []string{"C"}, sectionNames(rm.Msg.State.Bulletin))

	_, err = c.RemoveSection(ctx, connect.NewRequest(&bulletinv1.RemoveSectionRequest{SessionId: sid, SectionId: "missing"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = c.CancelEdit(ctx, connect.NewRequest(&bulletinv1.CancelEditRequest{SessionId: sid}))
	require.NoError(t, err)
	next := open(t, c, "octocat").SessionId
	rm, err = c.RemoveSection(ctx, connect.NewRequest(&bulletinv1.RemoveSectionRequest{SessionId: next, SectionId: "s1"}))
	require.NoError(t, err)
	assert.False(t, rm.Msg.ConfirmationRequired)
	assert.Equal(t, []string{"B", "C"}, sectionNames(rm.Msg.State.Bulletin))
}

func TestRemoveRepoAndClosePicker(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.persist(t, octocat.ID, &bulletin.Document{Sections: []bulletin.Section{
		{ID: "s1", Name: "A", Repos: refs(1, 2)},
	}})
	c := env.client(t, &octocat)
	ctx := context.Background()
	sid := open(t, c, "octocat").SessionId

	_, err := c.OpenRepoPicker(ctx, connect.NewRequest(&bulletinv1.OpenRepoPickerRequest{SessionId: sid, SectionId: "s1"}))
	require.NoError(t, err)

	rr, err := c.RemoveRepo(ctx, connect.NewRequest(&bulletinv1.RemoveRepoRequest{SessionId: sid, SectionId: "s1", RefId: "r1"}))
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, bulletin.FromWire(rr.Msg.State.Bulletin).RepoIDs())
	require.NotNil(t, rr.Msg.State.Picker)
	require.Len(t, rr.Msg.State.Picker.Checked, 1)
	assert.Equal(t, int64(2), rr.Msg.State.Picker.Checked[0].RepoId)

	_, err = c.RemoveRepo(ctx, connect.NewRequest(&bulletinv1.RemoveRepoRequest{SessionId: sid, SectionId: "s1", RefId: "r1"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	cp, err := c.CloseRepoPicker(ctx, connect.NewRequest(&bulletinv1.CloseRepoPickerRequest{SessionId: sid}))
	require.NoError(t, err)
	assert.Nil(t, cp.Msg.State.Picker)

	_, err = c.ToggleRepo(ctx, connect.NewRequest(&bulletinv1.ToggleRepoRequest{SessionId: sid, RepoId: 1}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))
}

func TestImportMarkdown(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	c := env.client(t, &octocat)
	ctx := context.Background()
	sid := open(t, c, "octocat").SessionId

	md := "# Mine\n\n## Tools\n\n- [hello-world](https://github.com/octocat/hello-world)\n- [unknown](https://github.com/x/y)\n\n## Misc\n\n- [linguist](https://github.com/octocat/linguist)\n"
	im, err := c.ImportMarkdown(ctx, connect.NewRequest(&bulletinv1.ImportMarkdownRequest{SessionId: sid, Markdown: md}))
	require.NoError(t, err)
	assert.Equal(t, []string{"Tools", "Misc"}, sectionNames(im.Msg.State.Bulletin))
	assert.Equal(t, []int64{1, 3}, bulletin.FromWire(im.Msg.State.Bulletin).RepoIDs())
	assert.True(t, im.Msg.State.Gate.CanSave)

	nested := "## Tools\n\n- [hello-world](https://github.com/octocat/hello-world)\n\n### Data\n\n- [linguist](https://github.com/octocat/linguist)\n"
	flat, err := c.ImportMarkdown(ctx, connect.NewRequest(&bulletinv1.ImportMarkdownRequest{SessionId: sid, Markdown: nested}))
	require.NoError(t, err)
	assert.Equal(t, []string{"Tools"}, sectionNames(flat.Msg.State.Bulletin))
	split, err := c.ImportMarkdown(ctx, connect.NewRequest(&bulletinv1.ImportMarkdownRequest{SessionId: sid, Markdown: nested, SubsectionAsCategory: true}))
	require.NoError(t, err)
	assert.Equal(t, []string{"Tools", "Tools - Data"}, sectionNames(split.Msg.State.Bulletin))
	assert.Equal(t, []int64{1, 3}, bulletin.FromWire(split.Msg.State.Bulletin).RepoIDs())

	_, err = c.ImportMarkdown(ctx, connect.NewRequest(&bulletinv1.ImportMarkdownRequest{SessionId: sid, Markdown: "## Empty\n\n- [x](https://example.com)\n"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestSessionBelongsToViewer(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	sid := open(t, env.client(t, &octocat), "octocat").SessionId
	ctx := context.Background()

	_, err := env.client(t, &hubot).GetEditState(ctx, connect.NewRequest(&bulletinv1.GetEditStateRequest{SessionId: sid}))
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

	_, err = env.client(t, nil).GetEditState(ctx, connect.NewRequest(&bulletinv1.GetEditStateRequest{SessionId: sid}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	_, err = env.client(t, &octocat).GetEditState(ctx, connect.NewRequest(&bulletinv1.GetEditStateRequest{SessionId: "nope"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestSaveFailureKeepsEdits(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.persist(t, octocat.ID, &bulletin.Document{Sections: []bulletin.Section{
		{ID: "s1", Name: "A", Repos: refs(1)},
	}})
	c := env.client(t, &octocat)
	ctx := context.Background()
	sid := open(t, c, "octocat").SessionId

	_, err := c.RenameSection(ctx, connect.NewRequest(&bulletinv1.RenameSectionRequest{SessionId: sid, SectionId: "s1", Name: "Renamed"}))
	require.NoError(t, err)

	env.store.mu.Lock()
	env.store.putErr = fmt.Errorf("connection reset")
	env.store.mu.Unlock()
	_, err = c.SaveBulletin(ctx, connect.NewRequest(&bulletinv1.SaveBulletinRequest{SessionId: sid}))
	assert.Equal(t, connect.CodeUnavailable, connect.CodeOf(err))

	st, err := c.GetEditState(ctx, connect.NewRequest(&bulletinv1.GetEditStateRequest{SessionId: sid}))
	require.NoError(t, err)
	assert.True(t, st.Msg.State.Editing)
	assert.False(t, st.Msg.State.Saving)
	assert.True(t, st.Msg.State.Gate.CanSave)
	assert.Equal(t, []string{"Renamed"}, sectionNames(st.Msg.State.Bulletin))
}

func TestPutBulletinAndDeleteAccount(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	c := env.client(t, &octocat)
	ctx := context.Background()

	_, err := env.client(t, nil).PutBulletin(ctx, connect.NewRequest(&bulletinv1.PutBulletinRequest{}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	_, err = c.PutBulletin(ctx, connect.NewRequest(&bulletinv1.PutBulletinRequest{}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	unowned := &bulletinv1.Bulletin{Sections: []*bulletinv1.Section{
		{Id: "s1", Name: "A", Repos: []*bulletinv1.RepoRef{{Id: "r1", RepoId: 42}}},
	}}
	_, err = c.PutBulletin(ctx, connect.NewRequest(&bulletinv1.PutBulletinRequest{Bulletin: unowned}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	owned := &bulletinv1.Bulletin{Sections: []*bulletinv1.Section{
		{Id: "s1", Name: "A", Repos: []*bulletinv1.RepoRef{{Id: "r1", RepoId: 5}}},
	}}
	_, err = c.PutBulletin(ctx, connect.NewRequest(&bulletinv1.PutBulletinRequest{Bulletin: owned}))
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, env.store.stored(t, octocat.ID).RepoIDs())

	sid := open(t, c, "octocat").SessionId
	_, err = c.DeleteAccount(ctx, connect.NewRequest(&bulletinv1.DeleteAccountRequest{}))
	require.NoError(t, err)

	env.store.mu.Lock()
	_, ok := env.store.data[octocat.ID]
	env.store.mu.Unlock()
	assert.False(t, ok)
	assert.Zero(t, env.clients.Sessions().Len())

	_, err = c.GetEditState(ctx, connect.NewRequest(&bulletinv1.GetEditStateRequest{SessionId: sid}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestCodeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want connect.Code
	}{
		{fmt.Errorf("wrap: %w", bulletin.ErrNotFound), connect.CodeNotFound},
		{repobulletin.ErrSessionNotFound, connect.CodeNotFound},
		{bulletin.ErrSectionNotFound, connect.CodeNotFound},
		{repobulletin.ErrPermissionDenied, connect.CodePermissionDenied},
		{auth.ErrInvalidToken, connect.CodeUnauthenticated},
		{bulletin.ErrUnownedRepository, connect.CodeInvalidArgument},
		{bulletin.ErrEmptySelection, connect.CodeInvalidArgument},
		{bulletin.ErrSaveInFlight, connect.CodeFailedPrecondition},
		{bulletin.ErrConfirmationRequired, connect.CodeFailedPrecondition},
		{context.DeadlineExceeded, connect.CodeDeadlineExceeded},
		{connect.NewError(connect.CodeAborted, fmt.Errorf("x")), connect.CodeAborted},
		{fmt.Errorf("boom"), connect.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, codeOf(tt.err))
		})
	}
	assert.Equal(t, connect.CodeUnavailable, connect.CodeOf(upstreamError(fmt.Errorf("boom"))))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(upstreamError(bulletin.ErrNotFound)))
}
