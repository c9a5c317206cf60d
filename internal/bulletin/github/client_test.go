package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
	"repobulletin.shikanime.studio/internal/bulletin"
)

func newTestClient(t *testing.T, mux *http.ServeMux, opts ...ClientOption) *Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	opts = append([]ClientOption{WithBaseURL(srv.URL), WithLimiter(rate.NewLimiter(rate.Inf, 1))}, opts...)
	c, err := NewClient(opts...)
	require.NoError(t, err)
	return c
}

func TestResolveIdentity(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/octocat", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer s3cret", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"id":583231,"login":"octocat","avatar_url":"https://avatars.githubusercontent.com/u/583231"}`)
	})
	c := newTestClient(t, mux, WithToken("s3cret"))

	id, err := c.ResolveIdentity(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, bulletin.Identity{ID: 583231, Login: "octocat", AvatarURL: "https://avatars.githubusercontent.com/u/583231"}, id)
}

func TestResolveIdentity_NotFound(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/ghost", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found"}`)
	})
	c := newTestClient(t, mux)

	_, err := c.ResolveIdentity(context.Background(), "ghost")
	assert.ErrorIs(t, err, bulletin.ErrNotFound)
}

func TestResolveIdentity_ServerError(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/octocat", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	c := newTestClient(t, mux)

	_, err := c.ResolveIdentity(context.Background(), "octocat")
	require.Error(t, err)
	assert.NotErrorIs(t, err, bulletin.ErrNotFound)
}

func TestListRepositories_Paginates(t *testing.T) {
	t.Parallel()

	var srvURL string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "owner", r.URL.Query().Get("type"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		if r.URL.Query().Get("page") == "2" {
			fmt.Fprint(w, `[{"id":3,"name":"secret","private":true},{"id":2,"name":"Spoon-Knife","stargazers_count":12,"forks_count":140,"html_url":"https://github.com/octocat/Spoon-Knife"}]`)
			return
		}
		w.Header().Set("Link", fmt.Sprintf(`<%s/users/octocat/repos?page=2>; rel="next"`, srvURL))
		fmt.Fprint(w, `[{"id":1,"name":"hello-world","description":"My first repository","language":"Go","stargazers_count":2345,"forks_count":1,"html_url":"https://github.com/octocat/hello-world"}]`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	srvURL = srv.URL
	c, err := NewClient(WithBaseURL(srv.URL), WithLimiter(rate.NewLimiter(rate.Inf, 1)))
	require.NoError(t, err)

	repos, err := c.ListRepositories(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 2)

	assert.Equal(t, int64(1), repos[0].ID)
	assert.Equal(t, "hello-world", repos[0].Name)
	require.NotNil(t, repos[0].Description)
	assert.Equal(t, "My first repository", *repos[0].Description)
	require.NotNil(t, repos[0].PrimaryLanguage)
	assert.Equal(t, "Go", *repos[0].PrimaryLanguage)
	assert.Equal(t, 2345, repos[0].StarCount)
	assert.Equal(t, "https://github.com/octocat/hello-world", repos[0].URL)

	assert.Equal(t, int64(2), repos[1].ID)
	assert.Nil(t, repos[1].Description)
	assert.Nil(t, repos[1].PrimaryLanguage)
	assert.Equal(t, 140, repos[1].ForkCount)
}
