package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"INSERT INTO users (id, login, avatar_url) VALUES ($1, $2, $3) ON CONFLICT (id) DO UPDATE SET login = EXCLUDED.login, avatar_url = EXCLUDED.avatar_url, updated_at = NOW()",
		UpsertUserQuery)
	assert.Equal(t,
		"INSERT INTO bulletins (user_id, data) VALUES ($1, $2::jsonb) ON CONFLICT (user_id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()",
		UpsertBulletinQuery)
	assert.Equal(t, "SELECT data FROM bulletins WHERE user_id=$1", BulletinByUserIDQuery)
	assert.Equal(t, "DELETE FROM users WHERE id=$1", DeleteUserQuery)
}

func TestMigrationsArePaired(t *testing.T) {
	t.Parallel()

	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)
	ups, downs := map[string]bool{}, map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}
	require.NotEmpty(t, ups)
	assert.Equal(t, ups, downs)

	up, err := fs.ReadFile(migrationsFS, "migrations/000001_init.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(up), "ON DELETE CASCADE")
}

func TestNilPool(t *testing.T) {
	t.Parallel()

	db := NewClient(nil)
	assert.Error(t, db.Ping(t.Context()))
	_, err := db.GetBulletin(t.Context(), 1)
	assert.Error(t, err)
	assert.NoError(t, db.Close())

	_, err = NewMigrator(nil)
	assert.Error(t, err)
}
