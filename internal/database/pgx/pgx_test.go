package pgx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"repobulletin.shikanime.studio/internal/config"
)

func TestNewClientForConfig_RejectsOtherSchemes(t *testing.T) {
	t.Setenv("DSN", "mysql://root@localhost/bulletins")
	_, err := NewClientForConfig(config.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported DSN scheme")
}

func TestNewClientForConfig_LazyConnect(t *testing.T) {
	t.Setenv("DSN", "postgres://bulletin@127.0.0.1:1/bulletins?sslmode=disable")
	pool, err := NewClientForConfig(config.New())
	require.NoError(t, err)
	pool.Close()
}
