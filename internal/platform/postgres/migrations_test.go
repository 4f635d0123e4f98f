package postgres

import (
	"context"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsFS(t *testing.T) {
	t.Parallel()

	files, err := fs.Glob(MigrationsFS, MigrationsDir+"/*.sql")
	require.NoError(t, err)
	require.Len(t, files, 5)

	for _, name := range files {
		body, err := fs.ReadFile(MigrationsFS, name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}

func TestMigrate_UnknownCommand(t *testing.T) {
	t.Parallel()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	err = Migrate(context.Background(), db, "sideways", nil)
	assert.ErrorContains(t, err, `unknown migration command "sideways"`)
}
