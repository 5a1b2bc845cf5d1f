package records_test

import (
	"context"
	"path/filepath"
	"testing"

	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T, path, profile string) *records.SQLiteRepository {
	t.Helper()
	repo, err := records.OpenSQLite(context.Background(), &records.SQLiteRepoConfig{
		Path:    path,
		Profile: profile,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = repo.Close()
	})
	return repo
}

func TestSQLiteRepository(t *testing.T) {
	runRepositoryContract(t, openSQLite(t, filepath.Join(t.TempDir(), "party.db"), ""))
}

func TestSQLiteRepository_ProfilesAreIsolated(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "party.db")
	first := openSQLite(t, path, "first")
	second := openSQLite(t, path, "second")

	require.NoError(t, first.Save(ctx, testRecord("Aria", 0)))

	_, err := second.Get(ctx, "Aria")
	assert.True(t, dnderr.IsNotFound(err))

	all, err := second.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSQLiteRepository_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "party.db")

	repo, err := records.OpenSQLite(ctx, &records.SQLiteRepoConfig{Path: path})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, testRecord("Aria", 0)))
	require.NoError(t, repo.Close())

	reopened := openSQLite(t, path, "")
	got, err := reopened.Get(ctx, "Aria")
	require.NoError(t, err)
	assert.Equal(t, 133, got.MaxHP)
}

func TestOpenSQLite_RequiresPath(t *testing.T) {
	_, err := records.OpenSQLite(context.Background(), &records.SQLiteRepoConfig{})
	assert.True(t, dnderr.IsConfiguration(err))
}
