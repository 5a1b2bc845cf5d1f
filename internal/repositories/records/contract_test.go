package records_test

import (
	"context"
	"testing"

	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(name string, slot int) *records.Record {
	return &records.Record{
		Name:          name,
		DefinitionKey: "knight",
		Slot:          slot,
		Level:         4,
		Experience:    12,
		CurrentHP:     80,
		MaxHP:         133,
		Attack:        25,
		Defense:       12,
		Speed:         13,
		Moves:         []string{"Slash", "Cleave"},
	}
}

// runRepositoryContract exercises behaviour every backend shares
func runRepositoryContract(t *testing.T, repo records.Repository) {
	ctx := context.Background()

	t.Run("get missing record is not found", func(t *testing.T) {
		_, err := repo.Get(ctx, "nobody")
		assert.True(t, dnderr.IsNotFound(err))
	})

	t.Run("save and get", func(t *testing.T) {
		rec := testRecord("Aria", 0)
		require.NoError(t, repo.Save(ctx, rec))
		assert.False(t, rec.UpdatedAt.IsZero())

		got, err := repo.Get(ctx, "Aria")
		require.NoError(t, err)
		assert.Equal(t, rec.Level, got.Level)
		assert.Equal(t, rec.Experience, got.Experience)
		assert.Equal(t, rec.CurrentHP, got.CurrentHP)
		assert.Equal(t, rec.MaxHP, got.MaxHP)
		assert.Equal(t, rec.Attack, got.Attack)
		assert.Equal(t, rec.Defense, got.Defense)
		assert.Equal(t, rec.Speed, got.Speed)
		assert.Equal(t, rec.Moves, got.Moves)
		assert.Equal(t, "knight", got.DefinitionKey)
	})

	t.Run("save overwrites", func(t *testing.T) {
		rec := testRecord("Aria", 0)
		rec.CurrentHP = 1
		rec.Moves = []string{"Slash"}
		require.NoError(t, repo.Save(ctx, rec))

		got, err := repo.Get(ctx, "Aria")
		require.NoError(t, err)
		assert.Equal(t, 1, got.CurrentHP)
		assert.Equal(t, []string{"Slash"}, got.Moves)
	})

	t.Run("load all orders by slot", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, testRecord("Cole", 2)))
		require.NoError(t, repo.Save(ctx, testRecord("Bram", 1)))

		all, err := repo.LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "Aria", all[0].Name)
		assert.Equal(t, "Bram", all[1].Name)
		assert.Equal(t, "Cole", all[2].Name)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "Bram"))
		_, err := repo.Get(ctx, "Bram")
		assert.True(t, dnderr.IsNotFound(err))
		assert.True(t, dnderr.IsNotFound(repo.Delete(ctx, "Bram")))

		all, err := repo.LoadAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("input validation", func(t *testing.T) {
		assert.True(t, dnderr.IsInvalidArgument(repo.Save(ctx, nil)))
		assert.True(t, dnderr.IsInvalidArgument(repo.Save(ctx, &records.Record{})))
		_, err := repo.Get(ctx, "")
		assert.True(t, dnderr.IsInvalidArgument(err))
	})
}

func TestInMemoryRepository(t *testing.T) {
	runRepositoryContract(t, records.NewInMemoryRepository())
}

func TestInMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := records.NewInMemoryRepository()

	rec := testRecord("Aria", 0)
	require.NoError(t, repo.Save(ctx, rec))
	rec.Moves[0] = "Changed"

	got, err := repo.Get(ctx, "Aria")
	require.NoError(t, err)
	got.Moves[1] = "Mutated"

	again, err := repo.Get(ctx, "Aria")
	require.NoError(t, err)
	assert.Equal(t, []string{"Slash", "Cleave"}, again.Moves)
}
