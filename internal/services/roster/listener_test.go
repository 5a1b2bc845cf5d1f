package roster_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-battle/internal/effects"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/events"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/records"
	"github.com/KirkDiggler/rpg-battle/internal/services/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListener_SavesPlayerChanges(t *testing.T) {
	ctx := context.Background()
	repo := records.NewInMemoryRepository()
	bus := events.NewBus()

	player, err := entities.NewRuntime(knight(), 1)
	require.NoError(t, err)
	player.Side = entities.SidePlayer
	enemy, err := entities.NewRuntime(knight(), 1)
	require.NoError(t, err)

	listener := roster.NewListener(ctx, &roster.ListenerConfig{
		Repository: repo,
		Party:      func() []*entities.Runtime { return []*entities.Runtime{player} },
	})
	listener.Subscribe(bus)

	player.TakeDamage(25)
	require.NoError(t, bus.Emit(&events.DamageAppliedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeDamageApplied},
		Actor:     enemy,
		Target:    player,
		Damage:    25,
	}))

	rec, err := repo.Get(ctx, "Knight")
	require.NoError(t, err)
	assert.Equal(t, 75, rec.CurrentHP)
	assert.Equal(t, 0, rec.Slot)

	enemy.TakeDamage(10)
	require.NoError(t, bus.Emit(&events.DamageAppliedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeDamageApplied},
		Actor:     player,
		Target:    enemy,
		Damage:    10,
	}))

	all, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "enemy changes are not persisted")

	player.Level = 2
	require.NoError(t, bus.Emit(&events.LevelUpEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeLevelUp},
		Runtime:   player,
		Level:     2,
	}))

	rec, err = repo.Get(ctx, "Knight")
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Level)
}

func TestListener_SavesStatsWithoutEffects(t *testing.T) {
	ctx := context.Background()
	repo := records.NewInMemoryRepository()
	bus := events.NewBus()

	player, err := entities.NewRuntime(knight(), 1)
	require.NoError(t, err)
	player.Side = entities.SidePlayer

	listener := roster.NewListener(ctx, &roster.ListenerConfig{
		Repository: repo,
		Party:      func() []*entities.Runtime { return []*entities.Runtime{player} },
	})
	listener.Subscribe(bus)

	player.Effects.Apply(player, effects.KindPoison, 3)
	results := player.Effects.Tick(player)
	require.Len(t, results, 1)
	require.NoError(t, bus.Emit(&events.EffectTickedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeEffectTicked},
		Target:    player,
		Result:    results[0],
	}))

	rec, err := repo.Get(ctx, "Knight")
	require.NoError(t, err)
	assert.Equal(t, 95, rec.CurrentHP)
	assert.Equal(t, 20, rec.Attack)
	assert.Equal(t, 18, player.Attack)
}
