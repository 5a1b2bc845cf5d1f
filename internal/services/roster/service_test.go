package roster_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/records"
	mockrecords "github.com/KirkDiggler/rpg-battle/internal/repositories/records/mock"
	"github.com/KirkDiggler/rpg-battle/internal/services/roster"
	mockroster "github.com/KirkDiggler/rpg-battle/internal/services/roster/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	catalog *mockroster.MockCatalog
	repo    *records.InMemoryRepository
	svc     roster.Service
	ctx     context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.catalog = mockroster.NewMockCatalog(s.ctrl)
	s.repo = records.NewInMemoryRepository()
	s.svc = roster.NewService(&roster.ServiceConfig{
		Repository: s.repo,
		Catalog:    s.catalog,
	})
	s.ctx = context.Background()

	s.catalog.EXPECT().Character(gomock.Any(), "knight").Return(knight(), nil).AnyTimes()
	s.catalog.EXPECT().Character(gomock.Any(), "wolf").Return(&entities.CharacterDefinition{
		Key: "wolf", Name: "Wolf", BaseHP: 30, BaseAttack: 8, BaseDefense: 4, BaseSpeed: 16,
		Learnset: []entities.LearnableMove{{Move: slash, Level: 1}},
	}, nil).AnyTimes()
	s.catalog.EXPECT().Character(gomock.Any(), gomock.Any()).Return(nil, dnderr.NotFound("no such character")).AnyTimes()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestSpawn_FirstTimeParticipants() {
	players, err := s.svc.Spawn(s.ctx, []string{"knight", "wolf"})
	s.Require().NoError(err)
	s.Require().Len(players, 2)

	for _, p := range players {
		s.Equal(entities.SidePlayer, p.Side)
		s.Equal(1, p.Level)
		s.Equal(p.MaxHP, p.CurrentHP)
	}
}

func (s *ServiceTestSuite) TestSpawn_RehydratesSavedParty() {
	s.Require().NoError(s.repo.Save(s.ctx, &records.Record{
		Name: "Wolf", DefinitionKey: "wolf", Slot: 0, Level: 2, MaxHP: 33, CurrentHP: 20, Moves: []string{"Slash"},
	}))
	s.Require().NoError(s.repo.Save(s.ctx, &records.Record{
		Name: "Knight", DefinitionKey: "knight", Slot: 1, Level: 4, MaxHP: 133, CurrentHP: 0,
		Attack: 25, Defense: 12, Speed: 13, Moves: []string{"Slash", "Bash"},
	}))

	players, err := s.svc.Spawn(s.ctx, []string{"knight"})
	s.Require().NoError(err)
	s.Require().Len(players, 2)

	s.Equal("Wolf", players[0].Name())
	s.Equal(20, players[0].CurrentHP)

	s.Equal("Knight", players[1].Name())
	s.Equal(4, players[1].Level)
	s.Equal(133, players[1].CurrentHP, "knocked out members come back at full health")
	s.Equal([]string{"Slash", "Bash"}, players[1].MoveNames())
}

func (s *ServiceTestSuite) TestSpawn_UnknownDefinition() {
	_, err := s.svc.Spawn(s.ctx, []string{"dragon"})
	s.True(dnderr.IsConfiguration(err))

	_, err = s.svc.Spawn(s.ctx, nil)
	s.True(dnderr.IsConfiguration(err))
}

func (s *ServiceTestSuite) TestSpawnEnemies_UniqueIDs() {
	enemies, err := s.svc.SpawnEnemies(s.ctx, []string{"wolf", "wolf", "knight"}, 3)
	s.Require().NoError(err)

	s.Equal("enemy-wolf", enemies[0].ID)
	s.Equal("enemy-wolf-2", enemies[1].ID)
	s.Equal("enemy-knight", enemies[2].ID)
	for _, e := range enemies {
		s.Equal(entities.SideEnemy, e.Side)
		s.Equal(3, e.Level)
	}
}

func (s *ServiceTestSuite) TestPersistAndRelease() {
	players, err := s.svc.Spawn(s.ctx, []string{"knight", "wolf"})
	s.Require().NoError(err)
	players[1].TakeDamage(10)

	s.Require().NoError(s.svc.Persist(s.ctx, players))

	saved, err := s.repo.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(saved, 2)
	s.Equal("Wolf", saved[1].Name)
	s.Equal(1, saved[1].Slot)
	s.Equal(20, saved[1].CurrentHP)

	s.NoError(s.svc.Release(s.ctx, "Wolf"))
	s.NoError(s.svc.Release(s.ctx, "Wolf"), "releasing twice is fine")

	saved, err = s.repo.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Len(saved, 1)
}

func TestService_RepositoryFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockrecords.NewMockRepository(ctrl)
	catalog := mockroster.NewMockCatalog(ctrl)
	svc := roster.NewService(&roster.ServiceConfig{Repository: repo, Catalog: catalog})
	ctx := context.Background()

	repo.EXPECT().LoadAll(ctx).Return(nil, errors.New("connection refused"))
	_, err := svc.Spawn(ctx, []string{"knight"})
	assert.Error(t, err)

	repo.EXPECT().Delete(ctx, "Knight").Return(errors.New("connection refused"))
	assert.Error(t, svc.Release(ctx, "Knight"))

	r, err := entities.NewRuntime(knight(), 1)
	require.NoError(t, err)
	repo.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("disk full"))
	assert.Error(t, svc.Persist(ctx, []*entities.Runtime{r}))
}

func TestNewService_PanicsWithoutDependencies(t *testing.T) {
	assert.Panics(t, func() { roster.NewService(nil) })
	assert.Panics(t, func() { roster.NewService(&roster.ServiceConfig{}) })
}
