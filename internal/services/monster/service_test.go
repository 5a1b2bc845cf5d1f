package monster_test

import (
	"context"
	"errors"
	"testing"

	mockdnd5e "github.com/KirkDiggler/rpg-battle/internal/clients/dnd5e/mock"
	mockdice "github.com/KirkDiggler/rpg-battle/internal/dice/mock"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/services/monster"
	"github.com/KirkDiggler/rpg-battle/internal/testutils"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MonsterServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	client  *mockdnd5e.MockClient
	roller  *mockdice.ManualMockRoller
	service monster.Service
	ctx     context.Context
}

func (s *MonsterServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.client = mockdnd5e.NewMockClient(s.ctrl)
	s.roller = mockdice.NewManualMockRoller()
	s.service = monster.NewService(&monster.ServiceConfig{
		DNDClient: s.client,
		Roller:    s.roller,
	})
	s.ctx = context.Background()
}

func (s *MonsterServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *MonsterServiceTestSuite) TestGetMonster_Caches() {
	goblin := testutils.CreateTestDefinition("goblin", 34, 13, 10, 9, testutils.CreateTestMove("Scimitar", 6))
	s.client.EXPECT().GetMonster("goblin").Return(goblin, nil).Times(1)

	first, err := s.service.GetMonster(s.ctx, "goblin")
	s.Require().NoError(err)
	second, err := s.service.GetMonster(s.ctx, "goblin")
	s.Require().NoError(err)

	s.Same(goblin, first)
	s.Same(first, second)
}

func (s *MonsterServiceTestSuite) TestGetMonster_Errors() {
	_, err := s.service.GetMonster(s.ctx, "")
	s.True(dnderr.IsInvalidArgument(err))

	s.client.EXPECT().GetMonster("tarrasque").Return(nil, errors.New("boom"))
	_, err = s.service.GetMonster(s.ctx, "tarrasque")
	s.Require().Error(err)
	s.Contains(err.Error(), "tarrasque")
}

func (s *MonsterServiceTestSuite) TestGetMonstersByCR_FillsMonsterCache() {
	wolf := testutils.CreateTestDefinition("wolf", 42, 13, 8, 9, testutils.CreateTestMove("Bite", 7))
	s.client.EXPECT().ListMonstersByCR(float32(0.25), float32(1)).
		Return([]*entities.CharacterDefinition{wolf}, nil).Times(1)

	defs, err := s.service.GetMonstersByCR(s.ctx, 0.25, 1)
	s.Require().NoError(err)
	s.Len(defs, 1)

	_, err = s.service.GetMonstersByCR(s.ctx, 0.25, 1)
	s.Require().NoError(err)

	cached, err := s.service.GetMonster(s.ctx, "wolf")
	s.Require().NoError(err)
	s.Same(wolf, cached)
}

func (s *MonsterServiceTestSuite) TestGetRandomMonsters() {
	goblin := testutils.CreateTestDefinition("goblin", 34, 13, 10, 9, testutils.CreateTestMove("Scimitar", 6))
	kobold := testutils.CreateTestDefinition("kobold", 30, 13, 7, 8, testutils.CreateTestMove("Dagger", 4))
	s.client.EXPECT().ListMonstersByCR(float32(0), float32(0.5)).
		Return([]*entities.CharacterDefinition{goblin, kobold}, nil)
	s.roller.SetRolls([]int{2, 1, 2})

	defs, err := s.service.GetRandomMonsters(s.ctx, "Easy", 3)
	s.Require().NoError(err)
	s.Equal([]*entities.CharacterDefinition{kobold, goblin, kobold}, defs)
}

func (s *MonsterServiceTestSuite) TestGetRandomMonsters_BadDifficulty() {
	_, err := s.service.GetRandomMonsters(s.ctx, "impossible", 1)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *MonsterServiceTestSuite) TestGetRandomMonsters_NoneFound() {
	s.client.EXPECT().ListMonstersByCR(float32(1), float32(3)).Return(nil, nil)

	_, err := s.service.GetRandomMonsters(s.ctx, "deadly", 1)
	s.True(dnderr.IsNotFound(err))
}

func TestMonsterServiceSuite(t *testing.T) {
	suite.Run(t, new(MonsterServiceTestSuite))
}

func TestNewService_PanicsWithoutClient(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	monster.NewService(&monster.ServiceConfig{})
}
