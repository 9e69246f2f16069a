package actor_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/dasu-rpg/leveling-api/internal/entities/dasu"
	"github.com/dasu-rpg/leveling-api/internal/errors"
	"github.com/dasu-rpg/leveling-api/internal/pkg/clock"
	redisclient "github.com/dasu-rpg/leveling-api/internal/redis"
	"github.com/dasu-rpg/leveling-api/internal/repositories/actor"
	"github.com/dasu-rpg/leveling-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    redisclient.Client
	repo      actor.Repository
	ctx       context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	client, err := redisclient.NewClient(mr.Addr(), nil)
	s.Require().NoError(err)
	s.client = client

	repo, err := actor.NewRedis(&actor.RedisConfig{
		Client: s.client,
		Clock:  clock.NewFixed(time.Unix(1700000000, 0)),
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.miniRedis.Close()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testActor(id string) *dasu.Actor {
	return &dasu.Actor{
		ID:       id,
		PlayerID: "player_1",
		Name:     "Aki",
		Level:    1,
		Plan:     dasu.NewLevelingPlan(),
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, actor.CreateInput{Actor: s.testActor("actor_1")})
	s.Require().NoError(err)
	s.Equal(int64(1700000000), created.Actor.CreatedAt)
	s.True(s.miniRedis.Exists("actor:actor_1"))

	got, err := s.repo.Get(s.ctx, actor.GetInput{ID: "actor_1"})
	s.Require().NoError(err)
	s.Equal("Aki", got.Actor.Name)
	s.NotNil(got.Actor.Plan)
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	_, err := s.repo.Create(s.ctx, actor.CreateInput{Actor: s.testActor("actor_1")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, actor.CreateInput{Actor: s.testActor("actor_1")})
	s.Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, actor.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, actor.CreateInput{Actor: &dasu.Actor{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, actor.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdatePersistsPlan() {
	_, err := s.repo.Create(s.ctx, actor.CreateInput{Actor: s.testActor("actor_1")})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, actor.GetInput{ID: "actor_1"})
	s.Require().NoError(err)

	got.Actor.Level = 4
	got.Actor.Plan.Abilities[4] = "catalog.abilityX"
	_, err = s.repo.Update(s.ctx, actor.UpdateInput{Actor: got.Actor})
	s.Require().NoError(err)

	reloaded, err := s.repo.Get(s.ctx, actor.GetInput{ID: "actor_1"})
	s.Require().NoError(err)
	s.Equal(4, reloaded.Actor.Level)
	s.Equal("catalog.abilityX", reloaded.Actor.Plan.Abilities[4])
}

func (s *RedisRepositoryTestSuite) TestUpdateNotFound() {
	_, err := s.repo.Update(s.ctx, actor.UpdateInput{Actor: s.testActor("missing")})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDeleteRemovesIndexEntry() {
	_, err := s.repo.Create(s.ctx, actor.CreateInput{Actor: s.testActor("actor_1")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, actor.DeleteInput{ID: "actor_1"})
	s.Require().NoError(err)

	s.False(s.miniRedis.Exists("actor:actor_1"))

	out, err := s.repo.ListByPlayerID(s.ctx, actor.ListByPlayerIDInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Empty(out.Actors)
}

func (s *RedisRepositoryTestSuite) TestListByPlayerID() {
	_, err := s.repo.Create(s.ctx, actor.CreateInput{Actor: s.testActor("actor_1")})
	s.Require().NoError(err)
	second := s.testActor("actor_2")
	second.Name = "Rei"
	_, err = s.repo.Create(s.ctx, actor.CreateInput{Actor: second})
	s.Require().NoError(err)

	out, err := s.repo.ListByPlayerID(s.ctx, actor.ListByPlayerIDInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Len(out.Actors, 2)
}

func (s *RedisRepositoryTestSuite) TestAddAndRemoveItems() {
	_, err := s.repo.Create(s.ctx, actor.CreateInput{Actor: s.testActor("actor_1")})
	s.Require().NoError(err)

	item := &dasu.Item{
		ID:   "item_1",
		Type: dasu.ItemTypeAbility,
		Name: "Flame Surge",
		Granted: &dasu.LevelingSource{
			Level:     2,
			Reference: "catalog.flame-surge",
		},
	}

	added, err := s.repo.AddItems(s.ctx, actor.AddItemsInput{
		ActorID: "actor_1",
		Items:   []*dasu.Item{item},
	})
	s.Require().NoError(err)
	s.Len(added.Actor.Items, 1)

	reloaded, err := s.repo.Get(s.ctx, actor.GetInput{ID: "actor_1"})
	s.Require().NoError(err)
	s.Require().Len(reloaded.Actor.Items, 1)
	s.Equal("catalog.flame-surge", reloaded.Actor.Items[0].Granted.Reference)

	removed, err := s.repo.RemoveItems(s.ctx, actor.RemoveItemsInput{
		ActorID: "actor_1",
		ItemIDs: []string{"item_1"},
	})
	s.Require().NoError(err)
	s.Empty(removed.Actor.Items)

	// Removing an already-absent ID is a no-op
	again, err := s.repo.RemoveItems(s.ctx, actor.RemoveItemsInput{
		ActorID: "actor_1",
		ItemIDs: []string{"item_1"},
	})
	s.Require().NoError(err)
	s.Empty(again.Actor.Items)
}

func (s *RedisRepositoryTestSuite) TestAddItemsValidation() {
	_, err := s.repo.AddItems(s.ctx, actor.AddItemsInput{ActorID: "actor_1"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.AddItems(s.ctx, actor.AddItemsInput{
		ActorID: "actor_1",
		Items:   []*dasu.Item{{Name: "no id"}},
	})
	s.True(errors.IsInvalidArgument(err))
}

func TestNewRedisRequiresClient(t *testing.T) {
	_, err := actor.NewRedis(&actor.RedisConfig{})
	require.Error(t, err)
	require.True(t, errors.IsInvalidArgument(err))
}

func TestRedisRepositoryWithTestClient(t *testing.T) {
	client, cleanup := testutils.CreateTestRedisClient(t)
	defer cleanup()

	repo, err := actor.NewRedis(&actor.RedisConfig{
		Client: client,
		Clock:  clock.New(),
	})
	require.NoError(t, err)

	created, err := repo.Create(context.Background(), actor.CreateInput{
		Actor: testutils.NewTestActor("actor_helper"),
	})
	require.NoError(t, err)
	require.Equal(t, "actor_helper", created.Actor.ID)
}
