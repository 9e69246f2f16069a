package actor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dasu-rpg/leveling-api/internal/entities/dasu"
	"github.com/dasu-rpg/leveling-api/internal/errors"
	"github.com/dasu-rpg/leveling-api/internal/repositories/actor"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	repo actor.Repository
	ctx  context.Context
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.repo = actor.NewInMemory()
	s.ctx = context.Background()
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func (s *InMemoryRepositoryTestSuite) TestLifecycle() {
	created, err := s.repo.Create(s.ctx, actor.CreateInput{Actor: &dasu.Actor{
		ID:       "actor_1",
		PlayerID: "player_1",
		Name:     "Aki",
		Level:    1,
	}})
	s.Require().NoError(err)
	s.NotNil(created.Actor.Plan)

	got, err := s.repo.Get(s.ctx, actor.GetInput{ID: "actor_1"})
	s.Require().NoError(err)
	s.Equal("Aki", got.Actor.Name)

	got.Actor.Merit = 5
	_, err = s.repo.Update(s.ctx, actor.UpdateInput{Actor: got.Actor})
	s.Require().NoError(err)

	reloaded, err := s.repo.Get(s.ctx, actor.GetInput{ID: "actor_1"})
	s.Require().NoError(err)
	s.Equal(5, reloaded.Actor.Merit)

	_, err = s.repo.Delete(s.ctx, actor.DeleteInput{ID: "actor_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, actor.GetInput{ID: "actor_1"})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestStoredCopyIsIsolated() {
	source := &dasu.Actor{ID: "actor_1", PlayerID: "player_1", Level: 1}
	_, err := s.repo.Create(s.ctx, actor.CreateInput{Actor: source})
	s.Require().NoError(err)

	// Mutating the caller's struct must not leak into the store
	source.Name = "changed"

	got, err := s.repo.Get(s.ctx, actor.GetInput{ID: "actor_1"})
	s.Require().NoError(err)
	s.Empty(got.Actor.Name)

	// Mutating a returned copy must not leak either
	got.Actor.Plan.Abilities[2] = "catalog.abilityX"
	again, err := s.repo.Get(s.ctx, actor.GetInput{ID: "actor_1"})
	s.Require().NoError(err)
	s.Empty(again.Actor.Plan.Abilities)
}

func (s *InMemoryRepositoryTestSuite) TestItemOperations() {
	_, err := s.repo.Create(s.ctx, actor.CreateInput{Actor: &dasu.Actor{
		ID: "actor_1", PlayerID: "player_1", Level: 2,
	}})
	s.Require().NoError(err)

	out, err := s.repo.AddItems(s.ctx, actor.AddItemsInput{
		ActorID: "actor_1",
		Items: []*dasu.Item{
			{ID: "item_1", Type: dasu.ItemTypeAbility, Name: "Flame Surge"},
			{ID: "item_2", Type: dasu.ItemTypeSchema, Name: "Ember Frame"},
		},
	})
	s.Require().NoError(err)
	s.Len(out.Actor.Items, 2)

	removed, err := s.repo.RemoveItems(s.ctx, actor.RemoveItemsInput{
		ActorID: "actor_1",
		ItemIDs: []string{"item_1", "item_404"},
	})
	s.Require().NoError(err)
	s.Require().Len(removed.Actor.Items, 1)
	s.Equal("item_2", removed.Actor.Items[0].ID)
}

func (s *InMemoryRepositoryTestSuite) TestListByPlayerID() {
	for _, id := range []string{"actor_1", "actor_2"} {
		_, err := s.repo.Create(s.ctx, actor.CreateInput{Actor: &dasu.Actor{
			ID: id, PlayerID: "player_1",
		}})
		s.Require().NoError(err)
	}
	_, err := s.repo.Create(s.ctx, actor.CreateInput{Actor: &dasu.Actor{
		ID: "actor_3", PlayerID: "player_2",
	}})
	s.Require().NoError(err)

	out, err := s.repo.ListByPlayerID(s.ctx, actor.ListByPlayerIDInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Len(out.Actors, 2)
}
