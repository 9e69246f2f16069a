package actor

import (
	"context"
	"sync"

	"github.com/dasu-rpg/leveling-api/internal/entities/dasu"
	"github.com/dasu-rpg/leveling-api/internal/errors"
	"github.com/dasu-rpg/leveling-api/internal/pkg/clock"
)

// InMemory is an in-memory implementation of the actor repository.
// Useful for testing and development.
type InMemory struct {
	mu     sync.RWMutex
	actors map[string]*dasu.Actor
	clock  clock.Clock
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemory {
	return &InMemory{
		actors: make(map[string]*dasu.Actor),
		clock:  clock.New(),
	}
}

// NewInMemoryWithClock creates an in-memory repository with a custom
// clock, for tests that assert timestamps.
func NewInMemoryWithClock(c clock.Clock) *InMemory {
	return &InMemory{
		actors: make(map[string]*dasu.Actor),
		clock:  c,
	}
}

// Ensure InMemory implements the Repository interface
var _ Repository = (*InMemory)(nil)

// Create implements Repository
func (r *InMemory) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Actor == nil {
		return nil, errors.InvalidArgument(errActorNil)
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actors[input.Actor.ID]; exists {
		return nil, errors.AlreadyExistsf("actor with ID %s already exists", input.Actor.ID).
			WithMeta("actor_id", input.Actor.ID)
	}

	now := r.clock.Now().Unix()
	input.Actor.CreatedAt = now
	input.Actor.UpdatedAt = now
	input.Actor.EnsurePlan()

	// Store a copy to avoid external modifications
	r.actors[input.Actor.ID] = input.Actor.Clone()

	return &CreateOutput{Actor: input.Actor}, nil
}

// Get implements Repository
func (r *InMemory) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	actor, exists := r.actors[input.ID]
	if !exists {
		return nil, errors.NotFoundf("actor with ID %s not found", input.ID).
			WithMeta("actor_id", input.ID)
	}

	return &GetOutput{Actor: actor.Clone()}, nil
}

// Update implements Repository
func (r *InMemory) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Actor == nil {
		return nil, errors.InvalidArgument(errActorNil)
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actors[input.Actor.ID]; !exists {
		return nil, errors.NotFoundf("actor with ID %s not found", input.Actor.ID)
	}

	input.Actor.UpdatedAt = r.clock.Now().Unix()
	r.actors[input.Actor.ID] = input.Actor.Clone()

	return &UpdateOutput{Actor: input.Actor}, nil
}

// Delete implements Repository
func (r *InMemory) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actors[input.ID]; !exists {
		return nil, errors.NotFoundf("actor with ID %s not found", input.ID)
	}

	delete(r.actors, input.ID)

	return &DeleteOutput{}, nil
}

// ListByPlayerID implements Repository
func (r *InMemory) ListByPlayerID(_ context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*dasu.Actor
	for _, actor := range r.actors {
		if actor.PlayerID == input.PlayerID {
			out = append(out, actor.Clone())
		}
	}

	return &ListByPlayerIDOutput{Actors: out}, nil
}

// AddItems implements Repository
func (r *InMemory) AddItems(_ context.Context, input AddItemsInput) (*AddItemsOutput, error) {
	if input.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}
	if len(input.Items) == 0 {
		return nil, errors.InvalidArgument("items cannot be empty")
	}
	for _, item := range input.Items {
		if item == nil || item.ID == "" {
			return nil, errors.InvalidArgument("item ID cannot be empty")
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	actor, exists := r.actors[input.ActorID]
	if !exists {
		return nil, errors.NotFoundf("actor with ID %s not found", input.ActorID)
	}

	for _, item := range input.Items {
		actor.Items = append(actor.Items, item.Clone())
	}
	actor.UpdatedAt = r.clock.Now().Unix()

	return &AddItemsOutput{Actor: actor.Clone()}, nil
}

// RemoveItems implements Repository
func (r *InMemory) RemoveItems(_ context.Context, input RemoveItemsInput) (*RemoveItemsOutput, error) {
	if input.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}
	if len(input.ItemIDs) == 0 {
		return nil, errors.InvalidArgument("item IDs cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	actor, exists := r.actors[input.ActorID]
	if !exists {
		return nil, errors.NotFoundf("actor with ID %s not found", input.ActorID)
	}

	actor.RemoveItems(input.ItemIDs...)
	actor.UpdatedAt = r.clock.Now().Unix()

	return &RemoveItemsOutput{Actor: actor.Clone()}, nil
}
