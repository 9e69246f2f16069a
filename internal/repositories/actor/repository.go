// Package actor provides the interface for actor document persistence
package actor

//go:generate mockgen -destination=mock/mock_repository.go -package=actormock github.com/dasu-rpg/leveling-api/internal/repositories/actor Repository

import (
	"context"

	"github.com/dasu-rpg/leveling-api/internal/entities/dasu"
)

// Repository defines the interface for actor persistence. The actor
// document is the unit of persistence: it owns the leveling plan and the
// embedded item collection. Embedded-item mutations are first-class
// operations so callers can sequence archive, delete, and plan writes as
// separate storage boundaries.
type Repository interface {
	// Create creates a new actor
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if an actor with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an actor by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if the actor doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing actor document
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the actor doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes an actor by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if the actor doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByPlayerID retrieves all actors owned by a player
	// Returns errors.InvalidArgument for empty/invalid player IDs
	// Returns errors.Internal for storage failures
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)

	// AddItems appends embedded items to an actor's collection
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the actor doesn't exist
	// Returns errors.Internal for storage failures
	AddItems(ctx context.Context, input AddItemsInput) (*AddItemsOutput, error)

	// RemoveItems drops embedded items from an actor's collection.
	// IDs not present are ignored, so a retried removal is a no-op.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the actor doesn't exist
	// Returns errors.Internal for storage failures
	RemoveItems(ctx context.Context, input RemoveItemsInput) (*RemoveItemsOutput, error)
}

// CreateInput defines the input for creating an actor
type CreateInput struct {
	Actor *dasu.Actor
}

// CreateOutput defines the output for creating an actor
type CreateOutput struct {
	Actor *dasu.Actor
}

// GetInput defines the input for getting an actor
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an actor
type GetOutput struct {
	Actor *dasu.Actor
}

// UpdateInput defines the input for updating an actor
type UpdateInput struct {
	Actor *dasu.Actor
}

// UpdateOutput defines the output for updating an actor
type UpdateOutput struct {
	Actor *dasu.Actor
}

// DeleteInput defines the input for deleting an actor
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an actor
type DeleteOutput struct{}

// ListByPlayerIDInput defines the input for listing actors by player
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing actors by player
type ListByPlayerIDOutput struct {
	Actors []*dasu.Actor
}

// AddItemsInput defines the input for appending embedded items
type AddItemsInput struct {
	ActorID string
	Items   []*dasu.Item
}

// AddItemsOutput returns the actor after the append
type AddItemsOutput struct {
	Actor *dasu.Actor
}

// RemoveItemsInput defines the input for removing embedded items
type RemoveItemsInput struct {
	ActorID string
	ItemIDs []string
}

// RemoveItemsOutput returns the actor after the removal
type RemoveItemsOutput struct {
	Actor *dasu.Actor
}
