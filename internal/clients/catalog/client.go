// Package catalog is the read-only compendium lookup the leveling
// planner resolves catalog references against. The planner never mutates
// catalog content; references are opaque foreign keys into it.
package catalog

//go:generate mockgen -destination=mock/mock_client.go -package=catalogmock github.com/dasu-rpg/leveling-api/internal/clients/catalog Client

import (
	"context"

	"github.com/dasu-rpg/leveling-api/internal/entities/dasu"
)

// Client defines the interface for catalog lookups
type Client interface {
	// Resolve fetches the full item data behind a catalog reference.
	// Returns errors.NotFound when the reference does not resolve; the
	// reconciler treats that as a soft miss, never a hard failure.
	Resolve(ctx context.Context, reference string) (*dasu.ItemData, error)

	// ListByType returns all catalog entries of the given item type,
	// used by UI layers to populate pickers.
	ListByType(ctx context.Context, itemType dasu.ItemType) ([]*dasu.ItemData, error)
}
