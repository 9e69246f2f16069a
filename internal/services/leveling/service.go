// Package leveling defines the interface for leveling plan operations
package leveling

//go:generate mockgen -destination=mock/mock_service.go -package=levelingmock github.com/dasu-rpg/leveling-api/internal/services/leveling Service

import (
	"context"

	"github.com/dasu-rpg/leveling-api/internal/entities/dasu"
	"github.com/dasu-rpg/leveling-api/internal/progression"
)

// Service defines the interface for leveling plan operations: the plan
// mutations and reconciliation triggers a sheet or wizard UI invokes.
type Service interface {
	// Plan slot mutations
	AssignSlot(ctx context.Context, input *AssignSlotInput) (*AssignSlotOutput, error)
	ClearSlot(ctx context.Context, input *ClearSlotInput) (*ClearSlotOutput, error)

	// Reconciliation triggers
	HandleLevelChange(ctx context.Context, input *HandleLevelChangeInput) (*HandleLevelChangeOutput, error)
	GrantMissing(ctx context.Context, input *GrantMissingInput) (*GrantMissingOutput, error)
	Sync(ctx context.Context, input *SyncInput) (*SyncOutput, error)
	ManualCleanup(ctx context.Context, input *ManualCleanupInput) (*ManualCleanupOutput, error)

	// Progression display and advancement
	GetProgression(ctx context.Context, input *GetProgressionInput) (*GetProgressionOutput, error)
	CanLevelUp(ctx context.Context, input *CanLevelUpInput) (*CanLevelUpOutput, error)
	LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error)

	// Discretionary point spending
	AllocatePoints(ctx context.Context, input *AllocatePointsInput) (*AllocatePointsOutput, error)
}

// AssignSlotInput defines the request for assigning a plan slot.
// Category is the wire name of a plannable reward kind: "ability",
// "strengthOfWill", or "schema".
type AssignSlotInput struct {
	ActorID   string
	Category  string
	Level     int
	Reference string
}

// AssignSlotOutput defines the response for assigning a plan slot
type AssignSlotOutput struct {
	Actor *dasu.Actor
	// SchemaSlot is the slot name the level mapped to, for schema
	// assignments only
	SchemaSlot string
	// Replaced is the reference the assignment displaced, "" if none
	Replaced string
	// GrantedItemIDs lists items materialized immediately because the
	// level was already reached
	GrantedItemIDs []string
}

// ClearSlotInput defines the request for clearing a plan slot
type ClearSlotInput struct {
	ActorID  string
	Category string
	Level    int
}

// ClearSlotOutput defines the response for clearing a plan slot
type ClearSlotOutput struct {
	Actor *dasu.Actor
	// Cleared is the reference the slot held, "" if it was empty
	Cleared string
	// ArchivedItemIDs lists granted items archived and removed
	ArchivedItemIDs []string
}

// HandleLevelChangeInput defines the request for reconciling after the
// actor's level moved
type HandleLevelChangeInput struct {
	ActorID  string
	OldLevel int
	NewLevel int
}

// HandleLevelChangeOutput defines the response for a level change
type HandleLevelChangeOutput struct {
	Actor          *dasu.Actor
	GrantedItemIDs []string
	RevokedItemIDs []string
}

// GrantMissingInput defines the request for the idempotent catch-up pass
type GrantMissingInput struct {
	ActorID string
}

// GrantMissingOutput defines the response for the catch-up pass
type GrantMissingOutput struct {
	Actor          *dasu.Actor
	GrantedItemIDs []string
}

// SyncInput defines the request for orphan cleanup plus catch-up
type SyncInput struct {
	ActorID string
}

// SyncOutput defines the response for sync
type SyncOutput struct {
	Actor          *dasu.Actor
	RemovedItemIDs []string
	GrantedItemIDs []string
}

// ManualCleanupInput defines the request for marker-only orphan removal
type ManualCleanupInput struct {
	ActorID string
}

// ManualCleanupOutput defines the response for manual cleanup
type ManualCleanupOutput struct {
	Actor          *dasu.Actor
	RemovedItemIDs []string
}

// GetProgressionInput defines the request for progression rows.
// MaxLevel <= 0 uses the default table cap.
type GetProgressionInput struct {
	ActorID  string
	MaxLevel int
}

// AssignedReference is a display-friendly resolution of a planned
// catalog reference. Resolution failures yield a nil assignment, not an
// error.
type AssignedReference struct {
	Reference string
	Name      string
	Img       string
}

// ProgressionRow is a progression engine row enriched with resolved
// assignments for display
type ProgressionRow struct {
	progression.Row

	AssignedAbility        *AssignedReference
	AssignedStrengthOfWill *AssignedReference
	AssignedSchema         *AssignedReference
}

// GetProgressionOutput defines the response for progression rows
type GetProgressionOutput struct {
	Rows []ProgressionRow
}

// CanLevelUpInput defines the request for an eligibility check
type CanLevelUpInput struct {
	ActorID string
}

// CanLevelUpOutput defines the response for an eligibility check
type CanLevelUpOutput struct {
	Eligible      bool
	NextLevel     int
	MeritRequired int
	Merit         int
}

// LevelUpInput defines the request for advancing one level
type LevelUpInput struct {
	ActorID string
}

// LevelUpOutput defines the response for advancing one level
type LevelUpOutput struct {
	Actor          *dasu.Actor
	GrantedItemIDs []string
	RevokedItemIDs []string
}

// AllocatePointsInput defines the request for recording discretionary
// AP/SP spending at a level
type AllocatePointsInput struct {
	ActorID string
	Level   int
	AP      map[string]int
	Skills  map[string]int
}

// AllocatePointsOutput defines the response for point allocation
type AllocatePointsOutput struct {
	Actor *dasu.Actor
}
