// Package events distributes leveling notifications to subscribed views.
// It replaces ad hoc per-document listener registries with an explicit
// subscription interface: any number of observers may subscribe and
// unsubscribe deterministically.
package events

import (
	"github.com/dasu-rpg/leveling-api/internal/entities/dasu"
)

// Type identifies a kind of leveling event
type Type string

// Event types emitted by the leveling orchestrator
const (
	TypePlanChanged  Type = "leveling.plan_changed"
	TypeLevelChanged Type = "leveling.level_changed"
	TypeItemsGranted Type = "leveling.items_granted"
	TypeItemsRevoked Type = "leveling.items_revoked"
)

// Event is a leveling notification
type Event interface {
	Type() Type
	ActorID() string
}

// PlanChanged is emitted when a plan slot is assigned, overwritten, or
// cleared. Replaced carries the reference the write displaced so a view
// can warn about abandoned plans.
type PlanChanged struct {
	Actor      string
	Kind       dasu.RewardKind
	Level      int
	SchemaSlot string
	Reference  string
	Replaced   string
}

// Type implements Event
func (e PlanChanged) Type() Type { return TypePlanChanged }

// ActorID implements Event
func (e PlanChanged) ActorID() string { return e.Actor }

// LevelChanged is emitted after an actor's level moves
type LevelChanged struct {
	Actor    string
	OldLevel int
	NewLevel int
}

// Type implements Event
func (e LevelChanged) Type() Type { return TypeLevelChanged }

// ActorID implements Event
func (e LevelChanged) ActorID() string { return e.Actor }

// ItemsGranted is emitted after the reconciler materializes items
type ItemsGranted struct {
	Actor   string
	ItemIDs []string
}

// Type implements Event
func (e ItemsGranted) Type() Type { return TypeItemsGranted }

// ActorID implements Event
func (e ItemsGranted) ActorID() string { return e.Actor }

// ItemsRevoked is emitted after the reconciler archives and removes items
type ItemsRevoked struct {
	Actor   string
	ItemIDs []string
}

// Type implements Event
func (e ItemsRevoked) Type() Type { return TypeItemsRevoked }

// ActorID implements Event
func (e ItemsRevoked) ActorID() string { return e.Actor }
