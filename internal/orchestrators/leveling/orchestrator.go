// Package leveling implements the leveling orchestrator: the
// plan/grant reconciler that keeps an actor's embedded items consistent
// with its leveling plan and level.
package leveling

import (
	"context"
	"log/slog"

	"github.com/dasu-rpg/leveling-api/internal/clients/catalog"
	"github.com/dasu-rpg/leveling-api/internal/entities/dasu"
	"github.com/dasu-rpg/leveling-api/internal/errors"
	"github.com/dasu-rpg/leveling-api/internal/events"
	"github.com/dasu-rpg/leveling-api/internal/pkg/idgen"
	"github.com/dasu-rpg/leveling-api/internal/progression"
	actorrepo "github.com/dasu-rpg/leveling-api/internal/repositories/actor"
	"github.com/dasu-rpg/leveling-api/internal/services/leveling"
)

// Config holds the dependencies for the leveling orchestrator
type Config struct {
	ActorRepo   actorrepo.Repository
	Catalog     catalog.Client
	EventBus    *events.Bus
	IDGenerator idgen.Generator

	// MaxLevel caps progression; zero uses the default table cap
	MaxLevel int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ActorRepo == nil {
		vb.RequiredField("ActorRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.MaxLevel < 0 {
		vb.InvalidField("MaxLevel", "must not be negative")
	}

	return vb.Build()
}

// Orchestrator implements the leveling.Service interface
type Orchestrator struct {
	actorRepo actorrepo.Repository
	catalog   catalog.Client
	eventBus  *events.Bus
	idGen     idgen.Generator
	maxLevel  int
}

// New creates a new leveling orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxLevel := cfg.MaxLevel
	if maxLevel == 0 {
		maxLevel = progression.DefaultMaxLevel
	}

	return &Orchestrator{
		actorRepo: cfg.ActorRepo,
		catalog:   cfg.Catalog,
		eventBus:  cfg.EventBus,
		idGen:     cfg.IDGenerator,
		maxLevel:  maxLevel,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ leveling.Service = (*Orchestrator)(nil)

// getActor loads an actor and guarantees its plan is initialized
func (o *Orchestrator) getActor(ctx context.Context, actorID string) (*dasu.Actor, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("actorID", actorID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.actorRepo.Get(ctx, actorrepo.GetInput{ID: actorID})
	if err != nil {
		return nil, err
	}
	out.Actor.EnsurePlan()
	return out.Actor, nil
}

// plannableKind parses a category wire name and rejects kinds that carry
// no plan slot
func plannableKind(category string) (dasu.RewardKind, error) {
	kind, err := dasu.ParseRewardKind(category)
	if err != nil {
		return 0, errors.InvalidArgumentf("unknown category %q", category)
	}
	if _, ok := kind.ItemType(); !ok {
		return 0, errors.InvalidArgumentf("category %q is not plannable", category)
	}
	return kind, nil
}

// Plan slot mutations

// AssignSlot writes a catalog reference into a plan slot. The reference
// must resolve and match the slot's item type. If the slot's level is
// already reached the grant happens immediately; a displaced granted
// item is archived before its removal.
func (o *Orchestrator) AssignSlot(ctx context.Context, input *leveling.AssignSlotInput) (*leveling.AssignSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("actorID", input.ActorID, vb)
	errors.ValidateRequired("category", input.Category, vb)
	errors.ValidateRequired("reference", input.Reference, vb)
	if input.Level < 1 {
		vb.InvalidField("level", "must be >= 1")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	kind, err := plannableKind(input.Category)
	if err != nil {
		return nil, err
	}
	itemType, _ := kind.ItemType()

	actor, err := o.getActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}
	plan := actor.Plan

	if !progression.IsRewardLevel(input.Level, kind, actor.Class) {
		return nil, errors.InvalidArgumentf("level %d does not unlock a %s slot", input.Level, kind)
	}

	slot := ""
	if kind == dasu.RewardSchema {
		slot = progression.SchemaSlotFor(input.Level, plan)
	}

	data, err := o.catalog.Resolve(ctx, input.Reference)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.InvalidArgumentf("reference %q does not resolve", input.Reference)
		}
		return nil, errors.Wrapf(err, "resolving reference %q", input.Reference)
	}
	if data.Type != itemType {
		return nil, errors.InvalidArgumentf("reference %q is a %s, slot needs a %s", input.Reference, data.Type, itemType)
	}

	prev := plan.SetReference(kind, input.Level, slot, input.Reference)
	plan.SetSnapshot(dasu.SlotKey(kind, input.Level, slot), data.Clone())

	// A displaced reference may have a granted item behind it. Archive
	// it into the plan before the removal is persisted.
	var displaced []*dasu.Item
	if prev != "" && prev != input.Reference {
		displaced = o.grantedForSlot(actor, kind, input.Level, slot)
		for _, it := range displaced {
			plan.Archive(it.Granted.Level, it.Data())
		}
	}

	if _, err := o.actorRepo.Update(ctx, actorrepo.UpdateInput{Actor: actor}); err != nil {
		return nil, err
	}

	if len(displaced) > 0 {
		if err := o.removeItems(ctx, actor, itemIDs(displaced)); err != nil {
			return nil, err
		}
	}

	// Immediate grant when the slot's level is already reached
	res, err := o.collectMissing(ctx, actor)
	if err != nil {
		return nil, err
	}
	if err := o.persistGrants(ctx, actor, res); err != nil {
		return nil, err
	}

	o.eventBus.Emit(events.PlanChanged{
		Actor:      actor.ID,
		Kind:       kind,
		Level:      input.Level,
		SchemaSlot: slot,
		Reference:  input.Reference,
		Replaced:   prev,
	})

	return &leveling.AssignSlotOutput{
		Actor:          actor,
		SchemaSlot:     slot,
		Replaced:       prev,
		GrantedItemIDs: res.ids,
	}, nil
}

// ClearSlot blanks a plan slot and revokes its granted item if one
// exists. The item's snapshot is archived and persisted before the item
// is removed, so an interrupted clear can always be retried.
func (o *Orchestrator) ClearSlot(ctx context.Context, input *leveling.ClearSlotInput) (*leveling.ClearSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("actorID", input.ActorID, vb)
	errors.ValidateRequired("category", input.Category, vb)
	if input.Level < 1 {
		vb.InvalidField("level", "must be >= 1")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	kind, err := plannableKind(input.Category)
	if err != nil {
		return nil, err
	}

	actor, err := o.getActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}
	plan := actor.Plan

	slot := ""
	if kind == dasu.RewardSchema {
		slot = progression.SchemaSlotFor(input.Level, plan)
	}

	cleared := plan.ClearReference(kind, input.Level, slot)

	// The slot's granted items are looked up by position, not reference,
	// so a retry after the plan write landed still finds them.
	revoked := o.grantedForSlot(actor, kind, input.Level, slot)
	if cleared == "" && len(revoked) > 0 {
		cleared = revoked[0].Granted.Reference
	}

	for _, it := range revoked {
		plan.Archive(it.Granted.Level, it.Data())
	}
	delete(plan.FullItems, dasu.SlotKey(kind, input.Level, slot))

	if _, err := o.actorRepo.Update(ctx, actorrepo.UpdateInput{Actor: actor}); err != nil {
		return nil, err
	}

	if len(revoked) > 0 {
		if err := o.removeItems(ctx, actor, itemIDs(revoked)); err != nil {
			return nil, err
		}
	}

	o.eventBus.Emit(events.PlanChanged{
		Actor:      actor.ID,
		Kind:       kind,
		Level:      input.Level,
		SchemaSlot: slot,
		Replaced:   cleared,
	})

	return &leveling.ClearSlotOutput{
		Actor:           actor,
		Cleared:         cleared,
		ArchivedItemIDs: itemIDs(revoked),
	}, nil
}

// Progression display and advancement

// GetProgression computes the progression rows for the actor and
// resolves the planned references for display. Resolution misses leave
// the assignment nil rather than failing the call.
func (o *Orchestrator) GetProgression(ctx context.Context, input *leveling.GetProgressionInput) (*leveling.GetProgressionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.getActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	maxLevel := input.MaxLevel
	if maxLevel <= 0 {
		maxLevel = o.maxLevel
	}

	rows := progression.Compute(maxLevel, actor.Plan, actor.Class)
	out := make([]leveling.ProgressionRow, 0, len(rows))
	for _, row := range rows {
		pr := leveling.ProgressionRow{Row: row}
		pr.AssignedAbility = o.resolveAssigned(ctx, actor.Plan,
			dasu.SlotKey(dasu.RewardAbility, row.Level, ""), row.AbilityRef)
		pr.AssignedStrengthOfWill = o.resolveAssigned(ctx, actor.Plan,
			dasu.SlotKey(dasu.RewardStrengthOfWill, row.Level, ""), row.StrengthOfWillRef)
		pr.AssignedSchema = o.resolveAssigned(ctx, actor.Plan,
			dasu.SlotKey(dasu.RewardSchema, row.Level, row.SchemaSlot), row.SchemaRef)
		out = append(out, pr)
	}

	return &leveling.GetProgressionOutput{Rows: out}, nil
}

// resolveAssigned turns a planned reference into display data, serving
// from the plan's snapshot when possible and falling back to a catalog
// lookup
func (o *Orchestrator) resolveAssigned(ctx context.Context, plan *dasu.LevelingPlan, slotKey, ref string) *leveling.AssignedReference {
	if ref == "" {
		return nil
	}
	if data := plan.Snapshot(slotKey); data != nil && data.Reference == ref {
		return &leveling.AssignedReference{Reference: ref, Name: data.Name, Img: data.Img}
	}
	data, err := o.catalog.Resolve(ctx, ref)
	if err != nil {
		slog.Debug("planned reference did not resolve for display", "reference", ref, "error", err)
		return nil
	}
	return &leveling.AssignedReference{Reference: ref, Name: data.Name, Img: data.Img}
}

// CanLevelUp reports whether the actor's merit covers the next level's
// cost
func (o *Orchestrator) CanLevelUp(ctx context.Context, input *leveling.CanLevelUpInput) (*leveling.CanLevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.getActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	next := actor.Level + 1
	return &leveling.CanLevelUpOutput{
		Eligible:      progression.CanLevelUp(actor.Level, actor.Merit, o.maxLevel),
		NextLevel:     next,
		MeritRequired: progression.MeritRequired(next),
		Merit:         actor.Merit,
	}, nil
}

// LevelUp spends merit to advance the actor one level, then reconciles
// grants for the new level
func (o *Orchestrator) LevelUp(ctx context.Context, input *leveling.LevelUpInput) (*leveling.LevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.getActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	if actor.Level >= o.maxLevel {
		return nil, errors.FailedPreconditionf("actor %s is at the level cap %d", actor.ID, o.maxLevel)
	}
	cost := progression.MeritRequired(actor.Level + 1)
	if actor.Merit < cost {
		return nil, errors.FailedPreconditionf("level %d requires %d merit, actor %s has %d",
			actor.Level+1, cost, actor.ID, actor.Merit).
			WithMeta("merit_required", cost).
			WithMeta("merit", actor.Merit)
	}

	oldLevel := actor.Level
	actor.Merit -= cost

	granted, revoked, err := o.applyLevelChange(ctx, actor, oldLevel, oldLevel+1)
	if err != nil {
		return nil, err
	}

	return &leveling.LevelUpOutput{
		Actor:          actor,
		GrantedItemIDs: granted,
		RevokedItemIDs: revoked,
	}, nil
}

// AllocatePoints records how the actor spends a level's attribute and
// skill points. The allocation may not exceed what the level grants.
func (o *Orchestrator) AllocatePoints(ctx context.Context, input *leveling.AllocatePointsInput) (*leveling.AllocatePointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("actorID", input.ActorID, vb)
	if input.Level < 1 {
		vb.InvalidField("level", "must be >= 1")
	}
	for attr, amount := range input.AP {
		if !dasu.ValidAttribute(attr) {
			vb.InvalidField("ap", "unknown attribute "+attr)
		}
		if amount < 0 {
			vb.InvalidField("ap", "amounts must not be negative")
		}
	}
	for skill, amount := range input.Skills {
		if amount < 0 {
			vb.InvalidField("skills", "amounts must not be negative")
		}
		// A level raises any single skill by at most one point.
		if amount > 1 {
			vb.InvalidField("skills", "at most 1 point per skill ("+skill+")")
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	actor, err := o.getActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	if input.Level > o.maxLevel {
		return nil, errors.InvalidArgumentf("level %d is beyond the cap %d", input.Level, o.maxLevel)
	}

	rows := progression.Compute(input.Level, actor.Plan, actor.Class)
	row := rows[input.Level-1]

	alloc := &dasu.PointAllocation{AP: input.AP, Skills: input.Skills}
	if alloc.TotalAP() > row.APGained {
		return nil, errors.InvalidArgumentf("level %d grants %d attribute points, allocation spends %d",
			input.Level, row.APGained, alloc.TotalAP())
	}
	if alloc.TotalSP() > row.SPGained {
		return nil, errors.InvalidArgumentf("level %d grants %d skill points, allocation spends %d",
			input.Level, row.SPGained, alloc.TotalSP())
	}

	actor.Plan.Allocations[input.Level] = alloc.Clone()

	if _, err := o.actorRepo.Update(ctx, actorrepo.UpdateInput{Actor: actor}); err != nil {
		return nil, err
	}

	return &leveling.AllocatePointsOutput{Actor: actor}, nil
}

// grantedForSlot returns the granted items currently filling a plan
// slot, located by position rather than reference
func (o *Orchestrator) grantedForSlot(actor *dasu.Actor, kind dasu.RewardKind, level int, slot string) []*dasu.Item {
	itemType, ok := kind.ItemType()
	if !ok {
		return nil
	}
	var out []*dasu.Item
	for _, it := range actor.Items {
		if !it.IsGranted() || it.Type != itemType {
			continue
		}
		if kind == dasu.RewardSchema {
			if it.Granted.SchemaSlot == slot {
				out = append(out, it)
			}
			continue
		}
		if it.Granted.Level == level {
			out = append(out, it)
		}
	}
	return out
}

// removeItems drops items from storage and from the in-memory actor
func (o *Orchestrator) removeItems(ctx context.Context, actor *dasu.Actor, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := o.actorRepo.RemoveItems(ctx, actorrepo.RemoveItemsInput{
		ActorID: actor.ID,
		ItemIDs: ids,
	}); err != nil {
		return err
	}
	actor.RemoveItems(ids...)
	o.eventBus.Emit(events.ItemsRevoked{Actor: actor.ID, ItemIDs: ids})
	return nil
}

func itemIDs(items []*dasu.Item) []string {
	if len(items) == 0 {
		return nil
	}
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}
