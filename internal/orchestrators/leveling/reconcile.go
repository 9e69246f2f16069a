package leveling

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/dasu-rpg/leveling-api/internal/entities/dasu"
	"github.com/dasu-rpg/leveling-api/internal/errors"
	"github.com/dasu-rpg/leveling-api/internal/events"
	"github.com/dasu-rpg/leveling-api/internal/progression"
	actorrepo "github.com/dasu-rpg/leveling-api/internal/repositories/actor"
	"github.com/dasu-rpg/leveling-api/internal/services/leveling"
)

// grantResult collects the outcome of a grant pass: items to append,
// duplicate grants to collapse, whether existing items were mutated in
// place (schema rank refresh), and every granted item ID.
type grantResult struct {
	items   []*dasu.Item
	extras  []*dasu.Item
	updated bool
	ids     []string
}

// HandleLevelChange reconciles the actor's items after its level moved.
// Going up grants the newly reached levels' planned rewards and consumes
// their one-shot plan entries; going down archives and revokes every
// grant sourced above the new level, restoring its plan entry so a later
// climb re-grants it.
func (o *Orchestrator) HandleLevelChange(ctx context.Context, input *leveling.HandleLevelChangeInput) (*leveling.HandleLevelChangeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.NewLevel < 1 {
		return nil, errors.InvalidArgument("newLevel must be >= 1")
	}

	actor, err := o.getActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	granted, revoked, err := o.applyLevelChange(ctx, actor, input.OldLevel, input.NewLevel)
	if err != nil {
		return nil, err
	}

	return &leveling.HandleLevelChangeOutput{
		Actor:          actor,
		GrantedItemIDs: granted,
		RevokedItemIDs: revoked,
	}, nil
}

// applyLevelChange is the shared level-move reconciliation behind
// HandleLevelChange and LevelUp. Grants sourced above the new level are
// revoked whichever way the level moved, so a stray over-level grant is
// cleaned up even on a climb.
func (o *Orchestrator) applyLevelChange(ctx context.Context, actor *dasu.Actor, oldLevel, newLevel int) (granted, revoked []string, err error) {
	actor.Level = newLevel

	if drops := o.grantsAbove(actor, newLevel); len(drops) > 0 {
		for _, it := range drops {
			actor.Plan.Archive(it.Granted.Level, it.Data())
			o.restorePlanEntry(actor, it)
		}
		if _, err := o.actorRepo.Update(ctx, actorrepo.UpdateInput{Actor: actor}); err != nil {
			return nil, nil, err
		}
		if err := o.removeItems(ctx, actor, itemIDs(drops)); err != nil {
			return nil, nil, err
		}
		revoked = itemIDs(drops)
	}

	res, err := o.collectMissing(ctx, actor)
	if err != nil {
		return nil, nil, err
	}
	if err := o.persistGrants(ctx, actor, res); err != nil {
		return nil, nil, err
	}

	// One-shot consumption: level-keyed plan entries for the levels just
	// reached are spent once their grant is persisted. The slot's full
	// item snapshot stays behind so the granted item is never mistaken
	// for an orphan.
	consumed := false
	for level := oldLevel + 1; level <= newLevel; level++ {
		for _, kind := range []dasu.RewardKind{dasu.RewardAbility, dasu.RewardStrengthOfWill} {
			if actor.Plan.ClearReference(kind, level, "") != "" {
				consumed = true
			}
		}
	}
	if consumed || newLevel != oldLevel {
		if _, err := o.actorRepo.Update(ctx, actorrepo.UpdateInput{Actor: actor}); err != nil {
			return nil, nil, err
		}
	}

	o.eventBus.Emit(events.LevelChanged{Actor: actor.ID, OldLevel: oldLevel, NewLevel: newLevel})

	return res.ids, revoked, nil
}

// GrantMissing is the idempotent catch-up pass: it materializes every
// planned reward whose level is reached but whose item is absent, and
// refreshes schema ranks to the latest slot level reached. Running it
// twice grants nothing the second time.
func (o *Orchestrator) GrantMissing(ctx context.Context, input *leveling.GrantMissingInput) (*leveling.GrantMissingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.getActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	res, err := o.collectMissing(ctx, actor)
	if err != nil {
		return nil, err
	}
	if err := o.persistGrants(ctx, actor, res); err != nil {
		return nil, err
	}

	return &leveling.GrantMissingOutput{Actor: actor, GrantedItemIDs: res.ids}, nil
}

// Sync removes orphaned grants, then runs the catch-up pass. An orphan
// is a granted item whose reference no longer appears anywhere in the
// plan, or a duplicate of another grant in the same slot.
func (o *Orchestrator) Sync(ctx context.Context, input *leveling.SyncInput) (*leveling.SyncOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.getActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	removed, err := o.removeOrphans(ctx, actor)
	if err != nil {
		return nil, err
	}

	res, err := o.collectMissing(ctx, actor)
	if err != nil {
		return nil, err
	}
	if err := o.persistGrants(ctx, actor, res); err != nil {
		return nil, err
	}

	return &leveling.SyncOutput{
		Actor:          actor,
		RemovedItemIDs: removed,
		GrantedItemIDs: res.ids,
	}, nil
}

// ManualCleanup removes orphaned grants without re-granting anything
func (o *Orchestrator) ManualCleanup(ctx context.Context, input *leveling.ManualCleanupInput) (*leveling.ManualCleanupOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.getActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	removed, err := o.removeOrphans(ctx, actor)
	if err != nil {
		return nil, err
	}

	return &leveling.ManualCleanupOutput{Actor: actor, RemovedItemIDs: removed}, nil
}

// removeOrphans archives and removes granted items no longer covered by
// the plan, plus duplicate grants in the same slot. Archives are
// persisted before the removal lands.
func (o *Orchestrator) removeOrphans(ctx context.Context, actor *dasu.Actor) ([]string, error) {
	plan := actor.Plan

	seen := make(map[string]bool)
	var orphans []*dasu.Item
	for _, it := range actor.GrantedItems() {
		if !plan.ContainsReference(it.Granted.Reference) {
			orphans = append(orphans, it)
			continue
		}
		// Schema grants are unique per slot; everything else is unique
		// per (type, level, reference), so the same reference granted at
		// two levels is not a duplicate.
		key := string(it.Type) + "|" + it.Granted.Reference + "|"
		if it.Type == dasu.ItemTypeSchema {
			key += it.Granted.SchemaSlot
		} else {
			key += strconv.Itoa(it.Granted.Level)
		}
		if seen[key] {
			orphans = append(orphans, it)
			continue
		}
		seen[key] = true
	}

	if len(orphans) == 0 {
		return nil, nil
	}

	for _, it := range orphans {
		plan.Archive(it.Granted.Level, it.Data())
	}
	if _, err := o.actorRepo.Update(ctx, actorrepo.UpdateInput{Actor: actor}); err != nil {
		return nil, err
	}
	if err := o.removeItems(ctx, actor, itemIDs(orphans)); err != nil {
		return nil, err
	}

	return itemIDs(orphans), nil
}

// grantsAbove returns the granted items sourced above the given level
func (o *Orchestrator) grantsAbove(actor *dasu.Actor, level int) []*dasu.Item {
	var out []*dasu.Item
	for _, it := range actor.GrantedItems() {
		if it.Granted.Level > level {
			out = append(out, it)
		}
	}
	return out
}

// restorePlanEntry writes a revoked grant's reference back into its plan
// slot, so the plan again describes the reward and a later level-up
// restores the item from the archive
func (o *Orchestrator) restorePlanEntry(actor *dasu.Actor, it *dasu.Item) {
	plan := actor.Plan
	switch it.Type {
	case dasu.ItemTypeAbility:
		if plan.Abilities[it.Granted.Level] == "" {
			plan.SetReference(dasu.RewardAbility, it.Granted.Level, "", it.Granted.Reference)
		}
	case dasu.ItemTypeStrengthOfWill:
		if plan.StrengthOfWill[it.Granted.Level] == "" {
			plan.SetReference(dasu.RewardStrengthOfWill, it.Granted.Level, "", it.Granted.Reference)
		}
	case dasu.ItemTypeSchema:
		// Schema slots are not level-keyed and are never consumed; the
		// slot still holds the reference.
	}
}

// collectMissing computes the grant pass for the actor's current level:
// planned abilities and strength of will features whose level is reached
// but whose item is absent, schema grants for unlocked slots, and schema
// rank refreshes when a higher slot level has been reached. Where a slot
// somehow holds more than one grant, all but the first are marked for
// collapse.
func (o *Orchestrator) collectMissing(ctx context.Context, actor *dasu.Actor) (*grantResult, error) {
	plan := actor.Plan
	res := &grantResult{}

	levelKinds := []dasu.RewardKind{dasu.RewardAbility, dasu.RewardStrengthOfWill}
	for _, kind := range levelKinds {
		itemType, _ := kind.ItemType()
		for _, level := range plan.PlannedLevels(kind) {
			if level > actor.Level {
				continue
			}
			if !progression.IsRewardLevel(level, kind, actor.Class) {
				continue
			}
			ref := plan.Reference(kind, level, "")
			if matches := actor.GrantedMatching(itemType, level, ref); len(matches) > 0 {
				// At most one grant per (type, level, reference); the
				// first wins and the rest are collapsed.
				res.extras = append(res.extras, matches[1:]...)
				continue
			}
			item, err := o.materialize(ctx, plan, kind, level, "", ref)
			if err != nil {
				return nil, err
			}
			if item != nil {
				res.items = append(res.items, item)
				res.ids = append(res.ids, item.ID)
			}
		}
	}

	for _, slot := range []string{dasu.SchemaSlotFirst, dasu.SchemaSlotSecond} {
		ref := plan.Schemas[slot]
		if ref == "" {
			continue
		}
		src := progression.LatestSchemaLevel(slot, actor.Level, plan, actor.Class)
		if src == 0 {
			continue
		}
		granted := actor.GrantedSchemas(ref, slot)
		if len(granted) > 1 {
			res.extras = append(res.extras, granted[1:]...)
		}
		var existing *dasu.Item
		if len(granted) > 0 {
			existing = granted[0]
		}
		if existing == nil {
			item, err := o.materialize(ctx, plan, dasu.RewardSchema, src, slot, ref)
			if err != nil {
				return nil, err
			}
			if item != nil {
				res.items = append(res.items, item)
				res.ids = append(res.ids, item.ID)
			}
			continue
		}
		if existing.Granted.Level != src {
			existing.Granted.Level = src
			existing.SchemaRank = progression.SchemaRank(src, slot)
			res.updated = true
			res.ids = append(res.ids, existing.ID)
		}
	}

	return res, nil
}

// materialize builds the embedded item for a grant. Content comes from
// the archive when the same reference was revoked at this level, else
// the plan's slot snapshot, else a live catalog lookup. A reference that
// resolves nowhere is a soft miss: the grant is skipped with a warning
// and reconciliation continues.
func (o *Orchestrator) materialize(ctx context.Context, plan *dasu.LevelingPlan, kind dasu.RewardKind, level int, slot, ref string) (*dasu.Item, error) {
	itemType, _ := kind.ItemType()

	data := plan.ArchivedFor(level, ref)
	if data == nil {
		if snap := plan.Snapshot(dasu.SlotKey(kind, level, slot)); snap != nil && snap.Reference == ref {
			data = snap
		}
	}
	if data == nil {
		resolved, err := o.catalog.Resolve(ctx, ref)
		if err != nil {
			if errors.IsNotFound(err) {
				slog.Warn("planned reference did not resolve, skipping grant",
					"reference", ref, "category", kind.String(), "level", level)
				return nil, nil
			}
			return nil, errors.Wrapf(err, "resolving reference %q", ref)
		}
		data = resolved
	}
	if data.Type != itemType {
		slog.Warn("planned reference has the wrong item type, skipping grant",
			"reference", ref, "got", data.Type, "want", itemType)
		return nil, nil
	}

	traits := append([]string(nil), data.Traits...)
	hasInnate := false
	for _, t := range traits {
		if t == dasu.TraitInnate {
			hasInnate = true
			break
		}
	}
	if !hasInnate {
		traits = append(traits, dasu.TraitInnate)
	}

	item := &dasu.Item{
		ID:          o.idGen.Generate(),
		Type:        itemType,
		Name:        data.Name,
		Img:         data.Img,
		Description: data.Description,
		Traits:      traits,
		Granted: &dasu.LevelingSource{
			Level:      level,
			Reference:  ref,
			SchemaSlot: slot,
		},
	}
	if kind == dasu.RewardSchema {
		item.SchemaRank = progression.SchemaRank(level, slot)
	}
	return item, nil
}

// persistGrants lands a grant pass: duplicate grants are deleted
// outright, in-place item updates go through a document write, new
// items through an append, then the granted event
func (o *Orchestrator) persistGrants(ctx context.Context, actor *dasu.Actor, res *grantResult) error {
	if len(res.extras) > 0 {
		// The surviving grant keeps the slot covered, so the extras are
		// not archived before removal.
		if err := o.removeItems(ctx, actor, itemIDs(res.extras)); err != nil {
			return err
		}
	}
	if res.updated {
		if _, err := o.actorRepo.Update(ctx, actorrepo.UpdateInput{Actor: actor}); err != nil {
			return err
		}
	}
	if len(res.items) > 0 {
		if _, err := o.actorRepo.AddItems(ctx, actorrepo.AddItemsInput{
			ActorID: actor.ID,
			Items:   res.items,
		}); err != nil {
			return err
		}
		actor.Items = append(actor.Items, res.items...)
	}
	if len(res.ids) > 0 {
		o.eventBus.Emit(events.ItemsGranted{Actor: actor.ID, ItemIDs: res.ids})
	}
	return nil
}
