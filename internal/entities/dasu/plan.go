package dasu

import (
	"fmt"
	"sort"
)

// Schema slot names. Exactly two schema slots exist regardless of level.
const (
	SchemaSlotFirst  = "first"
	SchemaSlotSecond = "second"
)

// LevelingPlan is the player's declared intent for which catalog item
// fills which future reward slot. It lives inside the actor's system data;
// the actor is the unit of persistence.
//
// The plan mappings hold opaque catalog references. FullItems holds
// write-once-per-assignment snapshots keyed by slot key, the fallback
// source for materializing a grant without a live catalog lookup.
// StoredItems archives items removed from the actor so progression stays
// reversible; nothing is ever silently discarded.
type LevelingPlan struct {
	Abilities      map[int]string              `json:"abilities,omitempty"`
	StrengthOfWill map[int]string              `json:"strengthOfWill,omitempty"`
	Schemas        map[string]string           `json:"schemas,omitempty"`
	FullItems      map[string]*ItemData        `json:"fullItems,omitempty"`
	StoredItems    map[int][]*ItemData         `json:"storedItems,omitempty"`
	Allocations    map[int]*PointAllocation    `json:"pointAllocations,omitempty"`
}

// NewLevelingPlan returns an empty plan with initialized maps
func NewLevelingPlan() *LevelingPlan {
	p := &LevelingPlan{}
	p.ensure()
	return p
}

// ensure initializes nil maps; plans arriving from JSON may omit them.
func (p *LevelingPlan) ensure() {
	if p.Abilities == nil {
		p.Abilities = make(map[int]string)
	}
	if p.StrengthOfWill == nil {
		p.StrengthOfWill = make(map[int]string)
	}
	if p.Schemas == nil {
		p.Schemas = make(map[string]string)
	}
	if p.FullItems == nil {
		p.FullItems = make(map[string]*ItemData)
	}
	if p.StoredItems == nil {
		p.StoredItems = make(map[int][]*ItemData)
	}
	if p.Allocations == nil {
		p.Allocations = make(map[int]*PointAllocation)
	}
}

// SlotKey derives the FullItems key for a plan slot. Ability and strength
// of will slots are keyed by level, schema slots by slot name.
func SlotKey(kind RewardKind, level int, schemaSlot string) string {
	switch kind {
	case RewardSchema:
		return fmt.Sprintf("schema-%s", schemaSlot)
	case RewardStrengthOfWill:
		return fmt.Sprintf("strengthOfWill-%d", level)
	default:
		return fmt.Sprintf("ability-%d", level)
	}
}

// Reference returns the planned catalog reference for a slot, or "" if
// the slot is empty.
func (p *LevelingPlan) Reference(kind RewardKind, level int, schemaSlot string) string {
	p.ensure()
	switch kind {
	case RewardAbility:
		return p.Abilities[level]
	case RewardStrengthOfWill:
		return p.StrengthOfWill[level]
	case RewardSchema:
		return p.Schemas[schemaSlot]
	default:
		return ""
	}
}

// SetReference writes a reference into a slot, returning the reference it
// replaced ("" if the slot was empty). Overwriting a planned reference
// abandons it without archiving; only granted items get archived.
func (p *LevelingPlan) SetReference(kind RewardKind, level int, schemaSlot, ref string) string {
	p.ensure()
	var prev string
	switch kind {
	case RewardAbility:
		prev = p.Abilities[level]
		p.Abilities[level] = ref
	case RewardStrengthOfWill:
		prev = p.StrengthOfWill[level]
		p.StrengthOfWill[level] = ref
	case RewardSchema:
		prev = p.Schemas[schemaSlot]
		p.Schemas[schemaSlot] = ref
	}
	return prev
}

// ClearReference blanks a slot, returning the reference it held.
// Clearing an already-empty slot is a no-op.
func (p *LevelingPlan) ClearReference(kind RewardKind, level int, schemaSlot string) string {
	p.ensure()
	var prev string
	switch kind {
	case RewardAbility:
		prev = p.Abilities[level]
		delete(p.Abilities, level)
	case RewardStrengthOfWill:
		prev = p.StrengthOfWill[level]
		delete(p.StrengthOfWill, level)
	case RewardSchema:
		prev = p.Schemas[schemaSlot]
		delete(p.Schemas, schemaSlot)
	}
	return prev
}

// PlannedLevels returns the levels holding a reference for the given
// kind, ascending. Schema slots are not level-keyed and return nil.
func (p *LevelingPlan) PlannedLevels(kind RewardKind) []int {
	p.ensure()
	var m map[int]string
	switch kind {
	case RewardAbility:
		m = p.Abilities
	case RewardStrengthOfWill:
		m = p.StrengthOfWill
	default:
		return nil
	}
	levels := make([]int, 0, len(m))
	for lvl, ref := range m {
		if ref != "" {
			levels = append(levels, lvl)
		}
	}
	sort.Ints(levels)
	return levels
}

// Snapshot returns the cached full item for a slot key, or nil
func (p *LevelingPlan) Snapshot(slotKey string) *ItemData {
	p.ensure()
	return p.FullItems[slotKey]
}

// SetSnapshot caches the full item for a slot key
func (p *LevelingPlan) SetSnapshot(slotKey string, data *ItemData) {
	p.ensure()
	p.FullItems[slotKey] = data
}

// Archive appends an item snapshot to the stored items for a level.
// If a snapshot with the same reference is already archived at that level
// the call is a no-op, so a retried archive-then-delete sequence cannot
// duplicate entries.
func (p *LevelingPlan) Archive(level int, data *ItemData) bool {
	if data == nil {
		return false
	}
	p.ensure()
	for _, stored := range p.StoredItems[level] {
		if stored.Reference == data.Reference {
			return false
		}
	}
	p.StoredItems[level] = append(p.StoredItems[level], data.Clone())
	return true
}

// ArchivedFor returns the stored snapshot at a level matching the given
// reference, or nil. A hit means a grant can be served as a restoration
// without a catalog lookup.
func (p *LevelingPlan) ArchivedFor(level int, ref string) *ItemData {
	p.ensure()
	for _, stored := range p.StoredItems[level] {
		if stored.Reference == ref {
			return stored
		}
	}
	return nil
}

// ContainsReference reports whether a catalog reference appears anywhere
// in the plan: the three slot mappings or the cached full items. Granted
// items whose one-shot plan entry was consumed on level-up remain covered
// through their persistent FullItems snapshot, so they are not orphans.
func (p *LevelingPlan) ContainsReference(ref string) bool {
	if ref == "" {
		return false
	}
	p.ensure()
	for _, r := range p.Abilities {
		if r == ref {
			return true
		}
	}
	for _, r := range p.StrengthOfWill {
		if r == ref {
			return true
		}
	}
	for _, r := range p.Schemas {
		if r == ref {
			return true
		}
	}
	for _, data := range p.FullItems {
		if data != nil && data.Reference == ref {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the plan
func (p *LevelingPlan) Clone() *LevelingPlan {
	if p == nil {
		return nil
	}
	out := NewLevelingPlan()
	for k, v := range p.Abilities {
		out.Abilities[k] = v
	}
	for k, v := range p.StrengthOfWill {
		out.StrengthOfWill[k] = v
	}
	for k, v := range p.Schemas {
		out.Schemas[k] = v
	}
	for k, v := range p.FullItems {
		out.FullItems[k] = v.Clone()
	}
	for k, items := range p.StoredItems {
		cloned := make([]*ItemData, len(items))
		for i, item := range items {
			cloned[i] = item.Clone()
		}
		out.StoredItems[k] = cloned
	}
	for k, v := range p.Allocations {
		out.Allocations[k] = v.Clone()
	}
	return out
}
