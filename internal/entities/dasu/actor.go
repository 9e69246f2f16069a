// Package dasu implements the DASU game system entities
package dasu

// Actor represents a persisted character document. It exclusively owns
// its leveling plan and its embedded item collection.
// NOTE: This is a data-only struct. Progression math lives in the
// progression engine; plan/grant reconciliation lives in the leveling
// orchestrator.
type Actor struct {
	ID       string `json:"id"`
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`

	Level int `json:"level"`
	Merit int `json:"merit"`

	// Class, when set, replaces the legacy fixed reward tables with the
	// class's declared per-level slots.
	Class *ClassConfig `json:"class,omitempty"`

	Plan  *LevelingPlan `json:"plan"`
	Items []*Item       `json:"items,omitempty"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// EnsurePlan lazily initializes the plan on actors loaded without one
func (a *Actor) EnsurePlan() *LevelingPlan {
	if a.Plan == nil {
		a.Plan = NewLevelingPlan()
	}
	a.Plan.ensure()
	return a.Plan
}

// Item returns the embedded item with the given ID, or nil
func (a *Actor) Item(id string) *Item {
	for _, it := range a.Items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// GrantedItems returns the embedded items created by the leveling planner
func (a *Actor) GrantedItems() []*Item {
	var out []*Item
	for _, it := range a.Items {
		if it.IsGranted() {
			out = append(out, it)
		}
	}
	return out
}

// GrantedMatching returns granted items matching the (type, level,
// reference) triple, in collection order. The reconciler's uniqueness
// invariant allows at most one; extras found here are duplicates to
// collapse.
func (a *Actor) GrantedMatching(itemType ItemType, level int, ref string) []*Item {
	var out []*Item
	for _, it := range a.Items {
		if !it.IsGranted() || it.Type != itemType {
			continue
		}
		if it.Granted.Level == level && it.Granted.Reference == ref {
			out = append(out, it)
		}
	}
	return out
}

// GrantedSchemas returns every granted schema item matching the
// reference and, when slot is non-empty, the schema slot, in collection
// order. A slot holds at most one grant; extras are duplicates.
func (a *Actor) GrantedSchemas(ref, slot string) []*Item {
	var out []*Item
	for _, it := range a.Items {
		if !it.IsGranted() || it.Type != ItemTypeSchema {
			continue
		}
		if it.Granted.Reference != ref {
			continue
		}
		if slot != "" && it.Granted.SchemaSlot != slot {
			continue
		}
		out = append(out, it)
	}
	return out
}

// GrantedSchema returns the first granted schema item matching the
// reference and slot, or nil if absent
func (a *Actor) GrantedSchema(ref, slot string) *Item {
	if items := a.GrantedSchemas(ref, slot); len(items) > 0 {
		return items[0]
	}
	return nil
}

// RemoveItems drops the items with the given IDs from the embedded
// collection. It mutates the in-memory actor only; persistence is the
// repository's concern.
func (a *Actor) RemoveItems(ids ...string) {
	if len(ids) == 0 {
		return
	}
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := a.Items[:0]
	for _, it := range a.Items {
		if !drop[it.ID] {
			kept = append(kept, it)
		}
	}
	a.Items = kept
}

// Clone returns a deep copy of the actor
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}
	out := *a
	out.Class = a.Class.Clone()
	out.Plan = a.Plan.Clone()
	if a.Items != nil {
		out.Items = make([]*Item, len(a.Items))
		for i, it := range a.Items {
			out.Items[i] = it.Clone()
		}
	}
	return &out
}
