package dasu

import "fmt"

// ItemType identifies the kind of an embedded item
type ItemType string

// Item types that the leveling planner can grant
const (
	ItemTypeAbility        ItemType = "ability"
	ItemTypeSchema         ItemType = "schema"
	ItemTypeStrengthOfWill ItemType = "strengthOfWill"
)

// TraitInnate marks an item as granted by character progression rather
// than acquired in play.
const TraitInnate = "innate"

// ItemData is a denormalized copy of a catalog item's content. It is what
// the catalog resolver returns, what the plan caches as a snapshot, and
// what a grant is materialized from.
type ItemData struct {
	Reference   string   `json:"reference"`
	Type        ItemType `json:"type"`
	Name        string   `json:"name"`
	Img         string   `json:"img,omitempty"`
	Description string   `json:"description,omitempty"`
	Traits      []string `json:"traits,omitempty"`
}

// Clone returns a deep copy of the item data
func (d *ItemData) Clone() *ItemData {
	if d == nil {
		return nil
	}
	out := *d
	if d.Traits != nil {
		out.Traits = append([]string(nil), d.Traits...)
	}
	return &out
}

// LevelingSource records the provenance of a granted item: which level it
// was granted for, which catalog reference it came from, and for schema
// items which of the two schema slots it fills.
type LevelingSource struct {
	Level      int    `json:"level"`
	Reference  string `json:"reference"`
	SchemaSlot string `json:"schemaSlot,omitempty"`
}

// Validate checks that the source is well-formed
func (s *LevelingSource) Validate() error {
	if s == nil {
		return fmt.Errorf("leveling source is nil")
	}
	if s.Level < 1 {
		return fmt.Errorf("leveling source level must be >= 1, got %d", s.Level)
	}
	if s.Reference == "" {
		return fmt.Errorf("leveling source reference is empty")
	}
	if s.SchemaSlot != "" && s.SchemaSlot != SchemaSlotFirst && s.SchemaSlot != SchemaSlotSecond {
		return fmt.Errorf("unknown schema slot %q", s.SchemaSlot)
	}
	return nil
}

// Item is an embedded item owned by an actor.
// NOTE: This is a data-only struct. Reward rules and grant mechanics live
// in the progression engine and the leveling orchestrator, not here.
type Item struct {
	ID          string   `json:"id"`
	Type        ItemType `json:"type"`
	Name        string   `json:"name"`
	Img         string   `json:"img,omitempty"`
	Description string   `json:"description,omitempty"`
	Traits      []string `json:"traits,omitempty"`

	// SchemaRank is the stamped progression rank of a schema item,
	// evaluated at the grant's source level.
	SchemaRank int `json:"schemaRank,omitempty"`

	// Granted is set only on items materialized by the leveling planner.
	Granted *LevelingSource `json:"granted,omitempty"`
}

// IsGranted reports whether the item was created by the leveling planner
func (i *Item) IsGranted() bool {
	return i.Granted != nil
}

// HasTrait reports whether the item carries the given trait
func (i *Item) HasTrait(trait string) bool {
	for _, t := range i.Traits {
		if t == trait {
			return true
		}
	}
	return false
}

// Data returns the item's content as catalog-shaped data, used when
// archiving a granted item back into the plan's stored snapshots.
func (i *Item) Data() *ItemData {
	ref := ""
	if i.Granted != nil {
		ref = i.Granted.Reference
	}
	return &ItemData{
		Reference:   ref,
		Type:        i.Type,
		Name:        i.Name,
		Img:         i.Img,
		Description: i.Description,
		Traits:      append([]string(nil), i.Traits...),
	}
}

// Clone returns a deep copy of the item
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	out := *i
	if i.Traits != nil {
		out.Traits = append([]string(nil), i.Traits...)
	}
	if i.Granted != nil {
		src := *i.Granted
		out.Granted = &src
	}
	return &out
}
