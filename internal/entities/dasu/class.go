package dasu

import "sort"

// Attribute keys a point allocation may spend AP on
const (
	AttributePower     = "pow"
	AttributeDexterity = "dex"
	AttributeWill      = "wil"
	AttributeStamina   = "sta"
)

// Attributes lists the valid attribute keys
var Attributes = []string{AttributePower, AttributeDexterity, AttributeWill, AttributeStamina}

// ValidAttribute reports whether key names a spendable attribute
func ValidAttribute(key string) bool {
	for _, a := range Attributes {
		if a == key {
			return true
		}
	}
	return false
}

// ClassConfig is the optional class progression configuration attached to
// an actor. When present it fully overrides the legacy fixed reward
// tables: a level with no declared slots grants nothing, even where the
// legacy tables would have granted a reward.
type ClassConfig struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// APFormula and SPFormula override the default attribute/skill point
	// gains. Formulas substitute "level" and evaluate in integer
	// arithmetic, or use the odd:<start>-<end> / even:<start>-<end>
	// parity forms. Invalid formulas fall back to the defaults.
	APFormula string `json:"apFormula,omitempty"`
	SPFormula string `json:"spFormula,omitempty"`

	// LevelSlots declares, per level, which reward kinds unlock there.
	LevelSlots map[int][]RewardKind `json:"levelSlots,omitempty"`
}

// RewardsAt returns the reward set the class declares for a level
func (c *ClassConfig) RewardsAt(level int) RewardSet {
	if c == nil {
		return 0
	}
	return NewRewardSet(c.LevelSlots[level]...)
}

// SchemaLevels returns the ascending levels at which the class declares a
// schema slot
func (c *ClassConfig) SchemaLevels() []int {
	if c == nil {
		return nil
	}
	var levels []int
	for lvl, kinds := range c.LevelSlots {
		for _, k := range kinds {
			if k == RewardSchema {
				levels = append(levels, lvl)
				break
			}
		}
	}
	sort.Ints(levels)
	return levels
}

// Clone returns a deep copy of the class config
func (c *ClassConfig) Clone() *ClassConfig {
	if c == nil {
		return nil
	}
	out := *c
	if c.LevelSlots != nil {
		out.LevelSlots = make(map[int][]RewardKind, len(c.LevelSlots))
		for lvl, kinds := range c.LevelSlots {
			out.LevelSlots[lvl] = append([]RewardKind(nil), kinds...)
		}
	}
	return &out
}

// PointAllocation records discretionary AP/SP spending for one level
type PointAllocation struct {
	// AP maps attribute key to points spent
	AP map[string]int `json:"ap,omitempty"`
	// Skills maps skill ID to rank spent, 0 or 1 per level
	Skills map[string]int `json:"sp,omitempty"`
}

// TotalAP sums the spent attribute points
func (a *PointAllocation) TotalAP() int {
	if a == nil {
		return 0
	}
	total := 0
	for _, v := range a.AP {
		total += v
	}
	return total
}

// TotalSP sums the spent skill points
func (a *PointAllocation) TotalSP() int {
	if a == nil {
		return 0
	}
	total := 0
	for _, v := range a.Skills {
		total += v
	}
	return total
}

// Clone returns a deep copy of the allocation
func (a *PointAllocation) Clone() *PointAllocation {
	if a == nil {
		return nil
	}
	out := &PointAllocation{}
	if a.AP != nil {
		out.AP = make(map[string]int, len(a.AP))
		for k, v := range a.AP {
			out.AP[k] = v
		}
	}
	if a.Skills != nil {
		out.Skills = make(map[string]int, len(a.Skills))
		for k, v := range a.Skills {
			out.Skills[k] = v
		}
	}
	return out
}
