// Package progression implements the DASU progression table engine: pure
// computation of per-level rewards, merit costs, and schema ranks from
// static tables and an actor's leveling plan.
package progression

import (
	"github.com/dasu-rpg/leveling-api/internal/entities/dasu"
)

// DefaultMaxLevel is the level cap the tables are authored for
const DefaultMaxLevel = 30

// meritTable holds the merit cost to reach each level, indexed by level.
// Index 0 is unused; level 1 costs nothing.
var meritTable = [DefaultMaxLevel + 1]int{
	0,          // unused
	0, 1, 1, 2, // 1-4
	2, 3, 3, 4, // 5-8
	4, 5, 5, 6, // 9-12
	6, 7, 7, 8, // 13-16
	8, 9, 9, 10, // 17-20
	10, 11, 11, 12, // 21-24
	12, 13, 13, 14, // 25-28
	14, 15, // 29-30
}

// MeritRequired returns the merit cost to advance to the given level.
// Above the authored table the cost extends linearly, continuing the
// every-other-level increase.
func MeritRequired(level int) int {
	if level < 1 {
		return 0
	}
	if level <= DefaultMaxLevel {
		return meritTable[level]
	}
	return level / 2
}

// ToLevelRequired returns the cumulative merit spent reaching the given
// level from level 1.
func ToLevelRequired(level int) int {
	total := 0
	for l := 1; l <= level; l++ {
		total += MeritRequired(l)
	}
	return total
}

// schemaSlotByLevel is the fixed mapping from schema reward levels to the
// named slot they fill.
var schemaSlotByLevel = map[int]string{
	1:  dasu.SchemaSlotFirst,
	5:  dasu.SchemaSlotFirst,
	10: dasu.SchemaSlotSecond,
	15: dasu.SchemaSlotFirst,
	20: dasu.SchemaSlotSecond,
	25: dasu.SchemaSlotFirst,
}

// strengthOfWillLevels are the legacy levels that unlock a strength of
// will feature slot.
var strengthOfWillLevels = map[int]bool{
	6: true, 12: true, 18: true, 24: true, 30: true,
}

// FixedSchemaSlot returns the slot name the fixed table assigns to a
// level, if any.
func FixedSchemaSlot(level int) (string, bool) {
	slot, ok := schemaSlotByLevel[level]
	return slot, ok
}

// SchemaSlotFor resolves which schema slot a reward level fills. Levels
// in the fixed table always map through it. A class-driven custom schema
// level falls back to whichever slot the plan has not occupied yet,
// preferring first.
func SchemaSlotFor(level int, plan *dasu.LevelingPlan) string {
	if slot, ok := schemaSlotByLevel[level]; ok {
		return slot
	}
	if plan != nil {
		if plan.Schemas[dasu.SchemaSlotFirst] == "" {
			return dasu.SchemaSlotFirst
		}
		if plan.Schemas[dasu.SchemaSlotSecond] == "" {
			return dasu.SchemaSlotSecond
		}
	}
	return dasu.SchemaSlotFirst
}

// SchemaRank returns the progression rank stamped on a schema item
// granted for the given source level and slot. The rank depends on the
// grant's source level, not the character's live level, so retroactive
// grants do not drift.
func SchemaRank(level int, slot string) int {
	switch slot {
	case dasu.SchemaSlotFirst:
		switch {
		case level >= 15:
			return 3
		case level >= 5:
			return 2
		case level >= 1:
			return 1
		}
	case dasu.SchemaSlotSecond:
		switch {
		case level >= 25:
			return 3
		case level >= 20:
			return 2
		case level >= 10:
			return 1
		}
	}
	return 0
}

// legacyRewards computes the class-less reward set for a level: abilities
// on even levels, an aptitude bump every third level, schemas and
// strength of will on their fixed level sets.
func legacyRewards(level int) dasu.RewardSet {
	var s dasu.RewardSet
	if level > 0 && level%2 == 0 {
		s = s.Add(dasu.RewardAbility)
	}
	if level > 0 && level%3 == 0 {
		s = s.Add(dasu.RewardAptitude)
	}
	if _, ok := schemaSlotByLevel[level]; ok {
		s = s.Add(dasu.RewardSchema)
	}
	if strengthOfWillLevels[level] {
		s = s.Add(dasu.RewardStrengthOfWill)
	}
	return s
}

// RewardsAt returns the reward set for a level under the active policy.
// A present class fully overrides the legacy tables: levels the class
// declares no slots for grant nothing.
func RewardsAt(level int, class *dasu.ClassConfig) dasu.RewardSet {
	if class != nil {
		return class.RewardsAt(level)
	}
	return legacyRewards(level)
}

// IsRewardLevel reports whether a level unlocks the given reward kind
// under the active policy.
func IsRewardLevel(level int, kind dasu.RewardKind, class *dasu.ClassConfig) bool {
	return RewardsAt(level, class).Has(kind)
}

// CanLevelUp reports whether a character at the given level with the
// given merit is eligible to advance, under the given cap.
func CanLevelUp(level, merit, maxLevel int) bool {
	if level >= maxLevel {
		return false
	}
	return merit >= MeritRequired(level + 1)
}
