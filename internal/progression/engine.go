package progression

import (
	"github.com/dasu-rpg/leveling-api/internal/entities/dasu"
)

// Default point gains, used when no class formula applies
const (
	defaultSPPerLevel = 2
)

// Row is the derived progression entry for one level: the points and
// rewards the level earns, the merit gate to reach it, and the plan's
// assigned catalog references for its slots. Rows are pure functions of
// the level, the static tables or class config, and the plan; they are
// never persisted.
type Row struct {
	Level int

	APGained int
	SPGained int
	TotalAP  int
	TotalSP  int

	MeritRequired   int
	ToLevelRequired int

	Rewards    dasu.RewardSet
	SchemaSlot string

	// Raw planned catalog references for this level's slots, "" when
	// unassigned. Display resolution against the catalog happens in the
	// orchestrator, leaving this package free of I/O.
	AbilityRef        string
	StrengthOfWillRef string
	SchemaRef         string
}

// apGained returns the attribute points earned at a level: the class
// formula when one parses, else 1 on odd levels.
func apGained(level int, class *dasu.ClassConfig) int {
	if class != nil && class.APFormula != "" {
		if v, err := Eval(class.APFormula, level); err == nil {
			return v
		}
	}
	if level%2 == 1 {
		return 1
	}
	return 0
}

// spGained returns the skill points earned at a level: the class formula
// when one parses, else a flat 2.
func spGained(level int, class *dasu.ClassConfig) int {
	if class != nil && class.SPFormula != "" {
		if v, err := Eval(class.SPFormula, level); err == nil {
			return v
		}
	}
	return defaultSPPerLevel
}

// Compute builds the progression rows for levels 1..maxLevel. The plan
// and class may be nil; maxLevel values below 1 yield no rows.
func Compute(maxLevel int, plan *dasu.LevelingPlan, class *dasu.ClassConfig) []Row {
	if maxLevel < 1 {
		return nil
	}

	rows := make([]Row, 0, maxLevel)
	totalAP, totalSP := 0, 0

	for level := 1; level <= maxLevel; level++ {
		ap := apGained(level, class)
		sp := spGained(level, class)
		totalAP += ap
		totalSP += sp

		row := Row{
			Level:           level,
			APGained:        ap,
			SPGained:        sp,
			TotalAP:         totalAP,
			TotalSP:         totalSP,
			MeritRequired:   MeritRequired(level),
			ToLevelRequired: ToLevelRequired(level),
			Rewards:         RewardsAt(level, class),
		}

		if row.Rewards.Has(dasu.RewardSchema) {
			row.SchemaSlot = SchemaSlotFor(level, plan)
		}

		if plan != nil {
			if row.Rewards.Has(dasu.RewardAbility) {
				row.AbilityRef = plan.Abilities[level]
			}
			if row.Rewards.Has(dasu.RewardStrengthOfWill) {
				row.StrengthOfWillRef = plan.StrengthOfWill[level]
			}
			if row.SchemaSlot != "" {
				row.SchemaRef = plan.Schemas[row.SchemaSlot]
			}
		}

		rows = append(rows, row)
	}

	return rows
}

// EarliestSchemaLevel returns the lowest level at or below maxLevel whose
// reward set fills the given schema slot, or 0 if none does. It is how
// the reconciler decides when a planned schema slot unlocks.
func EarliestSchemaLevel(slot string, maxLevel int, plan *dasu.LevelingPlan, class *dasu.ClassConfig) int {
	for level := 1; level <= maxLevel; level++ {
		if !RewardsAt(level, class).Has(dasu.RewardSchema) {
			continue
		}
		if SchemaSlotFor(level, plan) == slot {
			return level
		}
	}
	return 0
}

// LatestSchemaLevel returns the highest level at or below maxLevel whose
// reward set fills the given schema slot, or 0 if none does. A granted
// schema's source level, and therefore its rank, tracks the latest slot
// level the character has reached.
func LatestSchemaLevel(slot string, maxLevel int, plan *dasu.LevelingPlan, class *dasu.ClassConfig) int {
	for level := maxLevel; level >= 1; level-- {
		if !RewardsAt(level, class).Has(dasu.RewardSchema) {
			continue
		}
		if SchemaSlotFor(level, plan) == slot {
			return level
		}
	}
	return 0
}
