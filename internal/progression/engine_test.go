package progression_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dasu-rpg/leveling-api/internal/entities/dasu"
	"github.com/dasu-rpg/leveling-api/internal/progression"
)

type EngineTestSuite struct {
	suite.Suite
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) TestComputeDefaults() {
	rows := progression.Compute(30, nil, nil)
	s.Require().Len(rows, 30)

	// SP is a flat 2, AP lands on odd levels
	for _, row := range rows {
		s.Equal(2, row.SPGained, "level %d", row.Level)
		if row.Level%2 == 1 {
			s.Equal(1, row.APGained, "level %d", row.Level)
		} else {
			s.Equal(0, row.APGained, "level %d", row.Level)
		}
	}

	// Totals accumulate
	s.Equal(60, rows[29].TotalSP)
	s.Equal(15, rows[29].TotalAP)

	// Merit gates come from the table
	s.Equal(1, rows[1].MeritRequired)
	s.Equal(1, rows[1].ToLevelRequired)
	s.Equal(15, rows[29].MeritRequired)
}

func (s *EngineTestSuite) TestComputeSchemaSlots() {
	rows := progression.Compute(30, nil, nil)

	type slotCase struct {
		level int
		slot  string
	}
	expected := []slotCase{
		{1, dasu.SchemaSlotFirst},
		{5, dasu.SchemaSlotFirst},
		{10, dasu.SchemaSlotSecond},
		{15, dasu.SchemaSlotFirst},
		{20, dasu.SchemaSlotSecond},
		{25, dasu.SchemaSlotFirst},
	}
	for _, tc := range expected {
		row := rows[tc.level-1]
		s.True(row.Rewards.Has(dasu.RewardSchema), "level %d", tc.level)
		s.Equal(tc.slot, row.SchemaSlot, "level %d", tc.level)
	}

	// Non-schema levels carry no slot name
	s.Empty(rows[6].SchemaSlot)
}

func (s *EngineTestSuite) TestComputeResolvesPlanReferences() {
	plan := dasu.NewLevelingPlan()
	plan.Abilities[4] = "catalog.abilityX"
	plan.StrengthOfWill[6] = "catalog.featY"
	plan.Schemas[dasu.SchemaSlotFirst] = "catalog.schemaZ"

	rows := progression.Compute(10, plan, nil)

	s.Equal("catalog.abilityX", rows[3].AbilityRef)
	s.Equal("catalog.featY", rows[5].StrengthOfWillRef)
	s.Equal("catalog.schemaZ", rows[0].SchemaRef)
	s.Equal("catalog.schemaZ", rows[4].SchemaRef)

	// References only surface on their reward levels
	s.Empty(rows[2].AbilityRef)
}

func (s *EngineTestSuite) TestComputeWithClassFormulas() {
	class := &dasu.ClassConfig{
		ID:        "tactician",
		Name:      "Tactician",
		APFormula: "even:2-20",
		SPFormula: "level/2+1",
		LevelSlots: map[int][]dasu.RewardKind{
			4: {dasu.RewardAbility},
		},
	}

	rows := progression.Compute(6, nil, class)

	s.Equal(0, rows[0].APGained) // level 1, odd
	s.Equal(1, rows[1].APGained) // level 2, even and in range
	s.Equal(1, rows[0].SPGained) // 1/2+1
	s.Equal(4, rows[5].SPGained) // 6/2+1

	// Class slots replace the legacy tables entirely
	s.True(rows[3].Rewards.Has(dasu.RewardAbility))
	s.True(rows[1].Rewards.IsEmpty())
	s.True(rows[0].Rewards.IsEmpty())
}

func (s *EngineTestSuite) TestComputeInvalidFormulaFallsBack() {
	class := &dasu.ClassConfig{
		ID:        "broken",
		Name:      "Broken",
		APFormula: "level^2",
		SPFormula: "not a formula",
	}

	rows := progression.Compute(4, nil, class)

	s.Equal(1, rows[0].APGained)
	s.Equal(0, rows[1].APGained)
	s.Equal(2, rows[0].SPGained)
}

func (s *EngineTestSuite) TestComputeBeyondAuthoredTable() {
	rows := progression.Compute(35, nil, nil)
	s.Require().Len(rows, 35)

	// Linear merit extension keeps costs non-zero past 30
	s.Equal(15, rows[30].MeritRequired)
	s.Equal(17, rows[34].MeritRequired)

	// Ability and aptitude rules keep their cadence; schema and strength
	// of will stay within their fixed sets.
	s.True(rows[31].Rewards.Has(dasu.RewardAbility))
	s.True(rows[32].Rewards.Has(dasu.RewardAptitude))
	s.False(rows[31].Rewards.Has(dasu.RewardSchema))
	s.False(rows[31].Rewards.Has(dasu.RewardStrengthOfWill))
}

func (s *EngineTestSuite) TestComputeInvalidMaxLevel() {
	s.Nil(progression.Compute(0, nil, nil))
	s.Nil(progression.Compute(-3, nil, nil))
}

func (s *EngineTestSuite) TestEarliestSchemaLevel() {
	s.Equal(1, progression.EarliestSchemaLevel(dasu.SchemaSlotFirst, 30, nil, nil))
	s.Equal(10, progression.EarliestSchemaLevel(dasu.SchemaSlotSecond, 30, nil, nil))

	// Below the slot's first level there is no grant level
	s.Equal(0, progression.EarliestSchemaLevel(dasu.SchemaSlotSecond, 9, nil, nil))

	class := &dasu.ClassConfig{
		ID: "summoner",
		LevelSlots: map[int][]dasu.RewardKind{
			3: {dasu.RewardSchema},
		},
	}
	plan := dasu.NewLevelingPlan()
	s.Equal(3, progression.EarliestSchemaLevel(dasu.SchemaSlotFirst, 30, plan, class))
}

func (s *EngineTestSuite) TestLatestSchemaLevel() {
	s.Equal(25, progression.LatestSchemaLevel(dasu.SchemaSlotFirst, 30, nil, nil))
	s.Equal(20, progression.LatestSchemaLevel(dasu.SchemaSlotSecond, 30, nil, nil))

	// The latest slot level moves up as the character levels
	s.Equal(1, progression.LatestSchemaLevel(dasu.SchemaSlotFirst, 4, nil, nil))
	s.Equal(5, progression.LatestSchemaLevel(dasu.SchemaSlotFirst, 7, nil, nil))
	s.Equal(0, progression.LatestSchemaLevel(dasu.SchemaSlotSecond, 9, nil, nil))

	class := &dasu.ClassConfig{
		ID: "summoner",
		LevelSlots: map[int][]dasu.RewardKind{
			3: {dasu.RewardSchema},
			8: {dasu.RewardSchema},
		},
	}
	plan := dasu.NewLevelingPlan()
	s.Equal(3, progression.LatestSchemaLevel(dasu.SchemaSlotFirst, 5, plan, class))
	s.Equal(8, progression.LatestSchemaLevel(dasu.SchemaSlotFirst, 30, plan, class))
}
