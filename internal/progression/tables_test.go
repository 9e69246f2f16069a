package progression_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dasu-rpg/leveling-api/internal/entities/dasu"
	"github.com/dasu-rpg/leveling-api/internal/progression"
)

type TablesTestSuite struct {
	suite.Suite
}

func TestTablesSuite(t *testing.T) {
	suite.Run(t, new(TablesTestSuite))
}

func (s *TablesTestSuite) TestMeritRequired() {
	testCases := []struct {
		level    int
		expected int
	}{
		{level: 1, expected: 0},
		{level: 2, expected: 1},
		{level: 3, expected: 1},
		{level: 4, expected: 2},
		{level: 10, expected: 5},
		{level: 29, expected: 14},
		{level: 30, expected: 15},
		// Linear extension above the authored table
		{level: 31, expected: 15},
		{level: 40, expected: 20},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, progression.MeritRequired(tc.level), "level %d", tc.level)
	}
}

func (s *TablesTestSuite) TestToLevelRequiredAccumulates() {
	s.Equal(0, progression.ToLevelRequired(1))
	s.Equal(1, progression.ToLevelRequired(2))
	s.Equal(2, progression.ToLevelRequired(3))
	s.Equal(4, progression.ToLevelRequired(4))

	// Each step adds exactly that level's cost
	for level := 2; level <= 35; level++ {
		diff := progression.ToLevelRequired(level) - progression.ToLevelRequired(level-1)
		s.Equal(progression.MeritRequired(level), diff, "level %d", level)
	}
}

func (s *TablesTestSuite) TestFixedSchemaSlots() {
	firstLevels := []int{1, 5, 15, 25}
	secondLevels := []int{10, 20}

	for _, lvl := range firstLevels {
		slot, ok := progression.FixedSchemaSlot(lvl)
		s.True(ok, "level %d", lvl)
		s.Equal(dasu.SchemaSlotFirst, slot, "level %d", lvl)
	}
	for _, lvl := range secondLevels {
		slot, ok := progression.FixedSchemaSlot(lvl)
		s.True(ok, "level %d", lvl)
		s.Equal(dasu.SchemaSlotSecond, slot, "level %d", lvl)
	}

	_, ok := progression.FixedSchemaSlot(7)
	s.False(ok)
}

func (s *TablesTestSuite) TestSchemaSlotForFallsBackToUnoccupied() {
	plan := dasu.NewLevelingPlan()

	// Custom level outside the fixed table prefers first while empty
	s.Equal(dasu.SchemaSlotFirst, progression.SchemaSlotFor(7, plan))

	plan.Schemas[dasu.SchemaSlotFirst] = "catalog.schemaA"
	s.Equal(dasu.SchemaSlotSecond, progression.SchemaSlotFor(7, plan))

	// Fixed-table levels always map through the table
	s.Equal(dasu.SchemaSlotSecond, progression.SchemaSlotFor(10, plan))
	s.Equal(dasu.SchemaSlotFirst, progression.SchemaSlotFor(15, plan))
}

func (s *TablesTestSuite) TestSchemaRank() {
	testCases := []struct {
		level    int
		slot     string
		expected int
	}{
		{level: 1, slot: dasu.SchemaSlotFirst, expected: 1},
		{level: 5, slot: dasu.SchemaSlotFirst, expected: 2},
		{level: 14, slot: dasu.SchemaSlotFirst, expected: 2},
		{level: 15, slot: dasu.SchemaSlotFirst, expected: 3},
		{level: 9, slot: dasu.SchemaSlotSecond, expected: 0},
		{level: 10, slot: dasu.SchemaSlotSecond, expected: 1},
		{level: 20, slot: dasu.SchemaSlotSecond, expected: 2},
		{level: 25, slot: dasu.SchemaSlotSecond, expected: 3},
		{level: 10, slot: "third", expected: 0},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, progression.SchemaRank(tc.level, tc.slot), "level %d slot %s", tc.level, tc.slot)
	}
}

func (s *TablesTestSuite) TestLegacyRewards() {
	// Level 6 is even and a strength of will level
	rewards := progression.RewardsAt(6, nil)
	s.True(rewards.Has(dasu.RewardAbility))
	s.True(rewards.Has(dasu.RewardAptitude))
	s.True(rewards.Has(dasu.RewardStrengthOfWill))
	s.False(rewards.Has(dasu.RewardSchema))

	// Level 1 grants only the first schema
	rewards = progression.RewardsAt(1, nil)
	s.True(rewards.Has(dasu.RewardSchema))
	s.False(rewards.Has(dasu.RewardAbility))

	// Level 7 grants nothing
	s.True(progression.RewardsAt(7, nil).IsEmpty())
}

func (s *TablesTestSuite) TestClassPolicyFullyOverridesLegacy() {
	class := &dasu.ClassConfig{
		ID:   "summoner",
		Name: "Summoner",
		LevelSlots: map[int][]dasu.RewardKind{
			3: {dasu.RewardAbility},
			7: {dasu.RewardSchema, dasu.RewardAptitude},
		},
	}

	// Level 2 would grant an ability under the legacy table; the class
	// declares nothing there, so nothing is granted.
	s.True(progression.RewardsAt(2, class).IsEmpty())

	s.True(progression.RewardsAt(3, class).Has(dasu.RewardAbility))
	s.True(progression.RewardsAt(7, class).Has(dasu.RewardSchema))
	s.True(progression.RewardsAt(7, class).Has(dasu.RewardAptitude))

	s.True(progression.IsRewardLevel(3, dasu.RewardAbility, class))
	s.False(progression.IsRewardLevel(2, dasu.RewardAbility, class))
}

func (s *TablesTestSuite) TestCanLevelUp() {
	// Level 2 requires 1 merit
	s.False(progression.CanLevelUp(1, 0, 30))
	s.True(progression.CanLevelUp(1, 1, 30))

	// At the cap there is no next row
	s.False(progression.CanLevelUp(30, 100, 30))
	s.True(progression.CanLevelUp(30, 100, 40))
}
