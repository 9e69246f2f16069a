package testutils

import (
	"github.com/dasu-rpg/leveling-api/internal/entities/dasu"
)

// NewTestActor returns a minimal valid actor for tests
func NewTestActor(id string) *dasu.Actor {
	return &dasu.Actor{
		ID:       id,
		PlayerID: "player_1",
		Name:     "Test Actor",
		Level:    1,
		Plan:     dasu.NewLevelingPlan(),
	}
}

// TestCatalogEntries returns a small catalog covering every grantable
// item type
func TestCatalogEntries() []*dasu.ItemData {
	return []*dasu.ItemData{
		{Reference: "dasu.abilities.fireball", Type: dasu.ItemTypeAbility, Name: "Fireball", Description: "A burst of flame"},
		{Reference: "dasu.abilities.icewall", Type: dasu.ItemTypeAbility, Name: "Ice Wall"},
		{Reference: "dasu.schemas.dragon", Type: dasu.ItemTypeSchema, Name: "Dragon Schema"},
		{Reference: "dasu.schemas.serpent", Type: dasu.ItemTypeSchema, Name: "Serpent Schema"},
		{Reference: "dasu.strengthofwill.resolve", Type: dasu.ItemTypeStrengthOfWill, Name: "Unbending Resolve"},
	}
}
