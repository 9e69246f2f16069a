package dasu

import "fmt"

// RewardKind identifies one kind of reward a level can unlock
type RewardKind uint8

// The closed set of reward kinds
const (
	RewardAbility RewardKind = iota
	RewardAptitude
	RewardSchema
	RewardStrengthOfWill
)

var rewardKindNames = map[RewardKind]string{
	RewardAbility:        "ability",
	RewardAptitude:       "aptitude",
	RewardSchema:         "schema",
	RewardStrengthOfWill: "strengthOfWill",
}

// String returns the wire name of the reward kind
func (k RewardKind) String() string {
	if name, ok := rewardKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("RewardKind(%d)", uint8(k))
}

// ItemType returns the embedded item type a grant of this kind creates.
// Aptitude rewards have no item representation.
func (k RewardKind) ItemType() (ItemType, bool) {
	switch k {
	case RewardAbility:
		return ItemTypeAbility, true
	case RewardSchema:
		return ItemTypeSchema, true
	case RewardStrengthOfWill:
		return ItemTypeStrengthOfWill, true
	default:
		return "", false
	}
}

// ParseRewardKind parses a wire name into a RewardKind
func ParseRewardKind(name string) (RewardKind, error) {
	for k, n := range rewardKindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown reward kind %q", name)
}

// PlannableKinds are the reward kinds a plan slot can hold a catalog
// reference for. Aptitude bumps are automatic and carry no slot.
var PlannableKinds = []RewardKind{RewardAbility, RewardSchema, RewardStrengthOfWill}

// RewardSet is a set over the closed RewardKind enum
type RewardSet uint8

// NewRewardSet builds a set from the given kinds
func NewRewardSet(kinds ...RewardKind) RewardSet {
	var s RewardSet
	for _, k := range kinds {
		s = s.Add(k)
	}
	return s
}

// Add returns the set with k included
func (s RewardSet) Add(k RewardKind) RewardSet {
	return s | (1 << k)
}

// Has reports whether k is in the set
func (s RewardSet) Has(k RewardKind) bool {
	return s&(1<<k) != 0
}

// IsEmpty reports whether the set grants nothing
func (s RewardSet) IsEmpty() bool {
	return s == 0
}

// Kinds returns the members of the set in enum order
func (s RewardSet) Kinds() []RewardKind {
	var out []RewardKind
	for _, k := range []RewardKind{RewardAbility, RewardAptitude, RewardSchema, RewardStrengthOfWill} {
		if s.Has(k) {
			out = append(out, k)
		}
	}
	return out
}
