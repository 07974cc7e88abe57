package engine

import (
	"github.com/emberhollow/character-api/internal/entities/ember"
)

// CompendiumBundle carries the populated compendium documents a character
// references. A nil entry (or a missing map key) is a broken reference; the
// resolver skips that source and keeps going.
type CompendiumBundle struct {
	Ancestry *ember.Ancestry
	Culture  *ember.Culture
	Traits   map[string]*ember.Trait
	Modules  map[string]*ember.Module
	Items    map[string]*ember.Item
}

// ResolveCharacterInput contains the character and its populated references
type ResolveCharacterInput struct {
	Character  *ember.Character
	Compendium *CompendiumBundle
}

// ResolveCharacterOutput contains the resolved projection
type ResolveCharacterOutput struct {
	Character *ResolvedCharacter
}

// ResolvedCharacter is the read-only projection consumed by API responses and
// the export collaborator: the persisted document overlaid with computed
// attributes, skill values, effective resource maxima, mitigation, movement,
// and derived traits. It is freshly allocated per resolution and never
// persisted.
type ResolvedCharacter struct {
	*ember.Character

	// Attributes holds effective attribute values after bonuses.
	Attributes map[string]int `json:"attributes"`

	Skills         map[string]SkillScore `json:"skills"`
	WeaponSkills   map[string]SkillScore `json:"weapon_skills"`
	MagicSkills    map[string]SkillScore `json:"magic_skills"`
	CraftingSkills map[string]SkillScore `json:"crafting_skills"`

	// Resources carries the persisted current values against the freshly
	// computed effective maxima.
	Resources map[string]ResolvedResource `json:"resources"`

	Mitigation map[string]int `json:"mitigation"`
	Movement   int            `json:"movement"`

	DerivedTraits []DerivedTrait `json:"derived_traits"`
}

// SkillScore is a computed skill: dice-pool count plus talent (die type).
type SkillScore struct {
	Value  int `json:"value"`
	Talent int `json:"talent"`
}

// ResolvedResource pairs a persisted current value with the effective max.
type ResolvedResource struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// DerivedTrait is a descriptive trait granted by a selected option.
type DerivedTrait struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source"`
}

// ComputeSpentPointsInput contains the character and its module documents
type ComputeSpentPointsInput struct {
	Character *ember.Character
	Modules   map[string]*ember.Module
}

// ComputeSpentPointsOutput contains the recomputed spent total
type ComputeSpentPointsOutput struct {
	Spent int
}

// ValidateModuleSelectionInput describes a location the player wants to unlock
type ValidateModuleSelectionInput struct {
	Character *ember.Character
	Module    *ember.Module
	Location  string
}

// ValidateModuleSelectionOutput reports whether the unlock is allowed
type ValidateModuleSelectionOutput struct {
	Valid  bool
	Reason string
	// Cost is the option's module point cost when the selection is valid.
	Cost int
}

// ValidateModuleDeselectionInput describes a location the player wants to remove
type ValidateModuleDeselectionInput struct {
	Character *ember.Character
	Module    *ember.Module
	Location  string
}

// ValidateModuleDeselectionOutput reports whether the removal is allowed
type ValidateModuleDeselectionOutput struct {
	Valid  bool
	Reason string
	// Cost is the option's module point cost when the removal is valid.
	Cost int
}
