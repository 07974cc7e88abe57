// Package character defines the character service contract
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/emberhollow/character-api/internal/services/character Service

import (
	"context"

	"github.com/emberhollow/character-api/internal/engine"
	"github.com/emberhollow/character-api/internal/entities/ember"
)

// Service is the character management interface consumed by API handlers and
// the export collaborator. GetCharacter is the resolution facade: the only
// sanctioned way to obtain a character with bonuses applied. Every mutation
// returns the freshly resolved character, with persisted resource currents
// clamped against the recomputed effective maxima.
type Service interface {
	// Lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Base stats
	UpdateAttributes(ctx context.Context, input *UpdateAttributesInput) (*UpdateAttributesOutput, error)
	UpdateTalent(ctx context.Context, input *UpdateTalentInput) (*UpdateTalentOutput, error)
	SetResourceCurrent(ctx context.Context, input *SetResourceCurrentInput) (*SetResourceCurrentOutput, error)

	// Selections
	SetAncestry(ctx context.Context, input *SetAncestryInput) (*SetAncestryOutput, error)
	SetCulture(ctx context.Context, input *SetCultureInput) (*SetCultureOutput, error)
	AddTrait(ctx context.Context, input *AddTraitInput) (*AddTraitOutput, error)
	RemoveTrait(ctx context.Context, input *RemoveTraitInput) (*RemoveTraitOutput, error)
	SelectModuleOption(ctx context.Context, input *SelectModuleOptionInput) (*SelectModuleOptionOutput, error)
	DeselectModuleOption(ctx context.Context, input *DeselectModuleOptionInput) (*DeselectModuleOptionOutput, error)

	// Inventory
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)
	SetItemEquipped(ctx context.Context, input *SetItemEquippedInput) (*SetItemEquippedOutput, error)
}

// CreateCharacterInput contains the data for creating a character
type CreateCharacterInput struct {
	PlayerID          string
	Name              string
	ModulePointsTotal int
}

// CreateCharacterOutput contains the created, resolved character
type CreateCharacterOutput struct {
	Character *engine.ResolvedCharacter
}

// GetCharacterInput identifies the character to resolve
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput contains the resolved character
type GetCharacterOutput struct {
	Character *engine.ResolvedCharacter
}

// ListCharactersInput identifies the player whose characters to list
type ListCharactersInput struct {
	PlayerID string
}

// ListCharactersOutput contains the player's characters, unresolved
type ListCharactersOutput struct {
	Characters []*ember.Character
}

// DeleteCharacterInput identifies the character to delete
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput confirms the deletion
type DeleteCharacterOutput struct {
	Message string
}

// UpdateAttributesInput contains new attribute values (partial updates allowed)
type UpdateAttributesInput struct {
	CharacterID string
	Attributes  map[string]int
}

// UpdateAttributesOutput contains the resolved character
type UpdateAttributesOutput struct {
	Character *engine.ResolvedCharacter
}

// Talent groups accepted by UpdateTalent.
const (
	TalentGroupSkills   = "skills"
	TalentGroupWeapon   = "weapon"
	TalentGroupMagic    = "magic"
	TalentGroupCrafting = "crafting"
)

// UpdateTalentInput contains a single talent assignment
type UpdateTalentInput struct {
	CharacterID string
	Group       string
	SkillID     string
	Talent      int
}

// UpdateTalentOutput contains the resolved character
type UpdateTalentOutput struct {
	Character *engine.ResolvedCharacter
}

// SetResourceCurrentInput contains a client-submitted current resource value.
// The value is clamped against the freshly computed effective max, never the
// stored one.
type SetResourceCurrentInput struct {
	CharacterID string
	Resource    string
	Current     int
}

// SetResourceCurrentOutput contains the resolved character
type SetResourceCurrentOutput struct {
	Character *engine.ResolvedCharacter
}

// SetAncestryInput replaces the character's ancestry selection
type SetAncestryInput struct {
	CharacterID string
	Selection   *ember.AncestrySelection
}

// SetAncestryOutput contains the resolved character
type SetAncestryOutput struct {
	Character *engine.ResolvedCharacter
}

// SetCultureInput replaces the character's culture selection
type SetCultureInput struct {
	CharacterID string
	Selection   *ember.CultureSelection
}

// SetCultureOutput contains the resolved character
type SetCultureOutput struct {
	Character *engine.ResolvedCharacter
}

// AddTraitInput adds a trait selection
type AddTraitInput struct {
	CharacterID string
	Selection   ember.TraitSelection
}

// AddTraitOutput contains the resolved character
type AddTraitOutput struct {
	Character *engine.ResolvedCharacter
}

// RemoveTraitInput removes a trait selection
type RemoveTraitInput struct {
	CharacterID string
	TraitID     string
}

// RemoveTraitOutput contains the resolved character
type RemoveTraitOutput struct {
	Character *engine.ResolvedCharacter
}

// SelectModuleOptionInput unlocks one module location
type SelectModuleOptionInput struct {
	CharacterID string
	ModuleID    string
	Location    string
}

// SelectModuleOptionOutput contains the resolved character
type SelectModuleOptionOutput struct {
	Character *engine.ResolvedCharacter
}

// DeselectModuleOptionInput removes one unlocked module location
type DeselectModuleOptionInput struct {
	CharacterID string
	ModuleID    string
	Location    string
}

// DeselectModuleOptionOutput contains the resolved character
type DeselectModuleOptionOutput struct {
	Character *engine.ResolvedCharacter
}

// AddItemInput adds an item to the inventory, unequipped
type AddItemInput struct {
	CharacterID string
	ItemID      string
	Quantity    int
}

// AddItemOutput contains the resolved character
type AddItemOutput struct {
	Character *engine.ResolvedCharacter
}

// RemoveItemInput removes an inventory entry
type RemoveItemInput struct {
	CharacterID string
	ItemID      string
}

// RemoveItemOutput contains the resolved character
type RemoveItemOutput struct {
	Character *engine.ResolvedCharacter
}

// SetItemEquippedInput toggles an inventory entry's equipped flag
type SetItemEquippedInput struct {
	CharacterID string
	ItemID      string
	Equipped    bool
}

// SetItemEquippedOutput contains the resolved character
type SetItemEquippedOutput struct {
	Character *engine.ResolvedCharacter
}
