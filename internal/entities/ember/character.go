// Package ember holds the Emberhollow game entities. Entities are pure data;
// all rules calculations live in the engine.
package ember

// Character is the persisted character document. It stores player choices and
// base stats only: skill values, effective maxima, mitigation and movement are
// computed at read time and never written back here. Resource current values
// and the informational stored max are the exception, since current is player
// state.
type Character struct {
	ID       string `json:"id"`
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`

	Attributes map[string]int      `json:"attributes"`
	Talents    TalentBlock         `json:"talents"`
	Resources  map[string]Resource `json:"resources"`

	ModulePoints ModulePoints `json:"modulePoints"`

	Ancestry *AncestrySelection `json:"ancestry,omitempty"`
	Culture  *CultureSelection  `json:"culture,omitempty"`
	Traits   []TraitSelection   `json:"traits,omitempty"`
	Modules  []ModuleSelection  `json:"modules,omitempty"`

	Inventory []InventoryItem `json:"inventory,omitempty"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// TalentBlock holds the persisted talent (die type) per skill, one map per
// skill group.
type TalentBlock struct {
	Skills   map[string]int `json:"skills"`
	Weapon   map[string]int `json:"weapon"`
	Magic    map[string]int `json:"magic"`
	Crafting map[string]int `json:"crafting"`
}

// Resource is a persisted resource: the player's current value and the last
// computed max, stored for display only.
type Resource struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// ModulePoints tracks the module point budget. Spent is derivable from the
// selected options and gets corrected on read when it drifts.
type ModulePoints struct {
	Total int `json:"total"`
	Spent int `json:"spent"`
}

// AncestrySelection records the chosen ancestry and which of its options the
// player picked.
type AncestrySelection struct {
	AncestryID      string            `json:"ancestryId"`
	SelectedOptions []OptionSelection `json:"selectedOptions,omitempty"`
}

// OptionSelection names one picked option and, when the option offers nested
// choices, the picked subchoice.
type OptionSelection struct {
	Name        string `json:"name"`
	SubchoiceID string `json:"subchoiceId,omitempty"`
}

// CultureSelection records the chosen culture and one pick per category.
type CultureSelection struct {
	CultureID            string `json:"cultureId"`
	SelectedRestriction  string `json:"selectedRestriction,omitempty"`
	SelectedBenefit      string `json:"selectedBenefit,omitempty"`
	SelectedStartingItem string `json:"selectedStartingItem,omitempty"`
}

// TraitSelection records one chosen trait and its picked options.
type TraitSelection struct {
	TraitID         string            `json:"traitId"`
	SelectedOptions []OptionSelection `json:"selectedOptions,omitempty"`
}

// ModuleSelection records the unlocked locations of one module.
type ModuleSelection struct {
	ModuleID        string                  `json:"moduleId"`
	SelectedOptions []ModuleOptionSelection `json:"selectedOptions,omitempty"`
}

// ModuleOptionSelection marks one unlocked module location.
type ModuleOptionSelection struct {
	Location   string `json:"location"`
	SelectedAt int64  `json:"selectedAt,omitempty"`
}

// HasLocation reports whether the location is unlocked in this selection.
func (s *ModuleSelection) HasLocation(location string) bool {
	for _, opt := range s.SelectedOptions {
		if opt.Location == location {
			return true
		}
	}
	return false
}

// InventoryItem is one inventory entry. Only equipped entries contribute
// bonuses.
type InventoryItem struct {
	ItemID        string `json:"itemId"`
	Equipped      bool   `json:"equipped"`
	Quantity      int    `json:"quantity"`
	Customization string `json:"customization,omitempty"`
}

// FindModule returns the selection for the given module ID.
func (c *Character) FindModule(moduleID string) (*ModuleSelection, bool) {
	for i := range c.Modules {
		if c.Modules[i].ModuleID == moduleID {
			return &c.Modules[i], true
		}
	}
	return nil, false
}

// FindInventoryItem returns the inventory entry for the given item ID.
func (c *Character) FindInventoryItem(itemID string) (*InventoryItem, bool) {
	for i := range c.Inventory {
		if c.Inventory[i].ItemID == itemID {
			return &c.Inventory[i], true
		}
	}
	return nil, false
}

// NewCharacter builds a character with creation defaults: every attribute at
// the minimum, every talent at zero, every resource full at its base max.
func NewCharacter(id, playerID, name string) *Character {
	attributes := make(map[string]int, len(AttributeIDs))
	for _, attr := range AttributeIDs {
		attributes[attr] = MinAttribute
	}

	zeroed := func(ids []string) map[string]int {
		m := make(map[string]int, len(ids))
		for _, skill := range ids {
			m[skill] = 0
		}
		return m
	}

	skills := make(map[string]int, len(SkillAttributes))
	for skill := range SkillAttributes {
		skills[skill] = 0
	}

	resources := make(map[string]Resource, len(ResourceIDs))
	for _, resource := range ResourceIDs {
		base := BaseResourceMax[resource]
		resources[resource] = Resource{Current: base, Max: base}
	}

	return &Character{
		ID:         id,
		PlayerID:   playerID,
		Name:       name,
		Attributes: attributes,
		Talents: TalentBlock{
			Skills:   skills,
			Weapon:   zeroed(WeaponSkillIDs),
			Magic:    zeroed(MagicSkillIDs),
			Crafting: zeroed(CraftingSkillIDs),
		},
		Resources: resources,
	}
}
