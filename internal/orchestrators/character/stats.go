package character

import (
	"context"

	"github.com/emberhollow/character-api/internal/entities/ember"
	"github.com/emberhollow/character-api/internal/errors"
	charactersvc "github.com/emberhollow/character-api/internal/services/character"
)

// UpdateAttributes replaces the given base attribute values. Values outside
// the allowed range are rejected before anything is written.
func (o *Orchestrator) UpdateAttributes(
	ctx context.Context,
	input *charactersvc.UpdateAttributesInput,
) (*charactersvc.UpdateAttributesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Attributes) == 0 {
		return nil, errors.InvalidArgument("at least one attribute is required")
	}

	vb := errors.NewValidationBuilder()
	for id, value := range input.Attributes {
		if !knownAttribute(id) {
			vb.Fieldf("attributes", "unknown attribute %q", id)
			continue
		}
		errors.ValidateRange("attributes."+id, value, ember.MinAttribute, ember.MaxAttribute, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	resolved, err := o.mutate(ctx, input.CharacterID, func(c *ember.Character) error {
		if c.Attributes == nil {
			c.Attributes = make(map[string]int, len(ember.AttributeIDs))
		}
		for id, value := range input.Attributes {
			c.Attributes[id] = value
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &charactersvc.UpdateAttributesOutput{Character: resolved}, nil
}

// UpdateTalent sets one skill's persisted talent. Talent changes can ripple
// into resource maxima through module effects, so the mutation clamps like
// any other.
func (o *Orchestrator) UpdateTalent(
	ctx context.Context,
	input *charactersvc.UpdateTalentInput,
) (*charactersvc.UpdateTalentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("skill_id", input.SkillID, vb)
	errors.ValidateRange("talent", input.Talent, ember.MinTalent, ember.MaxTalent, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	resolved, err := o.mutate(ctx, input.CharacterID, func(c *ember.Character) error {
		talents, err := talentGroup(c, input.Group, input.SkillID)
		if err != nil {
			return err
		}
		talents[input.SkillID] = input.Talent
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &charactersvc.UpdateTalentOutput{Character: resolved}, nil
}

// SetResourceCurrent stores a client-submitted current value. The value is
// clamped against the freshly computed effective max in the mutation tail,
// never against the stored max.
func (o *Orchestrator) SetResourceCurrent(
	ctx context.Context,
	input *charactersvc.SetResourceCurrentInput,
) (*charactersvc.SetResourceCurrentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !knownResource(input.Resource) {
		return nil, errors.InvalidArgumentf("unknown resource %q", input.Resource)
	}

	resolved, err := o.mutate(ctx, input.CharacterID, func(c *ember.Character) error {
		if c.Resources == nil {
			c.Resources = make(map[string]ember.Resource, len(ember.ResourceIDs))
		}
		existing := c.Resources[input.Resource]
		c.Resources[input.Resource] = ember.Resource{
			Current: input.Current,
			Max:     existing.Max,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &charactersvc.SetResourceCurrentOutput{Character: resolved}, nil
}

func knownAttribute(id string) bool {
	for _, candidate := range ember.AttributeIDs {
		if candidate == id {
			return true
		}
	}
	return false
}

func knownResource(id string) bool {
	for _, candidate := range ember.ResourceIDs {
		if candidate == id {
			return true
		}
	}
	return false
}

// talentGroup returns the persisted talent map for the group after checking
// the skill belongs to it.
func talentGroup(c *ember.Character, group, skillID string) (map[string]int, error) {
	known := func(ids []string) bool {
		for _, id := range ids {
			if id == skillID {
				return true
			}
		}
		return false
	}

	switch group {
	case charactersvc.TalentGroupSkills:
		if _, ok := ember.SkillAttributes[skillID]; !ok {
			return nil, errors.InvalidArgumentf("unknown skill %q", skillID)
		}
		if c.Talents.Skills == nil {
			c.Talents.Skills = make(map[string]int)
		}
		return c.Talents.Skills, nil
	case charactersvc.TalentGroupWeapon:
		if !known(ember.WeaponSkillIDs) {
			return nil, errors.InvalidArgumentf("unknown weapon skill %q", skillID)
		}
		if c.Talents.Weapon == nil {
			c.Talents.Weapon = make(map[string]int)
		}
		return c.Talents.Weapon, nil
	case charactersvc.TalentGroupMagic:
		if !known(ember.MagicSkillIDs) {
			return nil, errors.InvalidArgumentf("unknown magic skill %q", skillID)
		}
		if c.Talents.Magic == nil {
			c.Talents.Magic = make(map[string]int)
		}
		return c.Talents.Magic, nil
	case charactersvc.TalentGroupCrafting:
		if !known(ember.CraftingSkillIDs) {
			return nil, errors.InvalidArgumentf("unknown crafting skill %q", skillID)
		}
		if c.Talents.Crafting == nil {
			c.Talents.Crafting = make(map[string]int)
		}
		return c.Talents.Crafting, nil
	}

	return nil, errors.InvalidArgumentf("unknown talent group %q", group)
}
