package resolver

import (
	"github.com/emberhollow/character-api/internal/engine"
	"github.com/emberhollow/character-api/internal/entities/ember"
)

// workingState is the freshly allocated computation arena for one resolution.
// Every resolution starts from the immutable persisted base and replays all
// descriptors into a new workingState, so repeated resolutions can never
// accumulate (the historical double-application bug class).
type workingState struct {
	attributes map[string]int

	// talents and values are keyed group -> skill id.
	talents map[string]map[string]int
	values  map[string]map[string]int

	resourceMax map[string]int
	mitigation  map[string]int
	movement    int
}

// newWorkingState seeds the arena: attributes and talents copied from the
// persisted character, every dice-pool value at zero, resources and movement
// at their unmodified baselines. This is the skill base initialization step;
// persisted value fields are never read.
func newWorkingState(c *ember.Character) *workingState {
	s := &workingState{
		attributes:  make(map[string]int, len(ember.AttributeIDs)),
		talents:     make(map[string]map[string]int, 4),
		values:      make(map[string]map[string]int, 4),
		resourceMax: make(map[string]int, len(ember.ResourceIDs)),
		mitigation:  make(map[string]int, len(ember.MitigationIDs)),
		movement:    ember.BaseMovement,
	}

	for _, id := range ember.AttributeIDs {
		s.attributes[id] = c.Attributes[id]
	}

	seed := func(group string, ids []string, persisted map[string]int) {
		talents := make(map[string]int, len(ids))
		values := make(map[string]int, len(ids))
		for _, id := range ids {
			talents[id] = persisted[id]
			values[id] = 0
		}
		s.talents[group] = talents
		s.values[group] = values
	}

	skillIDs := make([]string, 0, len(ember.SkillAttributes))
	for id := range ember.SkillAttributes {
		skillIDs = append(skillIDs, id)
	}
	seed(groupSkills, skillIDs, c.Talents.Skills)
	seed(groupWeapon, ember.WeaponSkillIDs, c.Talents.Weapon)
	seed(groupMagic, ember.MagicSkillIDs, c.Talents.Magic)
	seed(groupCrafting, ember.CraftingSkillIDs, c.Talents.Crafting)

	for _, id := range ember.ResourceIDs {
		s.resourceMax[id] = ember.BaseResourceMax[id]
	}
	for _, id := range ember.MitigationIDs {
		s.mitigation[id] = 0
	}

	return s
}

// applyTalentPass applies attribute and talent-axis descriptors in order.
// These run before value projection because dice-pool values derive from
// effective attributes and talents.
func (s *workingState) applyTalentPass(descs []Descriptor) {
	for _, d := range descs {
		switch {
		case d.Target.Group == groupAttributes:
			s.attributes[d.Target.Key] = applyOp(s.attributes[d.Target.Key], d)
		case d.Target.Axis == AxisTalent:
			group := s.talents[d.Target.Group]
			group[d.Target.Key] = applyOp(group[d.Target.Key], d)
		}
	}
}

// project seeds dice-pool values from the effective attributes and talents:
// attribute-keyed skills take their governing attribute's value, everything
// else takes its talent.
func (s *workingState) project() {
	for id, attr := range ember.SkillAttributes {
		s.values[groupSkills][id] = s.attributes[attr]
	}
	for _, group := range []string{groupWeapon, groupMagic, groupCrafting} {
		for id, talent := range s.talents[group] {
			s.values[group][id] = talent
		}
	}
}

// applyValuePass applies value-axis, resource, mitigation and movement
// descriptors in order, then clamps maxima and mitigation at zero.
func (s *workingState) applyValuePass(descs []Descriptor) {
	for _, d := range descs {
		switch d.Target.Group {
		case groupResources:
			s.resourceMax[d.Target.Key] = applyOp(s.resourceMax[d.Target.Key], d)
		case groupMitigation:
			s.mitigation[d.Target.Key] = applyOp(s.mitigation[d.Target.Key], d)
		case groupMovement:
			s.movement = applyOp(s.movement, d)
		case groupSkills, groupWeapon, groupMagic, groupCrafting:
			if d.Target.Axis != AxisValue {
				continue
			}
			group := s.values[d.Target.Group]
			group[d.Target.Key] = applyOp(group[d.Target.Key], d)
		}
	}

	for id, v := range s.resourceMax {
		if v < 0 {
			s.resourceMax[id] = 0
		}
	}
	for id, v := range s.mitigation {
		if v < 0 {
			s.mitigation[id] = 0
		}
	}
}

// applyOp folds one descriptor into a running total. A set overrides the
// running total at the point it is encountered; later adds continue on top.
func applyOp(current int, d Descriptor) int {
	if d.Op == OpSet {
		return d.Amount
	}
	return current + d.Amount
}

// snapshot builds the read-only resolved projection.
func (s *workingState) snapshot(c *ember.Character, traits []engine.DerivedTrait) *engine.ResolvedCharacter {
	scores := func(group string) map[string]engine.SkillScore {
		out := make(map[string]engine.SkillScore, len(s.values[group]))
		for id, value := range s.values[group] {
			out[id] = engine.SkillScore{Value: value, Talent: s.talents[group][id]}
		}
		return out
	}

	attributes := make(map[string]int, len(s.attributes))
	for id, v := range s.attributes {
		attributes[id] = v
	}

	resources := make(map[string]engine.ResolvedResource, len(ember.ResourceIDs))
	for _, id := range ember.ResourceIDs {
		resources[id] = engine.ResolvedResource{
			Current: c.Resources[id].Current,
			Max:     s.resourceMax[id],
		}
	}

	mitigation := make(map[string]int, len(s.mitigation))
	for id, v := range s.mitigation {
		mitigation[id] = v
	}

	if traits == nil {
		traits = []engine.DerivedTrait{}
	}

	return &engine.ResolvedCharacter{
		Character:      c,
		Attributes:     attributes,
		Skills:         scores(groupSkills),
		WeaponSkills:   scores(groupWeapon),
		MagicSkills:    scores(groupMagic),
		CraftingSkills: scores(groupCrafting),
		Resources:      resources,
		Mitigation:     mitigation,
		Movement:       s.movement,
		DerivedTraits:  traits,
	}
}
