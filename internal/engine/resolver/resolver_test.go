package resolver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/emberhollow/character-api/internal/engine"
	"github.com/emberhollow/character-api/internal/engine/resolver"
	"github.com/emberhollow/character-api/internal/entities/ember"
	"github.com/emberhollow/character-api/internal/errors"
)

type ResolverTestSuite struct {
	suite.Suite
	resolver *resolver.Resolver
	ctx      context.Context
}

func (s *ResolverTestSuite) SetupTest() {
	s.resolver = resolver.New()
	s.ctx = context.Background()
}

func (s *ResolverTestSuite) baseCharacter() *ember.Character {
	c := ember.NewCharacter("char_1", "player_1", "Tester")
	c.Attributes[ember.AttributePhysique] = 2
	return c
}

func stonebloodAncestry() *ember.Ancestry {
	return &ember.Ancestry{
		ID:   "anc_stone",
		Name: "Stoneblood",
		Options: []ember.AncestryOption{
			{
				Name: "Stoneblood Resilience",
				Effects: []string{
					"skills.fitness.value+1",
					"trait:Stoneblood:Unharmed by petrification",
				},
			},
		},
	}
}

func guardianModule() *ember.Module {
	return &ember.Module{
		ID:   "mod_guardian",
		Name: "Guardian",
		Options: []ember.ModuleOption{
			{Location: "1", Name: "Bulwark", Cost: 2, Effects: []string{"resources.health.max+5"}},
			{Location: "2a", Name: "Iron Skin", Cost: 3, Effects: []string{"mitigation.physical+1"}},
		},
	}
}

func (s *ResolverTestSuite) resolve(c *ember.Character, bundle *engine.CompendiumBundle) *engine.ResolvedCharacter {
	out, err := s.resolver.ResolveCharacter(s.ctx, &engine.ResolveCharacterInput{
		Character:  c,
		Compendium: bundle,
	})
	s.Require().NoError(err)
	s.Require().NotNil(out)
	return out.Character
}

func (s *ResolverTestSuite) TestResolve_NilInput() {
	out, err := s.resolver.ResolveCharacter(s.ctx, nil)
	s.Error(err)
	s.Nil(out)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ResolverTestSuite) TestResolve_NoSelections() {
	c := s.baseCharacter()
	resolved := s.resolve(c, nil)

	// Attribute-keyed skill values project from the governing attribute.
	s.Equal(2, resolved.Skills["fitness"].Value)
	s.Equal(2, resolved.Skills["might"].Value)
	s.Equal(1, resolved.Skills["stealth"].Value)

	// Talent-keyed skills project from their talent, zero by default.
	s.Equal(0, resolved.WeaponSkills["unarmed"].Value)
	s.Equal(0, resolved.MagicSkills["primal"].Value)

	s.Equal(ember.BaseResourceMax[ember.ResourceHealth], resolved.Resources[ember.ResourceHealth].Max)
	s.Equal(ember.BaseMovement, resolved.Movement)
	s.Empty(resolved.DerivedTraits)
	for _, id := range ember.MitigationIDs {
		s.Equal(0, resolved.Mitigation[id])
	}
}

func (s *ResolverTestSuite) TestResolve_AncestryAndModuleBonuses() {
	c := s.baseCharacter()
	c.Ancestry = &ember.AncestrySelection{
		AncestryID:      "anc_stone",
		SelectedOptions: []ember.OptionSelection{{Name: "Stoneblood Resilience"}},
	}
	c.Modules = []ember.ModuleSelection{
		{ModuleID: "mod_guardian", SelectedOptions: []ember.ModuleOptionSelection{{Location: "1"}}},
	}

	bundle := &engine.CompendiumBundle{
		Ancestry: stonebloodAncestry(),
		Modules:  map[string]*ember.Module{"mod_guardian": guardianModule()},
	}

	resolved := s.resolve(c, bundle)

	// fitness: physique 2 projected, +1 from the ancestry option.
	s.Equal(3, resolved.Skills["fitness"].Value)
	// Sibling skills see only the projection.
	s.Equal(2, resolved.Skills["might"].Value)

	s.Equal(25, resolved.Resources[ember.ResourceHealth].Max)
	// Current is player state and does not rise with the max.
	s.Equal(20, resolved.Resources[ember.ResourceHealth].Current)

	s.Require().Len(resolved.DerivedTraits, 1)
	s.Equal("Stoneblood", resolved.DerivedTraits[0].Name)
	s.Equal("Unharmed by petrification", resolved.DerivedTraits[0].Description)
}

func (s *ResolverTestSuite) TestResolve_UnselectedLocationsAreInert() {
	c := s.baseCharacter()
	c.Modules = []ember.ModuleSelection{
		{ModuleID: "mod_guardian", SelectedOptions: []ember.ModuleOptionSelection{{Location: "1"}}},
	}
	bundle := &engine.CompendiumBundle{
		Modules: map[string]*ember.Module{"mod_guardian": guardianModule()},
	}

	resolved := s.resolve(c, bundle)

	s.Equal(25, resolved.Resources[ember.ResourceHealth].Max)
	s.Equal(0, resolved.Mitigation["physical"], "2a was not unlocked")
}

func (s *ResolverTestSuite) TestResolve_Idempotent() {
	c := s.baseCharacter()
	c.Ancestry = &ember.AncestrySelection{
		AncestryID:      "anc_stone",
		SelectedOptions: []ember.OptionSelection{{Name: "Stoneblood Resilience"}},
	}
	bundle := &engine.CompendiumBundle{Ancestry: stonebloodAncestry()}

	first := s.resolve(c, bundle)
	second := s.resolve(c, bundle)
	third := s.resolve(c, bundle)

	s.Equal(first.Skills, second.Skills)
	s.Equal(first.Resources, third.Resources)
	s.Equal(first.Movement, third.Movement)

	// The persisted base is never mutated by resolution.
	s.Equal(2, c.Attributes[ember.AttributePhysique])
}

func (s *ResolverTestSuite) TestResolve_SetThenAddStacks() {
	c := s.baseCharacter()
	// Trait sets energy max, equipped item adds on top. Traits apply before
	// items in source order.
	c.Traits = []ember.TraitSelection{
		{TraitID: "trait_wellspring", SelectedOptions: []ember.OptionSelection{{Name: "Wellspring"}}},
	}
	c.Inventory = []ember.InventoryItem{{ItemID: "item_battery", Equipped: true, Quantity: 1}}

	bundle := &engine.CompendiumBundle{
		Traits: map[string]*ember.Trait{
			"trait_wellspring": {
				ID:   "trait_wellspring",
				Type: ember.TraitTypePositive,
				Options: []ember.TraitOption{
					{Name: "Wellspring", Effects: []string{"resources.energy.max=10"}},
				},
			},
		},
		Items: map[string]*ember.Item{
			"item_battery": {ID: "item_battery", Energy: 2},
		},
	}

	resolved := s.resolve(c, bundle)
	s.Equal(12, resolved.Resources[ember.ResourceEnergy].Max)
}

func (s *ResolverTestSuite) TestResolve_AddThenSetOverrides() {
	c := s.baseCharacter()
	// Ancestry adds, module sets later in source order; the set wins.
	c.Ancestry = &ember.AncestrySelection{
		AncestryID:      "anc_spark",
		SelectedOptions: []ember.OptionSelection{{Name: "Sparktouched"}},
	}
	c.Modules = []ember.ModuleSelection{
		{ModuleID: "mod_conduit", SelectedOptions: []ember.ModuleOptionSelection{{Location: "1"}}},
	}

	bundle := &engine.CompendiumBundle{
		Ancestry: &ember.Ancestry{
			ID: "anc_spark",
			Options: []ember.AncestryOption{
				{Name: "Sparktouched", Effects: []string{"resources.energy.max+2"}},
			},
		},
		Modules: map[string]*ember.Module{
			"mod_conduit": {
				ID: "mod_conduit",
				Options: []ember.ModuleOption{
					{Location: "1", Cost: 1, Effects: []string{"resources.energy.max=10"}},
				},
			},
		},
	}

	resolved := s.resolve(c, bundle)
	s.Equal(10, resolved.Resources[ember.ResourceEnergy].Max)
}

func (s *ResolverTestSuite) TestResolve_UnequippedItemsContributeNothing() {
	c := s.baseCharacter()
	c.Inventory = []ember.InventoryItem{{ItemID: "item_cloak", Equipped: false, Quantity: 1}}

	bundle := &engine.CompendiumBundle{
		Items: map[string]*ember.Item{
			"item_cloak": {ID: "item_cloak", Basic: map[string]int{"stealth": 2}, Health: 5},
		},
	}

	resolved := s.resolve(c, bundle)
	s.Equal(1, resolved.Skills["stealth"].Value, "finesse projection only")
	s.Equal(ember.BaseResourceMax[ember.ResourceHealth], resolved.Resources[ember.ResourceHealth].Max)
}

func (s *ResolverTestSuite) TestResolve_EquippedItemBonuses() {
	c := s.baseCharacter()
	c.Inventory = []ember.InventoryItem{{ItemID: "item_gauntlets", Equipped: true, Quantity: 1}}

	bundle := &engine.CompendiumBundle{
		Items: map[string]*ember.Item{
			"item_gauntlets": {
				ID:         "item_gauntlets",
				Weapon:     map[string]int{"unarmed": 1},
				Attributes: map[string]int{ember.AttributePhysique: 1},
				Mitigation: map[string]int{"physical": 2},
				Movement:   -1,
			},
		},
	}

	resolved := s.resolve(c, bundle)

	// The attribute bonus ripples into every physique-governed skill value.
	s.Equal(3, resolved.Attributes[ember.AttributePhysique])
	s.Equal(3, resolved.Skills["fitness"].Value)
	s.Equal(1, resolved.WeaponSkills["unarmed"].Value)
	s.Equal(2, resolved.Mitigation["physical"])
	s.Equal(ember.BaseMovement-1, resolved.Movement)
}

func (s *ResolverTestSuite) TestResolve_BrokenReferencesAreSkipped() {
	c := s.baseCharacter()
	c.Ancestry = &ember.AncestrySelection{
		AncestryID:      "anc_gone",
		SelectedOptions: []ember.OptionSelection{{Name: "Vanished"}},
	}
	c.Traits = []ember.TraitSelection{{TraitID: "trait_gone"}}
	c.Modules = []ember.ModuleSelection{
		{ModuleID: "mod_guardian", SelectedOptions: []ember.ModuleOptionSelection{{Location: "1"}}},
	}

	// Only the module populated; ancestry and trait references are broken.
	bundle := &engine.CompendiumBundle{
		Modules: map[string]*ember.Module{"mod_guardian": guardianModule()},
	}

	resolved := s.resolve(c, bundle)
	s.Equal(25, resolved.Resources[ember.ResourceHealth].Max)
	s.Equal(2, resolved.Skills["fitness"].Value, "broken ancestry contributes nothing")
}

func (s *ResolverTestSuite) TestResolve_MalformedEffectsAreSkipped() {
	c := s.baseCharacter()
	c.Ancestry = &ember.AncestrySelection{
		AncestryID:      "anc_mixed",
		SelectedOptions: []ember.OptionSelection{{Name: "Mixed"}},
	}

	bundle := &engine.CompendiumBundle{
		Ancestry: &ember.Ancestry{
			ID: "anc_mixed",
			Options: []ember.AncestryOption{
				{
					Name: "Mixed",
					Effects: []string{
						"skills.bogus.value+1",
						"movement+",
						"resources.health.current+5",
						"skills.fitness.value+2",
					},
				},
			},
		},
	}

	resolved := s.resolve(c, bundle)
	s.Equal(4, resolved.Skills["fitness"].Value, "the valid effect still applies")
	s.Equal(ember.BaseMovement, resolved.Movement)
	s.Equal(ember.BaseResourceMax[ember.ResourceHealth], resolved.Resources[ember.ResourceHealth].Max)
}

func (s *ResolverTestSuite) TestResolve_SubchoiceEffects() {
	c := s.baseCharacter()
	c.Ancestry = &ember.AncestrySelection{
		AncestryID: "anc_kin",
		SelectedOptions: []ember.OptionSelection{
			{Name: "Kinship", SubchoiceID: "sub_cold"},
		},
	}

	bundle := &engine.CompendiumBundle{
		Ancestry: &ember.Ancestry{
			ID: "anc_kin",
			Options: []ember.AncestryOption{
				{
					Name: "Kinship",
					Subchoices: []ember.Subchoice{
						{ID: "sub_heat", Name: "Flamekin", Effects: []string{"mitigation.heat+1"}},
						{ID: "sub_cold", Name: "Frostkin", Effects: []string{"mitigation.cold+1"}},
					},
				},
			},
		},
	}

	resolved := s.resolve(c, bundle)
	s.Equal(1, resolved.Mitigation["cold"])
	s.Equal(0, resolved.Mitigation["heat"])
}

func (s *ResolverTestSuite) TestResolve_CultureSelections() {
	c := s.baseCharacter()
	c.Culture = &ember.CultureSelection{
		CultureID:           "cul_deep",
		SelectedRestriction: "Oathbound",
		SelectedBenefit:     "Deepsight",
	}

	bundle := &engine.CompendiumBundle{
		Culture: &ember.Culture{
			ID: "cul_deep",
			Restrictions: []ember.CultureOption{
				{Name: "Oathbound", Effects: []string{"resources.resolve.max+2"}},
			},
			Benefits: []ember.CultureOption{
				{Name: "Deepsight", Effects: []string{"skills.senses.value+1"}},
			},
		},
	}

	resolved := s.resolve(c, bundle)
	s.Equal(22, resolved.Resources[ember.ResourceResolve].Max)
	s.Equal(2, resolved.Skills["senses"].Value)
}

func (s *ResolverTestSuite) TestResolve_NegativeMaximaClampToZero() {
	c := s.baseCharacter()
	c.Traits = []ember.TraitSelection{
		{TraitID: "trait_frail", SelectedOptions: []ember.OptionSelection{{Name: "Frail"}}},
	}

	bundle := &engine.CompendiumBundle{
		Traits: map[string]*ember.Trait{
			"trait_frail": {
				ID:   "trait_frail",
				Type: ember.TraitTypeNegative,
				Options: []ember.TraitOption{
					{Name: "Frail", Effects: []string{"resources.energy.max-20", "mitigation.physical-3"}},
				},
			},
		},
	}

	resolved := s.resolve(c, bundle)
	s.Equal(0, resolved.Resources[ember.ResourceEnergy].Max)
	s.Equal(0, resolved.Mitigation["physical"])
}

func (s *ResolverTestSuite) TestResolve_DerivedTraitsDeduplicated() {
	c := s.baseCharacter()
	c.Ancestry = &ember.AncestrySelection{
		AncestryID:      "anc_stone",
		SelectedOptions: []ember.OptionSelection{{Name: "Stoneblood Resilience"}},
	}
	c.Modules = []ember.ModuleSelection{
		{ModuleID: "mod_echo", SelectedOptions: []ember.ModuleOptionSelection{{Location: "1"}}},
	}

	bundle := &engine.CompendiumBundle{
		Ancestry: stonebloodAncestry(),
		Modules: map[string]*ember.Module{
			"mod_echo": {
				ID: "mod_echo",
				Options: []ember.ModuleOption{
					{Location: "1", Cost: 1, Effects: []string{"trait:Stoneblood:Duplicate grant"}},
				},
			},
		},
	}

	resolved := s.resolve(c, bundle)
	s.Require().Len(resolved.DerivedTraits, 1)
	s.Equal("ancestry", resolved.DerivedTraits[0].Source)
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}
