package resolver

import (
	"context"
	"log/slog"
	"strings"

	"github.com/emberhollow/character-api/internal/engine"
	"github.com/emberhollow/character-api/internal/entities/ember"
)

// Bonus source readers. Each turns one category of player selections into
// descriptors without mutating its inputs. Options present on a compendium
// document but not selected by the player contribute nothing. A reference
// that failed to populate, a selection naming an option the document no
// longer has, or a malformed effect code costs only that contribution: the
// reader logs and keeps going.

// appendEffects parses effect codes into descs, skipping trait grants and
// logging anything malformed.
func appendEffects(
	ctx context.Context,
	descs []Descriptor,
	effects []string,
	source SourceKind,
	origin string,
) []Descriptor {
	for _, code := range effects {
		if strings.HasPrefix(code, traitGrantPrefix) {
			continue
		}
		d, ok := parseEffect(code, source)
		if !ok {
			slog.WarnContext(ctx, "skipping malformed effect code",
				"source", string(source),
				"origin", origin,
				"code", code)
			continue
		}
		descs = append(descs, d)
	}
	return descs
}

func ancestryDescriptors(
	ctx context.Context,
	sel *ember.AncestrySelection,
	doc *ember.Ancestry,
) []Descriptor {
	if sel == nil {
		return nil
	}
	if doc == nil {
		slog.WarnContext(ctx, "ancestry reference did not populate, skipping",
			"ancestry_id", sel.AncestryID)
		return nil
	}

	var descs []Descriptor
	for _, selected := range sel.SelectedOptions {
		option, found := doc.FindOption(selected.Name)
		if !found {
			slog.WarnContext(ctx, "selected ancestry option missing from document",
				"ancestry_id", doc.ID,
				"option", selected.Name)
			continue
		}

		descs = appendEffects(ctx, descs, option.Effects, SourceAncestry, option.Name)
		descs = appendSubchoice(ctx, descs, option.Subchoices, selected.SubchoiceID, SourceAncestry, option.Name)
	}
	return descs
}

// appendSubchoice expands the chosen nested option, if any.
func appendSubchoice(
	ctx context.Context,
	descs []Descriptor,
	subchoices []ember.Subchoice,
	subchoiceID string,
	source SourceKind,
	origin string,
) []Descriptor {
	if subchoiceID == "" {
		return descs
	}
	for i := range subchoices {
		if subchoices[i].ID == subchoiceID {
			return appendEffects(ctx, descs, subchoices[i].Effects, source, origin+"/"+subchoices[i].Name)
		}
	}
	slog.WarnContext(ctx, "selected subchoice missing from option",
		"origin", origin,
		"subchoice_id", subchoiceID)
	return descs
}

func cultureDescriptors(
	ctx context.Context,
	sel *ember.CultureSelection,
	doc *ember.Culture,
) []Descriptor {
	if sel == nil {
		return nil
	}
	if doc == nil {
		slog.WarnContext(ctx, "culture reference did not populate, skipping",
			"culture_id", sel.CultureID)
		return nil
	}

	var descs []Descriptor
	pick := func(name, kind string, find func(string) (*ember.CultureOption, bool)) {
		if name == "" {
			return
		}
		option, found := find(name)
		if !found {
			slog.WarnContext(ctx, "selected culture option missing from document",
				"culture_id", doc.ID,
				"kind", kind,
				"option", name)
			return
		}
		descs = appendEffects(ctx, descs, option.Effects, SourceCulture, option.Name)
	}

	pick(sel.SelectedRestriction, "restriction", doc.FindRestriction)
	pick(sel.SelectedBenefit, "benefit", doc.FindBenefit)
	pick(sel.SelectedStartingItem, "starting_item", doc.FindStartingItem)
	return descs
}

func traitDescriptors(
	ctx context.Context,
	selections []ember.TraitSelection,
	docs map[string]*ember.Trait,
) []Descriptor {
	var descs []Descriptor
	for _, sel := range selections {
		doc := docs[sel.TraitID]
		if doc == nil {
			slog.WarnContext(ctx, "trait reference did not populate, skipping",
				"trait_id", sel.TraitID)
			continue
		}

		// The positive/negative label is cosmetic; effect amounts carry
		// their own sign.
		for _, selected := range sel.SelectedOptions {
			option, found := doc.FindOption(selected.Name)
			if !found {
				slog.WarnContext(ctx, "selected trait option missing from document",
					"trait_id", doc.ID,
					"option", selected.Name)
				continue
			}
			descs = appendEffects(ctx, descs, option.Effects, SourceTrait, option.Name)
			descs = appendSubchoice(ctx, descs, option.Subchoices, selected.SubchoiceID, SourceTrait, option.Name)
		}
	}
	return descs
}

func moduleDescriptors(
	ctx context.Context,
	selections []ember.ModuleSelection,
	docs map[string]*ember.Module,
) []Descriptor {
	var descs []Descriptor
	for _, sel := range selections {
		doc := docs[sel.ModuleID]
		if doc == nil {
			slog.WarnContext(ctx, "module reference did not populate, skipping",
				"module_id", sel.ModuleID)
			continue
		}

		// Only unlocked locations contribute; unpurchased tiers are inert.
		for _, unlocked := range sel.SelectedOptions {
			option, found := doc.OptionAt(unlocked.Location)
			if !found {
				slog.WarnContext(ctx, "unlocked location missing from module document",
					"module_id", doc.ID,
					"location", unlocked.Location)
				continue
			}
			descs = appendEffects(ctx, descs, option.Effects, SourceModule, doc.Name+"@"+option.Location)
		}
	}
	return descs
}

func itemDescriptors(
	ctx context.Context,
	inventory []ember.InventoryItem,
	docs map[string]*ember.Item,
) []Descriptor {
	var descs []Descriptor
	for _, entry := range inventory {
		if !entry.Equipped {
			continue
		}
		doc := docs[entry.ItemID]
		if doc == nil {
			slog.WarnContext(ctx, "item reference did not populate, skipping",
				"item_id", entry.ItemID)
			continue
		}
		descs = append(descs, singleItemDescriptors(ctx, doc)...)
	}
	return descs
}

// singleItemDescriptors emits one add descriptor per non-zero bonus field on
// an equipped item.
func singleItemDescriptors(ctx context.Context, doc *ember.Item) []Descriptor {
	var descs []Descriptor

	add := func(target Target, amount int) {
		if amount == 0 {
			return
		}
		descs = append(descs, Descriptor{
			Target: target,
			Op:     OpAdd,
			Amount: amount,
			Source: SourceItem,
		})
	}

	skillMap := func(group string, bonuses map[string]int) {
		for id, amount := range bonuses {
			if !isSkillOf(group, id) {
				slog.WarnContext(ctx, "item bonus names unknown skill, skipping",
					"item_id", doc.ID,
					"group", group,
					"skill", id)
				continue
			}
			add(Target{Group: group, Key: id, Axis: AxisValue}, amount)
		}
	}

	skillMap(groupSkills, doc.Basic)
	skillMap(groupWeapon, doc.Weapon)
	skillMap(groupMagic, doc.Magic)
	skillMap(groupCrafting, doc.Craft)

	for id, amount := range doc.Attributes {
		if !isAttribute(id) {
			slog.WarnContext(ctx, "item bonus names unknown attribute, skipping",
				"item_id", doc.ID,
				"attribute", id)
			continue
		}
		add(Target{Group: groupAttributes, Key: id}, amount)
	}

	for id, amount := range doc.Mitigation {
		if !contains(ember.MitigationIDs, id) {
			slog.WarnContext(ctx, "item bonus names unknown mitigation, skipping",
				"item_id", doc.ID,
				"mitigation", id)
			continue
		}
		add(Target{Group: groupMitigation, Key: id}, amount)
	}

	add(Target{Group: groupResources, Key: ember.ResourceHealth}, doc.Health)
	add(Target{Group: groupResources, Key: ember.ResourceEnergy}, doc.Energy)
	add(Target{Group: groupResources, Key: ember.ResourceResolve}, doc.Resolve)
	add(Target{Group: groupMovement}, doc.Movement)

	return descs
}

// extractDerivedTraits scans selected ancestry and module options for trait
// grants ("trait:Name:Description") and returns a flattened, de-duplicated
// list. Pure display data; numeric stats are unaffected.
func extractDerivedTraits(c *ember.Character, bundle *engine.CompendiumBundle) []engine.DerivedTrait {
	var traits []engine.DerivedTrait
	seen := make(map[string]bool)

	collect := func(effects []string, source string) {
		for _, code := range effects {
			if !strings.HasPrefix(code, traitGrantPrefix) {
				continue
			}
			name, description := splitTraitGrant(code)
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			traits = append(traits, engine.DerivedTrait{
				Name:        name,
				Description: description,
				Source:      source,
			})
		}
	}

	if c.Ancestry != nil && bundle.Ancestry != nil {
		for _, selected := range c.Ancestry.SelectedOptions {
			if option, found := bundle.Ancestry.FindOption(selected.Name); found {
				collect(option.Effects, string(SourceAncestry))
			}
		}
	}

	for _, sel := range c.Modules {
		doc := bundle.Modules[sel.ModuleID]
		if doc == nil {
			continue
		}
		for _, unlocked := range sel.SelectedOptions {
			if option, found := doc.OptionAt(unlocked.Location); found {
				collect(option.Effects, string(SourceModule))
			}
		}
	}

	return traits
}

func splitTraitGrant(code string) (name, description string) {
	rest := strings.TrimPrefix(code, traitGrantPrefix)
	if idx := strings.Index(rest, ":"); idx >= 0 {
		return rest[:idx], rest[idx+1:]
	}
	return rest, ""
}
