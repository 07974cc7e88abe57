package resolver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/emberhollow/character-api/internal/engine"
	"github.com/emberhollow/character-api/internal/entities/ember"
	"github.com/emberhollow/character-api/internal/errors"
)

// ComputeSpentPoints sums the cost of every selected module option. Broken
// module references and selections pointing at locations the document no
// longer has contribute zero.
func (r *Resolver) ComputeSpentPoints(
	ctx context.Context,
	input *engine.ComputeSpentPointsInput,
) (*engine.ComputeSpentPointsOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	spent := 0
	for _, sel := range input.Character.Modules {
		doc := input.Modules[sel.ModuleID]
		if doc == nil {
			slog.WarnContext(ctx, "module reference did not populate, counting zero cost",
				"module_id", sel.ModuleID)
			continue
		}
		for _, unlocked := range sel.SelectedOptions {
			option, found := doc.OptionAt(unlocked.Location)
			if !found {
				continue
			}
			spent += option.Cost
		}
	}

	return &engine.ComputeSpentPointsOutput{Spent: spent}, nil
}

// ValidateModuleSelection checks that unlocking a location keeps the
// module's tier chain valid: every selected tier above 1 must have the
// previous tier selected.
func (r *Resolver) ValidateModuleSelection(
	ctx context.Context,
	input *engine.ValidateModuleSelectionInput,
) (*engine.ValidateModuleSelectionOutput, error) {
	if input == nil || input.Character == nil || input.Module == nil {
		return nil, errors.InvalidArgument("character and module are required")
	}

	option, found := input.Module.OptionAt(input.Location)
	if !found {
		return &engine.ValidateModuleSelectionOutput{
			Reason: fmt.Sprintf("module %s has no location %s", input.Module.ID, input.Location),
		}, nil
	}

	selected := selectedLocations(input.Character, input.Module.ID)
	for _, location := range selected {
		if location == input.Location {
			return &engine.ValidateModuleSelectionOutput{
				Reason: fmt.Sprintf("location %s is already selected", input.Location),
			}, nil
		}
	}

	if reason := validateTierChain(append(selected, input.Location)); reason != "" {
		return &engine.ValidateModuleSelectionOutput{Reason: reason}, nil
	}

	return &engine.ValidateModuleSelectionOutput{Valid: true, Cost: option.Cost}, nil
}

// ValidateModuleDeselection checks that removing a location leaves the
// remaining selections a valid tier chain.
func (r *Resolver) ValidateModuleDeselection(
	ctx context.Context,
	input *engine.ValidateModuleDeselectionInput,
) (*engine.ValidateModuleDeselectionOutput, error) {
	if input == nil || input.Character == nil || input.Module == nil {
		return nil, errors.InvalidArgument("character and module are required")
	}

	selected := selectedLocations(input.Character, input.Module.ID)
	remaining := make([]string, 0, len(selected))
	removed := false
	for _, location := range selected {
		if location == input.Location && !removed {
			removed = true
			continue
		}
		remaining = append(remaining, location)
	}
	if !removed {
		return &engine.ValidateModuleDeselectionOutput{
			Reason: fmt.Sprintf("location %s is not selected", input.Location),
		}, nil
	}

	if reason := validateTierChain(remaining); reason != "" {
		return &engine.ValidateModuleDeselectionOutput{Reason: reason}, nil
	}

	cost := 0
	if option, found := input.Module.OptionAt(input.Location); found {
		cost = option.Cost
	}

	return &engine.ValidateModuleDeselectionOutput{Valid: true, Cost: cost}, nil
}

func selectedLocations(c *ember.Character, moduleID string) []string {
	sel, found := c.FindModule(moduleID)
	if !found {
		return nil
	}
	locations := make([]string, 0, len(sel.SelectedOptions))
	for _, opt := range sel.SelectedOptions {
		locations = append(locations, opt.Location)
	}
	return locations
}

// validateTierChain enforces the unlock sequence: for every selected tier
// above 1, the previous tier must also be selected. Returns an empty string
// when the chain is valid.
func validateTierChain(locations []string) string {
	tiers := make(map[int]bool, len(locations))
	for _, location := range locations {
		tier, ok := ember.TierOf(location)
		if !ok {
			return fmt.Sprintf("location %q has no tier number", location)
		}
		tiers[tier] = true
	}

	for tier := range tiers {
		if tier > 1 && !tiers[tier-1] {
			return fmt.Sprintf("tier %d requires tier %d to be selected first", tier, tier-1)
		}
	}
	return ""
}
