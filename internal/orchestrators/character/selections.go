package character

import (
	"context"
	"log/slog"

	"github.com/emberhollow/character-api/internal/engine"
	"github.com/emberhollow/character-api/internal/entities/ember"
	"github.com/emberhollow/character-api/internal/errors"
	compendiumrepo "github.com/emberhollow/character-api/internal/repositories/compendium"
	charactersvc "github.com/emberhollow/character-api/internal/services/character"
)

// SetAncestry replaces the ancestry selection. A nil selection clears it.
func (o *Orchestrator) SetAncestry(
	ctx context.Context,
	input *charactersvc.SetAncestryInput,
) (*charactersvc.SetAncestryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.Selection != nil {
		if input.Selection.AncestryID == "" {
			return nil, errors.InvalidArgument("ancestry ID is required")
		}
		if _, err := o.compendiumRepo.GetAncestry(ctx, compendiumrepo.GetAncestryInput{
			ID: input.Selection.AncestryID,
		}); err != nil {
			if errors.IsNotFound(err) {
				return nil, errors.InvalidArgumentf("ancestry %s does not exist", input.Selection.AncestryID)
			}
			return nil, err
		}
	}

	resolved, err := o.mutate(ctx, input.CharacterID, func(c *ember.Character) error {
		c.Ancestry = input.Selection
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &charactersvc.SetAncestryOutput{Character: resolved}, nil
}

// SetCulture replaces the culture selection. A nil selection clears it.
func (o *Orchestrator) SetCulture(
	ctx context.Context,
	input *charactersvc.SetCultureInput,
) (*charactersvc.SetCultureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.Selection != nil {
		if input.Selection.CultureID == "" {
			return nil, errors.InvalidArgument("culture ID is required")
		}
		if _, err := o.compendiumRepo.GetCulture(ctx, compendiumrepo.GetCultureInput{
			ID: input.Selection.CultureID,
		}); err != nil {
			if errors.IsNotFound(err) {
				return nil, errors.InvalidArgumentf("culture %s does not exist", input.Selection.CultureID)
			}
			return nil, err
		}
	}

	resolved, err := o.mutate(ctx, input.CharacterID, func(c *ember.Character) error {
		c.Culture = input.Selection
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &charactersvc.SetCultureOutput{Character: resolved}, nil
}

// AddTrait adds a trait selection. Selecting the same trait twice is an
// error.
func (o *Orchestrator) AddTrait(
	ctx context.Context,
	input *charactersvc.AddTraitInput,
) (*charactersvc.AddTraitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Selection.TraitID == "" {
		return nil, errors.InvalidArgument("trait ID is required")
	}

	if _, err := o.compendiumRepo.GetTrait(ctx, compendiumrepo.GetTraitInput{
		ID: input.Selection.TraitID,
	}); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.InvalidArgumentf("trait %s does not exist", input.Selection.TraitID)
		}
		return nil, err
	}

	resolved, err := o.mutate(ctx, input.CharacterID, func(c *ember.Character) error {
		for _, sel := range c.Traits {
			if sel.TraitID == input.Selection.TraitID {
				return errors.AlreadyExistsf("trait %s is already selected", input.Selection.TraitID)
			}
		}
		c.Traits = append(c.Traits, input.Selection)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &charactersvc.AddTraitOutput{Character: resolved}, nil
}

// RemoveTrait removes a trait selection.
func (o *Orchestrator) RemoveTrait(
	ctx context.Context,
	input *charactersvc.RemoveTraitInput,
) (*charactersvc.RemoveTraitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.TraitID == "" {
		return nil, errors.InvalidArgument("trait ID is required")
	}

	resolved, err := o.mutate(ctx, input.CharacterID, func(c *ember.Character) error {
		for i, sel := range c.Traits {
			if sel.TraitID == input.TraitID {
				c.Traits = append(c.Traits[:i], c.Traits[i+1:]...)
				return nil
			}
		}
		return errors.NotFoundf("trait %s is not selected", input.TraitID)
	})
	if err != nil {
		return nil, err
	}

	return &charactersvc.RemoveTraitOutput{Character: resolved}, nil
}

// SelectModuleOption unlocks one module location after tier and budget
// checks. Spent points are recomputed from the selections rather than
// incremented blindly.
func (o *Orchestrator) SelectModuleOption(
	ctx context.Context,
	input *charactersvc.SelectModuleOptionInput,
) (*charactersvc.SelectModuleOptionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("module_id", input.ModuleID, vb)
	errors.ValidateRequired("location", input.Location, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	doc, err := o.compendiumRepo.GetModule(ctx, compendiumrepo.GetModuleInput{ID: input.ModuleID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.InvalidArgumentf("module %s does not exist", input.ModuleID)
		}
		return nil, err
	}

	resolved, err := o.mutate(ctx, input.CharacterID, func(c *ember.Character) error {
		validated, err := o.engine.ValidateModuleSelection(ctx, &engine.ValidateModuleSelectionInput{
			Character: c,
			Module:    doc.Module,
			Location:  input.Location,
		})
		if err != nil {
			return err
		}
		if !validated.Valid {
			return errors.FailedPrecondition(validated.Reason)
		}

		docs, err := o.moduleDocs(ctx, c)
		if err != nil {
			return err
		}
		spent, err := o.engine.ComputeSpentPoints(ctx, &engine.ComputeSpentPointsInput{
			Character: c,
			Modules:   docs,
		})
		if err != nil {
			return err
		}
		if spent.Spent+validated.Cost > c.ModulePoints.Total {
			return errors.FailedPreconditionf(
				"selecting %s@%s costs %d but only %d module points remain",
				input.ModuleID, input.Location, validated.Cost, c.ModulePoints.Total-spent.Spent)
		}

		option := ember.ModuleOptionSelection{
			Location:   input.Location,
			SelectedAt: o.clock.Now().Unix(),
		}
		if sel, found := c.FindModule(input.ModuleID); found {
			sel.SelectedOptions = append(sel.SelectedOptions, option)
		} else {
			c.Modules = append(c.Modules, ember.ModuleSelection{
				ModuleID:        input.ModuleID,
				SelectedOptions: []ember.ModuleOptionSelection{option},
			})
		}
		c.ModulePoints.Spent = spent.Spent + validated.Cost
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &charactersvc.SelectModuleOptionOutput{Character: resolved}, nil
}

// DeselectModuleOption removes one unlocked location, provided the remaining
// selections still form a valid tier chain. Removal is allowed even when the
// module document is gone, so broken references can be cleaned up.
func (o *Orchestrator) DeselectModuleOption(
	ctx context.Context,
	input *charactersvc.DeselectModuleOptionInput,
) (*charactersvc.DeselectModuleOptionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("module_id", input.ModuleID, vb)
	errors.ValidateRequired("location", input.Location, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	doc := &ember.Module{ID: input.ModuleID}
	got, err := o.compendiumRepo.GetModule(ctx, compendiumrepo.GetModuleInput{ID: input.ModuleID})
	switch {
	case err == nil:
		doc = got.Module
	case errors.IsNotFound(err):
		slog.WarnContext(ctx, "deselecting from broken module reference",
			"module_id", input.ModuleID)
	default:
		return nil, err
	}

	resolved, err := o.mutate(ctx, input.CharacterID, func(c *ember.Character) error {
		validated, err := o.engine.ValidateModuleDeselection(ctx, &engine.ValidateModuleDeselectionInput{
			Character: c,
			Module:    doc,
			Location:  input.Location,
		})
		if err != nil {
			return err
		}
		if !validated.Valid {
			return errors.FailedPrecondition(validated.Reason)
		}

		sel, found := c.FindModule(input.ModuleID)
		if !found {
			return errors.NotFoundf("module %s is not selected", input.ModuleID)
		}
		for i, opt := range sel.SelectedOptions {
			if opt.Location == input.Location {
				sel.SelectedOptions = append(sel.SelectedOptions[:i], sel.SelectedOptions[i+1:]...)
				break
			}
		}
		if len(sel.SelectedOptions) == 0 {
			for i := range c.Modules {
				if c.Modules[i].ModuleID == input.ModuleID {
					c.Modules = append(c.Modules[:i], c.Modules[i+1:]...)
					break
				}
			}
		}

		docs, err := o.moduleDocs(ctx, c)
		if err != nil {
			return err
		}
		spent, err := o.engine.ComputeSpentPoints(ctx, &engine.ComputeSpentPointsInput{
			Character: c,
			Modules:   docs,
		})
		if err != nil {
			return err
		}
		c.ModulePoints.Spent = spent.Spent
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &charactersvc.DeselectModuleOptionOutput{Character: resolved}, nil
}
