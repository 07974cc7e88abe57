// Package character implements the character service: the resolution facade
// plus every mutation, with resource clamping against freshly computed maxima.
package character

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/emberhollow/character-api/internal/engine"
	"github.com/emberhollow/character-api/internal/entities/ember"
	"github.com/emberhollow/character-api/internal/errors"
	"github.com/emberhollow/character-api/internal/pkg/clock"
	"github.com/emberhollow/character-api/internal/pkg/idgen"
	characterrepo "github.com/emberhollow/character-api/internal/repositories/character"
	compendiumrepo "github.com/emberhollow/character-api/internal/repositories/compendium"
	charactersvc "github.com/emberhollow/character-api/internal/services/character"
)

// Config contains the dependencies for the character orchestrator.
type Config struct {
	CharacterRepo  characterrepo.Repository
	CompendiumRepo compendiumrepo.Repository
	Engine         engine.Engine
	IDGenerator    idgen.Generator
	Clock          clock.Clock
}

// Validate validates the config.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if cfg.CompendiumRepo == nil {
		vb.RequiredField("CompendiumRepo")
	}
	if cfg.Engine == nil {
		vb.RequiredField("Engine")
	}
	return vb.Build()
}

// Orchestrator implements the character service
type Orchestrator struct {
	characterRepo  characterrepo.Repository
	compendiumRepo compendiumrepo.Repository
	engine         engine.Engine
	idGenerator    idgen.Generator
	clock          clock.Clock
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewUUID("char")
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &Orchestrator{
		characterRepo:  cfg.CharacterRepo,
		compendiumRepo: cfg.CompendiumRepo,
		engine:         cfg.Engine,
		idGenerator:    gen,
		clock:          clk,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ charactersvc.Service = (*Orchestrator)(nil)

// CreateCharacter creates a character with creation defaults and returns its
// resolved projection.
func (o *Orchestrator) CreateCharacter(
	ctx context.Context,
	input *charactersvc.CreateCharacterInput,
) (*charactersvc.CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	if input.ModulePointsTotal < 0 {
		vb.Field("module_points_total", "cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	c := ember.NewCharacter(o.idGenerator.Generate(), input.PlayerID, input.Name)
	c.ModulePoints.Total = input.ModulePointsTotal

	if _, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: c}); err != nil {
		return nil, err
	}

	// A fresh character references nothing, so resolution needs no documents.
	resolved, err := o.engine.ResolveCharacter(ctx, &engine.ResolveCharacterInput{Character: c})
	if err != nil {
		return nil, err
	}

	return &charactersvc.CreateCharacterOutput{Character: resolved.Character}, nil
}

// GetCharacter is the resolution facade: load, populate references, correct
// module point drift, and resolve. The returned projection is the only
// sanctioned view of a character's effective stats.
func (o *Orchestrator) GetCharacter(
	ctx context.Context,
	input *charactersvc.GetCharacterInput,
) (*charactersvc.GetCharacterOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	c := got.Character

	bundle, err := o.loadBundle(ctx, c)
	if err != nil {
		return nil, err
	}

	// The stored spent total is advisory; recompute and persist any drift
	// before handing the character to clients.
	spent, err := o.engine.ComputeSpentPoints(ctx, &engine.ComputeSpentPointsInput{
		Character: c,
		Modules:   bundle.Modules,
	})
	if err != nil {
		return nil, err
	}
	if spent.Spent != c.ModulePoints.Spent {
		slog.WarnContext(ctx, "correcting module point drift",
			"character_id", c.ID,
			"stored", c.ModulePoints.Spent,
			"computed", spent.Spent)
		c.ModulePoints.Spent = spent.Spent
		if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: c}); err != nil {
			return nil, errors.Wrap(err, "failed to persist module point correction")
		}
	}

	resolved, err := o.engine.ResolveCharacter(ctx, &engine.ResolveCharacterInput{
		Character:  c,
		Compendium: bundle,
	})
	if err != nil {
		return nil, err
	}

	return &charactersvc.GetCharacterOutput{Character: resolved.Character}, nil
}

// ListCharacters lists a player's characters without resolving them.
func (o *Orchestrator) ListCharacters(
	ctx context.Context,
	input *charactersvc.ListCharactersInput,
) (*charactersvc.ListCharactersOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	listed, err := o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, err
	}

	return &charactersvc.ListCharactersOutput{Characters: listed.Characters}, nil
}

// DeleteCharacter deletes a character.
func (o *Orchestrator) DeleteCharacter(
	ctx context.Context,
	input *charactersvc.DeleteCharacterInput,
) (*charactersvc.DeleteCharacterOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, err
	}

	return &charactersvc.DeleteCharacterOutput{
		Message: fmt.Sprintf("character %s deleted", input.CharacterID),
	}, nil
}

// mutate is the shared mutation tail: load the character, apply the change,
// resolve against freshly populated references, clamp resource currents to
// the recomputed maxima, and persist. A failed write-back fails the request
// so clients never see an unpersisted clamp.
func (o *Orchestrator) mutate(
	ctx context.Context,
	characterID string,
	apply func(c *ember.Character) error,
) (*engine.ResolvedCharacter, error) {
	if characterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: characterID})
	if err != nil {
		return nil, err
	}
	c := got.Character

	if err := apply(c); err != nil {
		return nil, err
	}

	bundle, err := o.loadBundle(ctx, c)
	if err != nil {
		return nil, err
	}

	resolved, err := o.engine.ResolveCharacter(ctx, &engine.ResolveCharacterInput{
		Character:  c,
		Compendium: bundle,
	})
	if err != nil {
		return nil, err
	}

	clampResources(c, resolved.Character)

	if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: c}); err != nil {
		return nil, errors.Wrap(err, "failed to persist character")
	}

	return resolved.Character, nil
}

// clampResources pins each persisted current into [0, effectiveMax] and
// refreshes the informational stored max. Clamping never raises a current.
func clampResources(c *ember.Character, resolved *engine.ResolvedCharacter) {
	if c.Resources == nil {
		c.Resources = make(map[string]ember.Resource, len(ember.ResourceIDs))
	}
	for _, id := range ember.ResourceIDs {
		max := resolved.Resources[id].Max
		current := c.Resources[id].Current
		if current > max {
			current = max
		}
		if current < 0 {
			current = 0
		}
		c.Resources[id] = ember.Resource{Current: current, Max: max}
		resolved.Resources[id] = engine.ResolvedResource{Current: current, Max: max}
	}
}

// loadBundle populates every compendium document the character references.
// Broken references stay nil in the bundle and are logged; only storage
// failures abort.
func (o *Orchestrator) loadBundle(ctx context.Context, c *ember.Character) (*engine.CompendiumBundle, error) {
	bundle := &engine.CompendiumBundle{
		Traits:  make(map[string]*ember.Trait),
		Modules: make(map[string]*ember.Module),
		Items:   make(map[string]*ember.Item),
	}

	if c.Ancestry != nil {
		out, err := o.compendiumRepo.GetAncestry(ctx, compendiumrepo.GetAncestryInput{ID: c.Ancestry.AncestryID})
		switch {
		case err == nil:
			bundle.Ancestry = out.Ancestry
		case errors.IsNotFound(err):
			slog.WarnContext(ctx, "ancestry reference is broken",
				"character_id", c.ID,
				"ancestry_id", c.Ancestry.AncestryID)
		default:
			return nil, errors.Wrap(err, "failed to load ancestry")
		}
	}

	if c.Culture != nil {
		out, err := o.compendiumRepo.GetCulture(ctx, compendiumrepo.GetCultureInput{ID: c.Culture.CultureID})
		switch {
		case err == nil:
			bundle.Culture = out.Culture
		case errors.IsNotFound(err):
			slog.WarnContext(ctx, "culture reference is broken",
				"character_id", c.ID,
				"culture_id", c.Culture.CultureID)
		default:
			return nil, errors.Wrap(err, "failed to load culture")
		}
	}

	for _, sel := range c.Traits {
		out, err := o.compendiumRepo.GetTrait(ctx, compendiumrepo.GetTraitInput{ID: sel.TraitID})
		switch {
		case err == nil:
			bundle.Traits[sel.TraitID] = out.Trait
		case errors.IsNotFound(err):
			slog.WarnContext(ctx, "trait reference is broken",
				"character_id", c.ID,
				"trait_id", sel.TraitID)
		default:
			return nil, errors.Wrap(err, "failed to load trait")
		}
	}

	modules, err := o.moduleDocs(ctx, c)
	if err != nil {
		return nil, err
	}
	bundle.Modules = modules

	for _, entry := range c.Inventory {
		out, err := o.compendiumRepo.GetItem(ctx, compendiumrepo.GetItemInput{ID: entry.ItemID})
		switch {
		case err == nil:
			bundle.Items[entry.ItemID] = out.Item
		case errors.IsNotFound(err):
			slog.WarnContext(ctx, "item reference is broken",
				"character_id", c.ID,
				"item_id", entry.ItemID)
		default:
			return nil, errors.Wrap(err, "failed to load item")
		}
	}

	return bundle, nil
}

// moduleDocs fetches the documents for every selected module. Broken
// references are skipped; spent computation counts them as zero cost.
func (o *Orchestrator) moduleDocs(ctx context.Context, c *ember.Character) (map[string]*ember.Module, error) {
	docs := make(map[string]*ember.Module, len(c.Modules))
	for _, sel := range c.Modules {
		out, err := o.compendiumRepo.GetModule(ctx, compendiumrepo.GetModuleInput{ID: sel.ModuleID})
		switch {
		case err == nil:
			docs[sel.ModuleID] = out.Module
		case errors.IsNotFound(err):
			slog.WarnContext(ctx, "module reference is broken",
				"character_id", c.ID,
				"module_id", sel.ModuleID)
		default:
			return nil, errors.Wrap(err, "failed to load module")
		}
	}
	return docs, nil
}
