// Package resolver implements the derived-stat resolution engine
package resolver

import (
	"context"

	"github.com/emberhollow/character-api/internal/engine"
	"github.com/emberhollow/character-api/internal/errors"
)

// Resolver implements engine.Engine. It is stateless: every call recomputes
// from the persisted base it is handed, so there is nothing to cache or
// synchronize between requests.
type Resolver struct{}

// New creates a new resolver
func New() *Resolver {
	return &Resolver{}
}

// Ensure Resolver implements the Engine interface
var _ engine.Engine = (*Resolver)(nil)

// ResolveCharacter runs the full pipeline: fresh baseline, one descriptor
// list per source in SourceOrder, the two-pass aggregation, then derived
// trait extraction. The input character is not mutated.
func (r *Resolver) ResolveCharacter(
	ctx context.Context,
	input *engine.ResolveCharacterInput,
) (*engine.ResolveCharacterOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	bundle := input.Compendium
	if bundle == nil {
		bundle = &engine.CompendiumBundle{}
	}

	c := input.Character
	state := newWorkingState(c)

	var descs []Descriptor
	for _, source := range SourceOrder {
		switch source {
		case SourceAncestry:
			descs = append(descs, ancestryDescriptors(ctx, c.Ancestry, bundle.Ancestry)...)
		case SourceCulture:
			descs = append(descs, cultureDescriptors(ctx, c.Culture, bundle.Culture)...)
		case SourceTrait:
			descs = append(descs, traitDescriptors(ctx, c.Traits, bundle.Traits)...)
		case SourceModule:
			descs = append(descs, moduleDescriptors(ctx, c.Modules, bundle.Modules)...)
		case SourceItem:
			descs = append(descs, itemDescriptors(ctx, c.Inventory, bundle.Items)...)
		}
	}

	// Talent and attribute changes land first so the projection sees them;
	// value-axis descriptors then stack on the projected pools.
	state.applyTalentPass(descs)
	state.project()
	state.applyValuePass(descs)

	traits := extractDerivedTraits(c, bundle)

	return &engine.ResolveCharacterOutput{
		Character: state.snapshot(c, traits),
	}, nil
}
