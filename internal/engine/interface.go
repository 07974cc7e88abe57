// Package engine defines the contract for the derived-stat resolution engine
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/emberhollow/character-api/internal/engine Engine

import (
	"context"
)

// Engine computes effective character state from persisted base state. It is
// stateless and pure: implementations hold no cross-call memory and never
// touch storage.
type Engine interface {
	// ResolveCharacter applies every bonus layer to a fresh projection of the
	// character. Broken compendium references and malformed effect codes are
	// absorbed (logged, skipped); only a nil/invalid input is an error.
	ResolveCharacter(ctx context.Context, input *ResolveCharacterInput) (*ResolveCharacterOutput, error)

	// ComputeSpentPoints recomputes the module point total from the selected
	// module options. The stored spent value is not trusted.
	ComputeSpentPoints(ctx context.Context, input *ComputeSpentPointsInput) (*ComputeSpentPointsOutput, error)

	// ValidateModuleSelection checks the tier unlock sequence for adding a
	// module location.
	ValidateModuleSelection(
		ctx context.Context,
		input *ValidateModuleSelectionInput,
	) (*ValidateModuleSelectionOutput, error)

	// ValidateModuleDeselection checks that removing a module location leaves
	// a valid tier chain.
	ValidateModuleDeselection(
		ctx context.Context,
		input *ValidateModuleDeselectionInput,
	) (*ValidateModuleDeselectionOutput, error)
}
