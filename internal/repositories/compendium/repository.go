// Package compendium provides the interface for compendium document persistence
package compendium

//go:generate mockgen -destination=mock/mock_repository.go -package=compendiummock github.com/emberhollow/character-api/internal/repositories/compendium Repository

import (
	"context"

	"github.com/emberhollow/character-api/internal/entities/ember"
)

// Repository defines the interface for compendium persistence. Get methods
// return errors.NotFound for unknown IDs, errors.InvalidArgument for empty
// IDs, and errors.Internal for storage failures. Put methods upsert.
type Repository interface {
	GetAncestry(ctx context.Context, input GetAncestryInput) (*GetAncestryOutput, error)
	PutAncestry(ctx context.Context, input PutAncestryInput) (*PutAncestryOutput, error)

	GetCulture(ctx context.Context, input GetCultureInput) (*GetCultureOutput, error)
	PutCulture(ctx context.Context, input PutCultureInput) (*PutCultureOutput, error)

	GetTrait(ctx context.Context, input GetTraitInput) (*GetTraitOutput, error)
	PutTrait(ctx context.Context, input PutTraitInput) (*PutTraitOutput, error)

	GetModule(ctx context.Context, input GetModuleInput) (*GetModuleOutput, error)
	PutModule(ctx context.Context, input PutModuleInput) (*PutModuleOutput, error)

	GetItem(ctx context.Context, input GetItemInput) (*GetItemOutput, error)
	PutItem(ctx context.Context, input PutItemInput) (*PutItemOutput, error)
}

// GetAncestryInput defines the input for getting an ancestry
type GetAncestryInput struct {
	ID string
}

// GetAncestryOutput defines the output for getting an ancestry
type GetAncestryOutput struct {
	Ancestry *ember.Ancestry
}

// PutAncestryInput defines the input for storing an ancestry
type PutAncestryInput struct {
	Ancestry *ember.Ancestry
}

// PutAncestryOutput defines the output for storing an ancestry
type PutAncestryOutput struct{}

// GetCultureInput defines the input for getting a culture
type GetCultureInput struct {
	ID string
}

// GetCultureOutput defines the output for getting a culture
type GetCultureOutput struct {
	Culture *ember.Culture
}

// PutCultureInput defines the input for storing a culture
type PutCultureInput struct {
	Culture *ember.Culture
}

// PutCultureOutput defines the output for storing a culture
type PutCultureOutput struct{}

// GetTraitInput defines the input for getting a trait
type GetTraitInput struct {
	ID string
}

// GetTraitOutput defines the output for getting a trait
type GetTraitOutput struct {
	Trait *ember.Trait
}

// PutTraitInput defines the input for storing a trait
type PutTraitInput struct {
	Trait *ember.Trait
}

// PutTraitOutput defines the output for storing a trait
type PutTraitOutput struct{}

// GetModuleInput defines the input for getting a module
type GetModuleInput struct {
	ID string
}

// GetModuleOutput defines the output for getting a module
type GetModuleOutput struct {
	Module *ember.Module
}

// PutModuleInput defines the input for storing a module
type PutModuleInput struct {
	Module *ember.Module
}

// PutModuleOutput defines the output for storing a module
type PutModuleOutput struct{}

// GetItemInput defines the input for getting an item
type GetItemInput struct {
	ID string
}

// GetItemOutput defines the output for getting an item
type GetItemOutput struct {
	Item *ember.Item
}

// PutItemInput defines the input for storing an item
type PutItemInput struct {
	Item *ember.Item
}

// PutItemOutput defines the output for storing an item
type PutItemOutput struct{}
