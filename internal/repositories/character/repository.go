// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/emberhollow/character-api/internal/repositories/character Repository

import (
	"context"

	"github.com/emberhollow/character-api/internal/entities/ember"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create creates a new character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a character with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update updates an existing character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a character by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByPlayerID retrieves all characters for a player
	// Returns errors.InvalidArgument for empty player IDs
	// Returns errors.Internal for storage failures
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *ember.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *ember.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *ember.Character
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character *ember.Character
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *ember.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListByPlayerIDInput defines the input for listing characters by player
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing characters by player
type ListByPlayerIDOutput struct {
	Characters []*ember.Character
}
