package character

import (
	"context"

	"github.com/emberhollow/character-api/internal/entities/ember"
	"github.com/emberhollow/character-api/internal/errors"
	compendiumrepo "github.com/emberhollow/character-api/internal/repositories/compendium"
	charactersvc "github.com/emberhollow/character-api/internal/services/character"
)

// AddItem adds an item to the inventory, unequipped. Adding an item already
// in the inventory bumps its quantity.
func (o *Orchestrator) AddItem(
	ctx context.Context,
	input *charactersvc.AddItemInput,
) (*charactersvc.AddItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, errors.InvalidArgument("quantity cannot be negative")
	}

	if _, err := o.compendiumRepo.GetItem(ctx, compendiumrepo.GetItemInput{ID: input.ItemID}); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.InvalidArgumentf("item %s does not exist", input.ItemID)
		}
		return nil, err
	}

	resolved, err := o.mutate(ctx, input.CharacterID, func(c *ember.Character) error {
		if entry, found := c.FindInventoryItem(input.ItemID); found {
			entry.Quantity += quantity
			return nil
		}
		c.Inventory = append(c.Inventory, ember.InventoryItem{
			ItemID:   input.ItemID,
			Quantity: quantity,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &charactersvc.AddItemOutput{Character: resolved}, nil
}

// RemoveItem removes an inventory entry entirely, equipped or not.
func (o *Orchestrator) RemoveItem(
	ctx context.Context,
	input *charactersvc.RemoveItemInput,
) (*charactersvc.RemoveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	resolved, err := o.mutate(ctx, input.CharacterID, func(c *ember.Character) error {
		for i := range c.Inventory {
			if c.Inventory[i].ItemID == input.ItemID {
				c.Inventory = append(c.Inventory[:i], c.Inventory[i+1:]...)
				return nil
			}
		}
		return errors.NotFoundf("item %s is not in the inventory", input.ItemID)
	})
	if err != nil {
		return nil, err
	}

	return &charactersvc.RemoveItemOutput{Character: resolved}, nil
}

// SetItemEquipped toggles an inventory entry's equipped flag. Equipping and
// unequipping both reclamp, since item bonuses can move resource maxima.
func (o *Orchestrator) SetItemEquipped(
	ctx context.Context,
	input *charactersvc.SetItemEquippedInput,
) (*charactersvc.SetItemEquippedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	resolved, err := o.mutate(ctx, input.CharacterID, func(c *ember.Character) error {
		entry, found := c.FindInventoryItem(input.ItemID)
		if !found {
			return errors.NotFoundf("item %s is not in the inventory", input.ItemID)
		}
		entry.Equipped = input.Equipped
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &charactersvc.SetItemEquippedOutput{Character: resolved}, nil
}
