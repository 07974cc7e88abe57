package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	charactersvc "github.com/emberhollow/character-api/internal/services/character"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <character-id>",
	Short: "Resolve a character's effective stats",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	svc, err := buildService()
	if err != nil {
		return err
	}

	out, err := svc.GetCharacter(cmd.Context(), &charactersvc.GetCharacterInput{
		CharacterID: args[0],
	})
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(out.Character, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
