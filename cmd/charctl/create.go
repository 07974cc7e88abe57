package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	charactersvc "github.com/emberhollow/character-api/internal/services/character"
)

var (
	createPlayerID     string
	createName         string
	createModulePoints int
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a character with creation defaults",
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createPlayerID, "player", "", "owning player ID")
	createCmd.Flags().StringVar(&createName, "name", "", "character name")
	createCmd.Flags().IntVar(&createModulePoints, "points", 0, "module point budget")
	_ = createCmd.MarkFlagRequired("player")
	_ = createCmd.MarkFlagRequired("name")
}

func runCreate(cmd *cobra.Command, args []string) error {
	svc, err := buildService()
	if err != nil {
		return err
	}

	out, err := svc.CreateCharacter(cmd.Context(), &charactersvc.CreateCharacterInput{
		PlayerID:          createPlayerID,
		Name:              createName,
		ModulePointsTotal: createModulePoints,
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
