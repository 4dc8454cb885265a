package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "List finished characters",
	RunE:  runRoster,
}

func init() {
	rosterCmd.Flags().BoolVar(&useRedis, "redis", false, "read characters from Redis")
	rosterCmd.Flags().StringVar(&ownerID, "owner", "local", "owner id to list")
}

func runRoster(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}

	chars, err := a.roster.GetByOwner(context.Background(), ownerID)
	if err != nil {
		return err
	}
	if len(chars) == 0 {
		fmt.Println("No characters yet.")
		return nil
	}

	for _, char := range chars {
		line := fmt.Sprintf("%s - level %d %s %s, HP %d/%d, AC %d",
			char.Name, char.Level, char.RaceKey, char.ClassKey,
			char.CurrentHP, char.MaxHP, char.ArmorClass)
		if char.Caster {
			line += fmt.Sprintf(", spell DC %d", char.SpellSaveDC)
		}
		fmt.Println(line)
	}
	return nil
}
