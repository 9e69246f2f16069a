package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dasu-rpg/leveling-api/internal/services/leveling"
)

var (
	flagCategory  string
	flagLevel     int
	flagReference string
	flagMaxLevel  int
)

var progressionCmd = &cobra.Command{
	Use:   "progression",
	Short: "Print the actor's progression table",
	RunE:  runProgression,
}

var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Assign a catalog reference to a plan slot",
	RunE:  runAssign,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear a plan slot, archiving its granted item",
	RunE:  runClear,
}

func init() {
	progressionCmd.Flags().IntVar(&flagMaxLevel, "max-level", 0, "levels to display (0 for the full table)")

	assignCmd.Flags().StringVar(&flagCategory, "category", "", "slot category: ability, schema, or strengthOfWill")
	assignCmd.Flags().IntVar(&flagLevel, "level", 0, "slot level")
	assignCmd.Flags().StringVar(&flagReference, "ref", "", "catalog reference")

	clearCmd.Flags().StringVar(&flagCategory, "category", "", "slot category: ability, schema, or strengthOfWill")
	clearCmd.Flags().IntVar(&flagLevel, "level", 0, "slot level")
}

func runProgression(cmd *cobra.Command, args []string) error {
	if err := requireActor(); err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.GetProgression(context.Background(), &leveling.GetProgressionInput{
		ActorID:  flagActorID,
		MaxLevel: flagMaxLevel,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%-5s %-4s %-4s %-6s %-28s %s\n", "LVL", "AP", "SP", "MERIT", "REWARDS", "ASSIGNED")
	for _, row := range out.Rows {
		var rewards []string
		for _, kind := range row.Rewards.Kinds() {
			rewards = append(rewards, kind.String())
		}

		var assigned []string
		if row.AssignedAbility != nil {
			assigned = append(assigned, row.AssignedAbility.Name)
		}
		if row.AssignedStrengthOfWill != nil {
			assigned = append(assigned, row.AssignedStrengthOfWill.Name)
		}
		if row.AssignedSchema != nil {
			assigned = append(assigned, fmt.Sprintf("%s (%s)", row.AssignedSchema.Name, row.SchemaSlot))
		}

		fmt.Printf("%-5d %-4d %-4d %-6d %-28s %s\n",
			row.Level, row.APGained, row.SPGained, row.MeritRequired,
			strings.Join(rewards, ","), strings.Join(assigned, ", "))
	}
	return nil
}

func runAssign(cmd *cobra.Command, args []string) error {
	if err := requireActor(); err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.AssignSlot(context.Background(), &leveling.AssignSlotInput{
		ActorID:   flagActorID,
		Category:  flagCategory,
		Level:     flagLevel,
		Reference: flagReference,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Assigned %s to %s level %d\n", flagReference, flagCategory, flagLevel)
	if out.SchemaSlot != "" {
		fmt.Printf("Schema slot: %s\n", out.SchemaSlot)
	}
	if out.Replaced != "" {
		fmt.Printf("Replaced: %s\n", out.Replaced)
	}
	if len(out.GrantedItemIDs) > 0 {
		fmt.Printf("Granted %d item(s)\n", len(out.GrantedItemIDs))
	}
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	if err := requireActor(); err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.ClearSlot(context.Background(), &leveling.ClearSlotInput{
		ActorID:  flagActorID,
		Category: flagCategory,
		Level:    flagLevel,
	})
	if err != nil {
		return err
	}

	if out.Cleared == "" {
		fmt.Printf("Slot %s level %d was already empty\n", flagCategory, flagLevel)
		return nil
	}
	fmt.Printf("Cleared %s from %s level %d\n", out.Cleared, flagCategory, flagLevel)
	if len(out.ArchivedItemIDs) > 0 {
		fmt.Printf("Archived %d item(s)\n", len(out.ArchivedItemIDs))
	}
	return nil
}
