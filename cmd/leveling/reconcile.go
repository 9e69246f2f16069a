package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dasu-rpg/leveling-api/internal/services/leveling"
)

var grantMissingCmd = &cobra.Command{
	Use:   "grant-missing",
	Short: "Grant every planned reward whose level is reached",
	RunE:  runGrantMissing,
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Remove orphaned grants, then grant missing rewards",
	RunE:  runSync,
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove orphaned grants without re-granting",
	RunE:  runCleanup,
}

var canLevelUpCmd = &cobra.Command{
	Use:   "can-level-up",
	Short: "Check whether the actor's merit covers the next level",
	RunE:  runCanLevelUp,
}

var levelUpCmd = &cobra.Command{
	Use:   "level-up",
	Short: "Spend merit to advance the actor one level",
	RunE:  runLevelUp,
}

func runGrantMissing(cmd *cobra.Command, args []string) error {
	if err := requireActor(); err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.GrantMissing(context.Background(), &leveling.GrantMissingInput{ActorID: flagActorID})
	if err != nil {
		return err
	}

	fmt.Printf("Granted %d item(s)\n", len(out.GrantedItemIDs))
	return nil
}

func runSync(cmd *cobra.Command, args []string) error {
	if err := requireActor(); err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.Sync(context.Background(), &leveling.SyncInput{ActorID: flagActorID})
	if err != nil {
		return err
	}

	fmt.Printf("Removed %d orphan(s), granted %d item(s)\n", len(out.RemovedItemIDs), len(out.GrantedItemIDs))
	return nil
}

func runCleanup(cmd *cobra.Command, args []string) error {
	if err := requireActor(); err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.ManualCleanup(context.Background(), &leveling.ManualCleanupInput{ActorID: flagActorID})
	if err != nil {
		return err
	}

	fmt.Printf("Removed %d orphan(s)\n", len(out.RemovedItemIDs))
	return nil
}

func runCanLevelUp(cmd *cobra.Command, args []string) error {
	if err := requireActor(); err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.CanLevelUp(context.Background(), &leveling.CanLevelUpInput{ActorID: flagActorID})
	if err != nil {
		return err
	}

	if out.Eligible {
		fmt.Printf("Eligible for level %d (%d/%d merit)\n", out.NextLevel, out.Merit, out.MeritRequired)
	} else {
		fmt.Printf("Not eligible for level %d (%d/%d merit)\n", out.NextLevel, out.Merit, out.MeritRequired)
	}
	return nil
}

func runLevelUp(cmd *cobra.Command, args []string) error {
	if err := requireActor(); err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.LevelUp(context.Background(), &leveling.LevelUpInput{ActorID: flagActorID})
	if err != nil {
		return err
	}

	fmt.Printf("Now level %d with %d merit remaining\n", out.Actor.Level, out.Actor.Merit)
	if len(out.GrantedItemIDs) > 0 {
		fmt.Printf("Granted %d item(s)\n", len(out.GrantedItemIDs))
	}
	if len(out.RevokedItemIDs) > 0 {
		fmt.Printf("Revoked %d item(s)\n", len(out.RevokedItemIDs))
	}
	return nil
}
