// Package main is the entry point for the leveling CLI
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dasu-rpg/leveling-api/internal/clients/catalog"
	"github.com/dasu-rpg/leveling-api/internal/config"
	"github.com/dasu-rpg/leveling-api/internal/events"
	levelingorch "github.com/dasu-rpg/leveling-api/internal/orchestrators/leveling"
	"github.com/dasu-rpg/leveling-api/internal/pkg/idgen"
	"github.com/dasu-rpg/leveling-api/internal/redis"
	actorrepo "github.com/dasu-rpg/leveling-api/internal/repositories/actor"
	levelingsvc "github.com/dasu-rpg/leveling-api/internal/services/leveling"
)

var (
	flagActorID string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "leveling",
	Short: "DASU leveling planner",
	Long:  `Manage DASU leveling plans: assign and clear reward slots, reconcile granted items, and inspect progression.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagActorID, "actor", "", "actor ID")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(progressionCmd)
	rootCmd.AddCommand(assignCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(grantMissingCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(canLevelUpCmd)
	rootCmd.AddCommand(levelUpCmd)
}

// newService wires the orchestrator against Redis storage and the
// configured catalog file
func newService() (levelingsvc.Service, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}

	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	client, err := redis.NewClient(cfg.Redis.Addr, &redis.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	repo, err := actorrepo.NewRedis(&actorrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create actor repository: %w", err)
	}

	cat, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	return levelingorch.New(&levelingorch.Config{
		ActorRepo:   repo,
		Catalog:     cat,
		EventBus:    events.NewBus(),
		IDGenerator: idgen.NewUUID("item"),
		MaxLevel:    cfg.Leveling.MaxLevel,
	})
}

func requireActor() error {
	if flagActorID == "" {
		return fmt.Errorf("--actor is required")
	}
	return nil
}
