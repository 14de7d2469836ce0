package main

import (
	"fmt"
	"log"
	"os"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/johnquangdev/insight-stream/internal/adapter/repository"
	"github.com/johnquangdev/insight-stream/internal/infrastructure/database"
	"github.com/johnquangdev/insight-stream/pkg/config"
)

var rootCmd = &cobra.Command{
	Use:           "admin",
	Short:         "Administrative tasks for the Insight Stream database",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back the embedded schema migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrations(migrate.Up)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back all migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrations(migrate.Down)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample meetings and contacts",
	Long: `Insert sample meetings and contacts into an empty database.

Tables that already contain rows are left untouched.

Examples:
  admin migrate up && admin seed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := open()
		if err != nil {
			return err
		}
		defer database.CloseDB(db)

		if cfg.Database.AutoMigrate {
			if err := database.AutoMigrate(db, cfg.Database.Driver); err != nil {
				return err
			}
		}

		res, err := seed(cmd.Context(), repository.NewMeetingRepository(db), repository.NewContactRepository(db))
		if err != nil {
			return err
		}
		log.Printf("✅ Seeded %d meeting(s) and %d contact(s)", res.Meetings, res.Contacts)
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func open() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}

	log.Printf("📦 Connecting to database (%s)...", cfg.Database.Driver)
	db, err := database.NewDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	return cfg, db, nil
}

func runMigrations(direction migrate.MigrationDirection) error {
	cfg, db, err := open()
	if err != nil {
		return err
	}
	defer database.CloseDB(db)

	n, err := database.Migrate(db, cfg.Database.Driver, direction)
	if err != nil {
		return err
	}
	log.Printf("✅ Applied %d migration(s)", n)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
