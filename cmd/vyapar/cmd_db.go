package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/vyapar/config"
	"github.com/shashiranjanraj/vyapar/database/seeders"
	"github.com/shashiranjanraj/vyapar/pkg/database"
	"github.com/shashiranjanraj/vyapar/pkg/migration"
)

// connectDB loads config and opens the database for the db commands.
func connectDB() error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect()
}

// vyapar migrate — run all pending migrations.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := connectDB(); err != nil {
			return err
		}
		return migration.New(database.DB).Run()
	},
}

// vyapar migrate:rollback — rollback the last batch.
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Rollback the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := connectDB(); err != nil {
			return err
		}
		return migration.New(database.DB).Rollback()
	},
}

// vyapar migrate:status — show migration status.
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show migration status",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := connectDB(); err != nil {
			return err
		}
		return migration.New(database.DB).Status()
	},
}

// vyapar seed — run all registered seeders.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all registered database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := connectDB(); err != nil {
			return err
		}
		fmt.Println("Seeding database…")
		return seeders.RunAll(database.DB)
	},
}
