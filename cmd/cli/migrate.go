package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sevigo/quality-warden/internal/config"
	"github.com/sevigo/quality-warden/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		conn, err := db.Open(&cfg.Database)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := (&db.DB{DB: conn}).RunMigrations(); err != nil {
			return err
		}
		successColor.Fprintf(os.Stdout, "Database migrated (%s).\n", cfg.Database.Driver)
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.AddCommand(migrateCmd)
}
