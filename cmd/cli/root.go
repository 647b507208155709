package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	outputFormat string
	actingUser   string
)

var rootCmd = &cobra.Command{
	Use:   "quality-cli",
	Short: "quality-cli is the command-line interface for quality-warden.",
	Long: `A CLI for operating quality-warden: filing quality nominations, reviewing the
nomination queues, issuing API tokens and migrating the database.`,
	SilenceUsage: true,
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&outputFormat, "output", "o", "table", "Output format: table, json or yaml")
	flags.StringVarP(&actingUser, "user", "u", "", "Username to act as")
	flags.String("db-driver", "", "Database driver: postgres or sqlite3")
	flags.String("db-path", "", "Database file for the sqlite3 driver")
	flags.String("db-host", "", "Database host for the postgres driver")
	flags.Bool("lockdown", false, "Reject every nomination operation")

	bindings := map[string]string{
		"DB_DRIVER": "db-driver",
		"DB_PATH":   "db-path",
		"DB_HOST":   "db-host",
		"LOCKDOWN":  "lockdown",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			slog.Error("Error binding flag", "flag", flag, "error", err)
			os.Exit(1)
		}
	}
}

// initConfig reads in ENV variables if set.
func initConfig() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
