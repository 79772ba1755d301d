package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-agent/internal/db"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror the bank into PostgreSQL",
	Long:  "Mirrors the question bank into a PostgreSQL database for read-side consumers. The JSON document stays authoritative; the mirror is replaced to match it.",
	RunE:  runSync,
}

var syncDatabaseURL string

func init() {
	syncCmd.Flags().StringVar(&syncDatabaseURL, "database-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL)")

	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	if syncDatabaseURL != "" {
		cfg.DatabaseURL = syncDatabaseURL
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("no database URL configured; set --database-url or DATABASE_URL")
	}

	bank := openBank(cfg)

	conn, err := db.Connect(cmd.Context(), cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.Migrate(cmd.Context()); err != nil {
		return err
	}

	questions := bank.All()
	if err := conn.SaveBank(cmd.Context(), questions); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Mirrored %d questions to PostgreSQL\n", len(questions))
	return nil
}
