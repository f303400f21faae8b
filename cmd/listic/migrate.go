package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ptypek/listic/internal/db"
	"github.com/ptypek/listic/internal/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema and seed data",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbConn, err := db.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
		defer dbConn.Close()
		logger.Info("database migrated", "module", "main", "action", "migrate", "resource", "db", "result", "ok", "path", cfg.DBPath)
		return nil
	},
}
