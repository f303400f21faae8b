package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ptypek/listic/internal/config"
	"github.com/ptypek/listic/internal/logger"
	"github.com/ptypek/listic/internal/snowflake"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:     config.AppName,
	Short:   "Shopping lists with recipe-based generation",
	Version: config.AppVersion,
	Long: `listic keeps shopping lists grouped by category and can build a list
from pasted recipes using an extraction model.

Configuration is read from LISTIC_* environment variables and, when
LISTIC_CONFIG_FILE is set, from a YAML file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		logger.InitWriter(os.Stderr, logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)
		if err := snowflake.Init(cfg.NodeID); err != nil {
			return fmt.Errorf("init id generator: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, tokenCmd, itemCmd)
}

//go:generate swag init -g cmd/listic/main.go -d ../../ -o ../../docs

// @title listic API
// @version 1.0
// @description Shopping lists with recipe-based generation.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer access token.
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
