package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ptypek/listic/internal/identity"
)

var tokenTTL time.Duration

// tokenCmd signs a development token with the server secret. Production
// tokens come from the identity provider.
var tokenCmd = &cobra.Command{
	Use:   "token [user-id]",
	Short: "Sign a development bearer token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verifier, err := identity.NewVerifier(cfg.JWTSecret)
		if err != nil {
			return fmt.Errorf("LISTIC_JWT_SECRET: %w", err)
		}
		token, err := verifier.Sign(args[0], tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
}
