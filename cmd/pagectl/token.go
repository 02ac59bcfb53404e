package main

import (
	"time"

	"pagecast/config"
	"pagecast/internal/domain/service"
	"pagecast/internal/infra/auth"

	"github.com/spf13/cobra"
)

func newTokenCommand() *cobra.Command {
	var (
		subject string
		scopes  []string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a service token for a trigger caller",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			tokens, err := auth.NewJWTService(cfg)
			if err != nil {
				return err
			}

			token, err := tokens.GenerateServiceToken(subject, scopes, ttl)
			if err != nil {
				return err
			}

			writeLine(cmd.OutOrStdout(), "%s", token)

			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "scheduler", "caller name recorded in the token")
	cmd.Flags().StringSliceVar(&scopes, "scope", []string{service.ScopeExpire}, "granted scopes, repeatable")
	cmd.Flags().DurationVar(&ttl, "ttl", 30*24*time.Hour, "token lifetime")

	return cmd
}
