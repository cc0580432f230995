package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/credportal/pkg/config"
)

func newRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:   "credportal",
		Short: "Credential notification and portal session service",
		Long: `credportal emails newly issued portal credentials through a transactional
email provider and keeps the simulated portal login session.

Configuration is read from the environment and an optional .env file.
See EMAIL_PROVIDER, POSTMARK_SERVER_TOKEN, SMTP_*, REDIS_URL and SESSION_KEY.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if len(envFiles) == 0 {
				return nil
			}
			return config.LoadEnv(envFiles...)
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "load variables from these .env files before reading configuration")

	root.AddCommand(newServeCmd(), newSendCmd())
	return root
}
