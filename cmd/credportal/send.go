package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/credportal/pkg/credmail"
	"github.com/dmitrymomot/credportal/pkg/logger"
)

func newSendCmd() *cobra.Command {
	var req credmail.Request

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Email credentials to a single user",
		Example: `  credportal send --to alice@example.com --name "Alice Carter" \
    --username alice.carter --password 'Xy7-pQ2mZ9'`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			// One-off run, keep metrics out of the global registry.
			a, err := newApp(ctx, prometheus.NewRegistry())
			if err != nil {
				return err
			}
			defer func() {
				if err := a.Close(); err != nil {
					a.log.Error("failed to close resources", logger.Error(err))
				}
			}()

			id, err := a.dispatcher.Dispatch(ctx, req)
			if err != nil {
				return fmt.Errorf("send credentials: %s", credmail.PublicMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sent, message id: %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.To, "to", "", "recipient email address")
	cmd.Flags().StringVar(&req.Name, "name", "", "recipient display name")
	cmd.Flags().StringVar(&req.Username, "username", "", "portal username")
	cmd.Flags().StringVar(&req.Password, "password", "", "portal password")
	for _, f := range []string{"to", "name", "username", "password"} {
		_ = cmd.MarkFlagRequired(f)
	}

	return cmd
}
