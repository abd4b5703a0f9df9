package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func statusesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "statuses",
		Short: "Show the server's status taxonomy",
		Long: `Print the statuses the server allows changing from and to. The
dashboard uses the same enumeration for its status picker.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := newAPIClient()
			if err != nil {
				return err
			}
			tax, err := client.Statuses(cmd.Context())
			if err != nil {
				return err
			}
			slog.Info("Status taxonomy",
				"changeable", tax.Changeable,
				"targets", tax.Targets)
			return nil
		},
	}
}
