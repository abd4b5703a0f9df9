package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/omarelders/shipdash/internal/common"
)

func restoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <code>...",
		Short: "Restore deleted shipments from the recycle bin",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient()
			if err != nil {
				return err
			}

			var failed int
			for _, code := range args {
				if err := client.RestoreShipment(cmd.Context(), code); err != nil {
					msg := "Failed to restore shipment"
					if errors.Is(err, common.ErrShipmentNotFound) {
						msg = "Shipment is not in the recycle bin"
					}
					common.LogError(err, msg, common.Fields{"code": code})
					failed++
					continue
				}
				common.LogInfo("Shipment restored", common.Fields{"code": code})
			}
			if failed > 0 {
				return common.NewUserError("some shipments were not restored", nil)
			}
			return nil
		},
	}
}
