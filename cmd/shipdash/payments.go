package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func paymentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Manage payment reconciliation files",
	}
	cmd.AddCommand(paymentsUploadCmd())
	cmd.AddCommand(paymentsListCmd())
	return cmd
}

func paymentsUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file.xlsx>",
		Short: "Upload a payment reconciliation spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient()
			if err != nil {
				return err
			}
			result, err := uploadSpreadsheet(cmd, client.UploadPayments, args[0])
			if err != nil {
				return err
			}
			slog.Info("Upload complete",
				"rows_inserted", result.RowsInserted,
				"duplicates_skipped", result.DuplicatesSkipped)
			return nil
		},
	}
}

func paymentsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List uploaded payment files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := newAPIClient()
			if err != nil {
				return err
			}
			files, err := client.PaymentFiles(cmd.Context())
			if err != nil {
				return err
			}
			if len(files) == 0 {
				slog.Info("No payment files uploaded")
				return nil
			}
			for _, file := range files {
				slog.Info("Payment file",
					"id", file.ID,
					"filename", file.Filename,
					"records", file.RecordCount,
					"uploaded", file.UploadDate)
			}
			return nil
		},
	}
}
