package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/omarelders/shipdash/internal/api"
	"github.com/omarelders/shipdash/internal/common"
	"github.com/omarelders/shipdash/internal/model"
)

func uploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file.xlsx>",
		Short: "Upload a shipment spreadsheet",
		Long: `Upload a shipment spreadsheet to the server. The server parses the
file and reports how many rows were inserted and how many duplicates
were skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient()
			if err != nil {
				return err
			}
			result, err := uploadSpreadsheet(cmd, client.UploadShipments, args[0])
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

type uploadFunc func(ctx context.Context, filename string, r io.Reader) (*model.UploadResult, error)

// uploadSpreadsheet validates the file locally, then streams it to the
// server behind a progress bar.
func uploadSpreadsheet(cmd *cobra.Command, upload uploadFunc, path string) (*model.UploadResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	filename := filepath.Base(path)
	if err := api.ValidateUpload(filename, info.Size()); err != nil {
		return nil, common.NewUserError("file rejected", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	bar := progressbar.NewOptions64(info.Size(),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Uploading "+filename),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(cmd.ErrOrStderr())
		}),
	)

	reader := io.TeeReader(f, bar)
	result, err := upload(cmd.Context(), filename, reader)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	return result, nil
}
