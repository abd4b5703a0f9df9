package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/omarelders/shipdash/internal/model"
)

// PaymentPage is one page of a payment file's records. Totals are computed
// server-side over the full filtered set, never derived from the page.
type PaymentPage struct {
	Filename string                `json:"filename"`
	Data     []model.PaymentRecord `json:"data"`
	Totals   model.PaymentTotals   `json:"totals"`
	Total    int                   `json:"total"`
}

// PaymentFiles lists all uploaded payment spreadsheets.
func (c *Client) PaymentFiles(ctx context.Context) ([]model.UploadedFile, error) {
	var resp struct {
		Files []model.UploadedFile `json:"files"`
	}
	if err := c.get(ctx, "/payments/files", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list payment files: %w", err)
	}
	return resp.Files, nil
}

// UploadPayments uploads one payment spreadsheet.
func (c *Client) UploadPayments(ctx context.Context, filename string, r io.Reader) (*model.UploadResult, error) {
	return c.uploadFile(ctx, "/payments/upload", filename, r)
}

// PaymentFileData fetches one page of a payment file's records with the
// server-side aggregate totals.
func (c *Client) PaymentFileData(ctx context.Context, fileID int64, p ListParams) (*PaymentPage, error) {
	var page PaymentPage
	path := fmt.Sprintf("/payments/files/%d/data", fileID)
	if err := c.get(ctx, path, p.Values(), &page); err != nil {
		return nil, fmt.Errorf("failed to load payment data: %w", err)
	}
	return &page, nil
}

// DeletePaymentFile removes an uploaded payment file and its records.
func (c *Client) DeletePaymentFile(ctx context.Context, fileID int64) error {
	path := fmt.Sprintf("/payments/files/%d", fileID)
	if err := c.send(ctx, http.MethodDelete, path, nil, nil, "", nil); err != nil {
		return fmt.Errorf("failed to delete payment file %d: %w", fileID, err)
	}
	return nil
}
