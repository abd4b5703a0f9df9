package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/omarelders/shipdash/internal/model"
)

// MaxUploadBytes is the client-side upload size limit. Oversized files are
// rejected before any request is issued.
const MaxUploadBytes = 10 << 20

// ErrFileTooLarge and ErrBadFileType are client-side validation failures;
// they never reach the network layer.
var (
	ErrFileTooLarge = errors.New("file exceeds the 10MB upload limit")
	ErrBadFileType  = errors.New("only .xlsx files are allowed")
)

// ValidateUpload performs the synchronous pre-flight checks on an upload
// candidate.
func ValidateUpload(filename string, size int64) error {
	if size > MaxUploadBytes {
		return fmt.Errorf("%w (%.1fMB)", ErrFileTooLarge, float64(size)/(1<<20))
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		return ErrBadFileType
	}
	return nil
}

// ShipmentFiles lists all uploaded shipment spreadsheets.
func (c *Client) ShipmentFiles(ctx context.Context) ([]model.UploadedFile, error) {
	var resp struct {
		Files []model.UploadedFile `json:"files"`
	}
	if err := c.get(ctx, "/upload/files", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list shipment files: %w", err)
	}
	return resp.Files, nil
}

// UploadShipments uploads one shipment spreadsheet and reports how many rows
// were inserted and how many duplicate codes were skipped.
func (c *Client) UploadShipments(ctx context.Context, filename string, r io.Reader) (*model.UploadResult, error) {
	return c.uploadFile(ctx, "/upload", filename, r)
}

// DeleteShipmentFile removes an uploaded file; the server cascades the
// deletion to the file's records.
func (c *Client) DeleteShipmentFile(ctx context.Context, fileID int64) error {
	path := fmt.Sprintf("/upload/files/%d", fileID)
	if err := c.send(ctx, http.MethodDelete, path, nil, nil, "", nil); err != nil {
		return fmt.Errorf("failed to delete file %d: %w", fileID, err)
	}
	return nil
}

func (c *Client) uploadFile(ctx context.Context, path, filename string, r io.Reader) (*model.UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload body: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to read upload data: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload body: %w", err)
	}

	var result model.UploadResult
	if err := c.send(ctx, http.MethodPost, path, nil, &buf, mw.FormDataContentType(), &result); err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	return &result, nil
}
