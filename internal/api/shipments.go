package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/omarelders/shipdash/internal/model"
)

// ListParams are the server-side listing inputs: one page window plus the
// optional search term and date range.
type ListParams struct {
	Search   string
	DateFrom string
	DateTo   string
	Limit    int
	Offset   int
}

// Values encodes the parameters the way the listing endpoints expect.
// Unset filters are omitted entirely.
func (p ListParams) Values() url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(p.Limit))
	q.Set("offset", strconv.Itoa(p.Offset))
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.DateFrom != "" {
		q.Set("date_from", p.DateFrom)
	}
	if p.DateTo != "" {
		q.Set("date_to", p.DateTo)
	}
	return q
}

// ShipmentPage is one server-fetched page of shipments plus the total count
// of the full filtered set.
type ShipmentPage struct {
	Data  []model.Shipment `json:"data"`
	Total int              `json:"total"`
}

// FilePage is a shipment page scoped to one uploaded file.
type FilePage struct {
	Filename string           `json:"filename"`
	Data     []model.Shipment `json:"data"`
	Total    int              `json:"total"`
}

// StatusTaxonomy is the authoritative status enumeration from the backend.
type StatusTaxonomy struct {
	Changeable []string `json:"changeable"`
	Targets    []string `json:"targets"`
}

// AutocompleteResult carries categorized suggestions with per-category
// match counts.
type AutocompleteResult struct {
	Categories  map[string]int     `json:"categories"`
	Suggestions []model.Suggestion `json:"suggestions"`
}

// ListShipments fetches one page of the main order listing.
func (c *Client) ListShipments(ctx context.Context, p ListParams) (*ShipmentPage, error) {
	var page ShipmentPage
	if err := c.get(ctx, "/shipments", p.Values(), &page); err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}
	return &page, nil
}

// FileShipments fetches one page of the records belonging to an uploaded
// shipment file.
func (c *Client) FileShipments(ctx context.Context, fileID int64, p ListParams) (*FilePage, error) {
	var page FilePage
	path := fmt.Sprintf("/shipments/file/%d", fileID)
	if err := c.get(ctx, path, p.Values(), &page); err != nil {
		return nil, fmt.Errorf("failed to list file shipments: %w", err)
	}
	return &page, nil
}

// DeletedShipments fetches one page of the recycle bin.
func (c *Client) DeletedShipments(ctx context.Context, limit, offset int) (*ShipmentPage, error) {
	var page ShipmentPage
	p := ListParams{Limit: limit, Offset: offset}
	if err := c.get(ctx, "/shipments/deleted", p.Values(), &page); err != nil {
		return nil, fmt.Errorf("failed to list deleted shipments: %w", err)
	}
	return &page, nil
}

// ShippingDays returns the distinct shipping dates, most recent first.
func (c *Client) ShippingDays(ctx context.Context) ([]string, error) {
	var resp struct {
		Days []string `json:"days"`
	}
	if err := c.get(ctx, "/shipments/days", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch shipping days: %w", err)
	}
	return resp.Days, nil
}

// ShipmentsByDay returns all orders for a single shipping date.
func (c *Client) ShipmentsByDay(ctx context.Context, date string) ([]model.Shipment, error) {
	q := url.Values{}
	q.Set("date", date)
	var resp struct {
		Data []model.Shipment `json:"data"`
	}
	if err := c.get(ctx, "/shipments/by-day", q, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch orders for %s: %w", date, err)
	}
	return resp.Data, nil
}

// SearchShipments runs an unpaginated global search across all orders.
func (c *Client) SearchShipments(ctx context.Context, query string) ([]model.Shipment, error) {
	q := url.Values{}
	q.Set("query", query)
	var resp struct {
		Data []model.Shipment `json:"data"`
	}
	if err := c.get(ctx, "/shipments/search", q, &resp); err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return resp.Data, nil
}

// ChangeStatus transitions exactly one shipment to newStatus.
func (c *Client) ChangeStatus(ctx context.Context, code, newStatus string) error {
	q := url.Values{}
	q.Set("new_status", newStatus)
	path := "/shipments/" + url.PathEscape(code) + "/status"
	if err := c.send(ctx, http.MethodPatch, path, q, nil, "", nil); err != nil {
		return fmt.Errorf("failed to change status of %s: %w", code, err)
	}
	return nil
}

// UpdateShipment applies a partial update. Fields absent from the patch are
// left untouched by the server.
func (c *Client) UpdateShipment(ctx context.Context, code string, patch model.ShipmentPatch) error {
	path := "/shipments/" + url.PathEscape(code)
	if err := c.sendJSON(ctx, http.MethodPatch, path, nil, patch, nil); err != nil {
		return fmt.Errorf("failed to update %s: %w", code, err)
	}
	return nil
}

// DeleteShipment soft-deletes one shipment into the recycle bin.
func (c *Client) DeleteShipment(ctx context.Context, code string) error {
	path := "/shipments/" + url.PathEscape(code)
	if err := c.send(ctx, http.MethodDelete, path, nil, nil, "", nil); err != nil {
		return fmt.Errorf("failed to delete %s: %w", code, err)
	}
	return nil
}

// RestoreShipment brings one soft-deleted shipment back.
func (c *Client) RestoreShipment(ctx context.Context, code string) error {
	path := "/shipments/" + url.PathEscape(code) + "/restore"
	if err := c.send(ctx, http.MethodPost, path, nil, nil, "", nil); err != nil {
		return fmt.Errorf("failed to restore %s: %w", code, err)
	}
	return nil
}

// Statuses fetches the authoritative status taxonomy.
func (c *Client) Statuses(ctx context.Context) (*StatusTaxonomy, error) {
	var tax StatusTaxonomy
	if err := c.get(ctx, "/statuses", nil, &tax); err != nil {
		return nil, fmt.Errorf("failed to fetch statuses: %w", err)
	}
	return &tax, nil
}

// Autocomplete fetches categorized suggestions for a partial query.
func (c *Client) Autocomplete(ctx context.Context, query string, limit int) (*AutocompleteResult, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("limit", strconv.Itoa(limit))
	var res AutocompleteResult
	if err := c.get(ctx, "/shipments/autocomplete", q, &res); err != nil {
		return nil, fmt.Errorf("autocomplete failed: %w", err)
	}
	return &res, nil
}
