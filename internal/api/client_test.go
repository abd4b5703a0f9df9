package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarelders/shipdash/internal/common"
	"github.com/omarelders/shipdash/internal/model"
)

func TestListShipments_QueryEncoding(t *testing.T) {
	var gotQuery map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shipments", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"data": [{"الكود": "SH-1", "قيمة الطرد": 120.5}], "total": 341}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0)
	page, err := client.ListShipments(context.Background(), ListParams{
		Limit:    100,
		Offset:   200,
		Search:   "cairo",
		DateFrom: "2026-01-01",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"100"}, gotQuery["limit"])
	assert.Equal(t, []string{"200"}, gotQuery["offset"])
	assert.Equal(t, []string{"cairo"}, gotQuery["search"])
	assert.Equal(t, []string{"2026-01-01"}, gotQuery["date_from"])
	assert.NotContains(t, gotQuery, "date_to")

	assert.Equal(t, 341, page.Total)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "SH-1", page.Data[0].Code)
	assert.InDelta(t, 120.5, page.Data[0].Amount, 1e-9)
}

func TestListParams_OmitsUnsetFilters(t *testing.T) {
	q := ListParams{Limit: 50, Offset: 0}.Values()

	assert.Equal(t, "50", q.Get("limit"))
	assert.Equal(t, "0", q.Get("offset"))
	assert.NotContains(t, q, "search")
	assert.NotContains(t, q, "date_from")
	assert.NotContains(t, q, "date_to")
}

func TestChangeStatus_PathAndQuery(t *testing.T) {
	var gotPath, gotStatus, gotMethod string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotMethod = r.Method
		gotStatus = r.URL.Query().Get("new_status")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0)
	err := client.ChangeStatus(context.Background(), "SH 42", "تم التسليم")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/shipments/SH%2042/status", gotPath)
	assert.Equal(t, "تم التسليم", gotStatus)
}

func TestServerDetail_SurfacedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"detail": "status transition not allowed"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0)
	err := client.ChangeStatus(context.Background(), "SH-1", "مرتجع")
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "status transition not allowed", apiErr.Detail)
	assert.Contains(t, err.Error(), "status transition not allowed")
}

func TestServerError_NoDetailFallsBackToGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream blew up"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0)
	_, err := client.ShipmentFiles(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Empty(t, apiErr.Detail)
	assert.Contains(t, apiErr.Error(), "502")
}

func TestServerError_StatusCodesMapToSentinels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "GONE") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0)
	err := client.ChangeStatus(context.Background(), "GONE", "x")
	assert.ErrorIs(t, err, common.ErrShipmentNotFound)

	err = client.ChangeStatus(context.Background(), "HELD", "x")
	assert.ErrorIs(t, err, common.ErrStatusNotAllowed)
}

func TestTransportFailure_MapsToServerUnreachable(t *testing.T) {
	client := NewClient("http://localhost:1", time.Second)
	_, err := client.ShipmentFiles(context.Background())
	assert.ErrorIs(t, err, common.ErrServerUnreachable)
}

func TestUpdateShipment_SendsOnlyTouchedFields(t *testing.T) {
	var gotBody string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	amount := 250.0
	client := NewClient(srv.URL, 0)
	err := client.UpdateShipment(context.Background(), "SH-1", model.ShipmentPatch{Amount: &amount})
	require.NoError(t, err)

	assert.JSONEq(t, `{"amount": 250}`, gotBody)
	assert.NotContains(t, gotBody, "description")
}

func TestUploadShipments_MultipartRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(MaxUploadBytes))
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = f.Close() }()
		assert.Equal(t, "week36.xlsx", hdr.Filename)

		_, _ = w.Write([]byte(`{"rows_inserted": 8, "duplicates_skipped": 2}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0)
	result, err := client.UploadShipments(context.Background(), "week36.xlsx", strings.NewReader("fake sheet bytes"))
	require.NoError(t, err)

	assert.Equal(t, 8, result.RowsInserted)
	assert.Equal(t, 2, result.DuplicatesSkipped)
}

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		wantErr  error
		name     string
		filename string
		size     int64
	}{
		{name: "valid", filename: "orders.xlsx", size: 1024},
		{name: "uppercase extension", filename: "ORDERS.XLSX", size: 1024},
		{name: "too large", filename: "orders.xlsx", size: MaxUploadBytes + 1, wantErr: ErrFileTooLarge},
		{name: "wrong type", filename: "orders.csv", size: 1024, wantErr: ErrBadFileType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpload(tt.filename, tt.size)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPaymentFileData_DecodesDecimalTotals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments/files/7/data", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"filename": "settlement.xlsx",
			"data": [{"الكود": "SH-9", "قيمة الطرد": 75}],
			"total": 1,
			"totals": {
				"delivery_value": 1250.75,
				"due_fees": 93.25,
				"net_package_price": 1157.50,
				"amount_due": 1157.50,
				"net_due": 1064.25
			}
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0)
	page, err := client.PaymentFileData(context.Background(), 7, ListParams{Limit: 20})
	require.NoError(t, err)

	assert.Equal(t, "settlement.xlsx", page.Filename)
	assert.Equal(t, "1250.75", page.Totals.DeliveryValue.String())
	assert.Equal(t, "1064.25", page.Totals.NetDue.String())
}

func TestStatuses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"changeable": ["قيد التوصيل"], "targets": ["تم التسليم", "مرتجع"]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0)
	tax, err := client.Statuses(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"تم التسليم", "مرتجع"}, tax.Targets)
}
