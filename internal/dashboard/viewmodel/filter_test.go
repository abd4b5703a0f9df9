package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omarelders/shipdash/internal/model"
)

func fptr(f float64) *float64 { return &f }

func TestRowFilter_Apply(t *testing.T) {
	rows := []model.Shipment{
		{Code: "A", PriceType: "شامل", Status: "تم التسليم", Amount: 150},
		{Code: "B", PriceType: "غير شامل", Status: "قيد التوصيل", Amount: 80},
		{Code: "C", PriceType: "شامل", Status: "مرتجع"}, // no amount on the row
		{Code: "D", PriceType: "شامل", Status: "تم التسليم", Amount: 600},
	}

	tests := []struct {
		name      string
		filter    RowFilter
		wantCodes []string
	}{
		{
			name:      "inactive passes everything",
			filter:    RowFilter{},
			wantCodes: []string{"A", "B", "C", "D"},
		},
		{
			name:      "price type exact match",
			filter:    RowFilter{PriceType: "شامل"},
			wantCodes: []string{"A", "C", "D"},
		},
		{
			name:      "status exact match",
			filter:    RowFilter{Status: "تم التسليم"},
			wantCodes: []string{"A", "D"},
		},
		{
			name:      "amount range",
			filter:    RowFilter{AmountMin: fptr(100), AmountMax: fptr(500)},
			wantCodes: []string{"A"},
		},
		{
			name:      "missing amount treated as zero against minimum",
			filter:    RowFilter{AmountMin: fptr(1)},
			wantCodes: []string{"A", "B", "D"},
		},
		{
			name:      "missing amount passes zero minimum",
			filter:    RowFilter{AmountMin: fptr(0)},
			wantCodes: []string{"A", "B", "C", "D"},
		},
		{
			name:      "combined criteria",
			filter:    RowFilter{PriceType: "شامل", AmountMax: fptr(200)},
			wantCodes: []string{"A", "C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(rows)
			codes := make([]string, len(got))
			for i, s := range got {
				codes[i] = s.Code
			}
			assert.Equal(t, tt.wantCodes, codes)
		})
	}
}

func TestRowFilter_IsActive(t *testing.T) {
	assert.False(t, RowFilter{}.IsActive())
	assert.True(t, RowFilter{PriceType: "شامل"}.IsActive())
	assert.True(t, RowFilter{AmountMin: fptr(0)}.IsActive(), "explicit zero minimum is still a criterion")
}

func TestRowFilter_ShownLabel(t *testing.T) {
	assert.Empty(t, RowFilter{}.ShownLabel(10))
	assert.Equal(t, "(3 shown after filters)", RowFilter{Status: "مرتجع"}.ShownLabel(3))
	assert.Equal(t, "(1 shown after filters)", RowFilter{Status: "مرتجع"}.ShownLabel(1))
}
