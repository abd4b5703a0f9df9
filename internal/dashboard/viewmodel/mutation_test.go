package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarelders/shipdash/internal/model"
	"github.com/omarelders/shipdash/internal/statuses"
)

func TestMutations_SingleFlightPerRow(t *testing.T) {
	m := NewMutations()

	assert.True(t, m.Begin("A"))
	assert.False(t, m.Begin("A"), "second change for the same row must wait")
	assert.True(t, m.Begin("B"), "other rows are unaffected")

	m.End("A")
	assert.True(t, m.Begin("A"))
}

func TestApplyStatus_PatchesRowInPlace(t *testing.T) {
	rows := []model.Shipment{
		{Code: "A", Status: statuses.InDelivery},
		{Code: "B", Status: statuses.InDelivery},
	}

	old, ok := ApplyStatus(rows, "B", statuses.Delivered)
	require.True(t, ok)
	assert.Equal(t, statuses.InDelivery, old)
	assert.Equal(t, statuses.Delivered, rows[1].Status)
	assert.Equal(t, statuses.InDelivery, rows[0].Status, "other rows untouched")

	_, ok = ApplyStatus(rows, "missing", statuses.Delivered)
	assert.False(t, ok, "row paged away before the response landed")
}

func TestApplyPatch(t *testing.T) {
	rows := []model.Shipment{{Code: "A", Amount: 100, Description: "old"}}

	amount := 250.0
	ok := ApplyPatch(rows, "A", model.ShipmentPatch{Amount: &amount})
	require.True(t, ok)
	assert.InDelta(t, 250.0, rows[0].Amount, 1e-9)
	assert.Equal(t, "old", rows[0].Description, "untouched field survives")
}

func TestTotalAdjustment(t *testing.T) {
	tests := []struct {
		name   string
		from   string
		to     string
		amount float64
		want   float64
	}{
		{name: "into returned subtracts", from: statuses.InDelivery, to: statuses.Returned, amount: 120, want: -120},
		{name: "out of returned adds back", from: statuses.Returned, to: statuses.Delivered, amount: 120, want: 120},
		{name: "unrelated transition is neutral", from: statuses.InDelivery, to: statuses.Delivered, amount: 120, want: 0},
		{name: "returned to returned is neutral", from: statuses.Returned, to: statuses.Returned, amount: 120, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TotalAdjustment(tt.from, tt.to, tt.amount), 1e-9)
		})
	}
}

func TestShiftHistogram(t *testing.T) {
	hist := map[string]int{
		statuses.InDelivery: 3,
		statuses.Delivered:  5,
	}

	ShiftHistogram(hist, statuses.InDelivery, statuses.Delivered)
	assert.Equal(t, 2, hist[statuses.InDelivery])
	assert.Equal(t, 6, hist[statuses.Delivered])

	ShiftHistogram(hist, statuses.InDelivery, statuses.Returned)
	ShiftHistogram(hist, statuses.InDelivery, statuses.Returned)
	_, present := hist[statuses.InDelivery]
	assert.False(t, present, "empty bucket is removed")
	assert.Equal(t, 2, hist[statuses.Returned])

	ShiftHistogram(hist, statuses.Delivered, statuses.Delivered)
	assert.Equal(t, 6, hist[statuses.Delivered], "no-op transition leaves counts alone")

	ShiftHistogram(hist, statuses.Delivered, "")
	assert.Equal(t, 5, hist[statuses.Delivered], "deleting a row just drops the unit")
	_, present = hist[""]
	assert.False(t, present)
}
