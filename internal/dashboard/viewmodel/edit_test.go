package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarelders/shipdash/internal/model"
)

func TestEditForm_PatchOnlyTouchedFields(t *testing.T) {
	form := NewEditForm(model.Shipment{Code: "A", Amount: 100, Description: "vase"})

	form.Amount = "250"
	patch, err := form.Patch()
	require.NoError(t, err)
	require.NotNil(t, patch.Amount)
	assert.InDelta(t, 250.0, *patch.Amount, 1e-9)
	assert.Nil(t, patch.Description, "unchanged field stays out of the patch")
}

func TestEditForm_NoChangesYieldsZeroPatch(t *testing.T) {
	form := NewEditForm(model.Shipment{Code: "A", Amount: 100, Description: "vase"})

	patch, err := form.Patch()
	require.NoError(t, err)
	assert.True(t, patch.IsZero())
}

func TestEditForm_BadAmountFailsWholeForm(t *testing.T) {
	form := NewEditForm(model.Shipment{Code: "A", Amount: 100})
	form.Amount = "abc"
	form.Description = "changed"

	_, err := form.Patch()
	assert.Error(t, err)
}

func TestEditForm_DescriptionOnly(t *testing.T) {
	form := NewEditForm(model.Shipment{Code: "A", Amount: 100, Description: "vase"})
	form.Description = "glass vase"

	patch, err := form.Patch()
	require.NoError(t, err)
	assert.Nil(t, patch.Amount)
	require.NotNil(t, patch.Description)
	assert.Equal(t, "glass vase", *patch.Description)
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "valid", input: "2026-08-15", want: true},
		{name: "missing padding", input: "2026-8-15", want: false},
		{name: "slashes", input: "2026/08/15", want: false},
		{name: "trailing text", input: "2026-08-15x", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidDate(tt.input))
		})
	}
}
