package prefs

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ThemeRoundTrip(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ctx := context.Background()

	theme, err := store.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme, theme, "unset theme falls back to the default")

	require.NoError(t, store.SetTheme(ctx, "light"))
	theme, err = store.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "light", theme)

	// Saving again overwrites rather than duplicating.
	require.NoError(t, store.SetTheme(ctx, "dark"))
	theme, err = store.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}

func TestStore_SetThemeRejectsEmpty(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	assert.Error(t, store.SetTheme(context.Background(), ""))
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}
