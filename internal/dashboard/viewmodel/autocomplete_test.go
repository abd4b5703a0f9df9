package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarelders/shipdash/internal/model"
)

func suggestions() []model.Suggestion {
	return []model.Suggestion{
		{Value: "القاهرة", Type: model.SuggestionCity, Count: 40},
		{Value: "SH-100", Type: model.SuggestionCode, Count: 1},
		{Value: "أحمد علي", Type: model.SuggestionClient, Count: 12},
		{Value: "الإسكندرية", Type: model.SuggestionCity, Count: 25},
	}
}

func TestAutocomplete_KeystrokeBelowMinimumCloses(t *testing.T) {
	var a Autocomplete
	a.Open = true

	seq, fetch := a.Keystroke("a")
	assert.False(t, fetch)
	assert.False(t, a.Open)
	assert.Equal(t, 1, seq, "sequence still advances so stale results drop")

	_, fetch = a.Keystroke("ah")
	assert.True(t, fetch)
}

func TestAutocomplete_StaleResultsIgnored(t *testing.T) {
	var a Autocomplete

	first, _ := a.Keystroke("ah")
	second, _ := a.Keystroke("ahm")

	// The slower response for the older query arrives last.
	require.True(t, a.Accept(second, suggestions()[:1]))
	assert.False(t, a.Accept(first, suggestions()))

	require.Len(t, a.Suggestions, 1)
	assert.Equal(t, "القاهرة", a.Suggestions[0].Value)
}

func TestAutocomplete_GroupsByCategoryOrder(t *testing.T) {
	var a Autocomplete
	seq, _ := a.Keystroke("الق")
	require.True(t, a.Accept(seq, suggestions()))

	types := make([]model.SuggestionType, len(a.Suggestions))
	for i, s := range a.Suggestions {
		types[i] = s.Type
	}
	assert.Equal(t, []model.SuggestionType{
		model.SuggestionCode,
		model.SuggestionClient,
		model.SuggestionCity,
		model.SuggestionCity,
	}, types)
}

func TestAutocomplete_CursorWrapsBothWays(t *testing.T) {
	var a Autocomplete
	seq, _ := a.Keystroke("الق")
	require.True(t, a.Accept(seq, suggestions()))
	require.Len(t, a.Suggestions, 4)

	a.MoveDown()
	assert.Equal(t, 0, a.Cursor)
	a.MoveUp()
	assert.Equal(t, 3, a.Cursor, "up from the top wraps to the bottom")
	a.MoveDown()
	assert.Equal(t, 0, a.Cursor, "down from the bottom wraps to the top")
}

func TestAutocomplete_SubmitWithSelection(t *testing.T) {
	var a Autocomplete
	seq, _ := a.Keystroke("الق")
	require.True(t, a.Accept(seq, suggestions()))

	a.MoveDown()
	term := a.Submit()
	assert.Equal(t, "SH-100", term)
	assert.False(t, a.Open)
	assert.Equal(t, "SH-100", a.Query)
}

func TestAutocomplete_SubmitWithoutSelectionSearchesTypedText(t *testing.T) {
	var a Autocomplete
	seq, _ := a.Keystroke("cairo")
	require.True(t, a.Accept(seq, suggestions()))

	term := a.Submit()
	assert.Equal(t, "cairo", term)
	assert.False(t, a.Open)
}

func TestAutocomplete_EscapeKeepsQuery(t *testing.T) {
	var a Autocomplete
	seq, _ := a.Keystroke("cairo")
	require.True(t, a.Accept(seq, suggestions()))

	a.Close()
	assert.False(t, a.Open)
	assert.Equal(t, "cairo", a.Query)
	assert.Empty(t, a.Suggestions)
}

func TestAutocomplete_EmptyResultStaysClosed(t *testing.T) {
	var a Autocomplete
	seq, _ := a.Keystroke("zzzz")
	require.True(t, a.Accept(seq, nil))
	assert.False(t, a.Open)
}
