package viewmodel

import "github.com/omarelders/shipdash/internal/model"

const (
	// MinQueryLen is the shortest query that triggers a suggestion fetch.
	MinQueryLen = 2

	// SuggestionLimit caps how many suggestions are requested per query.
	SuggestionLimit = 8
)

// Autocomplete holds the suggestion dropdown state for the search input.
// Each keystroke bumps Seq; a result is only accepted when it carries the
// current Seq, so slow responses for old queries can never clobber newer
// ones regardless of arrival order.
type Autocomplete struct {
	Query       string
	Suggestions []model.Suggestion
	Seq         int
	Cursor      int
	Open        bool
}

// Keystroke records an edited query and returns the sequence number the
// resulting fetch must carry. A query below the minimum length closes the
// dropdown and still bumps the sequence so in-flight results get dropped.
func (a *Autocomplete) Keystroke(query string) (int, bool) {
	a.Query = query
	a.Seq++
	if len([]rune(query)) < MinQueryLen {
		a.Close()
		return a.Seq, false
	}
	return a.Seq, true
}

// Accept installs fetched suggestions if they answer the current query.
// Results for a superseded sequence are ignored.
func (a *Autocomplete) Accept(seq int, suggestions []model.Suggestion) bool {
	if seq != a.Seq {
		return false
	}
	a.Suggestions = groupByType(suggestions)
	a.Cursor = -1
	a.Open = len(a.Suggestions) > 0
	return true
}

// groupByType orders suggestions by category in the fixed display order,
// keeping the server's ranking within each category.
func groupByType(suggestions []model.Suggestion) []model.Suggestion {
	out := make([]model.Suggestion, 0, len(suggestions))
	for _, t := range model.SuggestionTypes {
		for _, s := range suggestions {
			if s.Type == t {
				out = append(out, s)
			}
		}
	}
	return out
}

// MoveDown advances the cursor, wrapping from the last suggestion to the
// first. With the cursor unset it lands on the first suggestion.
func (a *Autocomplete) MoveDown() {
	if !a.Open || len(a.Suggestions) == 0 {
		return
	}
	a.Cursor = (a.Cursor + 1) % len(a.Suggestions)
}

// MoveUp retreats the cursor, wrapping from the first suggestion to the
// last.
func (a *Autocomplete) MoveUp() {
	if !a.Open || len(a.Suggestions) == 0 {
		return
	}
	if a.Cursor <= 0 {
		a.Cursor = len(a.Suggestions) - 1
		return
	}
	a.Cursor--
}

// Selected returns the suggestion under the cursor, if any.
func (a Autocomplete) Selected() (model.Suggestion, bool) {
	if !a.Open || a.Cursor < 0 || a.Cursor >= len(a.Suggestions) {
		return model.Suggestion{}, false
	}
	return a.Suggestions[a.Cursor], true
}

// Submit resolves the Enter key: with a suggestion highlighted it becomes
// the query, otherwise the typed text is searched as-is. Either way the
// dropdown closes and the returned string is what to search for.
func (a *Autocomplete) Submit() string {
	if s, ok := a.Selected(); ok {
		a.Query = s.Value
	}
	a.Close()
	return a.Query
}

// Close dismisses the dropdown without touching the query text.
func (a *Autocomplete) Close() {
	a.Open = false
	a.Suggestions = nil
	a.Cursor = -1
}
