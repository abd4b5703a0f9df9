package model

// SuggestionType classifies an autocomplete suggestion.
type SuggestionType string

// Suggestion categories, in the fixed order they are presented.
const (
	SuggestionCode      SuggestionType = "code"
	SuggestionClient    SuggestionType = "client"
	SuggestionRecipient SuggestionType = "recipient"
	SuggestionCity      SuggestionType = "city"
)

// SuggestionTypes lists all categories in display order.
var SuggestionTypes = []SuggestionType{
	SuggestionCode,
	SuggestionClient,
	SuggestionRecipient,
	SuggestionCity,
}

// Suggestion is one categorized autocomplete match.
type Suggestion struct {
	Value string         `json:"value"`
	Type  SuggestionType `json:"type"`
	Count int            `json:"count"`
}
