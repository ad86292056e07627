package models

// Recipe is one generated suggestion.
type Recipe struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

type RecipeSuggestionRequest struct {
	Ingredients []string `json:"ingredients" validate:"required,min=1,dive,required"`
}
