package types

// ChatRequest represents the request body for the chat endpoint
type ChatRequest struct {
	Query                string   `json:"query"`
	UserID               string   `json:"userId,omitempty"`
	DietaryRestrictions  []string `json:"dietaryRestrictions,omitempty"`
	AvailableIngredients []string `json:"availableIngredients,omitempty"`
}

// ChatResponse represents the response body for the chat endpoint. Upstream
// failures are reported through Success/Error, never as an HTTP error status.
type ChatResponse struct {
	Response         string           `json:"response"`
	SuggestedRecipes []RecipeResponse `json:"suggestedRecipes"`
	Success          bool             `json:"success"`
	Error            string           `json:"error,omitempty"`
}
