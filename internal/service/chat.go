package service

import (
	"context"
	"log"

	"github.com/cookai/backend/internal/types"
)

// ChatCompleter issues a chat completion and returns the raw reply text
type ChatCompleter interface {
	ChatCompletion(ctx context.Context, persona, prompt string) (string, error)
}

// ChatService composes the prompt builder, the LLM client, the keyword
// matcher and the response parser into the chat pipeline.
type ChatService struct {
	llm     ChatCompleter
	recipes RecipeSearcher
	drafts  *DraftStore
}

// NewChatService creates a ChatService. drafts may be nil when no draft
// store is configured.
func NewChatService(llm ChatCompleter, recipes RecipeSearcher, drafts *DraftStore) *ChatService {
	return &ChatService{
		llm:     llm,
		recipes: recipes,
		drafts:  drafts,
	}
}

// ProcessQuery answers a free-text cooking question and attaches locally
// stored recipes matching the query. Failures are reported through the
// response's Success/Error fields, never as an error.
func (s *ChatService) ProcessQuery(ctx context.Context, req *types.ChatRequest) *types.ChatResponse {
	prompt := BuildChatPrompt(req.Query, req.DietaryRestrictions, req.AvailableIngredients)

	raw, err := s.llm.ChatCompletion(ctx, ChatPersona, prompt)
	if err != nil {
		return &types.ChatResponse{
			Success: false,
			Error:   "Failed to process your query: " + err.Error(),
		}
	}

	suggested := FindRelevantRecipes(ctx, s.recipes, req.Query)
	suggestions := make([]types.RecipeResponse, 0, len(suggested))
	for i := range suggested {
		suggestions = append(suggestions, types.RecipeResponseFromModel(&suggested[i]))
	}

	return &types.ChatResponse{
		Response:         raw,
		SuggestedRecipes: suggestions,
		Success:          true,
	}
}

// GenerateRecipeFromIngredients asks the LLM for a recipe limited to the
// given ingredients and parses the marker-delimited reply into a draft. The
// draft is kept in the draft store when one is configured, but is never
// persisted as a recipe.
func (s *ChatService) GenerateRecipeFromIngredients(ctx context.Context, ingredients, restrictions []string) *GeneratedRecipe {
	prompt := BuildRecipeGenerationPrompt(ingredients, restrictions)

	raw, err := s.llm.ChatCompletion(ctx, ChatPersona, prompt)
	if err != nil {
		return &GeneratedRecipe{
			Success: false,
			Error:   "Failed to generate recipe: " + err.Error(),
		}
	}

	recipe := ParseGeneratedRecipe(raw)
	recipe.Success = true

	if s.drafts != nil {
		if err := s.drafts.Save(ctx, recipe); err != nil {
			log.Printf("failed to save recipe draft: %v", err)
		}
	}

	return recipe
}
