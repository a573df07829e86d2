package service

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/cookai/backend/internal/models"
)

const maxSuggestedRecipes = 5

// minKeywordLength filters out short tokens before they reach the store
const minKeywordLength = 3

// chatStopWords are removed from queries before keyword extraction. Removal
// is literal substring deletion, not token filtering, so words containing a
// stop word lose that fragment ("cooker" becomes "er"). This matches the
// long-standing search behavior that existing clients depend on.
var chatStopWords = []string{
	"how", "what", "when", "where", "why", "can", "you",
	"the", "for", "and", "with", "recipe", "make", "cook",
}

// ExtractKeywords lowercases the query, deletes every stop-word occurrence
// and splits the remainder on whitespace.
func ExtractKeywords(query string) []string {
	cleaned := strings.ToLower(query)
	for _, word := range chatStopWords {
		cleaned = strings.ReplaceAll(cleaned, word, "")
	}
	return strings.Fields(cleaned)
}

// RecipeSearcher looks up recipes by a title keyword
type RecipeSearcher interface {
	SearchRecipes(ctx context.Context, keyword string) ([]models.Recipe, error)
}

// FindRelevantRecipes surfaces up to five stored recipes matching the
// query's keywords, in match order and deduplicated by recipe identity.
// A failing lookup is skipped, never fatal.
func FindRelevantRecipes(ctx context.Context, searcher RecipeSearcher, query string) []models.Recipe {
	var results []models.Recipe

	for _, keyword := range ExtractKeywords(query) {
		if len(keyword) <= minKeywordLength {
			continue
		}
		found, err := searcher.SearchRecipes(ctx, keyword)
		if err != nil {
			log.Printf("recipe lookup for keyword %q failed: %v", keyword, err)
			continue
		}
		results = append(results, found...)
		if len(results) >= maxSuggestedRecipes {
			break
		}
	}

	return dedupeRecipes(results, maxSuggestedRecipes)
}

func dedupeRecipes(recipes []models.Recipe, limit int) []models.Recipe {
	seen := make(map[uuid.UUID]bool, len(recipes))
	deduped := make([]models.Recipe, 0, limit)
	for _, r := range recipes {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		deduped = append(deduped, r)
		if len(deduped) == limit {
			break
		}
	}
	return deduped
}
