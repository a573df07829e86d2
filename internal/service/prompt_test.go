package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildChatPrompt(t *testing.T) {
	t.Run("includes query and both optional clauses", func(t *testing.T) {
		prompt := BuildChatPrompt("how do I make risotto", []string{"vegetarian", "nut-free"}, []string{"rice", "stock"})

		assert.Contains(t, prompt, "User query: how do I make risotto")
		assert.Contains(t, prompt, "Dietary restrictions: vegetarian, nut-free")
		assert.Contains(t, prompt, "Available ingredients: rice, stock")
	})

	t.Run("empty lists omit their clause", func(t *testing.T) {
		prompt := BuildChatPrompt("how do I make risotto", nil, []string{})

		assert.NotContains(t, prompt, "Dietary restrictions:")
		assert.NotContains(t, prompt, "Available ingredients:")
	})
}

func TestBuildRecipeGenerationPrompt(t *testing.T) {
	prompt := BuildRecipeGenerationPrompt([]string{"egg", "flour"}, []string{"vegetarian"})

	assert.Contains(t, prompt, "egg, flour")
	assert.Contains(t, prompt, "vegetarian")

	// The seven marker labels must appear in template order; the parser
	// depends on these exact strings.
	markers := []string{"TITLE:", "DESCRIPTION:", "INGREDIENTS:", "INSTRUCTIONS:", "COOKING_TIME:", "DIFFICULTY:", "CUISINE:"}
	last := -1
	for _, marker := range markers {
		idx := strings.Index(prompt, marker)
		assert.Greaterf(t, idx, last, "marker %s out of order", marker)
		last = idx
	}
}

func TestBuildRecipeGenerationPrompt_NoRestrictions(t *testing.T) {
	prompt := BuildRecipeGenerationPrompt([]string{"egg"}, nil)

	assert.NotContains(t, prompt, "dietary restrictions:")
	assert.Contains(t, prompt, "feasible with only the provided ingredients.")
}
