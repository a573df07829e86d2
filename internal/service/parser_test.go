package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormedReply = `TITLE: Tomato Omelette
DESCRIPTION: A quick omelette
made from pantry staples.
INGREDIENTS:
2 eggs
1 tomato, diced
Salt to taste
INSTRUCTIONS:
Beat the eggs.
Fry the tomato.
Add the eggs and fold.
COOKING_TIME: 15 minutes
DIFFICULTY: Easy
CUISINE: French`

func TestParseGeneratedRecipe_WellFormed(t *testing.T) {
	recipe := ParseGeneratedRecipe(wellFormedReply)

	assert.Equal(t, "Tomato Omelette", recipe.Title)
	assert.Equal(t, "A quick omelette\nmade from pantry staples.", recipe.Description)

	require.Len(t, recipe.Ingredients, 3)
	assert.Equal(t, "2 eggs", recipe.Ingredients[0].Description)
	assert.Equal(t, "1 tomato, diced", recipe.Ingredients[1].Description)
	assert.Equal(t, "Salt to taste", recipe.Ingredients[2].Description)
	assert.Empty(t, recipe.Ingredients[0].Name)

	assert.Equal(t, []string{"Beat the eggs.", "Fry the tomato.", "Add the eggs and fold."}, recipe.Instructions)
	assert.Equal(t, 15, recipe.CookingTime)
	assert.Equal(t, "Easy", recipe.Difficulty)
	assert.Equal(t, "French", recipe.Cuisine)
}

func TestParseGeneratedRecipe_DifficultyAndCuisineAreIndependent(t *testing.T) {
	// Both labels must survive regardless of which appears last.
	recipe := ParseGeneratedRecipe("CUISINE: Italian\nDIFFICULTY: Hard\n")
	assert.Equal(t, "Hard", recipe.Difficulty)
	assert.Equal(t, "Italian", recipe.Cuisine)

	recipe = ParseGeneratedRecipe("DIFFICULTY: Hard\nCUISINE: Italian\n")
	assert.Equal(t, "Hard", recipe.Difficulty)
	assert.Equal(t, "Italian", recipe.Cuisine)
}

func TestParseGeneratedRecipe_MissingMarkers(t *testing.T) {
	t.Run("partial template", func(t *testing.T) {
		recipe := ParseGeneratedRecipe("TITLE: Toast\nINSTRUCTIONS:\nToast the bread.\n")

		assert.Equal(t, "Toast", recipe.Title)
		assert.Empty(t, recipe.Description)
		assert.Empty(t, recipe.Ingredients)
		assert.Equal(t, []string{"Toast the bread."}, recipe.Instructions)
		assert.Equal(t, 0, recipe.CookingTime)
		assert.Empty(t, recipe.Difficulty)
		assert.Empty(t, recipe.Cuisine)
	})

	t.Run("no markers at all", func(t *testing.T) {
		recipe := ParseGeneratedRecipe("Sorry, I can't help with that.")

		assert.Empty(t, recipe.Title)
		assert.Empty(t, recipe.Ingredients)
		assert.Equal(t, 0, recipe.CookingTime)
	})

	t.Run("empty input", func(t *testing.T) {
		recipe := ParseGeneratedRecipe("")
		assert.NotNil(t, recipe)
		assert.Empty(t, recipe.Title)
	})
}

func TestParseGeneratedRecipe_CookingTime(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"plain minutes", "COOKING_TIME: 45 minutes\n", 45},
		{"digits embedded in words", "COOKING_TIME: about 1 hour 30 min\n", 130},
		{"no digits defaults to zero", "COOKING_TIME: a little while\n", 0},
		{"marker absent defaults to zero", "TITLE: x\n", 0},
		{"only first line is read", "COOKING_TIME: 20\n45 more\n", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseGeneratedRecipe(tt.raw).CookingTime)
		})
	}
}

func TestParseGeneratedRecipe_ReorderedSections(t *testing.T) {
	// Sections out of template order still slice at the nearest following marker.
	raw := "DESCRIPTION: Hearty stew.\nTITLE: Stew\nCOOKING_TIME: 90\n"
	recipe := ParseGeneratedRecipe(raw)

	assert.Equal(t, "Stew", recipe.Title)
	assert.Equal(t, "Hearty stew.", recipe.Description)
	assert.Equal(t, 90, recipe.CookingTime)
}

func TestGeneratedRecipeText(t *testing.T) {
	recipe := ParseGeneratedRecipe(wellFormedReply)
	recipe.Success = true

	text := recipe.Text()
	assert.Contains(t, text, "TITLE: Tomato Omelette")
	assert.Contains(t, text, "2 eggs")
	assert.Contains(t, text, "COOKING_TIME: 15")
	assert.Contains(t, text, "DIFFICULTY: Easy")
	assert.Contains(t, text, "CUISINE: French")
}

func TestGeneratedRecipeText_Failure(t *testing.T) {
	recipe := &GeneratedRecipe{Success: false, Error: "Failed to generate recipe: boom"}
	assert.Equal(t, "Failed to generate recipe: boom", recipe.Text())
}
