package api

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookai/backend/internal/types"
)

func TestProcessChatEndpoint(t *testing.T) {
	t.Run("returns the model reply", func(t *testing.T) {
		env := newTestEnv(t)
		env.llm.reply = "Use a hot pan and plenty of butter."

		w := env.request(t, http.MethodPost, "/api/chat", "", map[string]interface{}{
			"query": "how do I fry an egg",
		})

		require.Equal(t, http.StatusOK, w.Code)

		var resp types.ChatResponse
		decodeJSON(t, w, &resp)
		assert.True(t, resp.Success)
		assert.Equal(t, "Use a hot pan and plenty of butter.", resp.Response)
	})

	t.Run("upstream failure still returns 200", func(t *testing.T) {
		env := newTestEnv(t)
		env.llm.err = errors.New("gateway unreachable")

		w := env.request(t, http.MethodPost, "/api/chat", "", map[string]interface{}{
			"query": "anything at all",
		})

		require.Equal(t, http.StatusOK, w.Code)

		var resp types.ChatResponse
		decodeJSON(t, w, &resp)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Error, "Failed to process your query")
	})

	t.Run("empty query returns 400", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.request(t, http.MethodPost, "/api/chat", "", map[string]interface{}{
			"query": "   ",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("oversized query returns 400", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.request(t, http.MethodPost, "/api/chat", "", map[string]interface{}{
			"query": strings.Repeat("q", 501),
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("suggestions come from stored recipes", func(t *testing.T) {
		env := newTestEnv(t)
		token, _ := env.registerUser(t, "author@example.com")

		body := validRecipeBody()
		body["title"] = "Fried Egg Sandwich"
		w := env.request(t, http.MethodPost, "/api/recipes", token, body)
		require.Equal(t, http.StatusCreated, w.Code)

		w = env.request(t, http.MethodPost, "/api/chat", "", map[string]interface{}{
			"query": "fried breakfast ideas",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp types.ChatResponse
		decodeJSON(t, w, &resp)
		require.True(t, resp.Success)
		require.Len(t, resp.SuggestedRecipes, 1)
		assert.Equal(t, "Fried Egg Sandwich", resp.SuggestedRecipes[0].Title)
	})
}

func TestRecipeSuggestionEndpoint(t *testing.T) {
	const markerReply = `TITLE: Egg Fried Rice
DESCRIPTION: Quick weeknight dinner.
INGREDIENTS:
- 2 eggs
- 300 g cooked rice
INSTRUCTIONS:
1. Scramble the eggs.
2. Add the rice and fry.
COOKING_TIME: 10 minutes
DIFFICULTY: Easy
CUISINE: Chinese`

	t.Run("returns a textual recipe", func(t *testing.T) {
		env := newTestEnv(t)
		env.llm.reply = markerReply

		w := env.request(t, http.MethodPost, "/api/chat/recipe-suggestion?ingredients=egg,rice", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Egg Fried Rice")
		assert.Contains(t, body, "eggs")
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	})

	t.Run("missing ingredients returns 400", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.request(t, http.MethodPost, "/api/chat/recipe-suggestion", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("upstream failure is rendered in the body", func(t *testing.T) {
		env := newTestEnv(t)
		env.llm.err = errors.New("gateway unreachable")

		w := env.request(t, http.MethodPost, "/api/chat/recipe-suggestion?ingredients=egg", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to generate recipe")
	})
}

func TestDraftRouteAbsentWithoutStore(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.registerUser(t, "author@example.com")

	w := env.request(t, http.MethodGet, "/api/chat/drafts/some-id", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
