package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cookai/backend/internal/middleware"
	"github.com/cookai/backend/internal/service"
	"github.com/cookai/backend/internal/types"
)

// ChatHandler handles chat and recipe-generation requests
type ChatHandler struct {
	chatService *service.ChatService
	drafts      *service.DraftStore
	authService *service.AuthService
}

func NewChatHandler(chatService *service.ChatService, drafts *service.DraftStore, authService *service.AuthService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		drafts:      drafts,
		authService: authService,
	}
}

func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup) {
	chat := router.Group("/chat")
	{
		chat.POST("", h.ProcessChat)
		chat.POST("/recipe-suggestion", h.RecipeSuggestion)
		if h.drafts != nil {
			chat.GET("/drafts/:id", middleware.AuthMiddleware(h.authService), h.GetDraft)
		}
	}
}

// ProcessChat forwards the query to the LLM. Upstream failures still produce
// HTTP 200; the body's success flag is the discriminator.
func (h *ChatHandler) ProcessChat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := service.ValidateChatQuery(req.Query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.chatService.ProcessQuery(c.Request.Context(), &req))
}

// RecipeSuggestion generates a recipe from a comma-separated ingredient list
// and returns its textual rendering.
func (h *ChatHandler) RecipeSuggestion(c *gin.Context) {
	ingredients := splitCSV(c.Query("ingredients"))
	if len(ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ingredients parameter is required"})
		return
	}
	restrictions := splitCSV(c.Query("restrictions"))

	recipe := h.chatService.GenerateRecipeFromIngredients(c.Request.Context(), ingredients, restrictions)
	c.String(http.StatusOK, recipe.Text())
}

func (h *ChatHandler) GetDraft(c *gin.Context) {
	draft, err := h.drafts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
		return
	}
	c.JSON(http.StatusOK, draft)
}

func splitCSV(s string) []string {
	var parts []string
	for _, p := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
