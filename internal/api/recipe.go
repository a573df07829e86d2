package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cookai/backend/internal/middleware"
	"github.com/cookai/backend/internal/models"
	"github.com/cookai/backend/internal/service"
	"github.com/cookai/backend/internal/types"
)

// RecipeHandler handles recipe CRUD requests
type RecipeHandler struct {
	recipeService *service.RecipeService
	authService   *service.AuthService
}

func NewRecipeHandler(recipeService *service.RecipeService, authService *service.AuthService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		authService:   authService,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/search", h.SearchRecipes)
		recipes.GET("/recent", h.RecentRecipes)
		recipes.GET("/user", middleware.AuthMiddleware(h.authService), h.UserRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", middleware.AuthMiddleware(h.authService), h.CreateRecipe)
		recipes.PUT("/:id", middleware.AuthMiddleware(h.authService), h.UpdateRecipe)
		recipes.DELETE("/:id", middleware.AuthMiddleware(h.authService), h.DeleteRecipe)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipeService.ListRecipes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}
	c.JSON(http.StatusOK, recipeResponses(recipes))
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return
	}
	c.JSON(http.StatusOK, types.RecipeResponseFromModel(recipe))
}

func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	keyword := c.Query("keyword")
	recipes, err := h.recipeService.SearchRecipes(c.Request.Context(), keyword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search recipes"})
		return
	}
	c.JSON(http.StatusOK, recipeResponses(recipes))
}

func (h *RecipeHandler) RecentRecipes(c *gin.Context) {
	recipes, err := h.recipeService.RecentRecipes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}
	c.JSON(http.StatusOK, recipeResponses(recipes))
}

func (h *RecipeHandler) UserRecipes(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	recipes, err := h.recipeService.UserRecipes(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}
	c.JSON(http.StatusOK, recipeResponses(recipes))
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), &req, userID)
	if err != nil {
		writeRecipeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, types.RecipeResponseFromModel(recipe))
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), id, &req, userID)
	if err != nil {
		writeRecipeError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.RecipeResponseFromModel(recipe))
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), id, userID); err != nil {
		writeRecipeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// callerID reads the authenticated user from the request context
func callerID(c *gin.Context) (uuid.UUID, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return uuid.Nil, false
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return uuid.Nil, false
	}
	return userID, true
}

func writeRecipeError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrRecipeNotFound), errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process recipe"})
	}
}

func recipeResponses(recipes []models.Recipe) []types.RecipeResponse {
	responses := make([]types.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		responses = append(responses, types.RecipeResponseFromModel(&recipes[i]))
	}
	return responses
}
