package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/cookai/backend/internal/models"
)

// IngredientRequest is a single ingredient within a recipe request
type IngredientRequest struct {
	Name        string `json:"name"`
	Quantity    string `json:"quantity"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
}

// RecipeRequest represents the request body for creating or updating a recipe
type RecipeRequest struct {
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	Instructions    string              `json:"instructions"`
	PreparationTime int                 `json:"preparation_time"`
	CookingTime     int                 `json:"cooking_time"`
	Servings        int                 `json:"servings"`
	Ingredients     []IngredientRequest `json:"ingredients"`
}

// RecipeResponse is the outward representation of a stored recipe
type RecipeResponse struct {
	ID              uuid.UUID           `json:"id"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	Instructions    string              `json:"instructions"`
	PreparationTime int                 `json:"preparation_time"`
	CookingTime     int                 `json:"cooking_time"`
	Servings        int                 `json:"servings"`
	Ingredients     []IngredientRequest `json:"ingredients"`
	AuthorName      string              `json:"author_name"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// RecipeResponseFromModel converts a stored recipe to its response shape
func RecipeResponseFromModel(r *models.Recipe) RecipeResponse {
	resp := RecipeResponse{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		Instructions:    r.Instructions,
		PreparationTime: r.PreparationTime,
		CookingTime:     r.CookingTime,
		Servings:        r.Servings,
		AuthorName:      "Anonymous",
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.User != nil && r.User.FullName != "" {
		resp.AuthorName = r.User.FullName
	}
	for _, ing := range r.Ingredients {
		resp.Ingredients = append(resp.Ingredients, IngredientRequest{
			Name:        ing.Name,
			Quantity:    ing.Quantity,
			Unit:        ing.Unit,
			Description: ing.Description,
		})
	}
	return resp
}
