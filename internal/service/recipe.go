package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cookai/backend/internal/models"
	"github.com/cookai/backend/internal/types"
)

const recentRecipeLimit = 10

// RecipeService handles recipe persistence operations
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListRecipes returns all recipes
func (s *RecipeService) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Preload("Ingredients").Preload("User").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).Preload("Ingredients").Preload("User").First(&recipe, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// SearchRecipes finds recipes whose title contains the keyword, case-insensitively
func (s *RecipeService) SearchRecipes(ctx context.Context, keyword string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	like := "%" + strings.ToLower(keyword) + "%"
	err := s.db.WithContext(ctx).
		Preload("Ingredients").Preload("User").
		Where("LOWER(title) LIKE ?", like).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// RecentRecipes returns the ten most recently created recipes
func (s *RecipeService) RecentRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Ingredients").Preload("User").
		Order("created_at DESC").
		Limit(recentRecipeLimit).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// UserRecipes returns a user's recipes, most recent first
func (s *RecipeService) UserRecipes(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Ingredients").Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// CreateRecipe validates and persists a new recipe owned by userID
func (s *RecipeService) CreateRecipe(ctx context.Context, req *types.RecipeRequest, userID uuid.UUID) (*models.Recipe, error) {
	if err := ValidateRecipeRequest(req); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	recipe := models.Recipe{
		Title:           req.Title,
		Description:     req.Description,
		Instructions:    req.Instructions,
		PreparationTime: req.PreparationTime,
		CookingTime:     req.CookingTime,
		Servings:        req.Servings,
		UserID:          user.ID,
		Ingredients:     ingredientsFromRequest(req.Ingredients),
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return s.GetRecipe(ctx, recipe.ID)
}

// UpdateRecipe replaces a recipe's fields and its full ingredient set.
// Replacement is destructive and runs in one transaction so a failed write
// never leaves a partial ingredient set visible.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, req *types.RecipeRequest, userID uuid.UUID) (*models.Recipe, error) {
	if err := ValidateRecipeRequest(req); err != nil {
		return nil, err
	}

	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ownedBy(recipe, userID) {
		return nil, ErrNotOwner
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"title":            req.Title,
			"description":      req.Description,
			"instructions":     req.Instructions,
			"preparation_time": req.PreparationTime,
			"cooking_time":     req.CookingTime,
			"servings":         req.Servings,
		}
		if err := tx.Model(&models.Recipe{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Ingredient{}).Error; err != nil {
			return err
		}
		ingredients := ingredientsFromRequest(req.Ingredients)
		for i := range ingredients {
			ingredients[i].RecipeID = id
		}
		return tx.Create(&ingredients).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetRecipe(ctx, id)
}

// DeleteRecipe removes a recipe and its ingredients
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return err
	}
	if !ownedBy(recipe, userID) {
		return ErrNotOwner
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Ingredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, "id = ?", id).Error
	})
}

// ownedBy is the single authorization predicate shared by all write paths
func ownedBy(recipe *models.Recipe, callerID uuid.UUID) bool {
	return recipe.UserID == callerID
}

func ingredientsFromRequest(reqs []types.IngredientRequest) []models.Ingredient {
	ingredients := make([]models.Ingredient, 0, len(reqs))
	for _, r := range reqs {
		ingredients = append(ingredients, models.Ingredient{
			Name:        r.Name,
			Quantity:    r.Quantity,
			Unit:        r.Unit,
			Description: r.Description,
		})
	}
	return ingredients
}
