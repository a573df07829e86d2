package service

import (
	"regexp"
	"strings"

	"github.com/cookai/backend/internal/types"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

const (
	minPasswordLength = 8
	maxTitleLength    = 100
	maxQueryLength    = 500
)

// ValidateRecipeRequest checks a recipe create/update request. A persisted
// recipe must have a title and at least one ingredient.
func ValidateRecipeRequest(req *types.RecipeRequest) error {
	if req == nil {
		return validationErrorf("recipe cannot be empty")
	}
	if strings.TrimSpace(req.Title) == "" {
		return validationErrorf("recipe title is required")
	}
	if len(req.Title) > maxTitleLength {
		return validationErrorf("recipe title cannot exceed %d characters", maxTitleLength)
	}
	if strings.TrimSpace(req.Instructions) == "" {
		return validationErrorf("recipe instructions are required")
	}
	if len(req.Ingredients) == 0 {
		return validationErrorf("recipe must have at least one ingredient")
	}
	if req.PreparationTime < 0 {
		return validationErrorf("preparation time cannot be negative")
	}
	if req.CookingTime < 0 {
		return validationErrorf("cooking time cannot be negative")
	}
	if req.Servings < 0 {
		return validationErrorf("servings cannot be negative")
	}
	return nil
}

// ValidateEmail checks that an email address is usable
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return validationErrorf("email cannot be empty")
	}
	if !emailPattern.MatchString(email) {
		return validationErrorf("invalid email format")
	}
	return nil
}

// ValidatePassword enforces minimum password strength
func ValidatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return validationErrorf("password cannot be empty")
	}
	if len(password) < minPasswordLength {
		return validationErrorf("password must be at least %d characters long", minPasswordLength)
	}
	var hasDigit, hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		}
	}
	if !hasDigit || !hasLower || !hasUpper {
		return validationErrorf("password must contain at least one digit, one lowercase and one uppercase letter")
	}
	return nil
}

// ValidateChatQuery checks a free-text chat query
func ValidateChatQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return validationErrorf("query cannot be empty")
	}
	if len(query) > maxQueryLength {
		return validationErrorf("query cannot exceed %d characters", maxQueryLength)
	}
	return nil
}
