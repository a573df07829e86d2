package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cookai/backend/internal/types"
)

// GeneratedRecipe is a recipe-shaped draft parsed from LLM free text. It is
// never persisted unless a caller submits it through the normal
// recipe-creation path.
type GeneratedRecipe struct {
	ID           string                    `json:"id,omitempty"`
	Title        string                    `json:"title"`
	Description  string                    `json:"description"`
	Ingredients  []types.IngredientRequest `json:"ingredients"`
	Instructions []string                  `json:"instructions"`
	CookingTime  int                       `json:"cooking_time"`
	Difficulty   string                    `json:"difficulty"`
	Cuisine      string                    `json:"cuisine"`
	Success      bool                      `json:"success"`
	Error        string                    `json:"error,omitempty"`
}

var recipeMarkers = []string{
	markerTitle,
	markerDescription,
	markerIngredients,
	markerInstructions,
	markerCookingTime,
	markerDifficulty,
	markerCuisine,
}

// ParseGeneratedRecipe extracts the labeled sections of a marker-delimited
// LLM reply into a draft. It scans the text once for the offset of every
// known marker, then slices each field between its marker and the next
// present one, so sections may be missing or reordered without affecting the
// rest. Missing markers leave their field at its zero value; the function
// never fails.
func ParseGeneratedRecipe(raw string) *GeneratedRecipe {
	recipe := &GeneratedRecipe{}

	sections := splitSections(raw)

	if title, ok := sections[markerTitle]; ok {
		recipe.Title = firstLine(title)
	}
	if desc, ok := sections[markerDescription]; ok {
		recipe.Description = strings.TrimSpace(desc)
	}
	if ingredients, ok := sections[markerIngredients]; ok {
		for _, line := range nonEmptyLines(ingredients) {
			recipe.Ingredients = append(recipe.Ingredients, types.IngredientRequest{Description: line})
		}
	}
	if instructions, ok := sections[markerInstructions]; ok {
		recipe.Instructions = nonEmptyLines(instructions)
	}
	if cookingTime, ok := sections[markerCookingTime]; ok {
		recipe.CookingTime = parseMinutes(firstLine(cookingTime))
	}
	if difficulty, ok := sections[markerDifficulty]; ok {
		recipe.Difficulty = firstLine(difficulty)
	}
	if cuisine, ok := sections[markerCuisine]; ok {
		recipe.Cuisine = firstLine(cuisine)
	}

	return recipe
}

// splitSections locates the first occurrence of each known marker and maps it
// to the text between that marker and the next present one.
func splitSections(raw string) map[string]string {
	type span struct {
		marker string
		start  int // offset of the marker itself
		body   int // offset just past the marker label
	}

	var spans []span
	for _, marker := range recipeMarkers {
		idx := strings.Index(raw, marker)
		if idx < 0 {
			continue
		}
		spans = append(spans, span{marker: marker, start: idx, body: idx + len(marker)})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	sections := make(map[string]string, len(spans))
	for i, sp := range spans {
		end := len(raw)
		if i+1 < len(spans) {
			end = spans[i+1].start
		}
		sections[sp.marker] = raw[sp.body:end]
	}
	return sections
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// parseMinutes strips everything but digits and parses the remainder. Any
// failure yields 0.
func parseMinutes(s string) int {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}

// Text renders the draft in the same labeled layout the generation prompt
// asks the model for. The recipe-suggestion endpoint returns this rendering
// as plain text.
func (r *GeneratedRecipe) Text() string {
	if !r.Success && r.Error != "" {
		return r.Error
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", markerTitle, r.Title)
	fmt.Fprintf(&b, "%s %s\n", markerDescription, r.Description)
	b.WriteString(markerIngredients + "\n")
	for _, ing := range r.Ingredients {
		b.WriteString(ing.Description + "\n")
	}
	b.WriteString(markerInstructions + "\n")
	for _, step := range r.Instructions {
		b.WriteString(step + "\n")
	}
	fmt.Fprintf(&b, "%s %d\n", markerCookingTime, r.CookingTime)
	fmt.Fprintf(&b, "%s %s\n", markerDifficulty, r.Difficulty)
	fmt.Fprintf(&b, "%s %s\n", markerCuisine, r.Cuisine)
	return b.String()
}
