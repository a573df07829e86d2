package service

import "strings"

// ChatPersona is the system message sent with every plain chat completion
const ChatPersona = "You are Cook.ai, a cooking assistant specializing in recipes, cooking techniques, and culinary advice. Provide helpful, accurate, and friendly responses related to cooking."

// StructuredPersona is the system message for structured completions
const StructuredPersona = "You are Cook.ai, a cooking assistant. Provide responses in the requested JSON format."

// Marker labels delimiting sections of the generated recipe text. These are a
// contract shared with ParseGeneratedRecipe and must stay byte-identical to
// the template emitted by BuildRecipeGenerationPrompt.
const (
	markerTitle        = "TITLE:"
	markerDescription  = "DESCRIPTION:"
	markerIngredients  = "INGREDIENTS:"
	markerInstructions = "INSTRUCTIONS:"
	markerCookingTime  = "COOKING_TIME:"
	markerDifficulty   = "DIFFICULTY:"
	markerCuisine      = "CUISINE:"
)

// BuildChatPrompt assembles the user prompt for a general cooking query.
// Empty restriction or ingredient lists simply omit their clause.
func BuildChatPrompt(query string, restrictions, ingredients []string) string {
	var prompt strings.Builder
	prompt.WriteString("You are Cook.ai, a helpful cooking assistant. ")
	prompt.WriteString("User query: ")
	prompt.WriteString(query)
	prompt.WriteString("\n\n")

	if len(restrictions) > 0 {
		prompt.WriteString("Dietary restrictions: ")
		prompt.WriteString(strings.Join(restrictions, ", "))
		prompt.WriteString("\n\n")
	}

	if len(ingredients) > 0 {
		prompt.WriteString("Available ingredients: ")
		prompt.WriteString(strings.Join(ingredients, ", "))
		prompt.WriteString("\n\n")
	}

	prompt.WriteString("Provide a helpful, friendly response about cooking, recipes, or food-related questions. ")
	prompt.WriteString("If the user is asking for a recipe, provide detailed instructions, ingredients list, and cooking tips.")

	return prompt.String()
}

// BuildRecipeGenerationPrompt assembles the prompt instructing the model to
// answer in the seven-field marker template.
func BuildRecipeGenerationPrompt(ingredients, restrictions []string) string {
	var prompt strings.Builder
	prompt.WriteString("You are Cook.ai, a creative chef assistant. ")
	prompt.WriteString("Generate a complete recipe using only these ingredients: ")
	prompt.WriteString(strings.Join(ingredients, ", "))
	prompt.WriteString("\n\n")

	if len(restrictions) > 0 {
		prompt.WriteString("The recipe must respect these dietary restrictions: ")
		prompt.WriteString(strings.Join(restrictions, ", "))
		prompt.WriteString("\n\n")
	}

	prompt.WriteString("Your response should follow this structure:\n")
	prompt.WriteString(markerTitle + " [Recipe Name]\n")
	prompt.WriteString(markerDescription + " [Brief description]\n")
	prompt.WriteString(markerIngredients + " [List all ingredients with measurements]\n")
	prompt.WriteString(markerInstructions + " [Step by step cooking instructions]\n")
	prompt.WriteString(markerCookingTime + " [Total time in minutes]\n")
	prompt.WriteString(markerDifficulty + " [Easy, Medium, or Hard]\n")
	prompt.WriteString(markerCuisine + " [Type of cuisine]\n")

	prompt.WriteString("\nBe creative but practical. Ensure the recipe is delicious and feasible with only the provided ingredients")
	if len(restrictions) > 0 {
		prompt.WriteString(" while strictly adhering to all dietary restrictions.")
	} else {
		prompt.WriteString(".")
	}

	return prompt.String()
}
