package ai

import (
	"context"
	"strings"

	"github.com/cookbuddy/cookbuddy-backend/internal/models"
)

// StaticGenerator is the offline fallback used when no language-model
// credential is configured. It always succeeds with fixed placeholder
// content so the product degrades instead of failing outright.
type StaticGenerator struct{}

func NewStaticGenerator() *StaticGenerator {
	return &StaticGenerator{}
}

func (g *StaticGenerator) GenerateRecipes(_ context.Context, ingredients []string) ([]models.Recipe, error) {
	base := strings.Join(ingredients, ", ")

	return []models.Recipe{
		{
			Title:       "Simple Stir-Fry",
			Description: "A quick stir-fry built around " + base + ".",
			Ingredients: append([]string{}, ingredients...),
			Steps: []string{
				"Chop all ingredients into bite-sized pieces.",
				"Heat oil in a pan over high heat.",
				"Stir-fry everything for 5-7 minutes.",
				"Season to taste and serve.",
			},
		},
		{
			Title:       "Rustic Oven Bake",
			Description: "An oven bake combining " + base + " with herbs.",
			Ingredients: append([]string{"olive oil", "mixed herbs"}, ingredients...),
			Steps: []string{
				"Preheat the oven to 200°C.",
				"Arrange the ingredients in a baking dish and drizzle with oil.",
				"Bake for 25 minutes until golden.",
			},
		},
	}, nil
}
