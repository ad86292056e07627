package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticGeneratorIsDeterministic(t *testing.T) {
	gen := NewStaticGenerator()
	ingredients := []string{"leek", "potato"}

	first, err := gen.GenerateRecipes(context.Background(), ingredients)
	require.NoError(t, err)
	second, err := gen.GenerateRecipes(context.Background(), ingredients)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.NotEmpty(t, first)
	for _, recipe := range first {
		assert.NotEmpty(t, recipe.Title)
		assert.NotEmpty(t, recipe.Steps)
		assert.Subset(t, recipe.Ingredients, ingredients)
	}
}

func TestParseRecipesStripsMarkdownFence(t *testing.T) {
	content := "```json\n[{\"title\":\"Soup\",\"description\":\"d\",\"ingredients\":[\"leek\"],\"steps\":[\"boil\"]}]\n```"

	recipes, err := parseRecipes(content)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Soup", recipes[0].Title)
}

func TestParseRecipesRejectsGarbage(t *testing.T) {
	_, err := parseRecipes("sorry, I cannot help with that")
	assert.Error(t, err)
}
