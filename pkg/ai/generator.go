package ai

import (
	"context"

	"github.com/cookbuddy/cookbuddy-backend/internal/models"
)

// Generator produces recipe suggestions from a list of ingredients.
// Which implementation runs is decided once at startup: the remote
// language-model client when a credential is configured, the static
// fallback otherwise.
type Generator interface {
	GenerateRecipes(ctx context.Context, ingredients []string) ([]models.Recipe, error)
}
