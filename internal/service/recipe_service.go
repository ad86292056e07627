package service

import (
	"context"

	"github.com/cookbuddy/cookbuddy-backend/internal/models"
	"github.com/cookbuddy/cookbuddy-backend/internal/repository"
	"github.com/cookbuddy/cookbuddy-backend/pkg/ai"
	"go.uber.org/zap"
)

type RecipeService struct {
	generator ai.Generator
	userRepo  *repository.UserRepository
	logger    *zap.Logger
}

func NewRecipeService(generator ai.Generator, userRepo *repository.UserRepository, logger *zap.Logger) *RecipeService {
	return &RecipeService{
		generator: generator,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// SuggestRecipes spends one credit, then generates. The credit is refunded
// when generation fails.
func (s *RecipeService) SuggestRecipes(ctx context.Context, userID uint, ingredients []string) ([]models.Recipe, error) {
	spent, err := s.userRepo.SpendCredit(userID)
	if err != nil {
		return nil, err
	}
	if !spent {
		return nil, models.ErrInsufficientCredits
	}

	recipes, err := s.generator.GenerateRecipes(ctx, ingredients)
	if err != nil {
		if refundErr := s.userRepo.AddCredits(userID, 1); refundErr != nil {
			s.logger.Error("credit refund failed after generation error",
				zap.Uint("user_id", userID), zap.Error(refundErr))
		}
		return nil, err
	}

	return recipes, nil
}
