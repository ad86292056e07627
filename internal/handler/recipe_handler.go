package handler

import (
	"errors"

	"github.com/cookbuddy/cookbuddy-backend/internal/models"
	"github.com/cookbuddy/cookbuddy-backend/internal/service"
	"github.com/cookbuddy/cookbuddy-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type RecipeHandler struct {
	recipeService *service.RecipeService
	validator     *utils.Validator
}

func NewRecipeHandler(recipeService *service.RecipeService, validator *utils.Validator) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

// SuggestRecipes costs one credit per call.
func (h *RecipeHandler) SuggestRecipes(c *fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.RecipeSuggestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("At least one ingredient is required"))
	}

	recipes, err := h.recipeService.SuggestRecipes(c.Context(), userID, req.Ingredients)
	if err != nil {
		if errors.Is(err, models.ErrInsufficientCredits) {
			return c.Status(fiber.StatusPaymentRequired).JSON(models.ErrorResponse("Not enough credits"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(recipes, "Recipes generated"))
}
