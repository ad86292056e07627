package handler

import (
	"github.com/cookbuddy/cookbuddy-backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

type CreditPackageHandler struct{}

func NewCreditPackageHandler() *CreditPackageHandler {
	return &CreditPackageHandler{}
}

// GetAllPackages serves the static catalog keyed by package id.
func (h *CreditPackageHandler) GetAllPackages(c *fiber.Ctx) error {
	return c.JSON(models.SuccessResponse(models.AllCreditPackages(), "Packages retrieved successfully"))
}

func (h *CreditPackageHandler) GetPackageByID(c *fiber.Ctx) error {
	pkg, ok := models.GetCreditPackage(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Package not found"))
	}

	return c.JSON(models.SuccessResponse(pkg, "Package retrieved successfully"))
}
