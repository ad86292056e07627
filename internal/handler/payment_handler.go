package handler

import (
	"errors"

	"github.com/cookbuddy/cookbuddy-backend/internal/models"
	"github.com/cookbuddy/cookbuddy-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
}

func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) CreateCheckout(c *fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	packageID := c.Params("packageId")

	checkout, err := h.paymentService.CreateCheckout(c.Context(), userID, packageID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidPackage):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Unknown credit package"))
		case errors.Is(err, models.ErrGatewayNotConfigured):
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Payment gateway is not configured"))
		case errors.Is(err, models.ErrGatewayUnavailable):
			return c.Status(fiber.StatusBadGateway).JSON(models.ErrorResponse("Payment gateway is unavailable, try again later"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
		}
	}

	return c.JSON(models.SuccessResponse(checkout, "Checkout created"))
}

// HandleWebhook receives Mollie's callback: a form post carrying only the
// payment id. Terminal and unknown payments both answer 200 so the gateway
// does not keep redelivering; only infrastructure failures answer non-200,
// and then with a generic body.
func (h *PaymentHandler) HandleWebhook(c *fiber.Ctx) error {
	gatewayPaymentID := c.FormValue("id")
	if gatewayPaymentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("missing payment id"))
	}

	if err := h.paymentService.HandleWebhook(c.Context(), gatewayPaymentID); err != nil {
		if errors.Is(err, models.ErrPaymentNotFound) {
			return c.SendStatus(fiber.StatusOK)
		}
		if errors.Is(err, models.ErrGatewayUnavailable) {
			return c.Status(fiber.StatusBadGateway).JSON(models.ErrorResponse("payment processing failed"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("payment processing failed"))
	}

	return c.SendStatus(fiber.StatusOK)
}

// ConfirmPayment is the manual completion path for environments where the
// webhook cannot reach us. Accepts the local payment id or the gateway id.
func (h *PaymentHandler) ConfirmPayment(c *fiber.Ctx) error {
	id := c.Params("id")

	payment, err := h.paymentService.ConfirmPayment(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrPaymentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Payment not found"))
		case errors.Is(err, models.ErrGatewayNotConfigured):
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Payment gateway is not configured"))
		case errors.Is(err, models.ErrGatewayUnavailable):
			return c.Status(fiber.StatusBadGateway).JSON(models.ErrorResponse("Payment gateway is unavailable, try again later"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
		}
	}

	return c.JSON(models.SuccessResponse(payment, "Payment status updated"))
}

func (h *PaymentHandler) GetPaymentHistory(c *fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	payments, err := h.paymentService.GetUserPaymentHistory(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(payments, "Payment history retrieved"))
}

func (h *PaymentHandler) GetPayment(c *fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	payment, err := h.paymentService.GetUserPayment(userID, c.Params("id"))
	if err != nil {
		if errors.Is(err, models.ErrPaymentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Payment not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(payment, "Payment retrieved"))
}

func userIDFromContext(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userID").(uint)
	return userID, ok
}
