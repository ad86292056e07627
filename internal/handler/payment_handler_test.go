package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cookbuddy/cookbuddy-backend/internal/models"
	"github.com/cookbuddy/cookbuddy-backend/internal/repository"
	"github.com/cookbuddy/cookbuddy-backend/internal/service"
	"github.com/cookbuddy/cookbuddy-backend/pkg/payment"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubGateway struct {
	status    string
	statusErr error
}

func (s *stubGateway) CreateCheckout(_ context.Context, _ payment.CheckoutParams) (*payment.Checkout, error) {
	return &payment.Checkout{
		GatewayPaymentID: "tr_abc",
		CheckoutURL:      "https://pay.example/checkout/tr_abc",
	}, nil
}

func (s *stubGateway) GetStatus(_ context.Context, _ string) (string, error) {
	return s.status, s.statusErr
}

func newWebhookTestApp(t *testing.T) (*fiber.App, *stubGateway, *repository.UserRepository, *models.User) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Payment{}))

	user := &models.User{FullName: "U One", Email: "u1@example.com"}
	require.NoError(t, db.Create(user).Error)

	gateway := &stubGateway{status: "open"}
	userRepo := repository.NewUserRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	svc := service.NewPaymentService(gateway, paymentRepo, userRepo, nil,
		"https://api.cookbuddy.app", "https://cookbuddy.app", zap.NewNop())

	// one pending payment to report on
	_, err = svc.CreateCheckout(context.Background(), user.ID, "10")
	require.NoError(t, err)

	h := NewPaymentHandler(svc)
	pkgHandler := NewCreditPackageHandler()

	app := fiber.New()
	app.Post("/api/payments/webhook", h.HandleWebhook)
	app.Post("/api/payments/:id/confirm", h.ConfirmPayment)
	app.Get("/api/payments/packages", pkgHandler.GetAllPackages)

	return app, gateway, userRepo, user
}

func postWebhook(t *testing.T, app *fiber.App, body string) int {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/payments/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestWebhookMissingID(t *testing.T) {
	app, _, _, _ := newWebhookTestApp(t)
	assert.Equal(t, fiber.StatusBadRequest, postWebhook(t, app, ""))
}

func TestWebhookGrantsOnPaid(t *testing.T) {
	app, gateway, userRepo, user := newWebhookTestApp(t)
	gateway.status = "paid"

	assert.Equal(t, fiber.StatusOK, postWebhook(t, app, "id=tr_abc"))

	credits, err := userRepo.GetCredits(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, credits)

	// redelivery answers 200 and grants nothing further
	assert.Equal(t, fiber.StatusOK, postWebhook(t, app, "id=tr_abc"))
	credits, err = userRepo.GetCredits(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, credits)
}

func TestWebhookUnknownPaymentStillOK(t *testing.T) {
	app, gateway, _, _ := newWebhookTestApp(t)
	gateway.statusErr = models.ErrPaymentNotFound

	assert.Equal(t, fiber.StatusOK, postWebhook(t, app, "id=tr_ghost"))
}

func TestWebhookGatewayDownIsGenericFailure(t *testing.T) {
	app, gateway, _, _ := newWebhookTestApp(t)
	gateway.statusErr = models.ErrGatewayUnavailable

	assert.Equal(t, fiber.StatusBadGateway, postWebhook(t, app, "id=tr_abc"))
}

func TestConfirmEndpointGrants(t *testing.T) {
	app, gateway, userRepo, user := newWebhookTestApp(t)
	gateway.status = "paid"

	req := httptest.NewRequest("POST", "/api/payments/tr_abc/confirm", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	credits, err := userRepo.GetCredits(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, credits)
}

func TestPackagesCatalog(t *testing.T) {
	app, _, _, _ := newWebhookTestApp(t)

	req := httptest.NewRequest("GET", "/api/payments/packages", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope struct {
		Success bool                             `json:"success"`
		Data    map[string]models.CreditPackage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.True(t, envelope.Success)

	pkg, ok := envelope.Data["10"]
	require.True(t, ok)
	assert.Equal(t, 10, pkg.Credits)
	assert.Equal(t, int64(1250), pkg.PriceCents)
}
