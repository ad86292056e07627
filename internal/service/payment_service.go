package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cookbuddy/cookbuddy-backend/internal/models"
	"github.com/cookbuddy/cookbuddy-backend/internal/repository"
	"github.com/cookbuddy/cookbuddy-backend/pkg/payment"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Mailer sends the purchase receipt. Nil disables receipts.
type Mailer interface {
	SendPurchaseReceipt(to, fullName string, credits int, amountCents int64, currency string) error
}

type PaymentService struct {
	gateway       payment.Gateway
	paymentRepo   *repository.PaymentRepository
	userRepo      *repository.UserRepository
	mailer        Mailer
	publicBaseURL string
	frontendURL   string
	logger        *zap.Logger
}

func NewPaymentService(
	gateway payment.Gateway,
	paymentRepo *repository.PaymentRepository,
	userRepo *repository.UserRepository,
	mailer Mailer,
	publicBaseURL string,
	frontendURL string,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		gateway:       gateway,
		paymentRepo:   paymentRepo,
		userRepo:      userRepo,
		mailer:        mailer,
		publicBaseURL: publicBaseURL,
		frontendURL:   frontendURL,
		logger:        logger,
	}
}

// CreateCheckout opens a payment at the gateway and persists the pending
// record. Package price and credit count are snapshotted into the row, so a
// catalog change never alters an in-flight payment.
func (s *PaymentService) CreateCheckout(ctx context.Context, userID uint, packageID string) (*models.CheckoutResponse, error) {
	pkg, ok := models.GetCreditPackage(packageID)
	if !ok {
		return nil, models.ErrInvalidPackage
	}

	paymentID := uuid.NewString()

	checkout, err := s.gateway.CreateCheckout(ctx, payment.CheckoutParams{
		Description: fmt.Sprintf("CookBuddy - %s", pkg.Description),
		AmountCents: pkg.PriceCents,
		Currency:    pkg.Currency,
		RedirectURL: fmt.Sprintf("%s/payments/%s/return", s.frontendURL, paymentID),
		WebhookURL:  fmt.Sprintf("%s/api/payments/webhook", s.publicBaseURL),
		Metadata: map[string]string{
			"payment_id": paymentID,
			"user_id":    strconv.FormatUint(uint64(userID), 10),
			"package_id": packageID,
		},
	})
	if err != nil {
		return nil, err
	}

	record := &models.Payment{
		ID:               paymentID,
		UserID:           userID,
		PackageID:        packageID,
		AmountCents:      pkg.PriceCents,
		Currency:         pkg.Currency,
		CreditsPurchased: pkg.Credits,
		Status:           models.PaymentStatusPending,
		GatewayPaymentID: checkout.GatewayPaymentID,
		CheckoutURL:      checkout.CheckoutURL,
	}

	if err := s.paymentRepo.Create(record); err != nil {
		// The remote checkout now exists without a local record. Neither
		// signal path can reconcile it, so log the gateway id and fail.
		s.logger.Error("remote checkout has no local record",
			zap.String("gateway_payment_id", checkout.GatewayPaymentID),
			zap.Uint("user_id", userID),
			zap.Error(err))
		return nil, fmt.Errorf("could not persist payment: %w", err)
	}

	return &models.CheckoutResponse{
		PaymentID:   paymentID,
		CheckoutURL: checkout.CheckoutURL,
	}, nil
}

// ObservePayment is the single entry point for both status signals: the
// gateway webhook and the manual confirmation poll. It is safe to call any
// number of times, in any order, concurrently: the conditional status update
// gates the credit grant, so credits are granted exactly once.
func (s *PaymentService) ObservePayment(ctx context.Context, gatewayPaymentID, providerStatus string) error {
	record, err := s.paymentRepo.GetByGatewayID(gatewayPaymentID)
	if err != nil {
		if errors.Is(err, models.ErrPaymentNotFound) {
			s.logger.Warn("status reported for unknown payment",
				zap.String("gateway_payment_id", gatewayPaymentID),
				zap.String("provider_status", providerStatus))
		}
		return err
	}

	target, terminal := mapProviderStatus(providerStatus)
	if !terminal {
		s.logger.Debug("payment still open at the gateway",
			zap.String("gateway_payment_id", gatewayPaymentID),
			zap.String("provider_status", providerStatus))
		return nil
	}

	rows, err := s.paymentRepo.UpdateStatus(gatewayPaymentID, target)
	if err != nil {
		return err
	}
	if rows == 0 {
		// Another observer got here first, or the payment was already
		// terminal. A no-op success keeps both callers' retries simple.
		s.logger.Info("payment already terminal",
			zap.String("gateway_payment_id", gatewayPaymentID),
			zap.String("stored_status", string(record.Status)),
			zap.String("observed_status", string(target)))
		return nil
	}

	if target != models.PaymentStatusPaid {
		s.logger.Info("payment closed without credits",
			zap.String("gateway_payment_id", gatewayPaymentID),
			zap.String("status", string(target)))
		return nil
	}

	if err := s.userRepo.AddCredits(record.UserID, record.CreditsPurchased); err != nil {
		// The row is paid but the grant failed. There is no compensating
		// transaction; make sure it is impossible to miss in the logs.
		s.logger.Error("credit grant failed after payment was marked paid",
			zap.String("gateway_payment_id", gatewayPaymentID),
			zap.Uint("user_id", record.UserID),
			zap.Int("credits", record.CreditsPurchased),
			zap.Error(err))
		return err
	}

	s.logger.Info("credits granted",
		zap.String("gateway_payment_id", gatewayPaymentID),
		zap.Uint("user_id", record.UserID),
		zap.Int("credits", record.CreditsPurchased))

	s.sendReceipt(record)
	return nil
}

// HandleWebhook resolves the reported payment against the gateway and feeds
// the result into ObservePayment. Mollie webhooks carry only the payment id;
// the authoritative status always comes from the gateway itself.
func (s *PaymentService) HandleWebhook(ctx context.Context, gatewayPaymentID string) error {
	status, err := s.gateway.GetStatus(ctx, gatewayPaymentID)
	if err != nil {
		return err
	}
	return s.ObservePayment(ctx, gatewayPaymentID, status)
}

// ConfirmPayment is the manual path for environments where the webhook never
// arrives. It accepts the local payment id or the gateway id and re-queries
// the gateway rather than trusting anything client-supplied.
func (s *PaymentService) ConfirmPayment(ctx context.Context, id string) (*models.Payment, error) {
	record, err := s.paymentRepo.GetByID(id)
	if errors.Is(err, models.ErrPaymentNotFound) {
		record, err = s.paymentRepo.GetByGatewayID(id)
	}
	if err != nil {
		return nil, err
	}

	status, err := s.gateway.GetStatus(ctx, record.GatewayPaymentID)
	if err != nil {
		return nil, err
	}

	if err := s.ObservePayment(ctx, record.GatewayPaymentID, status); err != nil {
		return nil, err
	}

	return s.paymentRepo.GetByGatewayID(record.GatewayPaymentID)
}

func (s *PaymentService) GetCreditPackages() map[string]models.CreditPackage {
	return models.AllCreditPackages()
}

func (s *PaymentService) GetUserPaymentHistory(userID uint) ([]models.Payment, error) {
	return s.paymentRepo.GetUserPayments(userID)
}

func (s *PaymentService) GetUserPayment(userID uint, paymentID string) (*models.Payment, error) {
	record, err := s.paymentRepo.GetByID(paymentID)
	if err != nil {
		return nil, err
	}
	if record.UserID != userID {
		return nil, models.ErrPaymentNotFound
	}
	return record, nil
}

func (s *PaymentService) sendReceipt(record *models.Payment) {
	if s.mailer == nil {
		return
	}

	user, err := s.userRepo.GetByID(record.UserID)
	if err != nil {
		s.logger.Warn("could not load user for receipt", zap.Uint("user_id", record.UserID), zap.Error(err))
		return
	}

	if err := s.mailer.SendPurchaseReceipt(user.Email, user.FullName,
		record.CreditsPurchased, record.AmountCents, record.Currency); err != nil {
		// Receipt is best effort; the purchase is already settled.
		s.logger.Warn("purchase receipt not sent", zap.Uint("user_id", record.UserID), zap.Error(err))
	}
}

// mapProviderStatus folds Mollie's status vocabulary onto the local state
// machine. Non-terminal provider states leave the row pending.
func mapProviderStatus(providerStatus string) (models.PaymentStatus, bool) {
	switch strings.ToLower(providerStatus) {
	case "paid":
		return models.PaymentStatusPaid, true
	case "failed":
		return models.PaymentStatusFailed, true
	case "expired":
		return models.PaymentStatusExpired, true
	case "canceled", "cancelled":
		return models.PaymentStatusCanceled, true
	default:
		return models.PaymentStatusPending, false
	}
}
