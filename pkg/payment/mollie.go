package payment

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/VictorAvelar/mollie-api-go/v4/mollie"
	"github.com/cookbuddy/cookbuddy-backend/internal/models"
	"go.uber.org/zap"
)

const requestTimeout = 15 * time.Second

// MollieGateway implements Gateway on top of the Mollie payments API.
type MollieGateway struct {
	client *mollie.Client
	apiKey string
	logger *zap.Logger
}

func NewMollieGateway(apiKey string, logger *zap.Logger) (*MollieGateway, error) {
	client, err := mollie.NewClient(&http.Client{Timeout: requestTimeout}, mollie.NewAPIConfig(false))
	if err != nil {
		return nil, err
	}

	if apiKey != "" {
		if err := client.WithAuthenticationValue(apiKey); err != nil {
			return nil, err
		}
	}

	return &MollieGateway{
		client: client,
		apiKey: apiKey,
		logger: logger,
	}, nil
}

func (g *MollieGateway) CreateCheckout(ctx context.Context, params CheckoutParams) (*Checkout, error) {
	if g.apiKey == "" {
		return nil, models.ErrGatewayNotConfigured
	}

	create := mollie.CreatePayment{
		Amount: &mollie.Amount{
			Currency: params.Currency,
			Value:    formatAmount(params.AmountCents),
		},
		Description: params.Description,
		RedirectURL: params.RedirectURL,
		Metadata:    params.Metadata,
	}

	// Mollie rejects or silently drops callbacks to hosts it cannot reach.
	// Local-development addresses are left out entirely, leaving the manual
	// confirmation endpoint as the only completion path in that mode.
	if isPublicWebhookURL(params.WebhookURL) {
		create.WebhookURL = params.WebhookURL
	} else if params.WebhookURL != "" {
		g.logger.Info("omitting non-public webhook url from checkout",
			zap.String("webhook_url", params.WebhookURL))
	}

	_, p, err := g.client.Payments.Create(ctx, create, nil)
	if err != nil {
		g.logger.Error("mollie payment create failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", models.ErrGatewayUnavailable, err)
	}

	checkoutURL := ""
	if p.Links.Checkout != nil {
		checkoutURL = p.Links.Checkout.Href
	}

	return &Checkout{
		GatewayPaymentID: p.ID,
		CheckoutURL:      checkoutURL,
	}, nil
}

func (g *MollieGateway) GetStatus(ctx context.Context, gatewayPaymentID string) (string, error) {
	if g.apiKey == "" {
		return "", models.ErrGatewayNotConfigured
	}

	res, p, err := g.client.Payments.Get(ctx, gatewayPaymentID, nil)
	if err != nil {
		if res != nil && res.StatusCode == http.StatusNotFound {
			return "", models.ErrPaymentNotFound
		}
		g.logger.Error("mollie payment fetch failed",
			zap.String("gateway_payment_id", gatewayPaymentID), zap.Error(err))
		return "", fmt.Errorf("%w: %v", models.ErrGatewayUnavailable, err)
	}

	return string(p.Status), nil
}

// formatAmount renders minor units the way Mollie wants them: "12.50".
func formatAmount(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// isPublicWebhookURL reports whether the URL could plausibly be reached from
// the public internet. Loopback, RFC1918 and mDNS-style hosts cannot.
func isPublicWebhookURL(raw string) bool {
	if raw == "" {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	host := strings.ToLower(u.Hostname())
	if host == "" || host == "localhost" ||
		strings.HasSuffix(host, ".localhost") ||
		strings.HasSuffix(host, ".local") ||
		strings.HasSuffix(host, ".internal") {
		return false
	}

	if ip := net.ParseIP(host); ip != nil {
		if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsUnspecified() {
			return false
		}
	}

	return true
}
