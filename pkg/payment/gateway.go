package payment

import "context"

// CheckoutParams carries everything the provider needs to open a checkout.
type CheckoutParams struct {
	Description string
	AmountCents int64
	Currency    string
	RedirectURL string
	WebhookURL  string
	Metadata    map[string]string
}

// Checkout is the provider's side of a created payment.
type Checkout struct {
	GatewayPaymentID string
	CheckoutURL      string
}

// Gateway is the payment provider boundary. Implementations make exactly one
// outbound call per method and hold no local state.
type Gateway interface {
	CreateCheckout(ctx context.Context, params CheckoutParams) (*Checkout, error)
	GetStatus(ctx context.Context, gatewayPaymentID string) (string, error)
}
