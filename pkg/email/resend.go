package email

import (
	"fmt"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
	logger   *zap.Logger
}

func NewEmailService(apiKey, from, fromName string, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:   resend.NewClient(apiKey),
		from:     from,
		fromName: fromName,
		logger:   logger,
	}
}

// SendPurchaseReceipt mails a receipt after credits have been granted.
// Best effort: the purchase itself is already settled when this runs.
func (s *EmailService) SendPurchaseReceipt(to, fullName string, credits int, amountCents int64, currency string) error {
	html := fmt.Sprintf(
		"<h2>Thanks for your purchase, %s!</h2>"+
			"<p>%d recipe credits have been added to your account.</p>"+
			"<p>Amount charged: %d.%02d %s</p>",
		fullName, credits, amountCents/100, amountCents%100, currency)

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: "Your CookBuddy credits are ready",
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("failed to send purchase receipt", zap.String("to", to), zap.Error(err))
		return err
	}

	s.logger.Info("purchase receipt sent", zap.String("to", to), zap.String("email_id", resp.Id))
	return nil
}
