package models

import "time"

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusExpired  PaymentStatus = "expired"
	PaymentStatusCanceled PaymentStatus = "canceled"
)

// IsTerminal reports whether no further transition is possible.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusFailed, PaymentStatusExpired, PaymentStatusCanceled:
		return true
	}
	return false
}

// Payment is one checkout attempt. Price and credit count are snapshotted
// from the catalog at creation time and never re-derived. Rows are kept
// forever as an audit trail.
type Payment struct {
	ID               string        `json:"id" gorm:"primaryKey"`
	UserID           uint          `json:"user_id" gorm:"index;not null"`
	PackageID        string        `json:"package_id" gorm:"not null"`
	AmountCents      int64         `json:"amount_cents" gorm:"not null"`
	Currency         string        `json:"currency" gorm:"size:3;not null"`
	CreditsPurchased int           `json:"credits_purchased" gorm:"not null"`
	Status           PaymentStatus `json:"status" gorm:"not null;default:'pending'"`
	GatewayPaymentID string        `json:"gateway_payment_id" gorm:"uniqueIndex;not null"`
	CheckoutURL      string        `json:"checkout_url"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

type CheckoutResponse struct {
	PaymentID   string `json:"payment_id"`
	CheckoutURL string `json:"checkout_url"`
}
