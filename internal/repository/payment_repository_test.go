package repository

import (
	"testing"
	"time"

	"github.com/cookbuddy/cookbuddy-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingPayment(userID uint, id, gatewayID string) *models.Payment {
	return &models.Payment{
		ID:               id,
		UserID:           userID,
		PackageID:        "10",
		AmountCents:      1250,
		Currency:         "EUR",
		CreditsPurchased: 10,
		Status:           models.PaymentStatusPending,
		GatewayPaymentID: gatewayID,
		CheckoutURL:      "https://pay.example/checkout/" + gatewayID,
	}
}

func TestUpdateStatusFlipsPendingExactlyOnce(t *testing.T) {
	db := newTestDB(t)
	repo := NewPaymentRepository(db)
	user := seedUser(t, db, 0)

	require.NoError(t, repo.Create(pendingPayment(user.ID, "pay-1", "tr_abc")))

	rows, err := repo.UpdateStatus("tr_abc", models.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows, "first observer should make the transition")

	rows, err = repo.UpdateStatus("tr_abc", models.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows, "second observer must see the row already terminal")

	stored, err := repo.GetByGatewayID("tr_abc")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, stored.Status)
}

func TestUpdateStatusFirstTerminalWins(t *testing.T) {
	db := newTestDB(t)
	repo := NewPaymentRepository(db)
	user := seedUser(t, db, 0)

	require.NoError(t, repo.Create(pendingPayment(user.ID, "pay-1", "tr_abc")))

	rows, err := repo.UpdateStatus("tr_abc", models.PaymentStatusExpired)
	require.NoError(t, err)
	require.Equal(t, int64(1), rows)

	// a later, different terminal observation must not rewrite the row
	rows, err = repo.UpdateStatus("tr_abc", models.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)

	stored, err := repo.GetByGatewayID("tr_abc")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusExpired, stored.Status)
}

func TestGetByGatewayIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewPaymentRepository(db)

	_, err := repo.GetByGatewayID("tr_missing")
	assert.ErrorIs(t, err, models.ErrPaymentNotFound)
}

func TestGetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewPaymentRepository(db)

	_, err := repo.GetByID("missing")
	assert.ErrorIs(t, err, models.ErrPaymentNotFound)
}

func TestGetUserPaymentsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewPaymentRepository(db)
	user := seedUser(t, db, 0)

	older := pendingPayment(user.ID, "pay-1", "tr_old")
	older.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(older))

	newer := pendingPayment(user.ID, "pay-2", "tr_new")
	newer.CreatedAt = time.Now()
	require.NoError(t, repo.Create(newer))

	payments, err := repo.GetUserPayments(user.ID)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "pay-2", payments[0].ID)
	assert.Equal(t, "pay-1", payments[1].ID)
}
