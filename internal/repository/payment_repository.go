package repository

import (
	"errors"

	"github.com/cookbuddy/cookbuddy-backend/internal/models"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
	}
}

func (r *PaymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

func (r *PaymentRepository) GetByID(id string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Where("id = ?", id).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) GetByGatewayID(gatewayPaymentID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Where("gateway_payment_id = ?", gatewayPaymentID).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// UpdateStatus flips a payment out of pending. The WHERE clause makes it a
// compare-and-set: once a row is terminal the update matches nothing, so of
// any number of concurrent observers exactly one gets rowsAffected == 1.
func (r *PaymentRepository) UpdateStatus(gatewayPaymentID string, status models.PaymentStatus) (int64, error) {
	result := r.db.Model(&models.Payment{}).
		Where("gateway_payment_id = ? AND status = ?", gatewayPaymentID, models.PaymentStatusPending).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *PaymentRepository) GetUserPayments(userID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}
