package repository

import (
	"errors"

	"github.com/cookbuddy/cookbuddy-backend/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// AddCredits grants credits as a single UPDATE with an arithmetic expression,
// so concurrent grants and spends for the same user never lose an increment.
func (r *UserRepository) AddCredits(userID uint, amount int) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("credits", gorm.Expr("credits + ?", amount)).Error
}

// SpendCredit decrements the balance by one, guarded by credits > 0 in the
// same statement. Returns false when the balance was already zero.
func (r *UserRepository) SpendCredit(userID uint) (bool, error) {
	result := r.db.Model(&models.User{}).
		Where("id = ? AND credits > 0", userID).
		UpdateColumn("credits", gorm.Expr("credits - 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *UserRepository) GetCredits(userID uint) (int, error) {
	user, err := r.GetByID(userID)
	if err != nil {
		return 0, err
	}
	return user.Credits, nil
}
