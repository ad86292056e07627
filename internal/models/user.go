package models

import (
	"time"
)

// User mirrors the account owned by the identity provider. Credits is the
// consumable balance and is only ever touched through UserRepository's
// atomic grant/spend operations.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Credits   int       `json:"credits" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreditBalanceResponse struct {
	Credits int `json:"credits"`
}
