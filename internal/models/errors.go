package models

import "errors"

var (
	// ErrGatewayNotConfigured means the Mollie API key is missing. Checkout
	// creation fails, but the rest of the API keeps working.
	ErrGatewayNotConfigured = errors.New("payment gateway is not configured")

	// ErrInvalidPackage means the requested package id is not in the catalog.
	ErrInvalidPackage = errors.New("unknown credit package")

	// ErrGatewayUnavailable wraps network/provider failures talking to Mollie.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrPaymentNotFound means no local payment row matches the identifier.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrUserNotFound means the user id has no local profile row.
	ErrUserNotFound = errors.New("user not found")

	// ErrInsufficientCredits means the user's balance is zero.
	ErrInsufficientCredits = errors.New("insufficient credits")
)
