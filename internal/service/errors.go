package service

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenRevoked       = errors.New("token revoked")

	ErrProductNotFound    = errors.New("product not found")
	ErrVariationInvalid   = errors.New("variation invalid")
	ErrQuantityInvalid    = errors.New("quantity invalid")
	ErrAddToCartRejected  = errors.New("add to cart rejected")
	ErrCartEmpty          = errors.New("cart empty")
	ErrCheckoutInvalid    = errors.New("checkout invalid")
	ErrOrderNotFound      = errors.New("order not found")
	ErrSettingsInvalid    = errors.New("settings invalid")
	ErrCartSessionMissing = errors.New("cart session missing")

	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrInvalidEmail              = errors.New("invalid email")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")
)
