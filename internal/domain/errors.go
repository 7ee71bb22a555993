package domain

import "errors"

// Caller-facing error taxonomy. Handlers map these to HTTP statuses
// with errors.Is; anything else is an internal error.
var (
	ErrInsufficientPoints  = errors.New("insufficient points")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrPromoUnavailable    = errors.New("promo unavailable")
	ErrPromoNotFound       = errors.New("promo not found")
	ErrVoucherNotFound     = errors.New("voucher not found")
	ErrMemberNotFound      = errors.New("member not found")
	ErrAlreadyRedeemed     = errors.New("voucher already redeemed")
	ErrInvalidToken        = errors.New("invalid voucher token")
	ErrValidation          = errors.New("validation failed")
)
