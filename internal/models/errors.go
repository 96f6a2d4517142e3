package models

import "errors"

// Domain errors. Services wrap these with context via fmt.Errorf("%w");
// handlers branch on them with errors.Is to pick a status code.
var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("already exists")
	ErrCouponInvalid = errors.New("invalid coupon")
	ErrCouponUsed    = errors.New("coupon already used")
	ErrOrderTerminal = errors.New("order is in a terminal state")
	ErrBadStatus     = errors.New("invalid order status")
	ErrCredentials   = errors.New("invalid credentials")
	ErrNotVerified   = errors.New("account not verified")
	ErrCodeInvalid   = errors.New("invalid or expired code")
	ErrForbidden     = errors.New("not allowed")
)
