package domain

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrReceiptNotFound = errors.New("payment receipt not found")
)

var (
	ErrEmailTaken              = errors.New("email is already registered")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrAccountNotActive        = errors.New("account is disabled")
	ErrRoomUnavailable         = errors.New("room is not available")
	ErrReceiptAlreadyDecided   = errors.New("payment receipt has already been decided")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
)

var (
	ErrValidation = errors.New("validation error")
)
