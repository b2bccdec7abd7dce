package domain

import (
	"fmt"
	"time"
)

const (
	// MaxReceiptSize bounds uploaded receipt files at 10 MB.
	MaxReceiptSize = 10 << 20
)

// AllowedReceiptTypes is the closed set of receipt file content types.
var AllowedReceiptTypes = map[string]string{
	"image/jpeg":      "jpg",
	"image/png":       "png",
	"application/pdf": "pdf",
}

// PaymentInstructions is the transfer destination a guest pays into
// before submitting a receipt.
type PaymentInstructions struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}

type PaymentReceipt struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"user_id"`
	BookingID            string    `json:"booking_id"`
	Amount               float64   `json:"amount"`
	TransactionDate      time.Time `json:"transaction_date"`
	TransactionReference string    `json:"transaction_reference"`
	BankName             string    `json:"bank_name"`
	AccountNumber        string    `json:"account_number"`
	ReceiptURL           string    `json:"receipt_url"`
	ObjectKey            string    `json:"-"`
	CreatedAt            time.Time `json:"created_at"`
}

// PendingReceipt is a queue row for the admin verification screen: the
// receipt joined with the submitter's profile.
type PendingReceipt struct {
	PaymentReceipt
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type SubmitPaymentInput struct {
	BookingID            string
	Amount               float64
	TransactionDate      time.Time
	TransactionReference string
	BankName             string
	AccountNumber        string
	FileName             string
	ContentType          string
	Size                 int64
}

// Validate enforces the payment-submission schema shared by the API layer
// and the payment service.
func (in SubmitPaymentInput) Validate(now time.Time) error {
	if in.BookingID == "" {
		return fmt.Errorf("%w: booking id is required", ErrValidation)
	}
	if in.Amount <= 0 {
		return fmt.Errorf("%w: amount must be a positive number", ErrValidation)
	}
	if in.TransactionDate.IsZero() {
		return fmt.Errorf("%w: transaction date is required", ErrValidation)
	}
	if in.TransactionDate.After(now) {
		return fmt.Errorf("%w: transaction date cannot be in the future", ErrValidation)
	}
	if in.TransactionReference == "" {
		return fmt.Errorf("%w: transaction reference is required", ErrValidation)
	}
	if in.BankName == "" {
		return fmt.Errorf("%w: bank name is required", ErrValidation)
	}
	if in.AccountNumber == "" {
		return fmt.Errorf("%w: account number is required", ErrValidation)
	}
	if _, ok := AllowedReceiptTypes[in.ContentType]; !ok {
		return fmt.Errorf("%w: receipt must be a JPG, PNG or PDF file", ErrValidation)
	}
	if in.Size <= 0 || in.Size > MaxReceiptSize {
		return fmt.Errorf("%w: receipt file must not exceed 10MB", ErrValidation)
	}
	return nil
}
