package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validSubmitInput() SubmitPaymentInput {
	return SubmitPaymentInput{
		BookingID:            "b1",
		Amount:               15000,
		TransactionDate:      time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC),
		TransactionReference: "TRX-001",
		BankName:             "First Bank",
		AccountNumber:        "0123456789",
		FileName:             "receipt.jpg",
		ContentType:          "image/jpeg",
		Size:                 1024,
	}
}

func TestSubmitPaymentInput_Validate(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, validSubmitInput().Validate(now))

	tests := []struct {
		name   string
		mutate func(*SubmitPaymentInput)
	}{
		{"missing booking id", func(in *SubmitPaymentInput) { in.BookingID = "" }},
		{"zero amount", func(in *SubmitPaymentInput) { in.Amount = 0 }},
		{"negative amount", func(in *SubmitPaymentInput) { in.Amount = -5 }},
		{"missing transaction date", func(in *SubmitPaymentInput) { in.TransactionDate = time.Time{} }},
		{"future transaction date", func(in *SubmitPaymentInput) { in.TransactionDate = now.Add(time.Hour) }},
		{"missing reference", func(in *SubmitPaymentInput) { in.TransactionReference = "" }},
		{"missing bank name", func(in *SubmitPaymentInput) { in.BankName = "" }},
		{"missing account number", func(in *SubmitPaymentInput) { in.AccountNumber = "" }},
		{"disallowed content type", func(in *SubmitPaymentInput) { in.ContentType = "image/gif" }},
		{"oversized file", func(in *SubmitPaymentInput) { in.Size = MaxReceiptSize + 1 }},
		{"empty file", func(in *SubmitPaymentInput) { in.Size = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validSubmitInput()
			tt.mutate(&in)
			require.ErrorIs(t, in.Validate(now), ErrValidation)
		})
	}
}

func TestDecisionStatus_Terminal(t *testing.T) {
	require.True(t, DecisionStatusApproved.Terminal())
	require.True(t, DecisionStatusRejected.Terminal())
	require.False(t, DecisionStatusPending.Terminal())
}
