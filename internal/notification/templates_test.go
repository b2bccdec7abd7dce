package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul977/lodgebooker/internal/domain"
)

func TestRender_PaymentReceived(t *testing.T) {
	subject, body, err := Render(domain.TemplatePaymentReceived, domain.EmailData{
		UserName:        "Ada Obi",
		BookingID:       "b1",
		Amount:          15000,
		TransactionDate: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
		Reference:       "TRX-001",
	})

	require.NoError(t, err)
	assert.Equal(t, "Payment Receipt Submitted", subject)
	assert.Contains(t, body, "Dear Ada Obi")
	assert.Contains(t, body, "booking #b1")
	assert.Contains(t, body, "₦15000.00")
	assert.Contains(t, body, "09/03/2025")
	assert.Contains(t, body, "TRX-001")
}

func TestRender_PaymentRejected_IncludesReason(t *testing.T) {
	subject, body, err := Render(domain.TemplatePaymentRejected, domain.EmailData{
		UserName:        "Ada Obi",
		BookingID:       "b1",
		RejectionReason: "amount does not match",
	})

	require.NoError(t, err)
	assert.Equal(t, "Payment Verification Failed", subject)
	assert.Contains(t, body, "Reason: amount does not match")
}

func TestRender_PasswordReset_IncludesLink(t *testing.T) {
	_, body, err := Render(domain.TemplatePasswordReset, domain.EmailData{
		UserName:  "Ada Obi",
		ResetLink: "http://localhost:8080/reset-password?token=abc",
	})

	require.NoError(t, err)
	assert.Contains(t, body, "http://localhost:8080/reset-password?token=abc")
}

func TestRender_AccountStatusChange_NoteVaries(t *testing.T) {
	_, active, err := Render(domain.TemplateAccountStatusChange, domain.EmailData{
		UserName:      "Ada Obi",
		AccountStatus: domain.AccountActive,
	})
	require.NoError(t, err)
	assert.Contains(t, active, "now active")

	_, disabled, err := Render(domain.TemplateAccountStatusChange, domain.EmailData{
		UserName:      "Ada Obi",
		AccountStatus: domain.AccountDisabled,
	})
	require.NoError(t, err)
	assert.Contains(t, disabled, "done in error")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, err := Render(domain.EmailTemplate("NOPE"), domain.EmailData{})
	require.Error(t, err)
}
