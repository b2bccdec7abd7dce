package notification

import (
	"fmt"

	"github.com/abdul977/lodgebooker/internal/domain"
)

const dateLayout = "02/01/2006"

// Render produces the subject and body for one of the five fixed
// templates. The layouts are fixed text; only the supplied fields vary.
func Render(t domain.EmailTemplate, data domain.EmailData) (subject, body string, err error) {
	switch t {
	case domain.TemplatePaymentReceived:
		return "Payment Receipt Submitted", fmt.Sprintf(
			`Dear %s,

We have received your payment receipt for booking #%s.
Our team will verify your payment shortly.

Payment Details:
- Amount: ₦%.2f
- Transaction Date: %s
- Reference: %s

We will notify you once the verification is complete.

Thank you for your business.`,
			data.UserName, data.BookingID, data.Amount,
			data.TransactionDate.Format(dateLayout), data.Reference,
		), nil

	case domain.TemplatePaymentApproved:
		return "Payment Verified Successfully", fmt.Sprintf(
			`Dear %s,

Your payment for booking #%s has been verified and approved.

Payment Details:
- Amount: ₦%.2f
- Transaction Date: %s
- Reference: %s

Your booking is now confirmed. Thank you for choosing our service.`,
			data.UserName, data.BookingID, data.Amount,
			data.TransactionDate.Format(dateLayout), data.Reference,
		), nil

	case domain.TemplatePaymentRejected:
		return "Payment Verification Failed", fmt.Sprintf(
			`Dear %s,

Unfortunately, we could not verify your payment for booking #%s.

Reason: %s

Please submit a new payment receipt or contact our support team for assistance.

Payment Details:
- Amount: ₦%.2f
- Transaction Date: %s
- Reference: %s`,
			data.UserName, data.BookingID, data.RejectionReason,
			data.Amount, data.TransactionDate.Format(dateLayout), data.Reference,
		), nil

	case domain.TemplatePasswordReset:
		return "Password Reset Request", fmt.Sprintf(
			`Dear %s,

A password reset has been initiated for your account.
Please use the following link to reset your password:

%s

This link will expire in 1 hour.

If you did not request this password reset, please ignore this email.`,
			data.UserName, data.ResetLink,
		), nil

	case domain.TemplateAccountStatusChange:
		note := "Your account is now active and you can access all features."
		if data.AccountStatus != domain.AccountActive {
			note = "If you believe this was done in error, please contact our support team."
		}
		return "Account Status Update", fmt.Sprintf(
			`Dear %s,

Your account status has been updated to: %s

%s

For any questions, please contact our support team.`,
			data.UserName, data.AccountStatus, note,
		), nil
	}

	return "", "", fmt.Errorf("unknown email template %q", t)
}
