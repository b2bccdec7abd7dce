package domain

import "time"

type EmailTemplate string

const (
	TemplatePaymentReceived     EmailTemplate = "PAYMENT_RECEIVED"
	TemplatePaymentApproved     EmailTemplate = "PAYMENT_APPROVED"
	TemplatePaymentRejected     EmailTemplate = "PAYMENT_REJECTED"
	TemplatePasswordReset       EmailTemplate = "PASSWORD_RESET"
	TemplateAccountStatusChange EmailTemplate = "ACCOUNT_STATUS_CHANGE"
)

type EmailStatus string

const (
	EmailStatusPending EmailStatus = "pending"
	EmailStatusSent    EmailStatus = "sent"
	EmailStatusFailed  EmailStatus = "failed"
)

// EmailData carries the fields substituted into a template. Each
// template reads the subset it needs.
type EmailData struct {
	UserName        string
	BookingID       string
	Amount          float64
	TransactionDate time.Time
	Reference       string
	RejectionReason string
	ResetLink       string
	AccountStatus   AccountStatus
}

// EmailMessage is an outbox row and, at the same time, the immutable log
// of every delivery attempt. Rows are inserted as pending and moved to
// sent or failed exactly once; they are never deleted.
type EmailMessage struct {
	ID        string        `json:"id"`
	Template  EmailTemplate `json:"template"`
	Recipient string        `json:"recipient"`
	Subject   string        `json:"subject"`
	Body      string        `json:"body"`
	Status    EmailStatus   `json:"status"`
	Error     string        `json:"error,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	SentAt    *time.Time    `json:"sent_at,omitempty"`
}
