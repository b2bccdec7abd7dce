package domain

import "time"

type DecisionStatus string

const (
	DecisionStatusPending  DecisionStatus = "pending"
	DecisionStatusApproved DecisionStatus = "approved"
	DecisionStatusRejected DecisionStatus = "rejected"
)

// Terminal reports whether the status ends a receipt's decision chain.
func (s DecisionStatus) Terminal() bool {
	return s == DecisionStatusApproved || s == DecisionStatusRejected
}

// VerificationDecision is one entry in a receipt's append-only decision
// log. The current status of a receipt is the latest entry; a receipt
// with no entries counts as pending. Prior entries are never overwritten.
type VerificationDecision struct {
	ID               string         `json:"id"`
	PaymentReceiptID string         `json:"payment_receipt_id"`
	Status           DecisionStatus `json:"status"`
	VerificationDate time.Time      `json:"verification_date"`
	RejectionReason  string         `json:"rejection_reason,omitempty"`
	DecidedBy        string         `json:"decided_by"`
	CreatedAt        time.Time      `json:"created_at"`
}
