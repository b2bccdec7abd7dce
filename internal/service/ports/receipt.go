package ports

import (
	"context"

	"github.com/abdul977/lodgebooker/internal/domain"
)

type ReceiptRepo interface {
	Create(ctx context.Context, receipt *domain.PaymentReceipt) error
	GetByID(ctx context.Context, id string) (*domain.PaymentReceipt, error)
	ListPending(ctx context.Context) ([]*domain.PendingReceipt, error)
	CountPending(ctx context.Context) (int, error)
}

// VerificationRepo appends decisions to a receipt's log. Both methods
// refuse receipts whose latest decision is already terminal and Approve
// additionally flips the booking to paid/active in the same transaction.
type VerificationRepo interface {
	Approve(ctx context.Context, d *domain.VerificationDecision) error
	Reject(ctx context.Context, d *domain.VerificationDecision) error
}
