package ports

import (
	"context"
	"time"

	"github.com/abdul977/lodgebooker/internal/domain"
)

type OutboxRepo interface {
	Enqueue(ctx context.Context, m *domain.EmailMessage) error
	ListPending(ctx context.Context, limit int) ([]*domain.EmailMessage, error)
	MarkSent(ctx context.Context, id string, at time.Time) error
	MarkFailed(ctx context.Context, id, errMsg string) error
}
