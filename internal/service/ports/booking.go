package ports

import (
	"context"

	"github.com/abdul977/lodgebooker/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListAll(ctx context.Context, status, paymentStatus string) ([]*domain.Booking, error)
	CountActive(ctx context.Context) (int, error)
}
