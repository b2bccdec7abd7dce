package ports

import (
	"context"

	"github.com/abdul977/lodgebooker/internal/domain"
)

type RoomRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	ListAvailable(ctx context.Context) ([]*domain.Room, error)
}
