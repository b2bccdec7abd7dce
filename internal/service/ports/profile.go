package ports

import (
	"context"

	"github.com/abdul977/lodgebooker/internal/domain"
)

type ProfileRepo interface {
	Create(ctx context.Context, p *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	List(ctx context.Context, search string, limit, offset int) ([]*domain.Profile, error)
	UpdateStatus(ctx context.Context, id string, status domain.AccountStatus) error
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Count(ctx context.Context) (int, error)
}
