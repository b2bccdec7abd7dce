package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/abdul977/lodgebooker/internal/domain"
	"github.com/abdul977/lodgebooker/internal/service/ports"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type UserService struct {
	profileRepo ports.ProfileRepo
	bookingRepo ports.BookingRepo
	receiptRepo ports.ReceiptRepo
	notifier    ports.Notifier
	logger      logger.Logger
}

func NewUserService(
	profileRepo ports.ProfileRepo,
	bookingRepo ports.BookingRepo,
	receiptRepo ports.ReceiptRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *UserService {
	return &UserService{
		profileRepo: profileRepo,
		bookingRepo: bookingRepo,
		receiptRepo: receiptRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.Profile, error) {
	return s.profileRepo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, search string, limit, offset int) ([]*domain.Profile, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	return s.profileRepo.List(ctx, search, limit, offset)
}

// Details returns the admin view of one account: the profile together
// with its booking history.
func (s *UserService) Details(ctx context.Context, id string) (*domain.UserDetails, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	bookings, err := s.bookingRepo.ListByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	details := &domain.UserDetails{
		Profile:  *profile,
		Bookings: make([]domain.Booking, 0, len(bookings)),
	}
	for _, b := range bookings {
		details.Bookings = append(details.Bookings, *b)
	}

	return details, nil
}

// SetStatus updates the account status and notifies the owner. The
// notification is best-effort; a failed enqueue never undoes the status
// change.
func (s *UserService) SetStatus(ctx context.Context, id string, status domain.AccountStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown account status %q", domain.ErrValidation, status)
	}

	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}

	if err = s.profileRepo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	s.logger.Info("account status changed",
		logger.String("profile_id", id),
		logger.String("status", string(status)),
	)

	err = s.notifier.Enqueue(ctx, domain.TemplateAccountStatusChange, profile.Email, domain.EmailData{
		UserName:      profile.FullName,
		AccountStatus: status,
	})
	if err != nil {
		s.logger.Error("failed to enqueue status notification",
			logger.String("profile_id", id),
			logger.String("error", err.Error()),
		)
	}

	return nil
}

func (s *UserService) SetRole(ctx context.Context, id string, role domain.Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	if err := s.profileRepo.UpdateRole(ctx, id, role); err != nil {
		return fmt.Errorf("update role: %w", err)
	}

	s.logger.Info("account role changed",
		logger.String("profile_id", id),
		logger.String("role", string(role)),
	)

	return nil
}

func (s *UserService) Stats(ctx context.Context) (*domain.AdminStats, error) {
	totalUsers, err := s.profileRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	activeBookings, err := s.bookingRepo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active bookings: %w", err)
	}

	pendingPayments, err := s.receiptRepo.CountPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("count pending payments: %w", err)
	}

	return &domain.AdminStats{
		TotalUsers:      totalUsers,
		ActiveBookings:  activeBookings,
		PendingPayments: pendingPayments,
	}, nil
}
