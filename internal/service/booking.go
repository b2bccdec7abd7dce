package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/abdul977/lodgebooker/internal/domain"
	"github.com/abdul977/lodgebooker/internal/service/ports"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	roomRepo    ports.RoomRepo
	logger      logger.Logger
}

func NewBookingService(bookingRepo ports.BookingRepo, roomRepo ports.RoomRepo, logger logger.Logger) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

func (s *BookingService) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	return s.roomRepo.ListAvailable(ctx)
}

// Book creates a pending, unpaid booking. The total is computed
// server-side from the room's nightly rate; nothing the client sends
// influences the price.
func (s *BookingService) Book(ctx context.Context, userID string, input domain.CreateBookingInput) (*domain.Booking, error) {
	if err := domain.ValidateStayDates(input.CheckIn, input.CheckOut); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, input.RoomID)
	if err != nil {
		return nil, fmt.Errorf("check room: %w", err)
	}
	if !room.IsAvailable {
		return nil, domain.ErrRoomUnavailable
	}

	nights := domain.Nights(input.CheckIn, input.CheckOut)

	booking := &domain.Booking{
		ID:            uuid.New().String(),
		UserID:        userID,
		RoomID:        room.ID,
		CheckIn:       input.CheckIn,
		CheckOut:      input.CheckOut,
		Status:        domain.BookingStatusPending,
		PaymentStatus: domain.PaymentStatusPending,
		TotalPrice:    float64(nights) * room.PricePerNight,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("room_id", room.ID),
		logger.String("user_id", userID),
		logger.Int("nights", nights),
	)

	return booking, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

// ListAll is the admin view. Empty filter values match everything.
func (s *BookingService) ListAll(ctx context.Context, status, paymentStatus string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListAll(ctx, status, paymentStatus)
}
