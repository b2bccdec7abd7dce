package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/abdul977/lodgebooker/internal/domain"
	"github.com/abdul977/lodgebooker/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestBookingService_Book_ComputesTotal(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	roomRepo := mocks.NewMockRoomRepo(t)

	svc := NewBookingService(bookingRepo, roomRepo, newTestLogger(t))

	room := &domain.Room{
		ID:            "r1",
		Name:          "Standard Room",
		PricePerNight: 5000,
		IsAvailable:   true,
	}
	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	checkIn := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	booking, err := svc.Book(context.Background(), "u1", domain.CreateBookingInput{
		RoomID:   "r1",
		CheckIn:  checkIn,
		CheckOut: checkIn.Add(48 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, 10000.0, booking.TotalPrice)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, domain.PaymentStatusPending, booking.PaymentStatus)
	assert.Equal(t, "u1", booking.UserID)
	assert.NotEmpty(t, booking.ID)
}

func TestBookingService_Book_PartialNightRoundsUp(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	roomRepo := mocks.NewMockRoomRepo(t)

	svc := NewBookingService(bookingRepo, roomRepo, newTestLogger(t))

	room := &domain.Room{ID: "r1", PricePerNight: 5000, IsAvailable: true}
	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	checkIn := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	booking, err := svc.Book(context.Background(), "u1", domain.CreateBookingInput{
		RoomID:   "r1",
		CheckIn:  checkIn,
		CheckOut: checkIn.Add(36 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, 10000.0, booking.TotalPrice)
}

func TestBookingService_Book_InvalidDates(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	roomRepo := mocks.NewMockRoomRepo(t)

	svc := NewBookingService(bookingRepo, roomRepo, newTestLogger(t))

	checkIn := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	_, err := svc.Book(context.Background(), "u1", domain.CreateBookingInput{
		RoomID:   "r1",
		CheckIn:  checkIn,
		CheckOut: checkIn,
	})

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Book_RoomUnavailable(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	roomRepo := mocks.NewMockRoomRepo(t)

	svc := NewBookingService(bookingRepo, roomRepo, newTestLogger(t))

	room := &domain.Room{ID: "r1", PricePerNight: 5000, IsAvailable: false}
	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)

	checkIn := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	_, err := svc.Book(context.Background(), "u1", domain.CreateBookingInput{
		RoomID:   "r1",
		CheckIn:  checkIn,
		CheckOut: checkIn.Add(24 * time.Hour),
	})

	require.ErrorIs(t, err, domain.ErrRoomUnavailable)
}

func TestBookingService_Book_RoomNotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	roomRepo := mocks.NewMockRoomRepo(t)

	svc := NewBookingService(bookingRepo, roomRepo, newTestLogger(t))

	roomRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRoomNotFound)

	checkIn := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	_, err := svc.Book(context.Background(), "u1", domain.CreateBookingInput{
		RoomID:   "missing",
		CheckIn:  checkIn,
		CheckOut: checkIn.Add(24 * time.Hour),
	})

	require.ErrorIs(t, err, domain.ErrRoomNotFound)
}
