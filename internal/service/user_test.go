package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/abdul977/lodgebooker/internal/domain"
	"github.com/abdul977/lodgebooker/internal/service/ports/mocks"
)

type userMocks struct {
	profiles *mocks.MockProfileRepo
	bookings *mocks.MockBookingRepo
	receipts *mocks.MockReceiptRepo
	notifier *mocks.MockNotifier
}

func newUserService(t *testing.T) (*UserService, userMocks) {
	t.Helper()

	m := userMocks{
		profiles: mocks.NewMockProfileRepo(t),
		bookings: mocks.NewMockBookingRepo(t),
		receipts: mocks.NewMockReceiptRepo(t),
		notifier: mocks.NewMockNotifier(t),
	}

	return NewUserService(m.profiles, m.bookings, m.receipts, m.notifier, newTestLogger(t)), m
}

func TestUserService_Details(t *testing.T) {
	svc, m := newUserService(t)

	profile := &domain.Profile{ID: "u1", FullName: "Ada Obi"}
	bookings := []*domain.Booking{{ID: "b1", UserID: "u1"}, {ID: "b2", UserID: "u1"}}

	m.profiles.EXPECT().GetByID(mock.Anything, "u1").Return(profile, nil)
	m.bookings.EXPECT().ListByUser(mock.Anything, "u1").Return(bookings, nil)

	details, err := svc.Details(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "Ada Obi", details.Profile.FullName)
	assert.Len(t, details.Bookings, 2)
}

func TestUserService_SetStatus_NotifiesOwner(t *testing.T) {
	svc, m := newUserService(t)

	profile := &domain.Profile{ID: "u1", FullName: "Ada Obi", Email: "ada@example.com"}
	m.profiles.EXPECT().GetByID(mock.Anything, "u1").Return(profile, nil)
	m.profiles.EXPECT().UpdateStatus(mock.Anything, "u1", domain.AccountDisabled).Return(nil)
	m.notifier.EXPECT().Enqueue(mock.Anything, domain.TemplateAccountStatusChange, "ada@example.com", mock.MatchedBy(func(d domain.EmailData) bool {
		return d.AccountStatus == domain.AccountDisabled
	})).Return(nil)

	require.NoError(t, svc.SetStatus(context.Background(), "u1", domain.AccountDisabled))
}

func TestUserService_SetStatus_SurvivesEnqueueFailure(t *testing.T) {
	svc, m := newUserService(t)

	profile := &domain.Profile{ID: "u1", Email: "ada@example.com"}
	m.profiles.EXPECT().GetByID(mock.Anything, "u1").Return(profile, nil)
	m.profiles.EXPECT().UpdateStatus(mock.Anything, "u1", domain.AccountActive).Return(nil)
	m.notifier.EXPECT().Enqueue(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	require.NoError(t, svc.SetStatus(context.Background(), "u1", domain.AccountActive))
}

func TestUserService_SetStatus_InvalidValue(t *testing.T) {
	svc, _ := newUserService(t)

	err := svc.SetStatus(context.Background(), "u1", domain.AccountStatus("banned"))

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_SetRole_InvalidValue(t *testing.T) {
	svc, _ := newUserService(t)

	err := svc.SetRole(context.Background(), "u1", domain.Role("root"))

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_SetRole_Success(t *testing.T) {
	svc, m := newUserService(t)

	m.profiles.EXPECT().UpdateRole(mock.Anything, "u1", domain.RoleManager).Return(nil)

	require.NoError(t, svc.SetRole(context.Background(), "u1", domain.RoleManager))
}

func TestUserService_Stats(t *testing.T) {
	svc, m := newUserService(t)

	m.profiles.EXPECT().Count(mock.Anything).Return(42, nil)
	m.bookings.EXPECT().CountActive(mock.Anything).Return(7, nil)
	m.receipts.EXPECT().CountPending(mock.Anything).Return(3, nil)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 42, stats.TotalUsers)
	assert.Equal(t, 7, stats.ActiveBookings)
	assert.Equal(t, 3, stats.PendingPayments)
}

func TestUserService_List_ClampsPaging(t *testing.T) {
	svc, m := newUserService(t)

	m.profiles.EXPECT().List(mock.Anything, "ada", defaultPageSize, 0).Return(nil, nil)
	_, err := svc.List(context.Background(), "ada", 0, -5)
	require.NoError(t, err)

	m.profiles.EXPECT().List(mock.Anything, "", maxPageSize, 10).Return(nil, nil)
	_, err = svc.List(context.Background(), "", 1000, 10)
	require.NoError(t, err)
}
