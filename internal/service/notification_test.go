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

func TestNotificationService_DispatchPending_MarksSent(t *testing.T) {
	outbox := mocks.NewMockOutboxRepo(t)
	mailer := mocks.NewMockMailer(t)

	svc := NewNotificationService(outbox, mailer, 10, newTestLogger(t))

	pending := []*domain.EmailMessage{
		{ID: "m1", Recipient: "a@example.com", Subject: "s1", Body: "b1"},
		{ID: "m2", Recipient: "b@example.com", Subject: "s2", Body: "b2"},
	}
	outbox.EXPECT().ListPending(mock.Anything, 10).Return(pending, nil)
	mailer.EXPECT().Send(mock.Anything, "a@example.com", "s1", "b1").Return(nil)
	mailer.EXPECT().Send(mock.Anything, "b@example.com", "s2", "b2").Return(nil)
	outbox.EXPECT().MarkSent(mock.Anything, "m1", mock.Anything).Return(nil)
	outbox.EXPECT().MarkSent(mock.Anything, "m2", mock.Anything).Return(nil)

	sent, err := svc.DispatchPending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
}

func TestNotificationService_DispatchPending_FailureDoesNotBlockBatch(t *testing.T) {
	outbox := mocks.NewMockOutboxRepo(t)
	mailer := mocks.NewMockMailer(t)

	svc := NewNotificationService(outbox, mailer, 10, newTestLogger(t))

	pending := []*domain.EmailMessage{
		{ID: "m1", Recipient: "bad@example.com", Subject: "s1", Body: "b1"},
		{ID: "m2", Recipient: "ok@example.com", Subject: "s2", Body: "b2"},
	}
	outbox.EXPECT().ListPending(mock.Anything, 10).Return(pending, nil)
	mailer.EXPECT().Send(mock.Anything, "bad@example.com", "s1", "b1").Return(assert.AnError)
	outbox.EXPECT().MarkFailed(mock.Anything, "m1", assert.AnError.Error()).Return(nil)
	mailer.EXPECT().Send(mock.Anything, "ok@example.com", "s2", "b2").Return(nil)
	outbox.EXPECT().MarkSent(mock.Anything, "m2", mock.Anything).Return(nil)

	sent, err := svc.DispatchPending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestNotificationService_DispatchPending_EmptyOutbox(t *testing.T) {
	outbox := mocks.NewMockOutboxRepo(t)
	mailer := mocks.NewMockMailer(t)

	svc := NewNotificationService(outbox, mailer, 10, newTestLogger(t))

	outbox.EXPECT().ListPending(mock.Anything, 10).Return(nil, nil)

	sent, err := svc.DispatchPending(context.Background())

	require.NoError(t, err)
	assert.Zero(t, sent)
}
