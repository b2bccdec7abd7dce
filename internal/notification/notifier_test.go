package notification

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

func TestOutboxNotifier_Enqueue(t *testing.T) {
	outbox := mocks.NewMockOutboxRepo(t)
	n := NewOutboxNotifier(outbox, newTestLogger(t))

	var stored *domain.EmailMessage
	outbox.EXPECT().Enqueue(mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*domain.EmailMessage)
		}).
		Return(nil)

	err := n.Enqueue(context.Background(), domain.TemplatePaymentReceived, "ada@example.com", domain.EmailData{
		UserName:        "Ada Obi",
		BookingID:       "b1",
		Amount:          15000,
		TransactionDate: time.Now(),
		Reference:       "TRX-001",
	})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, domain.EmailStatusPending, stored.Status)
	assert.Equal(t, "ada@example.com", stored.Recipient)
	assert.Equal(t, "Payment Receipt Submitted", stored.Subject)
	assert.Contains(t, stored.Body, "Ada Obi")
	assert.NotEmpty(t, stored.ID)
}

func TestOutboxNotifier_Enqueue_UnknownTemplate(t *testing.T) {
	outbox := mocks.NewMockOutboxRepo(t)
	n := NewOutboxNotifier(outbox, newTestLogger(t))

	err := n.Enqueue(context.Background(), domain.EmailTemplate("NOPE"), "ada@example.com", domain.EmailData{})

	require.Error(t, err)
}
