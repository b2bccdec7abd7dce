package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/abdul977/lodgebooker/internal/service/ports"
)

// NotificationService drains the email outbox. Each pending row gets
// exactly one delivery attempt per pass and is moved to sent or failed;
// rows are never deleted, so the table doubles as the notification log.
type NotificationService struct {
	outboxRepo ports.OutboxRepo
	mailer     ports.Mailer
	batchSize  int
	logger     logger.Logger
}

func NewNotificationService(outboxRepo ports.OutboxRepo, mailer ports.Mailer, batchSize int, logger logger.Logger) *NotificationService {
	return &NotificationService{
		outboxRepo: outboxRepo,
		mailer:     mailer,
		batchSize:  batchSize,
		logger:     logger,
	}
}

// DispatchPending sends one batch of pending messages and returns how
// many were delivered. A failed send marks the row failed and moves on;
// one bad address must not block the rest of the batch.
func (s *NotificationService) DispatchPending(ctx context.Context) (int, error) {
	pending, err := s.outboxRepo.ListPending(ctx, s.batchSize)
	if err != nil {
		return 0, fmt.Errorf("list pending emails: %w", err)
	}

	sent := 0
	for _, msg := range pending {
		if err := ctx.Err(); err != nil {
			return sent, err
		}

		if err := s.mailer.Send(ctx, msg.Recipient, msg.Subject, msg.Body); err != nil {
			s.logger.Error("email delivery failed",
				logger.String("email_id", msg.ID),
				logger.String("template", string(msg.Template)),
				logger.String("error", err.Error()),
			)
			if markErr := s.outboxRepo.MarkFailed(ctx, msg.ID, err.Error()); markErr != nil {
				s.logger.Error("failed to mark email failed",
					logger.String("email_id", msg.ID),
					logger.String("error", markErr.Error()),
				)
			}
			continue
		}

		if err := s.outboxRepo.MarkSent(ctx, msg.ID, time.Now().UTC()); err != nil {
			s.logger.Error("failed to mark email sent",
				logger.String("email_id", msg.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		sent++
		s.logger.LogAttrs(ctx, logger.DebugLevel, "email delivered",
			logger.String("email_id", msg.ID),
			logger.String("template", string(msg.Template)),
		)
	}

	return sent, nil
}
